package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"fridgesmart/domain"

	"github.com/redis/go-redis/v9"
)

// checkStateTTL bounds how long checked-off ingredients and steps survive.
// The state is session-scoped and deliberately kept out of Postgres.
const checkStateTTL = 24 * time.Hour

type (
	CheckStateStore interface {
		Set(ctx context.Context, userID string, state domain.CheckState) error
		Get(ctx context.Context, userID string, recipeID string) (domain.CheckState, error)
	}

	redisCheckStateStore struct {
		client *redis.Client
	}

	memoryCheckStateStore struct {
		mu     sync.Mutex
		states map[string]domain.CheckState
	}
)

func NewRedisCheckStateStore(client *redis.Client) CheckStateStore {
	return &redisCheckStateStore{client: client}
}

func checkStateKey(userID, recipeID string) string {
	return fmt.Sprintf("recipe:checkstate:%s:%s", userID, recipeID)
}

func (s *redisCheckStateStore) Set(ctx context.Context, userID string, state domain.CheckState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, checkStateKey(userID, state.RecipeID), data, checkStateTTL).Err()
}

func (s *redisCheckStateStore) Get(ctx context.Context, userID string, recipeID string) (domain.CheckState, error) {
	data, err := s.client.Get(ctx, checkStateKey(userID, recipeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Nothing checked yet is a valid state, not an error.
			return emptyCheckState(recipeID), nil
		}
		return domain.CheckState{}, err
	}

	var state domain.CheckState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.CheckState{}, err
	}
	return state, nil
}

func NewMemoryCheckStateStore() CheckStateStore {
	return &memoryCheckStateStore{states: make(map[string]domain.CheckState)}
}

func (s *memoryCheckStateStore) Set(ctx context.Context, userID string, state domain.CheckState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[checkStateKey(userID, state.RecipeID)] = state
	return nil
}

func (s *memoryCheckStateStore) Get(ctx context.Context, userID string, recipeID string) (domain.CheckState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[checkStateKey(userID, recipeID)]
	if !ok {
		return emptyCheckState(recipeID), nil
	}
	return state, nil
}

func emptyCheckState(recipeID string) domain.CheckState {
	return domain.CheckState{
		RecipeID:    recipeID,
		Ingredients: map[int]bool{},
		Steps:       map[int]bool{},
	}
}
