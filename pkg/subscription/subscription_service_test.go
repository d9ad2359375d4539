package subscription_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/pkg/subscription"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memorySubscriptionRepository struct {
	mu           sync.Mutex
	transactions map[string]*entities.Transaction
}

func newMemorySubscriptionRepository() *memorySubscriptionRepository {
	return &memorySubscriptionRepository{transactions: make(map[string]*entities.Transaction)}
}

func (r *memorySubscriptionRepository) CreateTransaction(ctx context.Context, tx *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *tx
	r.transactions[tx.OrderID] = &copied
	return nil
}

func (r *memorySubscriptionRepository) GetTransactionByOrderID(ctx context.Context, orderID string) (*entities.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[orderID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tx
	return &copied, nil
}

func (r *memorySubscriptionRepository) UpdateTransaction(ctx context.Context, tx *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *tx
	r.transactions[tx.OrderID] = &copied
	return nil
}

type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *u
	r.users[u.ID.String()] = &copied
	return nil
}

func (r *memoryUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memoryUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *u
	r.users[u.ID.String()] = &copied
	return nil
}

func (r *memoryUserRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

type stubSnapGateway struct {
	err error
}

func (g *stubSnapGateway) CreateTransaction(req *snap.Request) (*snap.Response, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &snap.Response{
		Token:       "snap-token-123",
		RedirectURL: "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token-123",
	}, nil
}

func seedUser(t *testing.T, repo *memoryUserRepository) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:    uuid.New(),
		Name:  "Dana",
		Email: "dana@example.com",
		Role:  domain.RoleUser,
	}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestSubscribeCreatesPendingTransaction(t *testing.T) {
	ctx := context.Background()
	subRepo := newMemorySubscriptionRepository()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(subRepo, userRepo, &stubSnapGateway{})

	u := seedUser(t, userRepo)

	res, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: subscription.PlanProMonthly}, u.ID.String())
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderID)
	assert.Equal(t, "snap-token-123", res.SnapToken)
	assert.NotEmpty(t, res.RedirectURL)

	tx, err := subRepo.GetTransactionByOrderID(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, subscription.TransactionStatusPending, tx.Status)
	assert.Equal(t, subscription.PlanProMonthly, tx.Plan)
}

func TestSubscribeUnknownPlan(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(newMemorySubscriptionRepository(), userRepo, &stubSnapGateway{})

	u := seedUser(t, userRepo)

	_, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: "pro_weekly"}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrUnknownPlan)
}

func TestSubscribeSnapFailure(t *testing.T) {
	ctx := context.Background()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(newMemorySubscriptionRepository(), userRepo, &stubSnapGateway{err: errors.New("midtrans down")})

	u := seedUser(t, userRepo)

	_, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: subscription.PlanProYearly}, u.ID.String())
	assert.Error(t, err)
}

func TestSettlementNotificationActivatesPro(t *testing.T) {
	ctx := context.Background()
	subRepo := newMemorySubscriptionRepository()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(subRepo, userRepo, &stubSnapGateway{})

	u := seedUser(t, userRepo)
	res, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: subscription.PlanProMonthly}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           res.OrderID,
		TransactionStatus: "settlement",
	}))

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.True(t, updated.IsPro)
	require.NotNil(t, updated.ProUntil)
	assert.True(t, updated.ProUntil.After(time.Now().AddDate(0, 0, 27)))

	tx, err := subRepo.GetTransactionByOrderID(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, subscription.TransactionStatusSettled, tx.Status)
}

func TestDuplicateSettlementDoesNotExtendTwice(t *testing.T) {
	ctx := context.Background()
	subRepo := newMemorySubscriptionRepository()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(subRepo, userRepo, &stubSnapGateway{})

	u := seedUser(t, userRepo)
	res, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: subscription.PlanProMonthly}, u.ID.String())
	require.NoError(t, err)

	notification := domain.MidtransNotification{OrderID: res.OrderID, TransactionStatus: "settlement"}
	require.NoError(t, service.HandleNotification(ctx, notification))

	first, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandleNotification(ctx, notification))
	second, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, first.ProUntil.Unix(), second.ProUntil.Unix())
}

func TestFailureNotificationMarksTransaction(t *testing.T) {
	ctx := context.Background()
	subRepo := newMemorySubscriptionRepository()
	userRepo := newMemoryUserRepository()
	service := subscription.NewSubscriptionService(subRepo, userRepo, &stubSnapGateway{})

	u := seedUser(t, userRepo)
	res, err := service.Subscribe(ctx, domain.SubscribeRequest{Plan: subscription.PlanProMonthly}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, service.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           res.OrderID,
		TransactionStatus: "expire",
	}))

	tx, err := subRepo.GetTransactionByOrderID(ctx, res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, subscription.TransactionStatusFailed, tx.Status)

	updated, err := userRepo.GetUserByID(ctx, u.ID.String())
	require.NoError(t, err)
	assert.False(t, updated.IsPro)
}

func TestNotificationUnknownOrder(t *testing.T) {
	ctx := context.Background()
	service := subscription.NewSubscriptionService(newMemorySubscriptionRepository(), newMemoryUserRepository(), &stubSnapGateway{})

	err := service.HandleNotification(ctx, domain.MidtransNotification{
		OrderID:           "missing",
		TransactionStatus: "settlement",
	})
	assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
