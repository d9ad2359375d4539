package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fridgesmart/domain"
	"fridgesmart/internal/logger"
	"fridgesmart/pkg/inventory"
	"fridgesmart/pkg/recipe"
)

// urgentExpiryDays and urgentItemCount decide when the assistant should
// adopt an urgent tone: more than urgentItemCount items expiring within
// urgentExpiryDays days.
const (
	urgentExpiryDays = 2
	urgentItemCount  = 2
)

type (
	AssistantService interface {
		Chat(ctx context.Context, userID string, message string) (domain.ChatResponse, error)
	}

	assistantService struct {
		inventoryRepository inventory.InventoryRepository
		gateway             recipe.TextGateway
	}
)

func NewAssistantService(inventoryRepository inventory.InventoryRepository, gateway recipe.TextGateway) AssistantService {
	return &assistantService{
		inventoryRepository: inventoryRepository,
		gateway:             gateway,
	}
}

// Chat runs a single-turn conversation grounded in the user's inventory.
// Any failure collapses into the fixed apology reply; this endpoint never
// returns an error to its caller.
func (s *assistantService) Chat(ctx context.Context, userID string, message string) (domain.ChatResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		logger.Error("failed to load inventory for chat", "error", err)
		return domain.ChatResponse{Reply: domain.AssistantApology}, nil
	}

	inventoryContext := make([]string, 0, len(items))
	urgentCount := 0
	for _, item := range items {
		inventoryContext = append(inventoryContext, fmt.Sprintf("%s %s", item.Quantity, item.Name))
		if item.DaysUntilExpiration <= urgentExpiryDays {
			urgentCount++
		}
	}

	userState := "Relaxed"
	if urgentCount > urgentItemCount {
		userState = "Urgent/Stressed"
	}

	prompt := fmt.Sprintf(
		`System: You are FridgeSmart Pro's "Conversational Kitchen AI".

Your Personality:
- Empathetic and non-judgmental (relieve guilt about waste).
- Proactive and practical.
- Uses emojis naturally.
- Speaks like a supportive friend, not a robot.

Context:
- User Inventory: %s
- User State: %s (Adapt your tone)
- Current Time: %s

User Query: "%s"

Goal: Help them use their food, feel good about cooking, and save money. If suggesting recipes, check if they have ingredients.`,
		strings.Join(inventoryContext, ", "),
		userState,
		time.Now().Format("3:04 PM"),
		message,
	)

	reply, _, err := s.gateway.GenerateText(ctx, prompt)
	if err != nil {
		logger.Warn("assistant chat failed", "error", err)
		return domain.ChatResponse{Reply: domain.AssistantApology}, nil
	}

	return domain.ChatResponse{Reply: strings.TrimSpace(reply)}, nil
}
