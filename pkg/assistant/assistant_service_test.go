package assistant_test

import (
	"context"
	"errors"
	"testing"

	"fridgesmart/domain"
	"fridgesmart/pkg/assistant"
	"fridgesmart/pkg/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTextGateway struct {
	response string
	err      error
	prompts  []string
}

func (g *stubTextGateway) GenerateText(ctx context.Context, prompt string) (string, int, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, 0, g.err
}

func seedItems(t *testing.T, repo inventory.InventoryRepository, userID string, days ...int) {
	t.Helper()
	service := inventory.NewInventoryService(repo)
	for _, d := range days {
		_, err := service.AddItem(context.Background(), domain.AddItemRequest{
			Name: "Milk", Quantity: "1 carton", DaysUntilExpiration: d,
		}, userID)
		require.NoError(t, err)
	}
}

func TestChatIncludesInventoryContext(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: "Use that milk in pancakes! 🥞"}
	service := assistant.NewAssistantService(repo, gateway)

	userID := uuid.NewString()
	seedItems(t, repo, userID, 5)

	res, err := service.Chat(ctx, userID, "what should I cook?")
	require.NoError(t, err)
	assert.Equal(t, "Use that milk in pancakes! 🥞", res.Reply)

	require.Len(t, gateway.prompts, 1)
	assert.Contains(t, gateway.prompts[0], "1 carton Milk")
	assert.Contains(t, gateway.prompts[0], "what should I cook?")
	assert.Contains(t, gateway.prompts[0], "Relaxed")
}

func TestChatUrgentTone(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: "Let's rescue those items!"}
	service := assistant.NewAssistantService(repo, gateway)

	userID := uuid.NewString()
	// Three items within two days pushes the state to urgent.
	seedItems(t, repo, userID, 0, 1, 2, 10)

	_, err := service.Chat(ctx, userID, "help")
	require.NoError(t, err)
	require.Len(t, gateway.prompts, 1)
	assert.Contains(t, gateway.prompts[0], "Urgent/Stressed")
}

func TestChatFailureReturnsApology(t *testing.T) {
	ctx := context.Background()
	repo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{err: errors.New("connection refused")}
	service := assistant.NewAssistantService(repo, gateway)

	userID := uuid.NewString()
	seedItems(t, repo, userID, 5)

	res, err := service.Chat(ctx, userID, "hello")
	require.NoError(t, err)
	assert.Equal(t, domain.AssistantApology, res.Reply)
}

func TestChatEmptyInventoryStillReplies(t *testing.T) {
	ctx := context.Background()
	gateway := &stubTextGateway{response: "Your fridge is empty, time to shop! 🛒"}
	service := assistant.NewAssistantService(inventory.NewMemoryRepository(), gateway)

	res, err := service.Chat(ctx, uuid.NewString(), "anything to cook?")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Reply)
	assert.NotEqual(t, domain.AssistantApology, res.Reply)
}
