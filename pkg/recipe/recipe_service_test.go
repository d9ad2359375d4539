package recipe_test

import (
	"context"
	"sync"
	"testing"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/pkg/inventory"
	"fridgesmart/pkg/recipe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubTextGateway struct {
	response string
	tokens   int
	err      error
	prompts  []string
}

func (g *stubTextGateway) GenerateText(ctx context.Context, prompt string) (string, int, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.tokens, g.err
}

type recordingRecipeRepository struct {
	mu      sync.Mutex
	created []*entities.Recipe
}

func (r *recordingRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, recipe)
	return nil
}

func (r *recordingRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *recordingRecipeRepository) GetRecipesByUser(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

const threeRecipesJSON = `[
	{
		"name": "Spinach Chicken Saute",
		"description": "Quick pan dinner.",
		"type": "dinner",
		"criticalItemsUsed": ["Organic Spinach", "Chicken Breast"],
		"ingredients": [
			{"item": "Chicken Breast", "amount": "1 lb", "have": true, "estimatedCost": 8.99, "urgency": "high"},
			{"item": "Olive Oil", "amount": "2 tbsp", "have": false, "estimatedCost": 0.50}
		],
		"instructions": [
			{"step": 1, "action": "Sear the chicken.", "time": "8 min", "tip": "Do not crowd the pan."}
		],
		"timing": {"prep": 10, "cook": 20, "total": 30},
		"difficulty": "Easy",
		"nutrition": {"servings": 2, "perServing": {"calories": 420, "protein": "38g", "carbs": "6g", "fat": "22g"}},
		"cost": {"total": 9.49, "perServing": 4.75, "breakdown": {"have": 8.99, "needToBuy": 0.5}},
		"tags": ["high-protein"],
		"aiOptimizationLogic": "Chicken expires tomorrow so it anchors the dish."
	},
	{
		"name": "Avocado Yogurt Bowl",
		"timing": {"prep": 5, "cook": 0, "total": 5},
		"ingredients": [{"item": "Avocados", "amount": "2", "have": true}],
		"instructions": [{"step": 1, "action": "Mash and mix."}],
		"nutrition": {"servings": 1},
		"aiOptimizationLogic": "Uses soft avocados before they turn."
	},
	{
		"name": "Almond Milk Smoothie",
		"timing": {"prep": 5, "cook": 0, "total": 5},
		"ingredients": [{"item": "Almond Milk", "amount": "1 cup", "have": true}],
		"instructions": [{"step": 1, "action": "Blend everything."}],
		"nutrition": {"servings": 2}
	}
]`

func seedInventory(t *testing.T, repo inventory.InventoryRepository, userID string, days ...int) {
	t.Helper()
	service := inventory.NewInventoryService(repo)
	for _, d := range days {
		_, err := service.AddItem(context.Background(), domain.AddItemRequest{
			Name: "Item", Quantity: "1", DaysUntilExpiration: d,
		}, userID)
		require.NoError(t, err)
	}
}

func TestGenerateRecipes(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	recRepo := &recordingRecipeRepository{}
	gateway := &stubTextGateway{response: threeRecipesJSON, tokens: 1234}
	service := recipe.NewRecipeService(recRepo, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 1, 2, 10)

	res, err := service.GenerateRecipes(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalRecipes)
	assert.Equal(t, 2, res.ExpiringItems)
	assert.False(t, res.RescueMode)
	require.Len(t, res.Recipes, 3)

	first := res.Recipes[0]
	assert.Equal(t, "Spinach Chicken Saute", first.Title)
	assert.Equal(t, "10m", first.PrepTime)
	assert.Equal(t, "30m", first.TotalTime)
	assert.Equal(t, 8.99, first.Savings)
	require.NotNil(t, first.TechnicalData)
	assert.Equal(t, 1234, first.TechnicalData.TokensUsed)
	assert.Equal(t, "Chicken expires tomorrow so it anchors the dish.", first.TechnicalData.OptimizationLogic)
	assert.Contains(t, first.TechnicalData.ConstraintsChecked, "Expiry Priority")

	// Each generated recipe is snapshotted.
	assert.Len(t, recRepo.created, 3)
	assert.True(t, recRepo.created[0].IsGenerated)
}

func TestGenerateRecipesEmptyInventory(t *testing.T) {
	ctx := context.Background()
	gateway := &stubTextGateway{response: threeRecipesJSON}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, inventory.NewMemoryRepository(), gateway, recipe.NewMemoryCheckStateStore())

	_, err := service.GenerateRecipes(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
	// Rejected before any model call.
	assert.Empty(t, gateway.prompts)
}

func TestGenerateRecipesGatewayFailureReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{err: domain.ErrGeminiAPIFailed}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 1)

	res, err := service.GenerateRecipes(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.Zero(t, res.TotalRecipes)
}

func TestGenerateRecipesMalformedResponseReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: "sorry, I cannot help with that"}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 1)

	res, err := service.GenerateRecipes(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, res.Recipes)
}

func TestGenerateRecipesAssemblyDefaults(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: `[{}]`}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 5)

	res, err := service.GenerateRecipes(ctx, userID)
	require.NoError(t, err)
	require.Len(t, res.Recipes, 1)

	r := res.Recipes[0]
	assert.Equal(t, "Untitled Recipe", r.Title)
	assert.Equal(t, "No description available", r.Description)
	assert.Equal(t, "Medium", r.Difficulty)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, "0m", r.PrepTime)
	assert.Equal(t, "0g", r.Macros.Protein)
	assert.Zero(t, r.Cost.Total)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Instructions)
	assert.NotNil(t, r.Tags)
	require.NotNil(t, r.TechnicalData)
	assert.Equal(t, "Optimized based on inventory constraints.", r.TechnicalData.OptimizationLogic)
}

func TestGenerateRescueRecipes(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: threeRecipesJSON}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 1, 2, 20)

	res, err := service.GenerateRescueRecipes(ctx, userID)
	require.NoError(t, err)
	assert.True(t, res.RescueMode)
	assert.Equal(t, 2, res.ExpiringItems)
	require.Len(t, gateway.prompts, 1)
	assert.Contains(t, gateway.prompts[0], "RESCUE")
	require.NotNil(t, res.Recipes[0].TechnicalData)
	assert.Contains(t, res.Recipes[0].TechnicalData.ConstraintsChecked, "CRITICAL WASTE PREVENTION")
}

func TestGenerateRescueRecipesDelegatesWithoutCriticalItems(t *testing.T) {
	ctx := context.Background()
	invRepo := inventory.NewMemoryRepository()
	gateway := &stubTextGateway{response: threeRecipesJSON}
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, invRepo, gateway, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	seedInventory(t, invRepo, userID, 10, 20)

	// Nothing expires within the critical window, so the standard
	// generator answers and the response does not claim rescue mode.
	res, err := service.GenerateRescueRecipes(ctx, userID)
	require.NoError(t, err)
	assert.False(t, res.RescueMode)
	require.Len(t, gateway.prompts, 1)
	assert.NotContains(t, gateway.prompts[0], "RESCUE PROTOCOL")
}

func TestGenerateRescueRecipesEmptyInventory(t *testing.T) {
	ctx := context.Background()
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, inventory.NewMemoryRepository(), &stubTextGateway{}, recipe.NewMemoryCheckStateStore())

	_, err := service.GenerateRescueRecipes(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNoIngredients)
}

func TestCheckStateRoundTrip(t *testing.T) {
	ctx := context.Background()
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, inventory.NewMemoryRepository(), &stubTextGateway{}, recipe.NewMemoryCheckStateStore())

	userID := uuid.NewString()
	recipeID := uuid.NewString()

	require.NoError(t, service.SetCheckState(ctx, userID, domain.CheckState{
		RecipeID:    recipeID,
		Ingredients: map[int]bool{0: true, 2: true},
		Steps:       map[int]bool{1: true},
	}))

	state, err := service.GetCheckState(ctx, userID, recipeID)
	require.NoError(t, err)
	assert.True(t, state.Ingredients[0])
	assert.True(t, state.Ingredients[2])
	assert.False(t, state.Ingredients[1])
	assert.True(t, state.Steps[1])
}

func TestGetCheckStateDefaultsToEmpty(t *testing.T) {
	ctx := context.Background()
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, inventory.NewMemoryRepository(), &stubTextGateway{}, recipe.NewMemoryCheckStateStore())

	state, err := service.GetCheckState(ctx, uuid.NewString(), "some-recipe")
	require.NoError(t, err)
	assert.Equal(t, "some-recipe", state.RecipeID)
	assert.NotNil(t, state.Ingredients)
	assert.NotNil(t, state.Steps)
	assert.Empty(t, state.Ingredients)
}

func TestCheckStateIsScopedPerUser(t *testing.T) {
	ctx := context.Background()
	service := recipe.NewRecipeService(&recordingRecipeRepository{}, inventory.NewMemoryRepository(), &stubTextGateway{}, recipe.NewMemoryCheckStateStore())

	recipeID := uuid.NewString()
	userA := uuid.NewString()
	userB := uuid.NewString()

	require.NoError(t, service.SetCheckState(ctx, userA, domain.CheckState{
		RecipeID:    recipeID,
		Ingredients: map[int]bool{0: true},
	}))

	state, err := service.GetCheckState(ctx, userB, recipeID)
	require.NoError(t, err)
	assert.Empty(t, state.Ingredients)
}
