package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fridgesmart/domain"
	"fridgesmart/entities"
	"fridgesmart/internal/logger"
	"fridgesmart/internal/utils"
	"fridgesmart/pkg/inventory"

	"github.com/google/uuid"
)

// criticalDays is the expiry horizon that marks an item as critical for
// recipe prioritization.
const criticalDays = 3

var (
	standardConstraints = []string{
		"Expiry Priority", "Budget Optimization", "Nutritional Balance",
		"Time Management", "Skill Variety",
	}
	rescueConstraints = []string{
		"CRITICAL WASTE PREVENTION", "Speed Strategy", "Volume Strategy",
		"Creative Strategy",
	}
)

type (
	RecipeService interface {
		GenerateRecipes(ctx context.Context, userID string) (domain.GenerateRecipesResponse, error)
		GenerateRescueRecipes(ctx context.Context, userID string) (domain.GenerateRecipesResponse, error)
		SetCheckState(ctx context.Context, userID string, state domain.CheckState) error
		GetCheckState(ctx context.Context, userID string, recipeID string) (domain.CheckState, error)
	}

	recipeService struct {
		recipeRepository    RecipeRepository
		inventoryRepository inventory.InventoryRepository
		gateway             TextGateway
		checkStates         CheckStateStore
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	inventoryRepository inventory.InventoryRepository,
	gateway TextGateway,
	checkStates CheckStateStore,
) RecipeService {
	return &recipeService{
		recipeRepository:    recipeRepository,
		inventoryRepository: inventoryRepository,
		gateway:             gateway,
		checkStates:         checkStates,
	}
}

func (s *recipeService) GenerateRecipes(ctx context.Context, userID string) (domain.GenerateRecipesResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}
	if len(items) == 0 {
		// Rejected before any network call.
		return domain.GenerateRecipesResponse{Recipes: []domain.Recipe{}}, domain.ErrNoIngredients
	}

	inventoryList := make([]string, 0, len(items))
	criticalNames := make([]string, 0)
	for _, item := range items {
		inventoryList = append(inventoryList,
			fmt.Sprintf("%s %s (Expires in %d days)", item.Quantity, item.Name, item.DaysUntilExpiration))
		if item.DaysUntilExpiration <= criticalDays {
			criticalNames = append(criticalNames, item.Name)
		}
	}

	prompt := fmt.Sprintf(
		`You are the FridgeSmart Pro Recipe Optimization Engine.

GENERATE EXACTLY 3 DISTINCT RECIPES.

Perform Multi-Constraint Optimization:
1. **URGENCY (CRITICAL)**: Prioritize expiring items: %s.
2. **BUDGET**: Minimize new purchases (<$4/serving). Use what is in inventory.
3. **NUTRITION**: Ensure balanced macros (Protein, Carbs, Fats).
4. **TIME**: <45 mins total preparation and cook time.
5. **SKILL**: Provide a mix of Beginner, Intermediate, and Advanced options.
6. **VARIETY**: Do not use the same main protein for all 3 recipes if possible.

For each recipe, you MUST provide a "aiOptimizationLogic" string that explains your reasoning.
Format: "I chose [Item] because it expires tomorrow (critical). Paired with [Item] for nutrition. Quick saute method for 30-minute constraint."

Return a valid JSON array of recipe objects with fields: name, description, type,
savingsMessage, criticalItemsUsed, ingredients (item, amount, have, estimatedCost, urgency),
substitutions (original, alternatives, note), instructions (step, action, time, tip, why),
timing (prep, cook, total), difficulty, difficultyReason,
nutrition (servings, perServing with calories/protein/carbs/fat/fiber/sodium, highlights),
cost (total, perServing, breakdown with have/needToBuy, comparison),
tags, storage, tips, variations, aiOptimizationLogic.
Do not include any explanations or text outside of the JSON array.

Inventory Available: %s`,
		strings.Join(criticalNames, ", "),
		strings.Join(inventoryList, ", "),
	)

	recipes := s.generate(ctx, userID, prompt, standardConstraints,
		"Optimized based on inventory constraints.", false)

	return domain.GenerateRecipesResponse{
		Recipes:       recipes,
		TotalRecipes:  len(recipes),
		ExpiringItems: len(criticalNames),
		RescueMode:    false,
	}, nil
}

func (s *recipeService) GenerateRescueRecipes(ctx context.Context, userID string) (domain.GenerateRecipesResponse, error) {
	items, err := s.inventoryRepository.GetAllItems(ctx, userID)
	if err != nil {
		return domain.GenerateRecipesResponse{}, err
	}
	if len(items) == 0 {
		return domain.GenerateRecipesResponse{Recipes: []domain.Recipe{}}, domain.ErrNoIngredients
	}

	criticalList := make([]string, 0)
	supportList := make([]string, 0)
	for _, item := range items {
		if item.DaysUntilExpiration <= criticalDays {
			criticalList = append(criticalList,
				fmt.Sprintf("%s %s (Expires: %d days)", item.Quantity, item.Name, item.DaysUntilExpiration))
		} else {
			supportList = append(supportList,
				fmt.Sprintf("%s %s", item.Quantity, item.Name))
		}
	}

	// With nothing actually critical the rescue framing makes no sense, so
	// the standard generator takes over. The caller is not told.
	if len(criticalList) == 0 {
		return s.GenerateRecipes(ctx, userID)
	}

	prompt := fmt.Sprintf(
		`EMERGENCY RESCUE PROTOCOL ACTIVATED

GENERATE EXACTLY 3 RESCUE RECIPES options:
1. **The "Speed Rescue"**: Fastest possible meal using expiring items (<20 mins).
2. **The "Volume Rescue"**: Uses the LARGEST quantity of expiring items.
3. **The "Creative Rescue"**: A unique twist to make expiring ingredients exciting again.

CRITICAL ASSETS (Must Use): %s
SUPPORT ASSETS: %s

OBJECTIVE:
Prevent waste IMMEDIATELY.

Explain your optimization reasoning in "aiOptimizationLogic" for each recipe.

Return a valid JSON array of recipe objects with fields: name, description, type,
savingsMessage, criticalItemsUsed, ingredients (item, amount, have, estimatedCost, urgency),
substitutions (original, alternatives, note), instructions (step, action, time, tip, why),
timing (prep, cook, total), difficulty, difficultyReason,
nutrition (servings, perServing with calories/protein/carbs/fat/fiber/sodium, highlights),
cost (total, perServing, breakdown with have/needToBuy, comparison),
tags, storage, tips, variations, aiOptimizationLogic.
Do not include any explanations or text outside of the JSON array.`,
		strings.Join(criticalList, ", "),
		strings.Join(supportList, ", "),
	)

	recipes := s.generate(ctx, userID, prompt, rescueConstraints,
		"Emergency protocol executed. Optimized for immediate consumption of high-risk assets.", true)

	return domain.GenerateRecipesResponse{
		Recipes:       recipes,
		TotalRecipes:  len(recipes),
		ExpiringItems: len(criticalList),
		RescueMode:    true,
	}, nil
}

// generate runs one model round trip and assembles the result. Any gateway
// or parse failure yields an empty batch rather than an error; the UI treats
// empty as "nothing generated" and lets the user retry.
func (s *recipeService) generate(ctx context.Context, userID, prompt string, constraints []string, fallbackLogic string, rescueMode bool) []domain.Recipe {
	start := time.Now()

	responseText, tokens, err := s.gateway.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error("recipe generation failed", "error", err)
		return []domain.Recipe{}
	}

	jsonStr, err := extractJSONArray(responseText)
	if err != nil {
		logger.Error("recipe response rejected", "error", err)
		return []domain.Recipe{}
	}

	var rawRecipes []rawRecipe
	if err := json.Unmarshal([]byte(jsonStr), &rawRecipes); err != nil {
		logger.Error("recipe response rejected", "error", err)
		return []domain.Recipe{}
	}

	elapsed := time.Since(start).Milliseconds()
	model := utils.GetConfig("GEMINI_MODEL")

	recipes := make([]domain.Recipe, 0, len(rawRecipes))
	for _, raw := range rawRecipes {
		logic := raw.AIOptimizationLogic
		if logic == "" {
			logic = fallbackLogic
		}
		assembled := assembleRecipe(raw, &domain.AIOptimizationData{
			ConstraintsChecked: constraints,
			TokensUsed:         tokens,
			ProcessingTimeMs:   elapsed,
			OptimizationLogic:  logic,
			Model:              model,
		})
		s.persistRecipe(ctx, userID, assembled, rescueMode)
		recipes = append(recipes, assembled)
	}
	return recipes
}

// persistRecipe snapshots a generated recipe. Persistence is best effort;
// a storage failure never blocks the response.
func (s *recipeService) persistRecipe(ctx context.Context, userID string, r domain.Recipe, rescueMode bool) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return
	}

	ingredients, _ := json.Marshal(r.Ingredients)
	instructions, _ := json.Marshal(r.Instructions)
	substitutions, _ := json.Marshal(r.Substitutions)
	nutrition, _ := json.Marshal(r.Nutrition)
	cost, _ := json.Marshal(r.Cost)
	tags, _ := json.Marshal(r.Tags)
	technical, _ := json.Marshal(r.TechnicalData)

	dbRecipe := &entities.Recipe{
		ID:            uuid.MustParse(r.ID),
		UserID:        userUUID,
		Title:         r.Title,
		Description:   r.Description,
		MealType:      r.MealType,
		PrepTime:      r.PrepTime,
		CookTime:      r.CookTime,
		TotalTime:     r.TotalTime,
		Servings:      r.Servings,
		Difficulty:    r.Difficulty,
		Savings:       r.Savings,
		RescueMode:    rescueMode,
		Ingredients:   string(ingredients),
		Instructions:  string(instructions),
		Substitutions: string(substitutions),
		Nutrition:     string(nutrition),
		Cost:          string(cost),
		Tags:          string(tags),
		TechnicalData: string(technical),
		IsGenerated:   true,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, dbRecipe); err != nil {
		logger.Warn("failed to persist generated recipe", "recipe_id", r.ID, "error", err)
	}
}

func (s *recipeService) SetCheckState(ctx context.Context, userID string, state domain.CheckState) error {
	if state.Ingredients == nil {
		state.Ingredients = map[int]bool{}
	}
	if state.Steps == nil {
		state.Steps = map[int]bool{}
	}
	return s.checkStates.Set(ctx, userID, state)
}

func (s *recipeService) GetCheckState(ctx context.Context, userID string, recipeID string) (domain.CheckState, error) {
	return s.checkStates.Get(ctx, userID, recipeID)
}
