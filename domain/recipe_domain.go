package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateRecipes = "recipes generated successfully"
	MessageSuccessGetCheckState   = "check state retrieved successfully"
	MessageSuccessSetCheckState   = "check state updated successfully"

	MessageFailedGenerateRecipes = "failed to generate recipes"
	MessageFailedGetCheckState   = "failed to retrieve check state"
	MessageFailedSetCheckState   = "failed to update check state"

	ErrGeminiAPIFailed = errors.New("gemini API processing failed")
	ErrNoIngredients   = errors.New("no inventory items available for recipe generation")
)

type (
	Ingredient struct {
		Name          string  `json:"name"`
		Amount        string  `json:"amount"`
		IsInInventory bool    `json:"is_in_inventory"`
		EstimatedCost float64 `json:"estimated_cost,omitempty"`
		Urgency       string  `json:"urgency,omitempty"` // high, medium, low
		Notes         string  `json:"notes,omitempty"`
	}

	Substitution struct {
		Original     string   `json:"original"`
		Alternatives []string `json:"alternatives"`
		Note         string   `json:"note,omitempty"`
	}

	RecipeInstruction struct {
		Step     int    `json:"step"`
		Text     string `json:"text"`
		Duration string `json:"duration,omitempty"` // e.g. "5 min"
		Tip      string `json:"tip,omitempty"`
		Why      string `json:"why,omitempty"`
	}

	MacroNutrients struct {
		Calories int    `json:"calories"`
		Protein  string `json:"protein"`
		Carbs    string `json:"carbs"`
		Fats     string `json:"fats"`
	}

	PerServingNutrition struct {
		Calories int    `json:"calories"`
		Protein  string `json:"protein"`
		Carbs    string `json:"carbs"`
		Fat      string `json:"fat"`
		Fiber    string `json:"fiber,omitempty"`
		Sodium   string `json:"sodium,omitempty"`
	}

	DetailedNutrition struct {
		Servings   int                 `json:"servings"`
		PerServing PerServingNutrition `json:"per_serving"`
		Highlights []string            `json:"highlights,omitempty"`
	}

	CostSplit struct {
		Have      float64 `json:"have"`
		NeedToBuy float64 `json:"need_to_buy"`
	}

	CostBreakdown struct {
		Total      float64   `json:"total"`
		PerServing float64   `json:"per_serving"`
		Breakdown  CostSplit `json:"breakdown"`
		Comparison string    `json:"comparison,omitempty"`
	}

	// AIOptimizationData is per-batch provenance attached to generated
	// recipes. Purely informational, never read back by control flow.
	AIOptimizationData struct {
		ConstraintsChecked []string `json:"constraints_checked"`
		TokensUsed         int      `json:"tokens_used"`
		ProcessingTimeMs   int64    `json:"processing_time_ms"`
		OptimizationLogic  string   `json:"optimization_logic"`
		Model              string   `json:"model"`
	}

	Recipe struct {
		ID                string              `json:"id"`
		Title             string              `json:"title"`
		Description       string              `json:"description"`
		MealType          string              `json:"meal_type,omitempty"` // breakfast, lunch, dinner, snack
		Ingredients       []Ingredient        `json:"ingredients"`
		CriticalItemsUsed []string            `json:"critical_items_used"`
		Substitutions     []Substitution      `json:"substitutions"`
		Instructions      []RecipeInstruction `json:"instructions"`
		PrepTime          string              `json:"prep_time"`
		CookTime          string              `json:"cook_time"`
		TotalTime         string              `json:"total_time"`
		Servings          int                 `json:"servings"`
		Cost              CostBreakdown       `json:"cost"`
		CostPerServing    float64             `json:"cost_per_serving"`
		TotalCost         float64             `json:"total_cost"`
		Savings           float64             `json:"savings"` // value of inventory used
		SavingsMessage    string              `json:"savings_message,omitempty"`
		Difficulty        string              `json:"difficulty"` // Easy, Medium, Hard, Chef
		DifficultyReason  string              `json:"difficulty_reason,omitempty"`
		Macros            MacroNutrients      `json:"macros"`
		Nutrition         DetailedNutrition   `json:"nutrition"`
		Tags              []string            `json:"tags"`
		Storage           string              `json:"storage,omitempty"`
		Tips              []string            `json:"tips"`
		Variations        []string            `json:"variations"`
		TechnicalData     *AIOptimizationData `json:"technical_data,omitempty"`
	}

	GenerateRecipesResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
		RescueMode    bool     `json:"rescue_mode"`
	}

	// CheckState holds the session-scoped checked flags for one recipe's
	// ingredients and steps. Kept in Redis with a TTL, never in Postgres.
	CheckState struct {
		RecipeID    string       `json:"recipe_id" validate:"required"`
		Ingredients map[int]bool `json:"ingredients"`
		Steps       map[int]bool `json:"steps"`
	}
)
