package recipe

import (
	"strconv"

	"fridgesmart/domain"

	"github.com/google/uuid"
)

// rawRecipe mirrors the JSON shape the model is asked to return. Everything
// is optional; assembly fills the gaps.
type rawRecipe struct {
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Type              string   `json:"type"`
	SavingsMessage    string   `json:"savingsMessage"`
	CriticalItemsUsed []string `json:"criticalItemsUsed"`
	Ingredients       []struct {
		Item          string  `json:"item"`
		Amount        string  `json:"amount"`
		Have          bool    `json:"have"`
		EstimatedCost float64 `json:"estimatedCost"`
		Urgency       string  `json:"urgency"`
	} `json:"ingredients"`
	Substitutions []struct {
		Original     string   `json:"original"`
		Alternatives []string `json:"alternatives"`
		Note         string   `json:"note"`
	} `json:"substitutions"`
	Instructions []struct {
		Step   int    `json:"step"`
		Action string `json:"action"`
		Text   string `json:"text"`
		Time   string `json:"time"`
		Tip    string `json:"tip"`
		Why    string `json:"why"`
	} `json:"instructions"`
	Timing struct {
		Prep  float64 `json:"prep"`
		Cook  float64 `json:"cook"`
		Total float64 `json:"total"`
	} `json:"timing"`
	Difficulty       string `json:"difficulty"`
	DifficultyReason string `json:"difficultyReason"`
	Nutrition        struct {
		Servings   int `json:"servings"`
		PerServing struct {
			Calories float64 `json:"calories"`
			Protein  string  `json:"protein"`
			Carbs    string  `json:"carbs"`
			Fat      string  `json:"fat"`
			Fiber    string  `json:"fiber"`
			Sodium   string  `json:"sodium"`
		} `json:"perServing"`
		Highlights []string `json:"highlights"`
	} `json:"nutrition"`
	Cost struct {
		Total      float64 `json:"total"`
		PerServing float64 `json:"perServing"`
		Breakdown  struct {
			Have      float64 `json:"have"`
			NeedToBuy float64 `json:"needToBuy"`
		} `json:"breakdown"`
		Comparison string `json:"comparison"`
	} `json:"cost"`
	Tags                []string `json:"tags"`
	Storage             string   `json:"storage"`
	Tips                []string `json:"tips"`
	Variations          []string `json:"variations"`
	AIOptimizationLogic string   `json:"aiOptimizationLogic"`
}

// assembleRecipe turns a raw model payload into a renderable recipe. Every
// missing field gets a default so consumers never null-check; no correctness
// validation happens here.
func assembleRecipe(r rawRecipe, tech *domain.AIOptimizationData) domain.Recipe {
	title := r.Name
	if title == "" {
		title = "Untitled Recipe"
	}
	description := r.Description
	if description == "" {
		description = "No description available"
	}
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "Medium"
	}
	servings := r.Nutrition.Servings
	if servings == 0 {
		servings = 4
	}

	ingredients := make([]domain.Ingredient, 0, len(r.Ingredients))
	for _, i := range r.Ingredients {
		name := i.Item
		if name == "" {
			name = "Unknown Ingredient"
		}
		ingredients = append(ingredients, domain.Ingredient{
			Name:          name,
			Amount:        i.Amount,
			IsInInventory: i.Have,
			EstimatedCost: i.EstimatedCost,
			Urgency:       i.Urgency,
		})
	}

	substitutions := make([]domain.Substitution, 0, len(r.Substitutions))
	for _, sub := range r.Substitutions {
		substitutions = append(substitutions, domain.Substitution{
			Original:     sub.Original,
			Alternatives: orEmpty(sub.Alternatives),
			Note:         sub.Note,
		})
	}

	instructions := make([]domain.RecipeInstruction, 0, len(r.Instructions))
	for _, step := range r.Instructions {
		text := step.Action
		if text == "" {
			text = step.Text
		}
		if text == "" {
			text = "Prepare ingredient"
		}
		instructions = append(instructions, domain.RecipeInstruction{
			Step:     step.Step,
			Text:     text,
			Duration: step.Time,
			Tip:      step.Tip,
			Why:      step.Why,
		})
	}

	macros := domain.MacroNutrients{
		Calories: int(r.Nutrition.PerServing.Calories),
		Protein:  orMacro(r.Nutrition.PerServing.Protein),
		Carbs:    orMacro(r.Nutrition.PerServing.Carbs),
		Fats:     orMacro(r.Nutrition.PerServing.Fat),
	}

	return domain.Recipe{
		ID:                uuid.New().String(),
		Title:             title,
		Description:       description,
		MealType:          r.Type,
		Ingredients:       ingredients,
		CriticalItemsUsed: orEmpty(r.CriticalItemsUsed),
		Substitutions:     substitutions,
		Instructions:      instructions,
		PrepTime:          formatMinutes(r.Timing.Prep),
		CookTime:          formatMinutes(r.Timing.Cook),
		TotalTime:         formatMinutes(r.Timing.Total),
		Servings:          servings,
		Cost: domain.CostBreakdown{
			Total:      r.Cost.Total,
			PerServing: r.Cost.PerServing,
			Breakdown: domain.CostSplit{
				Have:      r.Cost.Breakdown.Have,
				NeedToBuy: r.Cost.Breakdown.NeedToBuy,
			},
			Comparison: r.Cost.Comparison,
		},
		CostPerServing:   r.Cost.PerServing,
		TotalCost:        r.Cost.Total,
		Savings:          r.Cost.Breakdown.Have,
		SavingsMessage:   r.SavingsMessage,
		Difficulty:       difficulty,
		DifficultyReason: r.DifficultyReason,
		Macros:           macros,
		Nutrition: domain.DetailedNutrition{
			Servings: servings,
			PerServing: domain.PerServingNutrition{
				Calories: int(r.Nutrition.PerServing.Calories),
				Protein:  orMacro(r.Nutrition.PerServing.Protein),
				Carbs:    orMacro(r.Nutrition.PerServing.Carbs),
				Fat:      orMacro(r.Nutrition.PerServing.Fat),
				Fiber:    r.Nutrition.PerServing.Fiber,
				Sodium:   r.Nutrition.PerServing.Sodium,
			},
			Highlights: orEmpty(r.Nutrition.Highlights),
		},
		Tags:          orEmpty(r.Tags),
		Storage:       r.Storage,
		Tips:          orEmpty(r.Tips),
		Variations:    orEmpty(r.Variations),
		TechnicalData: tech,
	}
}

func formatMinutes(minutes float64) string {
	if minutes < 0 {
		minutes = 0
	}
	return strconv.Itoa(int(minutes)) + "m"
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func orMacro(v string) string {
	if v == "" {
		return "0g"
	}
	return v
}
