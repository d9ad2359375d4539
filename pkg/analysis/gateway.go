package analysis

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"fridgesmart/domain"
	"fridgesmart/internal/logger"
	"fridgesmart/internal/utils"
	"fridgesmart/pkg/inventory"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const visionPrompt = `You are the FridgeSmart Pro Vision Engine.

Analyze this image with EXTREME technical precision to prevent food waste.

1. **IDENTIFICATION**: Detect every food item.
2. **OCR ANALYSIS**: Read every visible text (brands, weights, expiration dates).
3. **VISUAL FRESHNESS INSPECTOR**: Analyze specific visual cues (browning on fruit, wilting on veg, packaging bloat).
4. **VALUE ESTIMATION**: Estimate current US retail price.

For each item, return a JSON object.

CRITICAL: You must provide a "reasoning" string for your freshness assessment based on visual evidence.
Example: "Detected 15% browning on strawberry edges; recommending immediate use."
Example: "Milk carton is sealed (cap intact); typically good 7 days past sell-by if unopened."

Return a JSON array of objects with this structure:
{
  "name": string,
  "brand": string,
  "quantity": string,
  "category": string,
  "expirationDate": string (YYYY-MM-DD),
  "daysUntilExpiry": number,
  "freshness": "Fresh" | "Good" | "Use Soon" | "Critical",
  "freshnessReason": string,
  "visualCues": string[],
  "estimatedValue": number,
  "confidence": number (0-100),
  "ocrTextDetected": string
}`

type (
	// VisionGateway is the hosted-model boundary for image understanding.
	VisionGateway interface {
		AnalyzeImage(ctx context.Context, image []byte, mimeType string) ([]domain.ScannedItem, error)
	}

	geminiVision struct {
		once   sync.Once
		client *genai.Client
		err    error
	}
)

func NewGeminiVisionGateway() VisionGateway {
	return &geminiVision{}
}

func (g *geminiVision) getClient(ctx context.Context) (*genai.Client, error) {
	g.once.Do(func() {
		g.client, g.err = genai.NewClient(ctx, option.WithAPIKey(utils.GetConfig("GEMINI_API_KEY")))
	})
	return g.client, g.err
}

// AnalyzeImage performs a single round trip to the vision model. Every
// transport and parse failure collapses into ErrAnalysisFailed; there is no
// retry and no partial result.
func (g *geminiVision) AnalyzeImage(ctx context.Context, image []byte, mimeType string) ([]domain.ScannedItem, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		logger.Error("failed to initialize vision client", "error", err)
		return nil, domain.ErrAnalysisFailed
	}

	modelName := utils.GetConfig("GEMINI_VISION_MODEL")
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	start := time.Now()
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(imageFormat(mimeType), image),
		genai.Text(visionPrompt),
	)
	if err != nil {
		logger.Error("vision request failed", "error", err)
		return nil, domain.ErrAnalysisFailed
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrAnalysisFailed
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return nil, domain.ErrAnalysisFailed
	}

	items, err := ParseScannedItems([]byte(text), float64(time.Since(start).Milliseconds()))
	if err != nil {
		logger.Error("vision response rejected", "error", err)
		return nil, domain.ErrAnalysisFailed
	}
	return items, nil
}

func imageFormat(mimeType string) string {
	return strings.TrimPrefix(mimeType, "image/")
}

// rawVisionItem mirrors the model's response schema. Required fields are
// pointers so a missing key is distinguishable from a zero value.
type rawVisionItem struct {
	Name            *string  `json:"name"`
	Brand           string   `json:"brand"`
	Quantity        string   `json:"quantity"`
	Category        string   `json:"category"`
	ExpirationDate  string   `json:"expirationDate"`
	DaysUntilExpiry *int     `json:"daysUntilExpiry"`
	Freshness       string   `json:"freshness"`
	FreshnessReason *string  `json:"freshnessReason"`
	VisualCues      []string `json:"visualCues"`
	EstimatedValue  *float64 `json:"estimatedValue"`
	Confidence      *float64 `json:"confidence"`
	OCRTextDetected string   `json:"ocrTextDetected"`
}

// ParseScannedItems decodes the vision model's JSON payload into preview
// items. A payload missing any required field is malformed as a whole.
func ParseScannedItems(raw []byte, elapsedMs float64) ([]domain.ScannedItem, error) {
	var rawItems []rawVisionItem
	if err := json.Unmarshal(raw, &rawItems); err != nil {
		return nil, err
	}

	perItemMs := elapsedMs
	if len(rawItems) > 0 {
		perItemMs = elapsedMs / float64(len(rawItems))
	}

	items := make([]domain.ScannedItem, 0, len(rawItems))
	for _, r := range rawItems {
		if r.Name == nil || r.DaysUntilExpiry == nil || r.EstimatedValue == nil ||
			r.FreshnessReason == nil || r.Confidence == nil {
			return nil, domain.ErrAnalysisFailed
		}

		name := *r.Name
		if r.Brand != "" {
			name = r.Brand + " " + name
		}

		days := *r.DaysUntilExpiry
		expirationDate := r.ExpirationDate
		if expirationDate == "" {
			expirationDate = time.Now().AddDate(0, 0, days).Format("2006-01-02")
		}

		cues := r.VisualCues
		if cues == nil {
			cues = []string{}
		}

		items = append(items, domain.ScannedItem{
			Name:                name,
			Quantity:            r.Quantity,
			Category:            r.Category,
			DaysUntilExpiration: days,
			ExpirationDate:      expirationDate,
			Status:              inventory.ClassifyFreshness(r.Freshness, days),
			EstimatedValue:      *r.EstimatedValue,
			AIAnalysis: domain.AIAnalysis{
				Confidence:       *r.Confidence,
				Reasoning:        *r.FreshnessReason,
				FreshnessCues:    cues,
				VisualIndicators: r.Freshness,
				OCRText:          r.OCRTextDetected,
				ProcessingTimeMs: perItemMs,
			},
		})
	}
	return items, nil
}
