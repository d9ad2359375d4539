package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fridgesmart/domain"
	"fridgesmart/internal/utils"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

type (
	// TextGateway is the hosted-model boundary for text generation. The
	// returned token count comes from the response usage metadata.
	TextGateway interface {
		GenerateText(ctx context.Context, prompt string) (string, int, error)
	}

	geminiText struct {
		httpClient *http.Client
	}
)

func NewGeminiTextGateway() TextGateway {
	return &geminiText{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (g *geminiText) GenerateText(ctx context.Context, prompt string) (string, int, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", 0, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", 0, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	baseURL := utils.GetConfig("GEMINI_API_URL")
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	geminiURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", baseURL, geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		UsageMetadata struct {
			TotalTokenCount int `json:"totalTokenCount"`
		} `json:"usageMetadata"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", 0, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", 0, domain.ErrGeminiAPIFailed
	}

	return geminiResp.Candidates[0].Content.Parts[0].Text, geminiResp.UsageMetadata.TotalTokenCount, nil
}

// extractJSONArray pulls the first JSON array out of a model response that
// may be wrapped in prose or markdown fences. A lone object is wrapped into
// a one-element array.
func extractJSONArray(responseText string) (string, error) {
	responseText = strings.TrimSpace(responseText)

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		startIdx = strings.Index(responseText, "{")
		endIdx = strings.LastIndex(responseText, "}")
		if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
			return "", fmt.Errorf("invalid response format: %s", responseText)
		}
		return "[" + responseText[startIdx:endIdx+1] + "]", nil
	}
	return responseText[startIdx : endIdx+1], nil
}
