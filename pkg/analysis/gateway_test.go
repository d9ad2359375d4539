package analysis_test

import (
	"testing"

	"fridgesmart/domain"
	"fridgesmart/pkg/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScannedItems(t *testing.T) {
	raw := `[
		{
			"name": "Strawberries",
			"brand": "Driscoll's",
			"quantity": "1 pint",
			"category": "Produce",
			"expirationDate": "2026-09-01",
			"daysUntilExpiry": 2,
			"freshness": "Use Soon",
			"freshnessReason": "Detected 15% browning on strawberry edges; recommending immediate use.",
			"visualCues": ["Edge browning", "Surface moisture"],
			"estimatedValue": 3.99,
			"confidence": 94,
			"ocrTextDetected": "Driscoll's Strawberries 16oz"
		}
	]`

	items, err := analysis.ParseScannedItems([]byte(raw), 900)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "Driscoll's Strawberries", item.Name)
	assert.Equal(t, "1 pint", item.Quantity)
	assert.Equal(t, 2, item.DaysUntilExpiration)
	assert.Equal(t, "2026-09-01", item.ExpirationDate)
	assert.Equal(t, domain.StatusUseSoon, item.Status)
	assert.Equal(t, 3.99, item.EstimatedValue)
	assert.Equal(t, float64(94), item.AIAnalysis.Confidence)
	assert.Equal(t, "Use Soon", item.AIAnalysis.VisualIndicators)
	assert.Equal(t, []string{"Edge browning", "Surface moisture"}, item.AIAnalysis.FreshnessCues)
	assert.Equal(t, float64(900), item.AIAnalysis.ProcessingTimeMs)
}

func TestParseScannedItemsCriticalLabelWins(t *testing.T) {
	raw := `[{"name": "Ham", "daysUntilExpiry": 30, "freshness": "Critical",
		"freshnessReason": "Packaging bloat.", "estimatedValue": 6.5, "confidence": 90}]`

	items, err := analysis.ParseScannedItems([]byte(raw), 100)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusExpiring, items[0].Status)
}

func TestParseScannedItemsMissingRequiredField(t *testing.T) {
	// confidence missing
	raw := `[{"name": "Milk", "daysUntilExpiry": 5, "estimatedValue": 2.99,
		"freshnessReason": "Sealed carton."}]`

	_, err := analysis.ParseScannedItems([]byte(raw), 100)
	assert.ErrorIs(t, err, domain.ErrAnalysisFailed)
}

func TestParseScannedItemsInvalidJSON(t *testing.T) {
	_, err := analysis.ParseScannedItems([]byte("not json"), 100)
	assert.Error(t, err)
}

func TestParseScannedItemsDefaults(t *testing.T) {
	raw := `[{"name": "Rice", "daysUntilExpiry": 120, "estimatedValue": 1.99,
		"freshnessReason": "Dry goods.", "confidence": 99}]`

	items, err := analysis.ParseScannedItems([]byte(raw), 100)
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	// No freshness label, so the day table applies; no expiration date, so
	// one is derived from the day count.
	assert.Equal(t, domain.StatusFresh, item.Status)
	assert.NotEmpty(t, item.ExpirationDate)
	assert.NotNil(t, item.AIAnalysis.FreshnessCues)
	assert.Empty(t, item.AIAnalysis.FreshnessCues)
}

func TestParseScannedItemsEmptyArray(t *testing.T) {
	items, err := analysis.ParseScannedItems([]byte("[]"), 100)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseScannedItemsSplitsProcessingTime(t *testing.T) {
	raw := `[
		{"name": "A", "daysUntilExpiry": 1, "estimatedValue": 1, "freshnessReason": "x", "confidence": 80},
		{"name": "B", "daysUntilExpiry": 1, "estimatedValue": 1, "freshnessReason": "x", "confidence": 80}
	]`

	items, err := analysis.ParseScannedItems([]byte(raw), 1000)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, float64(500), items[0].AIAnalysis.ProcessingTimeMs)
	assert.Equal(t, float64(500), items[1].AIAnalysis.ProcessingTimeMs)
}
