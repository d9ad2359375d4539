package inventory_test

import (
	"testing"

	"fridgesmart/domain"
	"fridgesmart/pkg/inventory"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFreshnessDaysFallback(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"negative days", -3, domain.StatusExpiring},
		{"zero days", 0, domain.StatusExpiring},
		{"two days", 2, domain.StatusExpiring},
		{"three days", 3, domain.StatusUseSoon},
		{"five days", 5, domain.StatusUseSoon},
		{"six days", 6, domain.StatusGood},
		{"fourteen days", 14, domain.StatusGood},
		{"fifteen days", 15, domain.StatusFresh},
		{"thirty days", 30, domain.StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.ClassifyFreshness("", tt.days))
		})
	}
}

func TestClassifyFreshnessLabelOverridesDays(t *testing.T) {
	// A recognized label wins even when the day count says otherwise.
	assert.Equal(t, domain.StatusExpiring, inventory.ClassifyFreshness("Critical", 100))
	assert.Equal(t, domain.StatusUseSoon, inventory.ClassifyFreshness("use soon", 100))
	assert.Equal(t, domain.StatusGood, inventory.ClassifyFreshness("Good condition", 0))
	assert.Equal(t, domain.StatusFresh, inventory.ClassifyFreshness("Very Fresh", 0))
}

func TestClassifyFreshnessUnknownLabelFallsThrough(t *testing.T) {
	assert.Equal(t, domain.StatusExpiring, inventory.ClassifyFreshness("mystery", 1))
	assert.Equal(t, domain.StatusFresh, inventory.ClassifyFreshness("mystery", 20))
}

func TestClassifyManual(t *testing.T) {
	tests := []struct {
		name string
		days int
		want string
	}{
		{"negative days", -1, domain.StatusExpiring},
		{"zero days", 0, domain.StatusExpiring},
		{"three days", 3, domain.StatusExpiring},
		{"four days", 4, domain.StatusUseSoon},
		{"seven days", 7, domain.StatusUseSoon},
		{"eight days", 8, domain.StatusGood},
		{"a year", 365, domain.StatusGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.ClassifyManual(tt.days))
		})
	}
}

func TestClassifyManualNeverReturnsFresh(t *testing.T) {
	for days := -5; days <= 400; days++ {
		assert.NotEqual(t, domain.StatusFresh, inventory.ClassifyManual(days))
	}
}
