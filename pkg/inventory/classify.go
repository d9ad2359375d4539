package inventory

import (
	"strings"

	"fridgesmart/domain"
)

// ClassifyFreshness derives an urgency status for items coming out of image
// analysis. A recognized freshness label wins outright; otherwise the days
// remaining decide.
func ClassifyFreshness(label string, days int) string {
	normalized := strings.ToLower(label)
	switch {
	case strings.Contains(normalized, "critical"):
		return domain.StatusExpiring
	case strings.Contains(normalized, "use soon"):
		return domain.StatusUseSoon
	case strings.Contains(normalized, "good"):
		return domain.StatusGood
	case strings.Contains(normalized, "fresh"):
		return domain.StatusFresh
	}

	if days <= 2 {
		return domain.StatusExpiring
	}
	if days <= 5 {
		return domain.StatusUseSoon
	}
	if days <= 14 {
		return domain.StatusGood
	}
	return domain.StatusFresh
}

// ClassifyManual derives an urgency status for manually added or edited
// items, which never carry a freshness label. Its thresholds differ from
// ClassifyFreshness and it never returns Fresh; the two tables are kept
// separate on purpose.
func ClassifyManual(days int) string {
	if days <= 3 {
		return domain.StatusExpiring
	}
	if days <= 7 {
		return domain.StatusUseSoon
	}
	return domain.StatusGood
}
