// Package safety derives a coarse risk assessment from command text and
// extracted parameters, used to decide which operations need operator
// confirmation before execution.
package safety

import (
	"strings"

	"github.com/rwidyarsa/awan/internal/intent"
)

// RiskLevel is a coarse classification of how much caution an operation
// warrants before execution.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "low"
	}
}

// MarshalJSON and MarshalYAML render the level as its name rather than the
// iota value.
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

func (r RiskLevel) MarshalYAML() (any, error) {
	return r.String(), nil
}

// Assessment is derived deterministically from input text plus extracted
// parameters; nothing is persisted.
type Assessment struct {
	Level                RiskLevel `json:"risk_level" yaml:"risk_level"`
	Factors              []string  `json:"risk_factors,omitempty" yaml:"risk_factors,omitempty"`
	RequiresConfirmation bool      `json:"requires_confirmation" yaml:"requires_confirmation"`
}

// Verb and marker tables. The destructive list carries the Indonesian
// equivalents alongside the English verbs since commands arrive in either
// locale.
var (
	destructiveVerbs = []string{
		"delete", "remove", "destroy", "terminate", "stop", "shutdown",
		"drop", "truncate",
		"hapus", "hapuskan", "buang", "matikan",
	}
	productionMarkers = []string{"prod", "production", "live", "produksi"}
	bulkMarkers       = []string{"all", "entire", "complete", "full", "semua", "banyak", "multiple"}
	externalMarkers   = []string{"external", "public", "internet", "guest", "third-party"}
	endpointMarkers   = []string{"notification", "notify", "endpoint", "webhook", "email", "url"}
)

// Assess checks each risk rule independently and reports the maximum
// triggered level. Production markers escalate the result by one level
// rather than setting a floor. Destructive operations always require
// confirmation, even when the overall level stays low.
func Assess(text string, p intent.Params) Assessment {
	lower := strings.ToLower(text)

	destructive := containsAnyWord(lower, destructiveVerbs)
	production := containsAnyWord(lower, productionMarkers)
	bulk := containsAnyWord(lower, bulkMarkers) || p.IsBulk
	external := containsAnyWord(lower, externalMarkers) && containsAnyWord(lower, endpointMarkers)

	a := Assessment{Level: RiskLow}

	if destructive {
		a.Factors = append(a.Factors, "Destructive operation detected")
		if a.Level < RiskMedium {
			a.Level = RiskMedium
		}
	}
	if production {
		a.Factors = append(a.Factors, "Production environment")
	}
	if bulk {
		a.Factors = append(a.Factors, "Broad scope operation")
		if a.Level < RiskMedium {
			a.Level = RiskMedium
		}
	}
	if external {
		a.Factors = append(a.Factors, "External access operation")
		a.Level = RiskHigh
	}

	if production && a.Level < RiskHigh {
		a.Level++
	}

	a.RequiresConfirmation = a.Level >= RiskMedium || destructive

	return a
}

func containsAnyWord(lower string, words []string) bool {
	for _, w := range words {
		if containsWord(lower, w) {
			return true
		}
	}
	return false
}

func containsWord(lower, word string) bool {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i == -1 {
			return false
		}
		i += idx
		before := i == 0 || !isWordChar(lower[i-1])
		afterIdx := i + len(word)
		after := afterIdx >= len(lower) || !isWordChar(lower[afterIdx])
		if before && after {
			return true
		}
		idx = i + len(word)
	}
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
