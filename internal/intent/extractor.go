package intent

import (
	"regexp"
	"strings"
)

// paramBoost is the floor confidence applied when extraction finds the
// required parameter for an intent. Parameter presence corroborates the
// intent guess, so the classifier score is raised to at least this value.
// Note the boost applies however weak the original pattern match was; that
// behavior is intentional (see DESIGN.md).
const paramBoost = 0.85

var (
	environmentRe = regexp.MustCompile(`(?i)\b(?:in|for|dari|di)\s+(dev|development|stg|staging|prod|production|all)\b`)
	displayNameRe = regexp.MustCompile(`(?i)\b(?:named|with\s+name|dengan(?:\s+nama)?)\s+(.+)$`)
	idTokenRe     = regexp.MustCompile(`(?i)^[a-z][a-z0-9_-]*$`)
)

// environmentAliases folds the accepted environment spellings into the
// canonical tags the executor understands.
var environmentAliases = map[string]string{
	"dev":         "dev",
	"development": "dev",
	"stg":         "staging",
	"staging":     "staging",
	"prod":        "prod",
	"production":  "prod",
	"all":         "all",
}

// bulkKeywords widen a delete to bulk scope even when only one id (or none)
// was spelled out.
var bulkKeywords = []string{"all", "semua", "multiple", "beberapa", "banyak"}

// fillerWords are trailing politeness tokens trimmed off extracted display
// names.
var fillerWords = map[string]bool{
	"ya":     true,
	"aja":    true,
	"dong":   true,
	"please": true,
	"thanks": true,
}

// idStopwords are tokens that end an id list: connective words from either
// locale that can directly follow "project" without being identifiers.
var idStopwords = map[string]bool{
	"named": true, "name": true, "nama": true, "dengan": true, "with": true,
	"in": true, "di": true, "for": true, "dari": true, "untuk": true,
	"all": true, "semua": true, "yang": true, "the": true,
	"ya": true, "aja": true, "dong": true, "please": true, "thanks": true,
}

// Extractor pulls structured fields out of raw command text. Extraction is
// intent-specific, never errors, and leaves absent fields at their zero
// value.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies the extraction rules for one intent against the raw text.
// The raw text is used (not the normalized form) so display names keep
// their original casing.
func (e *Extractor) Extract(text string, i Intent) Params {
	p := Params{}
	lower := strings.ToLower(text)

	switch i {
	case IntentListProjects:
		p.Environment = extractEnvironment(lower)
		if p.Environment == "" {
			p.Environment = "all"
		}

	case IntentCreateProject:
		ids := extractIDList(text, "project", "projects", "projek", "proyek")
		assignIDs(&p, ids)
		p.ProjectName = extractDisplayName(text)

	case IntentDeleteProject:
		ids := extractIDList(text, "project", "projects", "projek", "proyek")
		assignIDs(&p, ids)
		if !p.IsBulk && containsAnyWord(lower, bulkKeywords) {
			p.IsBulk = true
		}
		p.Environment = extractEnvironment(lower)

	case IntentComputeCreate, IntentComputeDelete:
		ids := extractIDList(text, "instance", "instances", "vm", "vms", "machine")
		if len(ids) > 0 {
			p.ResourceName = ids[0]
		}

	case IntentStorageCreateBucket:
		ids := extractIDList(text, "bucket", "buckets")
		if len(ids) > 0 {
			p.ResourceName = ids[0]
		}

	case IntentComputeList, IntentStorageListBuckets, IntentNetworkListVPCs,
		IntentIAMListAccounts, IntentMonitoringAlerts:
		p.Environment = extractEnvironment(lower)
	}

	return p
}

// Boost raises the classification confidence to at least paramBoost when
// the required parameter for the classified intent was found.
func (e *Extractor) Boost(res ClassificationResult, p Params) ClassificationResult {
	if !requiredParamFound(res.Intent, p) {
		return res
	}
	if res.Confidence < paramBoost {
		res.Confidence = paramBoost
	}
	return res
}

func requiredParamFound(i Intent, p Params) bool {
	switch i {
	case IntentListProjects:
		return p.Environment != ""
	case IntentCreateProject, IntentDeleteProject:
		return p.ProjectID != "" || len(p.ProjectIDs) > 0
	case IntentComputeCreate, IntentComputeDelete, IntentStorageCreateBucket:
		return p.ResourceName != ""
	default:
		return false
	}
}

func assignIDs(p *Params, ids []string) {
	switch len(ids) {
	case 0:
	case 1:
		p.ProjectID = ids[0]
	default:
		p.ProjectIDs = ids
		p.IsBulk = true
	}
}

func extractEnvironment(lower string) string {
	m := environmentRe.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	return environmentAliases[strings.ToLower(m[1])]
}

// extractIDList collects resource ids following the first occurrence of any
// keyword. A leading "baru"/"new" is skipped, trailing commas and the
// separators "dan"/"and" continue the list, and the first stopword or
// non-id token ends it.
func extractIDList(text string, keywords ...string) []string {
	words := strings.Fields(text)

	start := -1
	for idx, w := range words {
		lw := strings.ToLower(strings.Trim(w, ",.!?"))
		for _, k := range keywords {
			if lw == k {
				start = idx + 1
				break
			}
		}
		if start != -1 {
			break
		}
	}
	if start == -1 {
		return nil
	}

	var ids []string
	expectMore := true
	for i := start; i < len(words) && expectMore; i++ {
		tok := words[i]
		hadComma := strings.HasSuffix(tok, ",")
		tok = strings.Trim(tok, ",.!?")
		if tok == "" {
			continue
		}
		lw := strings.ToLower(tok)

		if lw == "baru" || lw == "new" {
			if len(ids) == 0 {
				continue
			}
			break
		}
		if lw == "dan" || lw == "and" {
			if len(ids) == 0 {
				break
			}
			continue
		}
		if idStopwords[lw] || !idTokenRe.MatchString(tok) {
			break
		}

		ids = append(ids, tok)
		// Without a trailing comma, only an explicit separator continues
		// the list.
		if !hadComma {
			next := ""
			if i+1 < len(words) {
				next = strings.ToLower(strings.Trim(words[i+1], ",.!?"))
			}
			if next != "dan" && next != "and" {
				expectMore = false
			}
		}
	}

	return ids
}

// extractDisplayName pulls the free-form name after named/with name/dengan
// (nama), preserving case, and trims trailing filler words. An empty
// capture after trimming is treated as absent, never an error.
func extractDisplayName(text string) string {
	m := displayNameRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	words := strings.Fields(strings.TrimRight(m[1], ".!?,"))
	for len(words) > 0 && fillerWords[strings.ToLower(words[len(words)-1])] {
		words = words[:len(words)-1]
	}
	return strings.Join(words, " ")
}

func containsAnyWord(lower string, keywords []string) bool {
	for _, k := range keywords {
		if containsWord(lower, k) {
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
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_' || b == '-'
}
