package intent

import "strings"

// ConfidenceGate is the score below which a classification is considered
// inconclusive. The classifier uses it to decide when to fall back to the
// variation matcher, and callers use it to decide when to ask the operator
// for clarification.
const ConfidenceGate = 0.6

// Classifier runs catalog patterns against normalized input and selects the
// best-scoring intent. Safe for concurrent use: it only reads the immutable
// catalog.
type Classifier struct {
	catalog *Catalog
	matcher *VariationMatcher
}

func NewClassifier(c *Catalog) *Classifier {
	return &Classifier{
		catalog: c,
		matcher: NewVariationMatcher(c),
	}
}

// Classify lowercases and trims the input, tests every (intent, locale,
// pattern) triple in catalog order, and scores each match by edit similarity
// between the syntax-stripped pattern and the text. All locales are tried
// unconditionally, so mixed-locale input works without language detection.
//
// Ties resolve to the first intent reaching the maximum score in catalog
// order; the comparison is strictly-greater, which makes the tie-break
// deterministic. When the best pattern score stays below ConfidenceGate the
// variation matcher runs token by token and its score is used if it beats
// the pattern pass.
func (cl *Classifier) Classify(text string) ClassificationResult {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return ClassificationResult{}
	}

	best := ClassificationResult{}
	for _, entry := range cl.catalog.entries {
		for i, re := range entry.patterns {
			if !re.MatchString(normalized) {
				continue
			}
			score := cl.matcher.Score(entry.stripped[i], normalized)
			if score > best.Confidence {
				best = ClassificationResult{
					Intent:         entry.intent,
					Confidence:     score,
					MatchedPattern: entry.raw[i],
				}
			}
		}
	}

	if best.Confidence < ConfidenceGate {
		for _, token := range strings.Fields(normalized) {
			canonical, score := cl.matcher.BestVariationMatch(token)
			if canonical == "" {
				continue
			}
			hint, ok := cl.matcher.IntentHint(canonical)
			if !ok {
				continue
			}
			if score > best.Confidence {
				best = ClassificationResult{
					Intent:         hint,
					Confidence:     score,
					MatchedPattern: token,
				}
			}
		}
	}

	if best.Intent == IntentNone {
		return ClassificationResult{}
	}
	return best
}
