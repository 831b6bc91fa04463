// Package intent implements deterministic intent classification for
// free-text operator commands. Classification is a pure lexical pass over
// static pattern catalogs; no external NLP services are involved.
package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternEntry binds one locale-tagged ordered pattern list to an intent.
type PatternEntry struct {
	Intent   Intent
	Locale   Locale
	Patterns []string
}

// defaultPatterns is the shipped pattern catalog. Order matters: when two
// intents tie on score, the first entry in this table wins, so the ordering
// here is part of the observable contract.
var defaultPatterns = []PatternEntry{
	{IntentListProjects, LocaleEnglish, []string{
		"list.*projects?",
		"show.*projects?",
		"what projects",
		"how many projects",
		"projects? do i have",
		"projects? do we have",
	}},
	{IntentListProjects, LocaleIndonesian, []string{
		"tampilkan.*projects?",
		"lihat.*projects?",
		"daftar.*projects?",
		"berapa.*projects?",
		"projects? yang ada",
	}},
	{IntentCreateProject, LocaleEnglish, []string{
		"create.*projects?",
		"make.*projects?",
		"new project",
		"set ?up.*project",
	}},
	{IntentCreateProject, LocaleIndonesian, []string{
		"buat.*projects?",
		"bikin.*projects?",
		"tambah.*projects?",
		"buatkan.*projects?",
	}},
	{IntentDeleteProject, LocaleEnglish, []string{
		"delete.*projects?",
		"remove.*projects?",
		"destroy.*projects?",
		"tear down.*projects?",
	}},
	{IntentDeleteProject, LocaleIndonesian, []string{
		"hapus.*projects?",
		"buang.*projects?",
		"hapuskan.*projects?",
	}},
	{IntentComputeList, LocaleEnglish, []string{
		"list.*instances?",
		"list.*vms?",
		"show.*instances?",
		"show.*vms?",
		"running instances?",
	}},
	{IntentComputeList, LocaleIndonesian, []string{
		"tampilkan.*instances?",
		"daftar.*instances?",
		"lihat.*instances?",
		"tampilkan.*vms?",
	}},
	{IntentComputeCreate, LocaleEnglish, []string{
		"create.*instances?",
		"launch.*instances?",
		"create.*vms?",
		"new instance",
		"new vm",
	}},
	{IntentComputeCreate, LocaleIndonesian, []string{
		"buat.*instances?",
		"bikin.*instances?",
		"buat.*vms?",
	}},
	{IntentComputeDelete, LocaleEnglish, []string{
		"delete.*instances?",
		"terminate.*instances?",
		"stop.*instances?",
		"delete.*vms?",
	}},
	{IntentComputeDelete, LocaleIndonesian, []string{
		"hapus.*instances?",
		"matikan.*instances?",
	}},
	{IntentStorageListBuckets, LocaleEnglish, []string{
		"list.*buckets?",
		"show.*buckets?",
	}},
	{IntentStorageListBuckets, LocaleIndonesian, []string{
		"tampilkan.*buckets?",
		"daftar.*buckets?",
		"lihat.*buckets?",
	}},
	{IntentStorageCreateBucket, LocaleEnglish, []string{
		"create.*buckets?",
		"make.*buckets?",
		"new bucket",
	}},
	{IntentStorageCreateBucket, LocaleIndonesian, []string{
		"buat.*buckets?",
		"bikin.*buckets?",
	}},
	{IntentNetworkListVPCs, LocaleEnglish, []string{
		"list.*vpcs?",
		"list.*networks?",
		"show.*vpcs?",
		"show.*networks?",
		"show.*firewalls?",
	}},
	{IntentNetworkListVPCs, LocaleIndonesian, []string{
		"tampilkan.*vpcs?",
		"daftar.*vpcs?",
		"tampilkan.*networks?",
		"daftar.*networks?",
	}},
	{IntentIAMListAccounts, LocaleEnglish, []string{
		"list.*service accounts?",
		"show.*service accounts?",
		"list.*iam",
	}},
	{IntentIAMListAccounts, LocaleIndonesian, []string{
		"tampilkan.*service accounts?",
		"daftar.*service accounts?",
	}},
	{IntentMonitoringAlerts, LocaleEnglish, []string{
		"list.*alerts?",
		"show.*alerts?",
		"alert policies",
	}},
	{IntentMonitoringAlerts, LocaleIndonesian, []string{
		"tampilkan.*alerts?",
		"daftar.*alerts?",
	}},
}

// defaultVariations lists known misspellings and alternate forms per
// canonical action token. Consulted only when pattern matching is
// inconclusive; the canonical token itself is included so an exact hit
// scores 1.0.
var defaultVariations = map[string][]string{
	"create": {"create", "crate", "creat", "craete", "creete", "kreate", "buat", "buatkan", "bikin", "bkin", "bwat"},
	"delete": {"delete", "delet", "dlete", "deleet", "dellete", "hapus", "hpus", "apus", "buang"},
	"list":   {"list", "lst", "lsit", "liste", "tampilkan", "tampilin", "lihat", "daftar", "dafter"},
}

// defaultVariationHints maps canonical tokens to the intent a fuzzy hit
// signals. Every value here must exist in defaultPatterns, which Validate
// enforces at startup.
var defaultVariationHints = map[string]Intent{
	"create": IntentCreateProject,
	"delete": IntentDeleteProject,
	"list":   IntentListProjects,
}

type compiledEntry struct {
	intent   Intent
	locale   Locale
	patterns []*regexp.Regexp
	raw      []string
	stripped []string
}

// Catalog holds the compiled pattern table and variation table. Built once
// at process start and read-only thereafter, so concurrent classifiers can
// share one instance without locking.
type Catalog struct {
	entries    []compiledEntry
	intents    []Intent
	variations map[string][]string
	hints      map[string]Intent
}

// NewCatalog compiles the shipped pattern catalog. A compile failure means
// the static tables are broken and should abort startup.
func NewCatalog() (*Catalog, error) {
	return buildCatalog(defaultPatterns, cloneVariations(defaultVariations), cloneHints(defaultVariationHints))
}

func buildCatalog(entries []PatternEntry, variations map[string][]string, hints map[string]Intent) (*Catalog, error) {
	c := &Catalog{
		variations: variations,
		hints:      hints,
	}

	seen := make(map[Intent]bool)
	for _, e := range entries {
		ce := compiledEntry{intent: e.Intent, locale: e.Locale}
		for _, p := range e.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("catalog pattern %q for intent %s: %w", p, e.Intent, err)
			}
			ce.patterns = append(ce.patterns, re)
			ce.raw = append(ce.raw, p)
			ce.stripped = append(ce.stripped, stripPatternSyntax(p))
		}
		c.entries = append(c.entries, ce)
		if !seen[e.Intent] {
			seen[e.Intent] = true
			c.intents = append(c.intents, e.Intent)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate is the startup self-check: every variation hint must reference a
// cataloged intent and every intent must carry at least two locales. A
// failure here is a catalog/code mismatch, not a per-request condition.
func (c *Catalog) Validate() error {
	known := make(map[Intent]bool, len(c.intents))
	for _, i := range c.intents {
		known[i] = true
	}

	for canonical, target := range c.hints {
		if !known[target] {
			return fmt.Errorf("variation hint %q maps to unknown intent %s", canonical, target)
		}
		if len(c.variations[canonical]) == 0 {
			return fmt.Errorf("variation hint %q has no variation list", canonical)
		}
	}

	locales := make(map[Intent]map[Locale]bool)
	for _, e := range c.entries {
		if locales[e.intent] == nil {
			locales[e.intent] = make(map[Locale]bool)
		}
		locales[e.intent][e.locale] = true
	}
	for intent, byLocale := range locales {
		if len(byLocale) < 2 {
			return fmt.Errorf("intent %s covers %d locale(s), need at least 2", intent, len(byLocale))
		}
	}

	return nil
}

// Intents returns every cataloged intent in stable catalog order.
func (c *Catalog) Intents() []Intent {
	out := make([]Intent, len(c.intents))
	copy(out, c.intents)
	return out
}

// Lookup returns the locale-tagged pattern lists for one intent, in catalog
// order. The result is a copy; the catalog itself is never mutated.
func (c *Catalog) Lookup(i Intent) []PatternEntry {
	var out []PatternEntry
	for _, e := range c.entries {
		if e.intent != i {
			continue
		}
		patterns := make([]string, len(e.raw))
		copy(patterns, e.raw)
		out = append(out, PatternEntry{Intent: e.intent, Locale: e.locale, Patterns: patterns})
	}
	return out
}

// stripPatternSyntax removes regex metacharacters so a pattern can be
// compared against plain text with an edit-similarity metric.
func stripPatternSyntax(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '.', '*', '+', '?', '(', ')', '[', ']', '|', '^', '$', '\\':
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func cloneVariations(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, values := range src {
		copied := make([]string, len(values))
		copy(copied, values)
		dst[k] = copied
	}
	return dst
}

func cloneHints(src map[string]Intent) map[string]Intent {
	dst := make(map[string]Intent, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
