// Package router turns raw operator commands into routing decisions:
// classified intent, extracted parameters, risk assessment, and the target
// handler that should execute the request.
package router

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rwidyarsa/awan/internal/intent"
	"github.com/rwidyarsa/awan/internal/safety"
)

// Fixed handler names the executor dispatch table is keyed by.
const (
	HandlerRoot       = "root"
	HandlerProject    = "project"
	HandlerCompute    = "compute"
	HandlerNetworking = "networking"
	HandlerStorage    = "storage"
	HandlerIAM        = "iam"
	HandlerMonitoring = "monitoring"
)

// domainRule maps keywords in the normalized text to a target handler.
// Rules are tried in order; the first match wins.
type domainRule struct {
	handler  string
	keywords []string
}

var domainRules = []domainRule{
	{HandlerProject, []string{"project", "projects", "projek", "proyek"}},
	{HandlerCompute, []string{"compute", "vm", "vms", "instance", "instances", "machine", "server"}},
	{HandlerNetworking, []string{"network", "networks", "vpc", "firewall", "subnet", "dns"}},
	{HandlerStorage, []string{"storage", "bucket", "buckets", "sql", "database", "gcs"}},
	{HandlerIAM, []string{"iam", "service account", "service accounts", "role", "roles", "permission"}},
	{HandlerMonitoring, []string{"monitor", "monitoring", "log", "logs", "alert", "alerts", "metric", "metrics"}},
}

// Decision is the single output handed to the executor. Immutable once
// built; the router never blocks execution itself, it only reports whether
// confirmation is required.
type Decision struct {
	TargetHandler  string                      `json:"target_handler" yaml:"target_handler"`
	OperationType  string                      `json:"operation_type" yaml:"operation_type"`
	Classification intent.ClassificationResult `json:"classification" yaml:"classification"`
	Params         intent.Params               `json:"parameters" yaml:"parameters"`
	Risk           safety.Assessment           `json:"risk" yaml:"risk"`
	Reasoning      string                      `json:"reasoning" yaml:"reasoning"`
}

// Router wires the classifier, extractor, and risk annotator together.
// Stateless per call; safe for concurrent use.
type Router struct {
	classifier *intent.Classifier
	extractor  *intent.Extractor
}

// New builds a router over the shipped catalog. The catalog self-check runs
// here, so a broken static table fails at startup instead of per request.
func New() (*Router, error) {
	catalog, err := intent.NewCatalog()
	if err != nil {
		return nil, fmt.Errorf("building intent catalog: %w", err)
	}
	return &Router{
		classifier: intent.NewClassifier(catalog),
		extractor:  intent.NewExtractor(),
	}, nil
}

// Route runs the full pipeline over one command. It never fails: bad or
// adversarial input degrades to a root/general decision with zero
// confidence so the caller can ask the operator for clarification.
func (r *Router) Route(text string) Decision {
	res := r.classifier.Classify(text)
	params := r.extractor.Extract(text, res.Intent)
	res = r.extractor.Boost(res, params)
	risk := safety.Assess(text, params)

	handler, keyword := matchDomain(strings.ToLower(text))
	op := operationFor(res.Intent)
	if handler == "" {
		handler = HandlerRoot
		if res.Intent == intent.IntentNone {
			op = "general"
		}
	}

	return Decision{
		TargetHandler:  handler,
		OperationType:  op,
		Classification: res,
		Params:         params,
		Risk:           risk,
		Reasoning:      reasoning(res, handler, keyword),
	}
}

func matchDomain(lower string) (handler, keyword string) {
	for _, rule := range domainRules {
		for _, k := range rule.keywords {
			if strings.Contains(lower, k) {
				return rule.handler, k
			}
		}
	}
	return "", ""
}

func operationFor(i intent.Intent) string {
	switch i {
	case intent.IntentListProjects, intent.IntentComputeList, intent.IntentStorageListBuckets,
		intent.IntentNetworkListVPCs, intent.IntentIAMListAccounts, intent.IntentMonitoringAlerts:
		return "list"
	case intent.IntentCreateProject, intent.IntentComputeCreate, intent.IntentStorageCreateBucket:
		return "create"
	case intent.IntentDeleteProject, intent.IntentComputeDelete:
		return "delete"
	default:
		return "general"
	}
}

// reasoning builds a deterministic explanation from the rules that matched,
// so identical input always yields an identical decision.
func reasoning(res intent.ClassificationResult, handler, keyword string) string {
	var b strings.Builder
	if res.Intent == intent.IntentNone {
		b.WriteString("no intent recognized")
	} else {
		fmt.Fprintf(&b, "intent %s (confidence %.2f) via pattern %q", res.Intent, res.Confidence, res.MatchedPattern)
	}
	if keyword == "" {
		b.WriteString("; no domain keyword matched, defaulting to root handler")
	} else {
		fmt.Fprintf(&b, "; domain %q matched keyword %q", handler, keyword)
	}
	return b.String()
}

// Describe returns a short human-readable summary of the decision for
// prompts and dry-run output.
func (d Decision) Describe() string {
	title := cases.Title(language.English)
	return fmt.Sprintf("%s / %s (%s risk)",
		title.String(d.TargetHandler),
		title.String(strings.ReplaceAll(d.OperationType, "_", " ")),
		d.Risk.Level)
}
