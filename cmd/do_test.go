package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rwidyarsa/awan/internal/intent"
	"github.com/rwidyarsa/awan/internal/router"
	"github.com/rwidyarsa/awan/internal/safety"
)

func testDecision() router.Decision {
	return router.Decision{
		TargetHandler: router.HandlerProject,
		OperationType: "delete",
		Classification: intent.ClassificationResult{
			Intent:         intent.IntentDeleteProject,
			Confidence:     1.0,
			MatchedPattern: "delete",
		},
		Params: intent.Params{
			ProjectIDs:  []string{"proj1", "proj2"},
			IsBulk:      true,
			Environment: "prod",
		},
		Risk: safety.Assessment{
			Level:                safety.RiskHigh,
			Factors:              []string{"Destructive operation detected", "Production environment"},
			RequiresConfirmation: true,
		},
		Reasoning: `intent delete_project (confidence 1.00) via pattern "delete"; domain "project" matched keyword "project"`,
	}
}

func TestRenderDecisionText(t *testing.T) {
	got, err := renderDecision(testDecision(), "text")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}

	for _, want := range []string{
		"Decision: Project / Delete (high risk)",
		"Intent: delete_project (confidence 1.00)",
		"Handler: project, operation: delete",
		"Projects: proj1, proj2",
		"Environment: prod",
		"Risk: high (Destructive operation detected; Production environment)",
		"Confirmation required before execution.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderDecision(text) missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderDecisionTextIsStable(t *testing.T) {
	first, err := renderDecision(testDecision(), "text")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}
	second, err := renderDecision(testDecision(), "text")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}
	if first != second {
		t.Errorf("renderDecision(text) not stable:\n%s\nvs\n%s", first, second)
	}
}

func TestRenderDecisionJSON(t *testing.T) {
	got, err := renderDecision(testDecision(), "json")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(got), &decoded); err != nil {
		t.Fatalf("renderDecision(json) produced invalid JSON: %v", err)
	}
	if decoded["target_handler"] != "project" {
		t.Errorf("target_handler = %v, want project", decoded["target_handler"])
	}
	risk, ok := decoded["risk"].(map[string]any)
	if !ok {
		t.Fatalf("risk field = %T, want object", decoded["risk"])
	}
	if risk["risk_level"] != "high" {
		t.Errorf("risk_level = %v, want high", risk["risk_level"])
	}
}

func TestRenderDecisionYAML(t *testing.T) {
	got, err := renderDecision(testDecision(), "yaml")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}
	for _, want := range []string{"target_handler: project", "risk_level: high", "requires_confirmation: true"} {
		if !strings.Contains(got, want) {
			t.Errorf("renderDecision(yaml) missing %q in:\n%s", want, got)
		}
	}
}

func TestRenderDecisionUnknownFormat(t *testing.T) {
	if _, err := renderDecision(testDecision(), "xml"); err == nil {
		t.Error("renderDecision(xml) error = nil, want non-nil")
	}
}

func TestRenderDecisionUnrecognized(t *testing.T) {
	d := router.Decision{
		TargetHandler: router.HandlerRoot,
		OperationType: "general",
		Reasoning:     "no intent recognized; no domain keyword matched, defaulting to root handler",
	}

	got, err := renderDecision(d, "text")
	if err != nil {
		t.Fatalf("renderDecision() error = %v", err)
	}
	if !strings.Contains(got, "Intent: unrecognized") {
		t.Errorf("renderDecision(text) missing unrecognized marker:\n%s", got)
	}
}
