package intent

import (
	"reflect"
	"testing"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return NewClassifier(c)
}

func TestClassifyCanonicalPhrases(t *testing.T) {
	cl := newTestClassifier(t)

	tests := []struct {
		text string
		want Intent
	}{
		{"list all projects", IntentListProjects},
		{"tampilkan semua projects", IntentListProjects},
		{"berapa projects yang ada", IntentListProjects},
		{"create project demo", IntentCreateProject},
		{"buat project baru", IntentCreateProject},
		{"delete project demo", IntentDeleteProject},
		{"hapus project demo", IntentDeleteProject},
		{"list instances", IntentComputeList},
		{"tampilkan instances", IntentComputeList},
		{"create instance web-1", IntentComputeCreate},
		{"buat instance web", IntentComputeCreate},
		{"delete instance web-1", IntentComputeDelete},
		{"matikan instance web", IntentComputeDelete},
		{"list buckets", IntentStorageListBuckets},
		{"daftar buckets", IntentStorageListBuckets},
		{"create bucket logs", IntentStorageCreateBucket},
		{"buat bucket logs", IntentStorageCreateBucket},
		{"list vpcs", IntentNetworkListVPCs},
		{"tampilkan vpcs", IntentNetworkListVPCs},
		{"list service accounts", IntentIAMListAccounts},
		{"daftar service accounts", IntentIAMListAccounts},
		{"list alerts", IntentMonitoringAlerts},
		{"tampilkan alerts", IntentMonitoringAlerts},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := cl.Classify(tt.text)
			if got.Intent != tt.want {
				t.Fatalf("Classify(%q).Intent = %s, want %s", tt.text, got.Intent, tt.want)
			}
			if got.Confidence < ConfidenceGate {
				t.Errorf("Classify(%q).Confidence = %v, want >= %v", tt.text, got.Confidence, ConfidenceGate)
			}
			if got.MatchedPattern == "" {
				t.Errorf("Classify(%q).MatchedPattern is empty", tt.text)
			}
		})
	}
}

func TestClassifyTypoTolerance(t *testing.T) {
	cl := newTestClassifier(t)

	tests := []struct {
		text string
		want Intent
	}{
		{"crate project test-1", IntentCreateProject},
		{"creat project test-1", IntentCreateProject},
		{"bikin project test-1", IntentCreateProject},
		{"delet project test-1", IntentDeleteProject},
		{"hpus project test-1", IntentDeleteProject},
		{"lst projects", IntentListProjects},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := cl.Classify(tt.text)
			if got.Intent != tt.want {
				t.Fatalf("Classify(%q).Intent = %s, want %s", tt.text, got.Intent, tt.want)
			}
			if got.Confidence < ConfidenceGate {
				t.Errorf("Classify(%q).Confidence = %v, want >= %v", tt.text, got.Confidence, ConfidenceGate)
			}
		})
	}
}

func TestClassifyUnrecognizedInput(t *testing.T) {
	cl := newTestClassifier(t)

	tests := []string{
		"",
		"   ",
		"what is the weather today",
		"sing me a song",
		"9472 88 001",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			got := cl.Classify(text)
			if got.Intent != IntentNone {
				t.Errorf("Classify(%q).Intent = %s, want none", text, got.Intent)
			}
			if got.Confidence != 0 {
				t.Errorf("Classify(%q).Confidence = %v, want 0", text, got.Confidence)
			}
			if got.MatchedPattern != "" {
				t.Errorf("Classify(%q).MatchedPattern = %q, want empty", text, got.MatchedPattern)
			}
		})
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	cl := newTestClassifier(t)

	lower := cl.Classify("list all projects")
	upper := cl.Classify("LIST ALL Projects")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("Classify() differs by case: %+v vs %+v", lower, upper)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	cl := newTestClassifier(t)

	inputs := []string{
		"list all projects",
		"hapus semua projects di production",
		"crate project test-1",
		"what is the weather today",
	}

	for _, text := range inputs {
		first := cl.Classify(text)
		for i := 0; i < 5; i++ {
			if got := cl.Classify(text); !reflect.DeepEqual(got, first) {
				t.Fatalf("Classify(%q) call %d = %+v, want %+v", text, i+2, got, first)
			}
		}
	}
}

func TestClassifyMixedLocale(t *testing.T) {
	cl := newTestClassifier(t)

	got := cl.Classify("delete project proyek-satu di production")
	if got.Intent != IntentDeleteProject {
		t.Fatalf("Classify() intent = %s, want %s", got.Intent, IntentDeleteProject)
	}
	if got.Confidence < ConfidenceGate {
		t.Errorf("Classify() confidence = %v, want >= %v", got.Confidence, ConfidenceGate)
	}
}
