package intent

import (
	"reflect"
	"testing"
)

func TestExtractListProjects(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"no environment defaults to all", "list all projects", "all"},
		{"explicit production", "list projects in production", "prod"},
		{"short prod", "list projects in prod", "prod"},
		{"staging alias", "show projects in stg", "staging"},
		{"development alias", "list projects for development", "dev"},
		{"indonesian preposition", "tampilkan projects di production", "prod"},
		{"indonesian dari", "daftar projects dari staging", "staging"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := e.Extract(tt.text, IntentListProjects)
			if p.Environment != tt.want {
				t.Errorf("Extract(%q).Environment = %q, want %q", tt.text, p.Environment, tt.want)
			}
		})
	}
}

func TestExtractCreateProject(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		wantID   string
		wantName string
	}{
		{"id only", "create project demo-1", "demo-1", ""},
		{"id and indonesian name", "create project demo-1 dengan nama Proyek Demo ya", "demo-1", "Proyek Demo"},
		{"name only", "buat project baru dengan nama Aplikasi Toko", "", "Aplikasi Toko"},
		{"english named", "create project demo named Demo App please", "demo", "Demo App"},
		{"with name phrase", "create project billing with name Billing Stack", "billing", "Billing Stack"},
		{"no parameters", "create a new project", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := e.Extract(tt.text, IntentCreateProject)
			if p.ProjectID != tt.wantID {
				t.Errorf("Extract(%q).ProjectID = %q, want %q", tt.text, p.ProjectID, tt.wantID)
			}
			if p.ProjectName != tt.wantName {
				t.Errorf("Extract(%q).ProjectName = %q, want %q", tt.text, p.ProjectName, tt.wantName)
			}
		})
	}
}

func TestExtractDeleteProjectBulk(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		wantID   string
		wantIDs  []string
		wantBulk bool
		wantEnv  string
	}{
		{
			name:   "single id",
			text:   "delete project old-demo",
			wantID: "old-demo",
		},
		{
			name:     "comma separated list with dan",
			text:     "delete projects proj1, proj2 dan proj3",
			wantIDs:  []string{"proj1", "proj2", "proj3"},
			wantBulk: true,
		},
		{
			name:     "and separated pair",
			text:     "delete projects alpha and beta",
			wantIDs:  []string{"alpha", "beta"},
			wantBulk: true,
		},
		{
			name:     "bulk keyword without ids",
			text:     "delete all projects in production",
			wantBulk: true,
			wantEnv:  "prod",
		},
		{
			name:     "semua keyword",
			text:     "hapus semua projects di staging",
			wantBulk: true,
			wantEnv:  "staging",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := e.Extract(tt.text, IntentDeleteProject)
			if p.ProjectID != tt.wantID {
				t.Errorf("ProjectID = %q, want %q", p.ProjectID, tt.wantID)
			}
			if !reflect.DeepEqual(p.ProjectIDs, tt.wantIDs) {
				t.Errorf("ProjectIDs = %v, want %v", p.ProjectIDs, tt.wantIDs)
			}
			if p.IsBulk != tt.wantBulk {
				t.Errorf("IsBulk = %v, want %v", p.IsBulk, tt.wantBulk)
			}
			if p.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", p.Environment, tt.wantEnv)
			}
		})
	}
}

func TestExtractResourceNames(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name   string
		text   string
		intent Intent
		want   string
	}{
		{"compute create", "create instance web-1", IntentComputeCreate, "web-1"},
		{"compute delete", "delete instance web-1", IntentComputeDelete, "web-1"},
		{"vm keyword", "terminate vm batch-worker", IntentComputeDelete, "batch-worker"},
		{"bucket create", "create bucket backups", IntentStorageCreateBucket, "backups"},
		{"missing name", "create an instance", IntentComputeCreate, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := e.Extract(tt.text, tt.intent)
			if p.ResourceName != tt.want {
				t.Errorf("Extract(%q).ResourceName = %q, want %q", tt.text, p.ResourceName, tt.want)
			}
		})
	}
}

func TestExtractUnknownIntentIsEmpty(t *testing.T) {
	e := NewExtractor()

	p := e.Extract("delete project old-demo", IntentNone)
	if !p.Empty() {
		t.Errorf("Extract() with no intent = %+v, want empty params", p)
	}
}

func TestBoost(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name string
		res  ClassificationResult
		p    Params
		want float64
	}{
		{
			name: "weak match with required param is lifted",
			res:  ClassificationResult{Intent: IntentDeleteProject, Confidence: 0.45},
			p:    Params{ProjectID: "old-demo"},
			want: paramBoost,
		},
		{
			name: "strong match is untouched",
			res:  ClassificationResult{Intent: IntentDeleteProject, Confidence: 0.95},
			p:    Params{ProjectID: "old-demo"},
			want: 0.95,
		},
		{
			name: "missing required param is untouched",
			res:  ClassificationResult{Intent: IntentDeleteProject, Confidence: 0.45},
			p:    Params{},
			want: 0.45,
		},
		{
			name: "list projects boosts on environment",
			res:  ClassificationResult{Intent: IntentListProjects, Confidence: 0.58},
			p:    Params{Environment: "all"},
			want: paramBoost,
		},
		{
			name: "no intent never boosts",
			res:  ClassificationResult{},
			p:    Params{ProjectID: "old-demo"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Boost(tt.res, tt.p)
			if got.Confidence != tt.want {
				t.Errorf("Boost() confidence = %v, want %v", got.Confidence, tt.want)
			}
			if got.Intent != tt.res.Intent {
				t.Errorf("Boost() changed intent: %s, want %s", got.Intent, tt.res.Intent)
			}
		})
	}
}

func TestExtractIDList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "delete project old-demo", []string{"old-demo"}},
		{"comma list", "delete projects a-1, b-2, c-3", []string{"a-1", "b-2", "c-3"}},
		{"dan separator", "hapus projects a-1 dan b-2", []string{"a-1", "b-2"}},
		{"baru skipped", "buat project baru toko-online", []string{"toko-online"}},
		{"stopword ends list", "delete project old-demo in production", []string{"old-demo"}},
		{"connective directly after keyword", "delete projects in production", nil},
		{"trailing punctuation trimmed", "delete project old-demo!", []string{"old-demo"}},
		{"no keyword", "delete everything", nil},
		{"unquoted extra word not collected", "delete project old-demo tomorrow maybe", []string{"old-demo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractIDList(tt.text, "project", "projects")
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractIDList(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDisplayName(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"create project demo dengan nama Proyek Demo ya", "Proyek Demo"},
		{"create project demo named Demo App please", "Demo App"},
		{"create project demo with name Billing Stack", "Billing Stack"},
		{"buat project dengan Aplikasi Toko dong", "Aplikasi Toko"},
		{"create project demo", ""},
	}

	for _, tt := range tests {
		if got := extractDisplayName(tt.text); got != tt.want {
			t.Errorf("extractDisplayName(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
