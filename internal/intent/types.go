package intent

// Intent identifies the action a command requests. Intents are catalog keys,
// never instantiated beyond these constants.
type Intent string

const (
	IntentNone Intent = ""

	IntentListProjects  Intent = "list_projects"
	IntentCreateProject Intent = "create_project"
	IntentDeleteProject Intent = "delete_project"

	IntentComputeList         Intent = "compute_list"
	IntentComputeCreate       Intent = "compute_create"
	IntentComputeDelete       Intent = "compute_delete"
	IntentStorageListBuckets  Intent = "storage_list_buckets"
	IntentStorageCreateBucket Intent = "storage_create_bucket"
	IntentNetworkListVPCs     Intent = "network_list_vpcs"
	IntentIAMListAccounts     Intent = "iam_list_service_accounts"
	IntentMonitoringAlerts    Intent = "monitoring_list_alerts"
)

// Locale tags which natural language a pattern list is written for. Every
// locale is tried for every input; there is no language detection step.
type Locale string

const (
	LocaleEnglish    Locale = "en"
	LocaleIndonesian Locale = "id"
)

// ClassificationResult is produced fresh per input and never mutated after
// creation. A zero Confidence with IntentNone means the command was not
// recognized.
type ClassificationResult struct {
	Intent         Intent  `json:"intent,omitempty" yaml:"intent,omitempty"`
	Confidence     float64 `json:"confidence" yaml:"confidence"`
	MatchedPattern string  `json:"matched_pattern,omitempty" yaml:"matched_pattern,omitempty"`
}

// Params holds the structured fields extracted from a command. One typed
// struct covers all intents; fields not relevant to the classified intent
// stay zero. Validation happens at the extractor boundary, so downstream
// consumers can use fields directly.
type Params struct {
	ProjectID    string   `json:"project_id,omitempty" yaml:"project_id,omitempty"`
	ProjectIDs   []string `json:"project_ids,omitempty" yaml:"project_ids,omitempty"`
	ProjectName  string   `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	Environment  string   `json:"environment,omitempty" yaml:"environment,omitempty"`
	ResourceName string   `json:"resource_name,omitempty" yaml:"resource_name,omitempty"`
	IsBulk       bool     `json:"is_bulk,omitempty" yaml:"is_bulk,omitempty"`
}

// Empty reports whether extraction found nothing at all.
func (p Params) Empty() bool {
	return p.ProjectID == "" && len(p.ProjectIDs) == 0 && p.ProjectName == "" &&
		p.Environment == "" && p.ResourceName == "" && !p.IsBulk
}
