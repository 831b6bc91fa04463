// Package cli provides CLI tool dependency detection and operator prompts.
package cli

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
)

// DependencyChecker handles detection of the CLI tools awan shells out to.
type DependencyChecker struct {
	debug bool
}

func NewDependencyChecker(debug bool) *DependencyChecker {
	return &DependencyChecker{debug: debug}
}

// DependencyStatus represents the status of one CLI tool.
type DependencyStatus struct {
	Name      string
	Installed bool
	Version   string
	Required  bool
	Message   string
}

// CheckAll checks every external tool the executor depends on.
func (d *DependencyChecker) CheckAll() []DependencyStatus {
	return []DependencyStatus{
		d.CheckGcloud(),
	}
}

// CheckMissing returns only the missing dependencies.
func (d *DependencyChecker) CheckMissing() []DependencyStatus {
	var missing []DependencyStatus
	for _, dep := range d.CheckAll() {
		if !dep.Installed {
			missing = append(missing, dep)
		}
	}
	return missing
}

// CheckGcloud checks whether the gcloud CLI is installed and resolves its
// version when it is.
func (d *DependencyChecker) CheckGcloud() DependencyStatus {
	status := DependencyStatus{
		Name:     "gcloud",
		Required: true,
	}

	path, err := exec.LookPath("gcloud")
	if err != nil {
		status.Message = "gcloud is not installed (https://cloud.google.com/sdk/docs/install)"
		return status
	}
	status.Installed = true

	cmd := exec.CommandContext(context.Background(), path, "version", "--format", "value(\"Google Cloud SDK\")")
	output, err := cmd.Output()
	if err != nil {
		return status
	}

	status.Version = strings.TrimSpace(string(output))
	if re := regexp.MustCompile(`\d+\.\d+\.\d+`); re.Match(output) {
		status.Version = re.FindString(string(output))
	}
	return status
}
