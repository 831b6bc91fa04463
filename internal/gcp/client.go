// Package gcp executes routing decisions against Google Cloud by shelling
// out to the gcloud CLI. It is the collaborator behind the router: it never
// re-checks risk, confirmation belongs to the caller.
package gcp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Client runs gcloud commands against one project.
type Client struct {
	projectID string
	debug     bool
}

// ResolveProjectID checks the config file first, then the usual gcloud
// environment variables.
func ResolveProjectID() string {
	if projectID := strings.TrimSpace(viper.GetString("infra.gcp.project_id")); projectID != "" {
		return projectID
	}
	for _, env := range []string{"GCP_PROJECT", "GOOGLE_CLOUD_PROJECT", "GCLOUD_PROJECT"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return ""
}

// NewClient builds a client. An empty projectID is allowed: scoped calls
// then rely on the gcloud default project configuration.
func NewClient(projectID string, debug bool) *Client {
	return &Client{projectID: strings.TrimSpace(projectID), debug: debug}
}

func (c *Client) ProjectID() string {
	return c.projectID
}

// run executes one gcloud invocation with bounded retries on transient
// failures. Project-scoped commands get --project appended; org-level
// commands (projects list/create/delete) pass scoped=false.
func (c *Client) run(ctx context.Context, scoped bool, args ...string) (string, error) {
	if _, err := exec.LookPath("gcloud"); err != nil {
		return "", fmt.Errorf("gcloud not found in PATH")
	}

	if scoped && c.projectID != "" {
		args = append(args, "--project", c.projectID)
	}
	if c.debug {
		fmt.Printf("[awan] gcloud %s\n", strings.Join(args, " "))
	}

	backoffs := []time.Duration{200 * time.Millisecond, 500 * time.Millisecond, 1200 * time.Millisecond}
	var lastErr error
	var lastStderr string

	for attempt := 0; attempt < len(backoffs); attempt++ {
		cmd := exec.CommandContext(ctx, "gcloud", args...)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		err := cmd.Run()
		if err == nil {
			return stdout.String(), nil
		}
		lastErr = err
		lastStderr = strings.TrimSpace(stderr.String())

		if ctx.Err() != nil {
			break
		}
		if !isRetryableGcloudError(lastStderr) {
			break
		}
		time.Sleep(backoffs[attempt])
	}

	return "", fmt.Errorf("gcloud command failed: %w, stderr: %s%s", lastErr, lastStderr, gcloudErrorHint(lastStderr))
}

func isRetryableGcloudError(stderr string) bool {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "rate") && strings.Contains(lower, "limit"):
		return true
	case strings.Contains(lower, "resource_exhausted"):
		return true
	case strings.Contains(lower, "deadline exceeded") || strings.Contains(lower, "timeout"):
		return true
	case strings.Contains(lower, "temporarily unavailable") || strings.Contains(lower, "internal error"):
		return true
	}
	return false
}

func gcloudErrorHint(stderr string) string {
	lower := strings.ToLower(stderr)
	switch {
	case strings.Contains(lower, "permission") || strings.Contains(lower, "denied"):
		return " (hint: missing IAM permissions or project access)"
	case strings.Contains(lower, "not found") && strings.Contains(lower, "project"):
		return " (hint: project_id may be incorrect)"
	case strings.Contains(lower, "api") && strings.Contains(lower, "not enabled"):
		return " (hint: enable the API for this service)"
	case strings.Contains(lower, "login") || strings.Contains(lower, "auth"):
		return " (hint: gcloud auth or ADC may be missing)"
	default:
		return ""
	}
}
