package gcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rwidyarsa/awan/internal/router"
)

// Handler executes one routing decision. Implementations are keyed by the
// router's fixed target-handler names via the registry; there is no
// hierarchy, just a dispatch table.
type Handler interface {
	Name() string
	Execute(ctx context.Context, d router.Decision) (string, error)
}

// NewRegistry builds the dispatch table covering every handler name the
// router can emit.
func NewRegistry(c *Client) map[string]Handler {
	handlers := []Handler{
		rootHandler{},
		projectHandler{c},
		computeHandler{c},
		networkingHandler{c},
		storageHandler{c},
		iamHandler{c},
		monitoringHandler{c},
	}

	registry := make(map[string]Handler, len(handlers))
	for _, h := range handlers {
		registry[h.Name()] = h
	}
	return registry
}

// invocation is one gcloud call. Project-management calls are org-level and
// skip the --project flag.
type invocation struct {
	section string
	scoped  bool
	args    []string
}

func (c *Client) runAll(ctx context.Context, invocations []invocation) (string, error) {
	var out strings.Builder
	for _, inv := range invocations {
		result, err := c.run(ctx, inv.scoped, inv.args...)
		if err != nil {
			return out.String(), fmt.Errorf("%s: %w", inv.section, err)
		}
		if strings.TrimSpace(result) == "" {
			continue
		}
		if inv.section != "" {
			out.WriteString(inv.section)
			out.WriteString(":\n")
		}
		out.WriteString(result)
		if !strings.HasSuffix(result, "\n") {
			out.WriteString("\n")
		}
	}
	if strings.TrimSpace(out.String()) == "" {
		return "No output (missing permissions or no matching resources).", nil
	}
	return out.String(), nil
}

type rootHandler struct{}

func (rootHandler) Name() string { return router.HandlerRoot }

func (rootHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	return `I couldn't map that to a cloud operation. Try commands like:
  awan do "list projects in staging"
  awan do "buat project baru demo-1 dengan nama Proyek Demo"
  awan do "delete projects proj1, proj2 dan proj3"
  awan do "tampilkan semua instances"`, nil
}

type projectHandler struct {
	client *Client
}

func (projectHandler) Name() string { return router.HandlerProject }

func (h projectHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	invocations, err := projectInvocations(d)
	if err != nil {
		return "", err
	}
	return h.client.runAll(ctx, invocations)
}

// projectInvocations maps a project decision to concrete gcloud calls. Bulk
// creates and deletes expand to one call per id in the order extracted.
func projectInvocations(d router.Decision) ([]invocation, error) {
	switch d.OperationType {
	case "list", "general":
		args := []string{"projects", "list", "--format", "table(projectId,name,lifecycleState)"}
		if env := d.Params.Environment; env != "" && env != "all" {
			args = append(args, "--filter", "labels.env="+env)
		}
		return []invocation{{section: "Projects", args: args}}, nil

	case "create":
		ids := projectIDs(d)
		if len(ids) == 0 {
			return nil, fmt.Errorf("project id is required to create a project")
		}
		var out []invocation
		for _, id := range ids {
			args := []string{"projects", "create", id}
			if d.Params.ProjectName != "" && len(ids) == 1 {
				args = append(args, "--name", d.Params.ProjectName)
			}
			out = append(out, invocation{section: "Create " + id, args: args})
		}
		return out, nil

	case "delete":
		ids := projectIDs(d)
		if len(ids) == 0 {
			return nil, fmt.Errorf("project id is required to delete a project")
		}
		var out []invocation
		for _, id := range ids {
			out = append(out, invocation{section: "Delete " + id, args: []string{"projects", "delete", id, "--quiet"}})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported project operation %q", d.OperationType)
	}
}

func projectIDs(d router.Decision) []string {
	if len(d.Params.ProjectIDs) > 0 {
		return d.Params.ProjectIDs
	}
	if d.Params.ProjectID != "" {
		return []string{d.Params.ProjectID}
	}
	return nil
}

type computeHandler struct {
	client *Client
}

func (computeHandler) Name() string { return router.HandlerCompute }

func (h computeHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	switch d.OperationType {
	case "create":
		if d.Params.ResourceName == "" {
			return "", fmt.Errorf("instance name is required to create an instance")
		}
		return h.client.runAll(ctx, []invocation{{
			section: "Create " + d.Params.ResourceName,
			scoped:  true,
			args:    []string{"compute", "instances", "create", d.Params.ResourceName},
		}})
	case "delete":
		if d.Params.ResourceName == "" {
			return "", fmt.Errorf("instance name is required to delete an instance")
		}
		return h.client.runAll(ctx, []invocation{{
			section: "Delete " + d.Params.ResourceName,
			scoped:  true,
			args:    []string{"compute", "instances", "delete", d.Params.ResourceName, "--quiet"},
		}})
	default:
		return h.client.runAll(ctx, []invocation{{
			section: "Compute Instances",
			scoped:  true,
			args:    []string{"compute", "instances", "list", "--format", "table(name,zone,status)"},
		}})
	}
}

type networkingHandler struct {
	client *Client
}

func (networkingHandler) Name() string { return router.HandlerNetworking }

func (h networkingHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	return h.client.runAll(ctx, []invocation{
		{section: "VPC Networks", scoped: true, args: []string{"compute", "networks", "list", "--format", "table(name,autoCreateSubnetworks)"}},
		{section: "Firewall Rules", scoped: true, args: []string{"compute", "firewall-rules", "list", "--format", "table(name,network,direction,priority)"}},
	})
}

type storageHandler struct {
	client *Client
}

func (storageHandler) Name() string { return router.HandlerStorage }

func (h storageHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	if d.OperationType == "create" {
		if d.Params.ResourceName == "" {
			return "", fmt.Errorf("bucket name is required to create a bucket")
		}
		return h.client.runAll(ctx, []invocation{{
			section: "Create " + d.Params.ResourceName,
			scoped:  true,
			args:    []string{"storage", "buckets", "create", "gs://" + d.Params.ResourceName},
		}})
	}
	return h.client.runAll(ctx, []invocation{{
		section: "Cloud Storage Buckets",
		scoped:  true,
		args:    []string{"storage", "buckets", "list", "--format", "table(name,location,storageClass)"},
	}})
}

type iamHandler struct {
	client *Client
}

func (iamHandler) Name() string { return router.HandlerIAM }

func (h iamHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	return h.client.runAll(ctx, []invocation{{
		section: "IAM Service Accounts",
		scoped:  true,
		args:    []string{"iam", "service-accounts", "list", "--format", "table(email,displayName,disabled)"},
	}})
}

type monitoringHandler struct {
	client *Client
}

func (monitoringHandler) Name() string { return router.HandlerMonitoring }

func (h monitoringHandler) Execute(ctx context.Context, d router.Decision) (string, error) {
	return h.client.runAll(ctx, []invocation{
		{section: "Monitoring Alert Policies", scoped: true, args: []string{"monitoring", "alert-policies", "list", "--format", "table(name,displayName,enabled)"}},
		{section: "Logging Sinks", scoped: true, args: []string{"logging", "sinks", "list", "--format", "table(name,destination)"}},
	})
}
