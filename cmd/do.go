package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/rwidyarsa/awan/internal/cli"
	"github.com/rwidyarsa/awan/internal/gcp"
	"github.com/rwidyarsa/awan/internal/intent"
	"github.com/rwidyarsa/awan/internal/router"
)

// doCmd represents the do command
var doCmd = &cobra.Command{
	Use:   "do [command]",
	Short: "Run a natural-language cloud command",
	Long: `Classify a free-text command, route it to the right handler, and
execute it. English and Indonesian are both understood.

Examples:
  awan do "list projects in staging"
  awan do "buat project baru demo-1 dengan nama Proyek Demo"
  awan do "hapus project lama-1 di production"
  awan do "tampilkan semua instances"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := strings.Join(args, " ")

		yes, _ := cmd.Flags().GetBool("yes")
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		output, _ := cmd.Flags().GetString("output")
		debug := viper.GetBool("debug")

		r, err := router.New()
		if err != nil {
			return err
		}

		decision := r.Route(command)
		if debug {
			fmt.Printf("Routing: %s\n", decision.Reasoning)
		}

		if dryRun {
			rendered, err := renderDecision(decision, output)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		}

		if decision.Classification.Intent != intent.IntentNone &&
			decision.Classification.Confidence < intent.ConfidenceGate {
			fmt.Printf("I'm not sure what you meant (best guess: %s, confidence %.2f).\n",
				decision.Classification.Intent, decision.Classification.Confidence)
			fmt.Println("Please rephrase the command.")
			return nil
		}

		if decision.Risk.RequiresConfirmation && !yes {
			ok, err := cli.ConfirmDecision(decision)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if missing := cli.NewDependencyChecker(debug).CheckMissing(); len(missing) > 0 {
			return fmt.Errorf("missing dependency: %s", missing[0].Message)
		}

		client := gcp.NewClient(gcp.ResolveProjectID(), debug)
		registry := gcp.NewRegistry(client)
		handler, ok := registry[decision.TargetHandler]
		if !ok {
			return fmt.Errorf("no handler registered for %q", decision.TargetHandler)
		}

		result, err := handler.Execute(context.Background(), decision)
		if err != nil {
			return fmt.Errorf("executing %s/%s: %w", decision.TargetHandler, decision.OperationType, err)
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doCmd)

	doCmd.Flags().Bool("yes", false, "Skip the confirmation prompt for flagged operations")
	doCmd.Flags().Bool("dry-run", false, "Print the routing decision without executing anything")
	doCmd.Flags().String("output", "text", "Decision output format for --dry-run: text, json, or yaml")
}

// renderDecision encodes a routing decision in the requested format. The
// text form is a stable plain rendering; json and yaml are full encodings.
func renderDecision(d router.Decision, format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding decision: %w", err)
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(d)
		if err != nil {
			return "", fmt.Errorf("encoding decision: %w", err)
		}
		return string(data), nil

	case "text", "":
		var b strings.Builder
		fmt.Fprintf(&b, "Decision: %s\n", d.Describe())
		if d.Classification.Intent != intent.IntentNone {
			fmt.Fprintf(&b, "Intent: %s (confidence %.2f)\n", d.Classification.Intent, d.Classification.Confidence)
		} else {
			b.WriteString("Intent: unrecognized\n")
		}
		fmt.Fprintf(&b, "Handler: %s, operation: %s\n", d.TargetHandler, d.OperationType)
		if !d.Params.Empty() {
			if d.Params.ProjectID != "" {
				fmt.Fprintf(&b, "Project: %s\n", d.Params.ProjectID)
			}
			if len(d.Params.ProjectIDs) > 0 {
				fmt.Fprintf(&b, "Projects: %s\n", strings.Join(d.Params.ProjectIDs, ", "))
			}
			if d.Params.ProjectName != "" {
				fmt.Fprintf(&b, "Name: %s\n", d.Params.ProjectName)
			}
			if d.Params.Environment != "" {
				fmt.Fprintf(&b, "Environment: %s\n", d.Params.Environment)
			}
			if d.Params.ResourceName != "" {
				fmt.Fprintf(&b, "Resource: %s\n", d.Params.ResourceName)
			}
		}
		fmt.Fprintf(&b, "Risk: %s", d.Risk.Level)
		if len(d.Risk.Factors) > 0 {
			fmt.Fprintf(&b, " (%s)", strings.Join(d.Risk.Factors, "; "))
		}
		b.WriteString("\n")
		if d.Risk.RequiresConfirmation {
			b.WriteString("Confirmation required before execution.\n")
		}
		fmt.Fprintf(&b, "Reasoning: %s\n", d.Reasoning)
		return b.String(), nil

	default:
		return "", fmt.Errorf("unsupported output format %q (use text, json, or yaml)", format)
	}
}
