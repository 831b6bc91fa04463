package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage awan configuration",
	Long:  `Configure awan settings including the default GCP project.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration file",
	Long:  `Create a default configuration file in your home directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".awan.yaml")

		// Check if config already exists
		if _, err := os.Stat(configPath); err == nil {
			fmt.Printf("Configuration file already exists at %s\n", configPath)
			return nil
		}

		defaultConfig := `# Awan Configuration
# Copy this to ~/.awan.yaml and customize for your setup

infra:
  gcp:
    project_id: your-gcp-project-id  # Default project for scoped commands

# General settings
debug: false
`

		err = os.WriteFile(configPath, []byte(defaultConfig), 0644)
		if err != nil {
			return fmt.Errorf("error creating config file: %w", err)
		}

		fmt.Printf("Configuration file created at %s\n", configPath)
		fmt.Println("Please edit the file to set your GCP project id.")
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error finding home directory: %w", err)
		}

		configPath := filepath.Join(home, ".awan.yaml")

		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			fmt.Println("No configuration file found. Run 'awan config init' to create one.")
			return nil
		}

		content, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}

		fmt.Printf("Configuration file: %s\n\n", configPath)
		fmt.Print(string(content))
		return nil
	},
}

var configScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan system for available GCP credentials",
	Long: `Detect Application Default Credentials, the gcloud CLI, and configured
GCP projects on the local system.

Examples:
  awan config scan
  awan config scan --output json`,
	RunE: runConfigScan,
}

// GCPCredentialsScan holds detected GCP credentials
type GCPCredentialsScan struct {
	HasADC       bool     `json:"hasADC"`
	ADCPath      string   `json:"adcPath,omitempty"`
	Projects     []string `json:"projects,omitempty"`
	CLIAvailable bool     `json:"cliAvailable"`
	Error        string   `json:"error,omitempty"`
}

func runConfigScan(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	result := scanGCPCredentials()

	if outputFormat == "json" {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	printScanResult(result)
	return nil
}

func printScanResult(result GCPCredentialsScan) {
	fmt.Println("=== GCP Credentials Scan ===")
	fmt.Println()

	if result.HasADC {
		fmt.Printf("Application Default Credentials: Found at %s\n", result.ADCPath)
	} else {
		fmt.Println("Application Default Credentials: Not found")
	}
	fmt.Printf("gcloud CLI: %v\n", result.CLIAvailable)
	if len(result.Projects) > 0 {
		fmt.Printf("Projects: %s\n", strings.Join(result.Projects, ", "))
	}
	if result.Error != "" {
		fmt.Printf("Error: %s\n", result.Error)
	}
}

func scanGCPCredentials() GCPCredentialsScan {
	result := GCPCredentialsScan{
		Projects: []string{},
	}

	home, err := os.UserHomeDir()
	if err != nil {
		result.Error = "could not determine home directory"
		return result
	}

	adcPath := filepath.Join(home, ".config", "gcloud", "application_default_credentials.json")
	if _, err := os.Stat(adcPath); err == nil {
		result.HasADC = true
		result.ADCPath = adcPath
	}

	gcloudPath, err := findGcloudBinary()
	if err != nil {
		result.CLIAvailable = false
		return result
	}
	result.CLIAvailable = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, gcloudPath, "config", "get-value", "project")
	output, err := cmd.Output()
	if err == nil {
		project := strings.TrimSpace(string(output))
		if project != "" && project != "(unset)" {
			result.Projects = append(result.Projects, project)
		}
	}

	cmd = exec.CommandContext(ctx, gcloudPath, "config", "configurations", "list", "--format=json")
	output, err = cmd.Output()
	if err == nil {
		var configs []struct {
			Name       string `json:"name"`
			IsActive   bool   `json:"is_active"`
			Properties struct {
				Core struct {
					Project string `json:"project"`
				} `json:"core"`
			} `json:"properties"`
		}
		if json.Unmarshal(output, &configs) == nil {
			for _, cfg := range configs {
				if cfg.Properties.Core.Project != "" {
					found := false
					for _, p := range result.Projects {
						if p == cfg.Properties.Core.Project {
							found = true
							break
						}
					}
					if !found {
						result.Projects = append(result.Projects, cfg.Properties.Core.Project)
					}
				}
			}
		}
	}

	return result
}

func findGcloudBinary() (string, error) {
	names := []string{"gcloud"}
	if runtime.GOOS == "windows" {
		names = []string{"gcloud.cmd", "gcloud.exe", "gcloud"}
	}

	for _, name := range names {
		if p, err := exec.LookPath(name); err == nil {
			return p, nil
		}
	}

	home, _ := os.UserHomeDir()
	var candidates []string

	switch runtime.GOOS {
	case "darwin":
		candidates = []string{
			"/opt/homebrew/bin/gcloud",
			"/usr/local/bin/gcloud",
		}
	case "linux":
		candidates = []string{
			"/usr/bin/gcloud",
			"/usr/local/bin/gcloud",
			"/snap/bin/gcloud",
		}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, "google-cloud-sdk", "bin", "gcloud"))
		}
	case "windows":
		programFiles := os.Getenv("ProgramFiles")
		programFilesX86 := os.Getenv("ProgramFiles(x86)")
		if programFiles != "" {
			candidates = append(candidates, filepath.Join(programFiles, "Google", "Cloud SDK", "google-cloud-sdk", "bin", "gcloud.cmd"))
		}
		if programFilesX86 != "" {
			candidates = append(candidates, filepath.Join(programFilesX86, "Google", "Cloud SDK", "google-cloud-sdk", "bin", "gcloud.cmd"))
		}
		if home != "" {
			candidates = append(candidates, filepath.Join(home, "AppData", "Local", "Google", "Cloud SDK", "google-cloud-sdk", "bin", "gcloud.cmd"))
		}
	}

	for _, p := range candidates {
		if p == "" {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, nil
		}
	}

	return "", os.ErrNotExist
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configScanCmd)

	configScanCmd.Flags().StringP("output", "o", "", "Output format (json for JSON output)")
}
