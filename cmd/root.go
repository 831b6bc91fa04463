package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "awan",
	Short: "Natural-language console for your cloud projects",
	Long: `Awan turns free-text operator commands into cloud operations.
Commands can be written in English or Indonesian, typos included:

  awan do "list projects in staging"
  awan do "buat project baru demo-1 dengan nama Proyek Demo"
  awan do "delete projects proj1, proj2 dan proj3"

Destructive, bulk, and production-affecting operations are flagged and
require confirmation before anything runs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.awan.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output (shows routing internals and gcloud invocations)")
	rootCmd.PersistentFlags().String("project", "", "GCP project id (or set infra.gcp.project_id)")

	// TODO: add error return here
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("infra.gcp.project_id", rootCmd.PersistentFlags().Lookup("project"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".awan")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}
