package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "banjara-api",
	Short: "Backend for the Banjara spoken-language data collection study",
	Long: `banjara-api serves the data collection and annotation backend:
content-addressed photo/audio ingestion, query annotation, and the
transcription/translation pipeline for translation recordings.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
