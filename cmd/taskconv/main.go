package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/programme-lv/taskconv/convert"
)

func main() {
	_ = godotenv.Load()

	var inputDir string
	var outputDir string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "taskconv",
		Short: "Convert terminal-bench tasks to the sandboxes format",
		Run: func(cmd *cobra.Command, args []string) {
			initLogger(verbose)

			if err := validateDirectory(inputDir); err != nil {
				log.Fatal().Err(err).Str("inputDir", inputDir).Msg("Invalid input directory")
			}
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				log.Fatal().Err(err).Str("outputDir", outputDir).Msg("Failed to create output directory")
			}

			log.Debug().
				Str("inputDir", inputDir).
				Str("outputDir", outputDir).
				Msg("Starting conversion")

			converter := convert.NewConverter(convert.NewConsoleReporter(os.Stdout))
			summary, err := converter.ConvertAll(inputDir, outputDir)
			if err != nil {
				log.Fatal().Err(err).Msg("Conversion aborted")
			}

			log.Debug().
				Int("total", summary.Total).
				Int("succeeded", summary.Succeeded).
				Strs("failed", summary.Failed).
				Msg("Conversion finished")
		},
	}

	rootCmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Path to the root of the terminal-bench tasks directory (required)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Path to the output directory for converted tasks (required)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.MarkFlagRequired("input-dir")
	rootCmd.MarkFlagRequired("output-dir")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return fmt.Errorf("directory does not exist")
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory")
	}
	return nil
}
