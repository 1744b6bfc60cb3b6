package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matforge/matforge/pkg/docs"
	"github.com/matforge/matforge/pkg/logger"
	"github.com/matforge/matforge/pkg/report"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Build the documentation site",
	Long:  `Generate API pages, clean them up and build the HTML site`,
}

var docsBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run the documentation pipeline",
	RunE:  buildDocs,
}

func init() {
	docsBuildCmd.Flags().Bool("no-report", false, "skip writing a run report")

	docsCmd.AddCommand(docsBuildCmd)
}

func buildDocs(cmd *cobra.Command, _ []string) error {
	builder := docs.NewBuilder()

	// Allow overrides from the config file
	if v := viper.GetStringSlice("docs.generator_command"); len(v) > 0 {
		builder.GeneratorCommand = v
	}
	if v := viper.GetStringSlice("docs.site_command"); len(v) > 0 {
		builder.SiteCommand = v
	}
	if v := viper.GetString("docs.api_dir"); v != "" {
		builder.APIDir = v
	}
	if v := viper.GetString("docs.site_dir"); v != "" {
		builder.SiteDir = v
	}

	logger.LogSection("Building documentation")

	rep := report.New("docs")
	buildErr := builder.Build(cmd.Context())
	rep.Finish(buildErr == nil)
	if buildErr != nil {
		rep.Details["error"] = buildErr.Error()
	}

	if noReport, _ := cmd.Flags().GetBool("no-report"); !noReport {
		if path, err := rep.Write(report.DefaultDir()); err != nil {
			logger.Warnf("Failed to write run report: %v", err)
		} else {
			logger.Debugf("Run report written to %s", path)
		}
	}

	if buildErr != nil {
		return fmt.Errorf("documentation build failed: %w", buildErr)
	}

	logger.Successf("Documentation built in %s", builder.SiteDir)
	return nil
}
