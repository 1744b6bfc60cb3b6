package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matforge/matforge/pkg/logger"
	"github.com/matforge/matforge/pkg/precommit"
	"github.com/matforge/matforge/pkg/report"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage the pre-commit gate",
	Long:  `Install and run the pre-commit test gate`,
}

var hooksRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pre-commit gate",
	Long: `Run the test command and inspect its output. The commit is aborted
when the output contains the word "Error"; note that a line such as
"0 Errors" also aborts it.`,
	RunE: runHook,
}

var hooksInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the pre-commit hook",
	RunE:  installHook,
}

func init() {
	hooksRunCmd.Flags().Bool("no-report", false, "skip writing a run report")

	hooksCmd.AddCommand(hooksRunCmd)
	hooksCmd.AddCommand(hooksInstallCmd)
}

func runHook(cmd *cobra.Command, _ []string) error {
	runner := precommit.NewRunner()
	if v := viper.GetStringSlice("hooks.test_command"); len(v) > 0 {
		runner.TestCommand = v
	}

	result, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to run tests: %w", err)
	}

	// The captured output is always shown
	fmt.Print(result.Output)

	rep := report.New("precommit")
	rep.Finish(result.Passed)
	if noReport, _ := cmd.Flags().GetBool("no-report"); !noReport {
		if path, err := rep.Write(report.DefaultDir()); err != nil {
			logger.Warnf("Failed to write run report: %v", err)
		} else {
			logger.Debugf("Run report written to %s", path)
		}
	}

	if !result.Passed {
		color.New(color.FgRed, color.Bold).Println(precommit.FailureMessage)
		// Exit directly so git sees the hook fail without extra noise
		os.Exit(1)
	}

	color.New(color.FgGreen).Println(precommit.SuccessMessage)
	return nil
}

func installHook(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if precommit.IsInstalled(cwd) {
		var confirm bool
		prompt := &survey.Confirm{
			Message: "A pre-commit hook is already installed. Overwrite it?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Installation cancelled")
			return nil
		}
	}

	path, err := precommit.Install(cwd)
	if err != nil {
		return fmt.Errorf("failed to install hook: %w", err)
	}

	logger.Successf("Pre-commit hook installed at %s", path)
	return nil
}
