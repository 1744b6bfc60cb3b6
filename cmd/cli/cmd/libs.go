package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/config"
)

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "Manage pseudopotential libraries",
	Long:  `Manage configured pseudopotential library locations`,
}

var libsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured libraries",
	RunE:  listLibraries,
}

var libsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new library",
	RunE:  addLibrary,
}

var libsRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a library",
	RunE:  removeLibrary,
}

var libsSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select the default library",
	RunE:  selectLibrary,
}

func init() {
	libsCmd.AddCommand(libsListCmd)
	libsCmd.AddCommand(libsAddCmd)
	libsCmd.AddCommand(libsRemoveCmd)
	libsCmd.AddCommand(libsSelectCmd)
}

func listLibraries(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLibraries()
	if err != nil {
		return fmt.Errorf("failed to load libraries: %w", err)
	}

	if len(cfg.Libraries) == 0 {
		fmt.Println("No libraries configured")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPATH\tFUNCTIONAL\tSELECTED")
	_, _ = fmt.Fprintln(w, "----\t----\t----------\t--------")

	for _, lib := range cfg.Libraries {
		selected := ""
		if lib.Name == cfg.Selected {
			selected = "*"
		}
		functional := lib.Functional
		if functional == "" {
			functional = "-"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", lib.Name, lib.Path, functional, selected)
	}

	return w.Flush()
}

func addLibrary(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLibraries()
	if err != nil {
		return fmt.Errorf("failed to load libraries: %w", err)
	}

	var lib config.Library

	// Prompt for name
	namePrompt := &survey.Input{
		Message: "Library name:",
	}
	if err := survey.AskOne(namePrompt, &lib.Name, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	// Check if name already exists
	for _, existing := range cfg.Libraries {
		if existing.Name == lib.Name {
			return fmt.Errorf("library %s already exists", lib.Name)
		}
	}

	// Prompt for path
	pathPrompt := &survey.Input{
		Message: "Library path:",
		Help:    "Directory containing one subdirectory per POTCAR symbol",
	}
	if err := survey.AskOne(pathPrompt, &lib.Path, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	if _, err := os.Stat(lib.Path); err != nil {
		return fmt.Errorf("library path %s is not accessible: %w", lib.Path, err)
	}

	// Prompt for functional
	functionalPrompt := &survey.Select{
		Message: "Exchange-correlation functional:",
		Options: []string{"PBE", "PBE_52", "PBE_54", "LDA", "PW91"},
		Default: "PBE",
	}
	if err := survey.AskOne(functionalPrompt, &lib.Functional); err != nil {
		return err
	}

	// Add to config
	cfg.Libraries = append(cfg.Libraries, lib)
	if cfg.Selected == "" {
		cfg.Selected = lib.Name
	}

	// Save config
	if err := config.SaveLibraries(cfg); err != nil {
		return fmt.Errorf("failed to save libraries: %w", err)
	}

	fmt.Printf("Library %s added successfully\n", lib.Name)
	return nil
}

func removeLibrary(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLibraries()
	if err != nil {
		return fmt.Errorf("failed to load libraries: %w", err)
	}

	if len(cfg.Libraries) == 0 {
		fmt.Println("No libraries to remove")
		return nil
	}

	// Build list of library names
	names := make([]string, len(cfg.Libraries))
	for i, lib := range cfg.Libraries {
		names[i] = lib.Name
	}

	// Prompt for selection
	var selected string
	prompt := &survey.Select{
		Message: "Select library to remove:",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	// Confirm removal
	var confirm bool
	confirmPrompt := &survey.Confirm{
		Message: fmt.Sprintf("Are you sure you want to remove %s?", selected),
		Default: false,
	}
	if err := survey.AskOne(confirmPrompt, &confirm); err != nil {
		return err
	}

	if !confirm {
		fmt.Println("Removal cancelled")
		return nil
	}

	// Remove from config
	newLibs := make([]config.Library, 0, len(cfg.Libraries)-1)
	for _, lib := range cfg.Libraries {
		if lib.Name != selected {
			newLibs = append(newLibs, lib)
		}
	}
	cfg.Libraries = newLibs
	if cfg.Selected == selected {
		cfg.Selected = ""
	}

	// Save config
	if err := config.SaveLibraries(cfg); err != nil {
		return fmt.Errorf("failed to save libraries: %w", err)
	}

	fmt.Printf("Library %s removed successfully\n", selected)
	return nil
}

func selectLibrary(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadLibraries()
	if err != nil {
		return fmt.Errorf("failed to load libraries: %w", err)
	}

	if len(cfg.Libraries) == 0 {
		fmt.Println("No libraries configured")
		return nil
	}

	names := make([]string, len(cfg.Libraries))
	for i, lib := range cfg.Libraries {
		names[i] = lib.Name
	}

	var selected string
	prompt := &survey.Select{
		Message: "Select default library:",
		Options: names,
		Default: cfg.Selected,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	cfg.Selected = selected
	if err := config.SaveLibraries(cfg); err != nil {
		return fmt.Errorf("failed to save libraries: %w", err)
	}

	fmt.Printf("Default library set to %s\n", selected)
	return nil
}
