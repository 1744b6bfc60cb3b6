package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/config"
	"github.com/matforge/matforge/pkg/inputset"
	"github.com/matforge/matforge/pkg/logger"
	"github.com/matforge/matforge/pkg/periodic"
	"github.com/matforge/matforge/pkg/utils"
)

var inputsCmd = &cobra.Command{
	Use:   "inputs",
	Short: "Generate and inspect VASP input decks",
	Long:  `Generate INCAR, KPOINTS and POTCAR files from named input sets`,
}

var inputsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an input deck",
	Long:  `Generate an input deck interactively or with specified parameters`,
	RunE:  generateInputs,
}

var inputsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available input sets",
	Long:  `List all available input sets with their descriptions`,
	RunE:  listInputSets,
}

func init() {
	inputsGenerateCmd.Flags().StringP("set", "s", "", "input set name to use")
	inputsGenerateCmd.Flags().StringP("formula", "f", "", "chemical formula (e.g. LiFePO4)")
	inputsGenerateCmd.Flags().StringP("output", "o", "", "output directory (default is the reduced formula)")
	inputsGenerateCmd.Flags().StringP("library", "l", "", "pseudopotential library name")

	inputsCmd.AddCommand(inputsGenerateCmd)
	inputsCmd.AddCommand(inputsListCmd)
}

func generateInputs(cmd *cobra.Command, _ []string) error {
	if err := utils.RegisterDiscovered(inputset.DefaultRegistry); err != nil {
		return fmt.Errorf("failed to load input sets: %w", err)
	}

	setName, err := selectInputSet(cmd)
	if err != nil {
		return fmt.Errorf("failed to select input set: %w", err)
	}

	set, err := inputset.DefaultRegistry.Get(setName)
	if err != nil {
		return fmt.Errorf("failed to get input set: %w", err)
	}

	comp, opts, outDir, err := collectGenerateOptions(cmd)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = comp.ReducedFormula()
	}

	logger.LogSection(fmt.Sprintf("Generating %s inputs for %s", set.Name(), comp.ReducedFormula()))
	written, err := inputset.WriteDeck(set, comp, outDir, opts)
	if err != nil {
		return fmt.Errorf("failed to write input deck: %w", err)
	}

	logger.Successf("Input deck written to %s", outDir)
	logger.LogList("Files", written)
	return nil
}

// collectGenerateOptions resolves the composition and deck options from flags,
// falling back to interactive prompts for anything missing.
func collectGenerateOptions(cmd *cobra.Command) (periodic.Composition, inputset.DeckOptions, string, error) {
	var opts inputset.DeckOptions

	formula, _ := cmd.Flags().GetString("formula")
	outDir, _ := cmd.Flags().GetString("output")
	libName, _ := cmd.Flags().GetString("library")

	writePotcar := libName != ""

	if formula == "" {
		params, err := utils.PromptForParameters(inputset.GenerateParameters)
		if err != nil {
			return periodic.Composition{}, opts, "", fmt.Errorf("failed to get parameters: %w", err)
		}
		formula, _ = params["formula"].(string)
		if density, ok := params["grid_density"].(int); ok {
			opts.GridDensity = density
		}
		if wp, ok := params["write_potcar"].(bool); ok && wp {
			writePotcar = true
		}
	}

	comp, err := periodic.ParseFormula(formula)
	if err != nil {
		return periodic.Composition{}, opts, "", fmt.Errorf("invalid formula %q: %w", formula, err)
	}

	if writePotcar {
		libs, err := config.LoadLibraries()
		if err != nil {
			return periodic.Composition{}, opts, "", fmt.Errorf("failed to load libraries: %w", err)
		}
		lib, ok := libs.Find(libName)
		if !ok {
			if libName == "" {
				return periodic.Composition{}, opts, "", fmt.Errorf("no pseudopotential library selected; run 'matforge libs add' first")
			}
			return periodic.Composition{}, opts, "", fmt.Errorf("library %s not found", libName)
		}
		opts.PotcarLibrary = lib.Path
	}

	return comp, opts, outDir, nil
}

func selectInputSet(cmd *cobra.Command) (string, error) {
	// Check if the set is specified via flag
	setName, _ := cmd.Flags().GetString("set")
	if setName != "" {
		return setName, nil
	}

	names := inputset.DefaultRegistry.List()
	if len(names) == 0 {
		return "", fmt.Errorf("no input sets found")
	}

	descriptions := make(map[string]string)
	for _, name := range names {
		set, err := inputset.DefaultRegistry.Get(name)
		if err != nil {
			continue
		}
		descriptions[name] = set.Description()
	}

	// Interactive selection
	var selected string
	prompt := &survey.Select{
		Message: "Select input set:",
		Options: names,
		Description: func(value string, index int) string {
			return descriptions[value]
		},
	}

	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return selected, nil
}

func listInputSets(cmd *cobra.Command, args []string) error {
	if err := utils.RegisterDiscovered(inputset.DefaultRegistry); err != nil {
		return fmt.Errorf("failed to load input sets: %w", err)
	}

	names := inputset.DefaultRegistry.List()
	if len(names) == 0 {
		fmt.Println("No input sets found")
		return nil
	}

	// Create tabwriter for formatted output
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "----\t-----------")

	for _, name := range names {
		set, err := inputset.DefaultRegistry.Get(name)
		if err != nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", set.Name(), set.Description())
	}

	return w.Flush()
}
