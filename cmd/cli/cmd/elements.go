package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/matforge/matforge/pkg/periodic"
	"github.com/matforge/matforge/pkg/util"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "Inspect the periodic table",
	Long:  `Look up element properties and render the periodic table`,
}

var elementsInfoCmd = &cobra.Command{
	Use:   "info <element>...",
	Short: "Show element properties",
	Long: `Show properties for elements given as symbols ("Fe"), atomic
numbers ("26") or species strings ("Fe2+")`,
	Args: cobra.MinimumNArgs(1),
	RunE: showElementInfo,
}

var elementsTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render the periodic table",
	RunE:  showTable,
}

func init() {
	elementsTableCmd.Flags().String("filter", "", "only show elements in a category (alkali, alkaline, halogen, noble-gas, transition-metal, metalloid, lanthanoid, actinoid, rare-earth)")

	elementsCmd.AddCommand(elementsInfoCmd)
	elementsCmd.AddCommand(elementsTableCmd)
}

func showElementInfo(cmd *cobra.Command, args []string) error {
	for i, arg := range args {
		if i > 0 {
			fmt.Println()
		}
		if err := printElement(arg); err != nil {
			return err
		}
	}
	return nil
}

func printElement(arg string) error {
	el, species, err := resolveElement(arg)
	if err != nil {
		return err
	}

	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%s (%s, Z=%d)\n", el.Name(), el.Symbol(), el.Z())

	rows := [][]string{
		{"Atomic mass", fmt.Sprintf("%.4f amu", el.AtomicMass())},
		{"Row", strconv.Itoa(el.Row())},
		{"Group", strconv.Itoa(el.Group())},
		{"Block", el.Block()},
		{"Electronegativity", formatElectronegativity(el)},
		{"Oxidation states", formatStates(el.OxidationStates())},
		{"Common oxidation states", formatStates(el.CommonOxidationStates())},
	}
	if cats := categories(el); len(cats) > 0 {
		rows = append(rows, []string{"Categories", strings.Join(cats, ", ")})
	}
	if species != nil {
		if r, ok := species.IonicRadius(); ok {
			rows = append(rows, []string{fmt.Sprintf("Ionic radius (%s)", species), fmt.Sprintf("%.1f pm", r)})
		} else {
			rows = append(rows, []string{fmt.Sprintf("Ionic radius (%s)", species), "no data"})
		}
	} else if r := el.AverageIonicRadius(); r > 0 {
		rows = append(rows, []string{"Average ionic radius", fmt.Sprintf("%.1f pm", r)})
	}

	fmt.Println(util.StrAligned(rows, nil))
	return nil
}

// resolveElement interprets arg as a species string, an atomic number or a
// bare symbol, in that order.
func resolveElement(arg string) (periodic.Element, *periodic.Species, error) {
	if strings.HasSuffix(arg, "+") || strings.HasSuffix(arg, "-") {
		sp, err := periodic.ParseSpecies(arg)
		if err != nil {
			return periodic.Element{}, nil, err
		}
		return sp.Element, &sp, nil
	}
	if z, err := strconv.Atoi(arg); err == nil {
		el, err := periodic.FromZ(z)
		return el, nil, err
	}
	el, err := periodic.FromSymbol(arg)
	return el, nil, err
}

func formatElectronegativity(el periodic.Element) string {
	if x := el.Electronegativity(); x > 0 {
		return fmt.Sprintf("%.2f", x)
	}
	return "no data"
}

func formatStates(states []int) string {
	if len(states) == 0 {
		return "none"
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%+d", s)
	}
	return strings.Join(parts, ", ")
}

func categories(el periodic.Element) []string {
	var cats []string
	if el.IsAlkali() {
		cats = append(cats, "alkali metal")
	}
	if el.IsAlkaline() {
		cats = append(cats, "alkaline earth metal")
	}
	if el.IsTransitionMetal() {
		cats = append(cats, "transition metal")
	}
	if el.IsMetalloid() {
		cats = append(cats, "metalloid")
	}
	if el.IsHalogen() {
		cats = append(cats, "halogen")
	}
	if el.IsNobleGas() {
		cats = append(cats, "noble gas")
	}
	if el.IsLanthanoid() {
		cats = append(cats, "lanthanoid")
	}
	if el.IsActinoid() {
		cats = append(cats, "actinoid")
	}
	return cats
}

var tableFilters = map[string]func(periodic.Element) bool{
	"alkali":           periodic.Element.IsAlkali,
	"alkaline":         periodic.Element.IsAlkaline,
	"halogen":          periodic.Element.IsHalogen,
	"noble-gas":        periodic.Element.IsNobleGas,
	"transition-metal": periodic.Element.IsTransitionMetal,
	"metalloid":        periodic.Element.IsMetalloid,
	"lanthanoid":       periodic.Element.IsLanthanoid,
	"actinoid":         periodic.Element.IsActinoid,
	"rare-earth":       periodic.Element.IsRareEarthMetal,
}

func showTable(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("filter")

	var filter func(periodic.Element) bool
	if name != "" {
		f, ok := tableFilters[name]
		if !ok {
			names := make([]string, 0, len(tableFilters))
			for n := range tableFilters {
				names = append(names, n)
			}
			sort.Strings(names)
			return fmt.Errorf("unknown filter %q (available: %s)", name, strings.Join(names, ", "))
		}
		filter = f
	}

	fmt.Print(periodic.TableString(filter))
	return nil
}
