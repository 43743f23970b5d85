// Package main provides the gomol command line tool: a thin front end over
// the library for inspecting and converting molecule files.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	mol "github.com/molforge/gomol"
)

var rootCmd = &cobra.Command{
	Use:   "gomol",
	Short: "gomol - inspect and convert molecule files",
	Long: `gomol reads XYZ, MOL, PDB and SDF files (optionally gzip- or
zstd-compressed) and answers questions about the molecules in them.`,
	SilenceUsage: true,
}

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a summary of a molecule file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var formulaCmd = &cobra.Command{
	Use:   "formula <file>",
	Short: "Print the molecular formula and weight",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormula,
}

var measureCmd = &cobra.Command{
	Use:   "measure <file> <i> <j> [k [l]]",
	Short: "Measure a distance, angle or dihedral between atoms",
	Long: `measure prints, depending on how many 0-based atom indices are given,
the distance i-j (Angstrom), the angle i-j-k at j (degrees), or the
dihedral i-j-k-l about the j-k axis (signed degrees).`,
	Args: cobra.RangeArgs(3, 5),
	RunE: runMeasure,
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a molecule file to XYZ or PDB",
	Long: `convert parses the input file and writes it in the format named by the
output file's extension (.xyz or .pdb).`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func runInfo(_ *cobra.Command, args []string) error {
	m, format, err := mol.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	box := mol.BoundBox(m.Atoms)
	fmt.Printf("Name:     %s\n", m.Name)
	fmt.Printf("Format:   %s\n", format)
	fmt.Printf("Atoms:    %d\n", m.Len())
	fmt.Printf("Bonds:    %d\n", len(m.Bonds))
	fmt.Printf("Formula:  %s\n", m.Formula())
	fmt.Printf("Weight:   %.3f g/mol\n", m.Weight())
	fmt.Printf("Box size: %.3f x %.3f x %.3f A\n", box.Size.X, box.Size.Y, box.Size.Z)
	return nil
}

func runFormula(_ *cobra.Command, args []string) error {
	m, _, err := mol.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	fmt.Printf("%s  %.3f g/mol\n", m.Formula(), m.Weight())
	return nil
}

func runMeasure(_ *cobra.Command, args []string) error {
	m, _, err := mol.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	idx := make([]int, 0, 4)
	for _, a := range args[1:] {
		i, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("atom index %q is not an integer", a)
		}
		if i < 0 || i >= m.Len() {
			return fmt.Errorf("atom index %d out of range (%d atoms)", i, m.Len())
		}
		idx = append(idx, i)
	}
	switch len(idx) {
	case 2:
		d := mol.Distance(m.Atom(idx[0]).Position, m.Atom(idx[1]).Position)
		fmt.Printf("%.4f A\n", d)
	case 3:
		a := mol.Angle(m.Atom(idx[0]).Position, m.Atom(idx[1]).Position, m.Atom(idx[2]).Position)
		fmt.Printf("%.2f deg\n", a)
	case 4:
		d := mol.Dihedral(m.Atom(idx[0]).Position, m.Atom(idx[1]).Position,
			m.Atom(idx[2]).Position, m.Atom(idx[3]).Position)
		fmt.Printf("%.2f deg\n", d)
	}
	return nil
}

func runConvert(_ *cobra.Command, args []string) error {
	m, _, err := mol.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}
	switch mol.FormatFromExtension(args[1]) {
	case mol.FormatXYZ:
		return mol.XYZFileWrite(args[1], m)
	case mol.FormatPDB:
		return mol.PDBFileWrite(args[1], m)
	default:
		return fmt.Errorf("unsupported output format for %s (use .xyz or .pdb)", args[1])
	}
}

func main() {
	log.SetReportTimestamp(false)
	rootCmd.AddCommand(infoCmd, formulaCmd, measureCmd, convertCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
