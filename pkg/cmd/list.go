package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/smy-101/skillcheck/internal/constants"
	"github.com/smy-101/skillcheck/internal/scanner"
	"github.com/smy-101/skillcheck/internal/validate"
	"github.com/spf13/cobra"
)

const (
	colName        = "Name"
	colDomain      = "Domain"
	colDescription = "Description"
	colPath        = "Path"
	emptyMsg       = "No skills found."
	maxDescWidth   = 60
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list <path>",
	Short: "List the skills discovered under a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeList(cmd.OutOrStdout(), args[0])
	},
}

// executeList discovers skills under root and displays them as a table.
func executeList(out io.Writer, root string) error {
	dirs, err := scanner.New(root).Discover()
	if err != nil {
		return err
	}

	if len(dirs) == 0 {
		fmt.Fprintln(out, emptyMsg)
		return nil
	}

	cnf := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
	}

	table := tablewriter.NewTable(out, tablewriter.WithConfig(cnf))
	table.Header(colName, colDomain, colDescription, colPath)

	for _, dir := range dirs {
		table.Append(filepath.Base(dir), domainOf(root, dir), describe(dir), dir)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d skills\n", len(dirs))

	return nil
}

// domainOf returns the domain directory name, or "-" when root is the skill itself.
func domainOf(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return "-"
	}
	return filepath.Dir(rel)
}

// describe reads the description from SKILL.md, best effort.
func describe(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, constants.SkillFileName))
	if err != nil {
		return ""
	}
	meta, _, err := validate.ParseMetadata(string(data))
	if err != nil {
		return ""
	}
	desc := []rune(meta.Description)
	if len(desc) > maxDescWidth {
		return string(desc[:maxDescWidth-3]) + "..."
	}
	return string(desc)
}
