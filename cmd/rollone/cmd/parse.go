package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/f3rmion/rollone/internal/tables"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file|-]",
	Short: "Print the tables found in text without rolling",
	Long: `Parse text and print the structure of every table found: its die size,
its header, and each outcome with its weight. Inline subtables appear
nested in place of the outcome that introduced them.

Example:
  rollone parse loot.txt
  rollone parse --format yaml --diagnostics < loot.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var (
	parseFormat      string
	parseDiagnostics bool
)

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format: json or yaml")
	parseCmd.Flags().BoolVar(&parseDiagnostics, "diagnostics", false, "include parser diagnostics in the output")
}

type parseOutput struct {
	Tables      []tables.Summary   `json:"tables" yaml:"tables"`
	Diagnostics []diagnosticOutput `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type diagnosticOutput struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
	Text    string `json:"text" yaml:"text"`
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseFormat != "json" && parseFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want json or yaml)", parseFormat)
	}

	e, err := setup()
	if err != nil {
		return err
	}
	defer e.logger.Sync()

	text, origin, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var diags tables.Collector
	src := e.parser(&diags).ParseSource(origin, text)

	out := parseOutput{Tables: make([]tables.Summary, 0, len(src.Tables))}
	for _, t := range src.Tables {
		out.Tables = append(out.Tables, t.Summary())
	}
	if parseDiagnostics {
		for _, d := range diags.Diagnostics() {
			out.Diagnostics = append(out.Diagnostics, diagnosticOutput{
				Kind:    d.Kind.String(),
				Message: d.Message,
				Text:    d.Text,
			})
		}
	}

	w := cmd.OutOrStdout()
	if parseFormat == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
