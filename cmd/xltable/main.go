// Package main provides the CLI entry point for xltable.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xltable/pkg/xltable"
	"github.com/ukaji3/xltable/pkg/xltable/models"
	"github.com/ukaji3/xltable/pkg/xltable/output"
	"github.com/ukaji3/xltable/pkg/xltable/parser"
)

var (
	outputPath string
	pretty     bool
	compat     bool
	rowSizing  string
	cropRange  string
	charset    string
	sheetsDir  string
	verbose    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xltable",
		Short: "Convert spreadsheets to and from row/column tables",
		Long: `xltable decodes xls and xlsx workbooks into JSON tables
and encodes JSON tables back into xlsx workbooks.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&compat, "compat", false, "Log and swallow failures instead of exiting with an error")

	decodeCmd := &cobra.Command{
		Use:   "decode [input.xlsx]",
		Short: "Decode a workbook into JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	decodeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	decodeCmd.Flags().StringVar(&rowSizing, "row-sizing", "", "Row length: cells or sheet-rows")
	decodeCmd.Flags().StringVar(&cropRange, "range", "", "Only keep cells inside this range, e.g. A1:D10")
	decodeCmd.Flags().StringVar(&charset, "charset", xltable.DefaultCharset, "Text encoding of legacy xls files")
	decodeCmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")

	encodeCmd := &cobra.Command{
		Use:   "encode [table.json] [output.xlsx]",
		Short: "Encode a JSON table into an xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE:  runEncode,
	}

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that a file exists and looks like a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print sheet names, row counts and used ranges",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&charset, "charset", xltable.DefaultCharset, "Text encoding of legacy xls files")

	rootCmd.AddCommand(decodeCmd, encodeCmd, checkCmd, inspectCmd)
	return rootCmd
}

func options() (xltable.Options, error) {
	opts := xltable.DefaultOptions()
	if compat {
		opts = xltable.CompatOptions()
	}
	switch xltable.RowSizing(rowSizing) {
	case "":
	case xltable.RowSizingCells, xltable.RowSizingSheetRows:
		opts.RowSizing = xltable.RowSizing(rowSizing)
	default:
		return opts, fmt.Errorf("invalid row sizing: %s (must be cells or sheet-rows)", rowSizing)
	}
	opts.Charset = charset
	opts.Logger = logrus.StandardLogger()
	return opts, nil
}

func runDecode(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if !compat {
		if err := xltable.CheckExists(inputPath); err != nil {
			return err
		}
	}

	opts, err := options()
	if err != nil {
		return err
	}

	table, err := xltable.Decode(inputPath, opts)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if table == nil {
		table = models.NewTable()
	}

	if cropRange != "" {
		b := parser.ParseRef(cropRange)
		if b == nil {
			return fmt.Errorf("invalid range: %s", cropRange)
		}
		for i := range table.Sheets {
			table.Sheets[i].Rows = parser.Crop(table.Sheets[i].Rows, *b)
			table.Sheets[i].Range = ""
		}
	}

	jsonData, err := output.ToJSON(table, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := writeSheetFiles(table, sheetsDir); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
	}

	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	inputPath, targetPath := args[0], args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read table: %w", err)
	}
	table, err := output.FromJSON(data)
	if err != nil {
		return fmt.Errorf("invalid table: %w", err)
	}

	opts, err := options()
	if err != nil {
		return err
	}
	if _, err := xltable.Encode(table, targetPath, opts); err != nil {
		return fmt.Errorf("encode failed: %w", err)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	if err := xltable.CheckExists(path); err != nil {
		return err
	}
	if err := xltable.CheckExtension(path); err != nil {
		return err
	}
	format, err := xltable.DetectFormat(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, format)
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}
	table, err := xltable.Decode(args[0], opts)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if table == nil {
		return nil
	}
	out := cmd.OutOrStdout()
	for _, sheet := range table.Sheets {
		if sheet.Missing {
			fmt.Fprintln(out, "<missing sheet>")
			continue
		}
		values := 0
		if b := parser.DataBounds(sheet.Rows); b != nil {
			values = parser.CountValues(sheet.Rows, *b)
		}
		fmt.Fprintf(out, "%s\trows=%d\tvalues=%d\trange=%s\n", sheet.Name, len(sheet.Rows), values, sheet.Range)
	}
	return nil
}

func writeSheetFiles(table *models.Table, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range table.Sheets {
		sheet := &table.Sheets[i]
		if sheet.Missing {
			continue
		}
		jsonData, err := output.SheetToJSON(sheet, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, sheet.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
