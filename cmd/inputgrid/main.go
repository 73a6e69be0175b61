// Package main provides the CLI entry point for inputgrid.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/grid"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/layout"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/output"
	"github.com/ukaji3/inputgrid-go/pkg/inputgrid/parser"
	"github.com/xuri/excelize/v2"
)

var (
	encodePath string
	outputPath string
	layoutPath string
	sheetName  string
	pretty     bool
	typed      bool
	lenient    bool
	verbose    bool
)

func main() {
	// A missing .env is fine; flags and the environment still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: .env: %v\n", err)
	}

	rootCmd := &cobra.Command{
		Use:   "inputgrid",
		Short: "Write and read engineering input grids",
		Long: `inputgrid writes materials, members, analyzed combinations and section
profiles into a single-sheet xlsx grid, and reads that grid back as JSON.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", os.Getenv("INPUTGRID_LAYOUT"), "YAML layout descriptor (default: built-in layout)")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", os.Getenv("INPUTGRID_SHEET"), "Override the layout sheet name")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log each section")

	encodeCmd := &cobra.Command{
		Use:   "encode [input.json]",
		Short: "Encode typed JSON input into an xlsx grid",
		Args:  cobra.ExactArgs(1),
		RunE:  runEncode,
	}
	encodeCmd.Flags().StringVarP(&encodePath, "output", "o", "Input.xlsx", "Output workbook path")

	decodeCmd := &cobra.Command{
		Use:   "decode [input.xlsx]",
		Short: "Decode an xlsx grid into JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDecode,
	}
	decodeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	decodeCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	decodeCmd.Flags().BoolVar(&typed, "typed", false, "Include typed models rebuilt from the records")
	decodeCmd.Flags().BoolVar(&lenient, "lenient", false, "Skip rows that fail coercion instead of failing")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Show where each section was found",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the layout descriptor as YAML",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}

	rootCmd.AddCommand(encodeCmd, decodeCmd, inspectCmd, layoutCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func options() (inputgrid.Options, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := inputgrid.Options{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
	l, err := loadLayout()
	if err != nil {
		return opts, err
	}
	opts.Layout = l
	if lenient {
		opts.Lenient = &lenient
	}
	return opts, nil
}

func loadLayout() (*layout.Layout, error) {
	l := layout.Default()
	if layoutPath != "" {
		var err error
		if l, err = layout.LoadFile(layoutPath); err != nil {
			return nil, fmt.Errorf("load layout: %w", err)
		}
	}
	if sheetName != "" {
		l.Sheet = sheetName
	}
	return l, nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	in, err := output.InputFromJSON(data)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	opts, err := options()
	if err != nil {
		return err
	}
	return inputgrid.Encode(encodePath, in, opts)
}

func runDecode(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}
	res, err := inputgrid.Decode(args[0], opts)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	jsonData, err := output.ToJSON(res, typed, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := atomic.WriteFile(outputPath, bytes.NewReader(jsonData)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	f, err := excelize.OpenFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	raw, err := grid.ReadRaw(f, l.Sheet)
	if err != nil {
		return err
	}
	blocks, err := parser.Inventory(raw, l)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, b := range blocks {
		if !b.Found {
			fmt.Fprintf(out, "%-14s %-24q not found\n", b.Section, b.Title)
			continue
		}
		fmt.Fprintf(out, "%-14s %-24q %-10s rows=%d width=%d\n", b.Section, b.Title, b.Range, b.Rows, b.Width)
	}
	if used, err := parser.DataBounds(raw); err == nil && used != "" {
		fmt.Fprintf(out, "used range: %s\n", used)
	}
	if area, ok := parser.PrintArea(f, l.Sheet); ok {
		fmt.Fprintf(out, "print area: rows %d-%d, columns %d-%d\n", area.R1, area.R2, area.C1, area.C2)
	}
	return nil
}

func runLayout(cmd *cobra.Command, args []string) error {
	l, err := loadLayout()
	if err != nil {
		return err
	}
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
