package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"showroom/internal/config"
	"showroom/internal/container"
	"showroom/internal/demodata"
	"showroom/internal/profiling"
)

type globalFlags struct {
	source string
	sheet  string
	schema string
	json   bool
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "showroom-cli",
		Short:         "Inspect a dealership inventory spreadsheet from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.source, "source", "", "Inventory file path or URL (overrides INVENTORY_SOURCE)")
	rootCmd.PersistentFlags().StringVar(&flags.sheet, "sheet", "", "Worksheet name (overrides INVENTORY_SHEET)")
	rootCmd.PersistentFlags().StringVar(&flags.schema, "schema", "", "Column schema YAML (overrides SCHEMA_FILE)")
	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(
		newListCmd(flags),
		newShowCmd(flags),
		newSummaryCmd(flags),
		newSeedCmd(flags),
	)
	return rootCmd
}

func buildContainer(flags *globalFlags) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flags.source != "" {
		cfg.Data.Source = flags.source
	}
	if flags.sheet != "" {
		cfg.Data.SheetName = flags.sheet
	}
	if flags.schema != "" {
		cfg.Data.SchemaFile = flags.schema
	}
	// Keep the terminal clean unless the user asked for logs.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.Log.Level = "error"
	}
	return container.New(cfg)
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every vehicle in spreadsheet order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(flags)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			records, err := c.Inventory.Records(cmd.Context())
			if err != nil {
				return err
			}
			cards := c.Presenter.Cards(records)
			if flags.json {
				return writeJSON(cmd.OutOrStdout(), cards)
			}
			if len(cards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No vehicles available at this time.")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tVEHICLE\tPRICE\tMILEAGE\tCONDITION\tCOLOR")
			for _, card := range cards {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					dash(card.ID), dash(card.Title), dash(card.Price), dash(card.Mileage), dash(card.Condition), dash(card.Color))
			}
			return tw.Flush()
		},
	}
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one vehicle by stock number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("no vehicle specified")
			}

			c, err := buildContainer(flags)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			record, err := c.Inventory.Find(cmd.Context(), id)
			if err != nil {
				return err
			}
			detail := c.Presenter.Detail(record)
			if flags.json {
				return writeJSON(cmd.OutOrStdout(), detail)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", detail.Title, dash(detail.Price))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, f := range detail.Fields {
				fmt.Fprintf(tw, "%s\t%s\n", f.Label, dash(f.Value))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if len(detail.Images) == 0 {
				fmt.Fprintln(out, "\nNo images available")
			} else {
				fmt.Fprintf(out, "\nImages (%d):\n", len(detail.Images))
				for _, img := range detail.Images {
					fmt.Fprintf(out, "  %s\n", img)
				}
			}
			return nil
		},
	}
}

func newSummaryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print price and mileage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(flags)
			if err != nil {
				return err
			}
			defer c.Shutdown()

			records, err := c.Inventory.Records(cmd.Context())
			if err != nil {
				return err
			}
			summary := profiling.SummarizeInventory(records, c.Schema)
			if flags.json {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			view := c.Presenter.Summary(summary)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Vehicles: %d\n", view.Vehicles)
			if view.PriceRange != "" {
				fmt.Fprintf(out, "Price range: %s\nMedian price: %s\n", view.PriceRange, view.MedianPrice)
			}
			printStats(out, "Price", summary.Price)
			printStats(out, "Mileage", summary.Mileage)
			return nil
		},
	}
}

func newSeedCmd(flags *globalFlags) *cobra.Command {
	cfg := demodata.DefaultConfig()
	var out string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a deterministic demo inventory workbook",
		Long: `Write a demo inventory so the showroom can run without a real export.

Example: showroom-cli seed --out data/inventory.xlsx --rows 40 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.sheet != "" {
				cfg.SheetName = flags.sheet
			}
			ds, err := demodata.Generate(cfg)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(out); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			switch strings.ToLower(filepath.Ext(out)) {
			case ".csv":
				err = demodata.WriteCSV(out, ds)
			default:
				err = demodata.WriteXLSX(out, cfg.SheetName, ds)
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d vehicles to %s\n", len(ds.Rows), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "data/inventory.xlsx", "Output path (.xlsx or .csv)")
	cmd.Flags().IntVar(&cfg.Rows, "rows", cfg.Rows, "Number of vehicles")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	return cmd
}

func printStats(out io.Writer, label string, s profiling.NumericSummary) {
	if s.Count == 0 {
		fmt.Fprintf(out, "%s: no numeric values\n", label)
		return
	}
	fmt.Fprintf(out, "%s: n=%d min=%.0f q25=%.0f median=%.0f q75=%.0f max=%.0f mean=%.0f\n",
		label, s.Count, s.Min, s.Q25, s.Median, s.Q75, s.Max, s.Mean)
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
