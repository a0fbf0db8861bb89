// Package cli builds the gridpath command tree.
//
// Command structure:
//
//	gridpath                      # root
//	├── search                    # one query, prints the route
//	├── batch                     # all queries of a YAML scenario
//	├── serve                     # HTTP /search and /metrics
//	├── --config, -c              # YAML config file
//	└── --version
//
// Flags given on the command line override values from the config file.
// Diagnostics go to the standard logger; results go to the command's output.
package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/gridio"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/metrics"
)

// Version is reported by --version.
var Version = "dev"

// app carries state shared by the subcommands of one command tree.
type app struct {
	configFile string
	cfg        *config.Config
}

// BuildCLI returns the root command.
func BuildCLI() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gridpath",
		Short: "gridpath: A* path planning on occupancy grids",
		Long: `gridpath finds lowest-cost routes between two cells of a 2D grid
using A* with 8-directional movement (straight steps cost 1, diagonal steps √2).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file path (YAML)")

	rootCmd.AddCommand(a.buildSearchCommand())
	rootCmd.AddCommand(a.buildBatchCommand())
	rootCmd.AddCommand(a.buildServeCommand())

	return rootCmd
}

// searchFlags are the per-invocation overrides of the config's search section.
type searchFlags struct {
	mode          string
	heuristic     string
	maxExpansions int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "termination mode: eager | extract")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "heuristic: euclidean | octile | zero")
	cmd.Flags().IntVar(&f.maxExpansions, "max-expansions", 0, "stop after N expansions (0 = unlimited)")
}

// apply copies changed flags into cfg and revalidates it.
func (f *searchFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	if cmd.Flags().Changed("mode") {
		cfg.Search.Mode = f.mode
	}
	if cmd.Flags().Changed("heuristic") {
		cfg.Search.Heuristic = f.heuristic
	}
	if cmd.Flags().Changed("max-expansions") {
		cfg.Search.MaxExpansions = f.maxExpansions
	}

	return cfg.Validate()
}

func (a *app) buildSearchCommand() *cobra.Command {
	var (
		gridFile string
		srcArg   string
		destArg  string
		showMap  bool
		flags    searchFlags
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find a route between two cells",
		Example: `  gridpath search --grid map.txt --src 8,0 --dest 0,0
  gridpath search --grid map.yaml --src 8,0 --dest 0,0 --mode extract --map`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			g, err := gridio.LoadGrid(gridFile)
			if err != nil {
				return fmt.Errorf("failed to load grid: %w", err)
			}
			src, err := gridio.ParseCoordinate(srcArg)
			if err != nil {
				return err
			}
			dest, err := gridio.ParseCoordinate(destArg)
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := astar.Search(g, src, dest, a.cfg.SearchOptions()...)
			if err != nil {
				return err
			}
			var path []grid.Coordinate
			if res.Outcome == astar.FoundPath {
				path = astar.ReconstructPath(res, dest)
			}
			log.Printf("search %v -> %v: %s, expanded %d cells in %s", src, dest, res.Outcome, res.Expanded, time.Since(start))
			if res.Truncated {
				log.Printf("search stopped at the expansion limit (%d)", a.cfg.Search.MaxExpansions)
			}

			out := cmd.OutOrStdout()
			if err := gridio.WriteResult(out, res.Outcome, path); err != nil {
				return err
			}
			if showMap {
				fmt.Fprintln(out)
				return gridio.RenderMap(out, g, path, src, dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&gridFile, "grid", "g", "", "grid file (.txt or .yaml)")
	cmd.Flags().StringVar(&srcArg, "src", "", "source cell as row,col")
	cmd.Flags().StringVar(&destArg, "dest", "", "destination cell as row,col")
	cmd.Flags().BoolVar(&showMap, "map", false, "draw the grid with the route")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("grid")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func (a *app) buildBatchCommand() *cobra.Command {
	var (
		scenarioFile string
		workers      int
		flags        searchFlags
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query of a YAML scenario",
		Long:  "Run every query of a YAML scenario concurrently against its shared grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				a.cfg.Batch.Workers = workers
			}
			sc, err := gridio.LoadScenario(scenarioFile)
			if err != nil {
				return fmt.Errorf("failed to load scenario: %w", err)
			}

			start := time.Now()
			results := gridio.RunBatch(cmd.Context(), sc.Grid, sc.Queries, a.cfg.Batch.Workers, a.cfg.SearchOptions()...)
			log.Printf("batch: %d queries in %s", len(results), time.Since(start))

			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "%s\terror: %v\n", r.Query.Name, r.Err)
					continue
				}
				if r.Outcome == astar.FoundPath {
					fmt.Fprintf(out, "%s\t%s\tcost=%.3f\tcells=%d\texpanded=%d\n",
						r.Query.Name, r.Outcome, r.Cost, len(r.Path), r.Expanded)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\texpanded=%d\n", r.Query.Name, r.Outcome, r.Expanded)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioFile, "scenario", "s", "", "scenario file (YAML)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent searches (0 = one per CPU)")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

func (a *app) buildServeCommand() *cobra.Command {
	var (
		addr  string
		flags searchFlags
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /search and /metrics over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(cmd, a.cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				a.cfg.Metrics.Addr = addr
			}
			var collector *metrics.Collector
			if a.cfg.Metrics.Enabled {
				collector = metrics.NewCollector()
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return serve(ctx, a.cfg, collector)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config metrics.addr)")
	flags.register(cmd)

	return cmd
}
