package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/RianAsmara/lost-beacons/agent"
	"github.com/RianAsmara/lost-beacons/config"
	"github.com/RianAsmara/lost-beacons/sim"
	"github.com/RianAsmara/lost-beacons/trace"
)

func loadTuning(g *globalFlags) (config.Tuning, error) {
	t := config.DefaultTuning()
	if g.tuning != "" {
		var err error
		if t, err = config.LoadTuning(g.tuning); err != nil {
			return config.Tuning{}, err
		}
	}
	if g.debug {
		t.Debug = true
	}
	return t, nil
}

func runCmd(g *globalFlags) *cobra.Command {
	var (
		scenarioPath string
		seed         int64
		tracePath    string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one skirmish and report the outcome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			t, err := loadTuning(g)
			if err != nil {
				return err
			}
			return runOnce(cmd, sc, t, seed, tracePath)
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "assets/skirmish.yaml", "scenario YAML file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&tracePath, "trace", "", "write a decision trace to this file")
	return cmd
}

// runOnce plays sc and prints the result. With a trace path every decision
// and the final outcome are recorded; the trace file's close error is
// reported like any write error.
func runOnce(cmd *cobra.Command, sc *sim.Scenario, t config.Tuning, seed int64, tracePath string) (err error) {
	var opts []sim.Option
	var tw *trace.Writer
	if tracePath != "" {
		f, createErr := os.Create(tracePath)
		if createErr != nil {
			return fmt.Errorf("create trace: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close trace: %w", cerr)
			}
		}()
		tw = trace.NewWriter(f)
		opts = append(opts, sim.WithObserver(func(ev agent.Event) {
			if err := tw.Decision(ev); err != nil {
				slog.Warn("trace write failed", "error", err)
			}
		}))
	}

	s, err := sim.New(sc, t, seed, opts...)
	if err != nil {
		return err
	}
	res, err := s.Run(cmd.Context())
	if err != nil {
		return err
	}
	if tw != nil {
		if err := tw.Outcome(res); err != nil {
			return fmt.Errorf("write outcome: %w", err)
		}
	}
	return printJSON(cmd, res)
}

func batchCmd(g *globalFlags) *cobra.Command {
	var (
		scenarioPath string
		seed         int64
		runs         int
		workers      int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Play many seeded skirmishes in parallel and aggregate outcomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sim.LoadScenario(scenarioPath)
			if err != nil {
				return err
			}
			t, err := loadTuning(g)
			if err != nil {
				return err
			}
			sum, err := sim.RunBatch(cmd.Context(), sc, t, seed, runs, workers)
			if err != nil {
				return err
			}
			return printJSON(cmd, sum)
		},
	}
	cmd.Flags().StringVar(&scenarioPath, "scenario", "assets/skirmish.yaml", "scenario YAML file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed of the first run")
	cmd.Flags().IntVarP(&runs, "n", "n", 20, "number of runs")
	cmd.Flags().IntVar(&workers, "workers", 4, "runs in flight at once")
	return cmd
}

func replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <trace>",
		Short: "Print the decisions and outcome recorded in a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open trace: %w", err)
			}
			defer f.Close()

			n, err := trace.Replay(f, map[string]trace.Handler{
				trace.TypeDecision: func(env trace.Envelope) error {
					var ev agent.Event
					if err := json.Unmarshal(env.Data, &ev); err != nil {
						return err
					}
					slog.Info("decision",
						"elapsed", ev.Elapsed,
						"unit", ev.UnitID,
						"kind", ev.Kind,
						"decision", ev.Decision,
						"previous", ev.Previous,
						"reason", ev.Reason,
					)
					return nil
				},
				trace.TypeOutcome: func(env trace.Envelope) error {
					var res sim.Result
					if err := json.Unmarshal(env.Data, &res); err != nil {
						return err
					}
					return printJSON(cmd, res)
				},
			})
			if err != nil {
				return err
			}
			slog.Info("replay finished", "records", n)
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
