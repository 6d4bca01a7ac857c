// Command sudokuchainsd drives the chaining engine from the command line:
// solve prints every hint found for a puzzle, explain prints only the best
// one, and serve exposes a live hint feed over HTTP/websocket plus a
// Prometheus /metrics endpoint.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mvsolver/sudokuchains/chaining"
	"mvsolver/sudokuchains/internal/grid"
	"mvsolver/sudokuchains/internal/rules"
)

var (
	cfgFile string
	logger  = logrus.New()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.WithError(err).Error("sudokuchainsd: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sudokuchainsd",
		Short: "Chaining inference engine for Sudoku solvers",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.sudokuchains.yaml)")
	cobra.OnInitialize(func() { initViper(cfgFile) })

	solveCmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Print every hint the configured engine finds for an 81-character puzzle line",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	explainCmd := &cobra.Command{
		Use:   "explain [puzzle]",
		Short: "Print only the single best hint for an 81-character puzzle line",
		Args:  cobra.ExactArgs(1),
		RunE:  runExplain,
	}
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live hint feed over HTTP/websocket, and Prometheus metrics on /metrics",
		RunE:  runServe,
	}
	serveCmd.Flags().String("addr", ":8090", "address to listen on")

	bindConfigFlags(root)
	root.AddCommand(solveCmd, explainCmd, serveCmd)
	return root
}

func buildEngine(runID string) (*chaining.Engine, error) {
	rc := loadRunConfig()
	workers := rc.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	settings := processSettings{numThreads: workers, mode: chaining.DeterministicMode}

	var aux []chaining.RuleProducer
	if rc.Level >= 1 {
		aux = append(aux,
			rules.NewLocking(false),
			rules.NewHiddenSet(2),
			rules.NewNakedSet(2),
			rules.NewFisherman(2),
		)
	}

	cfg := rc.toEngineConfig(aux)
	cfg.Logger = logger
	logger.WithField("run_id", runID).Debug("sudokuchainsd: starting engine run")

	return chaining.NewEngine(cfg, settings, cfg.Logger), nil
}

type printingSink struct {
	engine *chaining.Engine
	count  int
}

func (s *printingSink) Push(hint chaining.Hint) error {
	s.count++
	name := s.engine.GetCommonName(hint)
	if name == "" {
		name = fmt.Sprintf("%T", hint)
	}
	fmt.Printf("%2d. [%s, difficulty %.1f] %s\n", s.count, name, hint.Difficulty(), hint.String())
	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := grid.Parse(args[0])
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	engine, err := buildEngine(runID)
	if err != nil {
		return err
	}
	sink := &printingSink{engine: engine}
	if err := engine.GetHintsContext(context.Background(), g, sink); err != nil {
		return err
	}
	if sink.count == 0 {
		fmt.Println("no hints found")
	}
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	g, err := grid.Parse(args[0])
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	engine, err := buildEngine(runID)
	if err != nil {
		return err
	}
	hint, ok, err := engine.GetFirstHint(g)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no hints found")
		return nil
	}
	name := engine.GetCommonName(hint)
	if name == "" {
		name = fmt.Sprintf("%T", hint)
	}
	fmt.Printf("[%s, difficulty %.1f] %s\n", name, hint.Difficulty(), hint.String())
	return nil
}
