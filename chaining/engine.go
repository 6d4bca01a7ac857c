package chaining

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Engine is one configured chaining engine instance. An Engine is not safe
// for concurrent GetHints calls from different grids at once (it owns a
// single save buffer and a single memoized grid/hint-list pair); parallel
// fan-out and recursive AdvancedExtension both work around this by giving
// every concurrent or nested user its own Engine (see newSiblingEngine,
// newNestedRuleProducer).
type Engine struct {
	config   Config
	settings Settings
	logger   *logrus.Logger

	saveGridOnce sync.Once
	saveGrid     GridView

	rulesOnce  sync.Once
	otherRules []RuleProducer

	mu        sync.Mutex
	lastGrid  GridView
	lastHints []Hint
}

// NewEngine builds an Engine. logger may be nil; a discard logger is used
// in that case so library callers never need to wire logging just to run
// tests.
func NewEngine(cfg Config, settings Settings, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(discardWriter{})
	}
	return &Engine{config: cfg, settings: settings, logger: logger}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func (e *Engine) ensureSaveGrid(grid GridView) {
	e.saveGridOnce.Do(func() {
		e.saveGrid = grid.Clone()
	})
}

// GetDifficulty returns this engine's difficulty score, or 0 if the
// configuration does not name a ratable difficulty.
func (e *Engine) GetDifficulty() float64 {
	d, err := e.config.Difficulty()
	if err != nil {
		return 0
	}
	return d
}

func (e *Engine) IsDynamic() bool  { return e.config.Dynamic }
func (e *Engine) IsNishio() bool   { return e.config.Nishio }
func (e *Engine) IsMultiple() bool { return e.config.Multiple }
func (e *Engine) Level() int       { return e.config.Level }

// String names this engine the way the original reports its own mode:
// Nishio and Dynamic names take priority over Multiple, which takes
// priority over the plain "Forcing Chains & Cycles" name.
func (e *Engine) String() string {
	switch {
	case e.config.Nishio:
		return "Nishio Forcing Chains"
	case e.config.Dynamic:
		return "Dynamic Forcing Chains" + nestedSuffix(e.config.Level)
	case e.config.Multiple:
		return "Multiple Forcing Chains"
	default:
		return "Forcing Chains & Cycles"
	}
}

func nestedSuffix(level int) string {
	switch {
	case level <= 0:
		return ""
	case level == 1:
		return " (+)"
	case level == 2:
		return " (+ Forcing Chains)"
	case level == 3:
		return " (+ Multiple Forcing Chains)"
	case level == 4:
		return " (+ Dynamic Forcing Chains)"
	default:
		return " (+ Dynamic Forcing Chains" + nestedSuffix(level-3) + ")"
	}
}

func shortNestedSuffix(level int) string {
	switch {
	case level <= 0:
		return ""
	case level < 4:
		return " (+)"
	case level == 4:
		return " (++)"
	default:
		return " (++" + shortNestedSuffix(level-3) + ")"
	}
}

// ShortName is String's abbreviated counterpart, used where a name must fit
// a narrow column (e.g. a CLI difficulty table): the nested suffix uses
// "(+)"/"(++)" markers instead of spelling out each nested level's name.
func (e *Engine) ShortName() string {
	switch {
	case e.config.Nishio:
		return "Nishio FC"
	case e.config.Dynamic:
		return "Dynamic FC" + shortNestedSuffix(e.config.Level)
	case e.config.Multiple:
		return "Multiple FC"
	default:
		return "FC & Cycles"
	}
}

// GetCommonName returns "X-Chain" or "Y-Chain" for hints produced by a
// plain (non-multiple, non-dynamic) engine's unary driver, and "" for every
// other hint or configuration — matching the original, which only names
// simple chains.
func (e *Engine) GetCommonName(hint Hint) string {
	if e.config.Dynamic || e.config.Multiple {
		return ""
	}
	switch h := hint.(type) {
	case *CycleHint:
		if h.IsXChain && !h.IsYChain {
			return "X-Chain"
		}
		return "Y-Chain"
	case *ForcingChainHint:
		if h.IsXChain && !h.IsYChain {
			return "X-Chain"
		}
		return "Y-Chain"
	default:
		return ""
	}
}

// GetHints runs the engine against grid and pushes every discovered hint,
// sorted and deduplicated, to sink. If grid equals the grid from the
// previous call, the cached hint list is replayed without recomputing.
func (e *Engine) GetHints(grid GridView, sink HintSink) error {
	return e.GetHintsContext(context.Background(), grid, sink)
}

// GetHintsContext is GetHints with explicit cancellation: ctx is checked
// cooperatively between sub-rule invocations, never inside a tight
// candidate-scanning loop.
func (e *Engine) GetHintsContext(ctx context.Context, grid GridView, sink HintSink) error {
	e.mu.Lock()
	if e.lastGrid != nil && grid.Equals(e.lastGrid) {
		cached := e.lastHints
		e.mu.Unlock()
		e.logger.WithField("memo", true).Debug("replaying cached hints for an unchanged grid")
		for _, h := range cached {
			if err := sink.Push(h); err != nil {
				return err
			}
		}
		return nil
	}
	e.mu.Unlock()

	e.ensureSaveGrid(grid)
	result, err := e.getHintList(ctx, grid)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.lastGrid = grid.Clone()
	e.lastHints = result
	e.mu.Unlock()

	for _, h := range result {
		if err := sink.Push(h); err != nil {
			return err
		}
		hintsEmitted.WithLabelValues(hintKind(h)).Inc()
	}
	return nil
}

// GetFirstHint returns only the single best hint, per the original's
// single-hint accumulation mode: the memoization cache retains only this
// one hint, not the full result list, so a later GetHints call on the same
// grid replays just this one hint instead of recomputing.
func (e *Engine) GetFirstHint(grid GridView) (Hint, bool, error) {
	e.mu.Lock()
	if e.lastGrid != nil && grid.Equals(e.lastGrid) && len(e.lastHints) > 0 {
		h := e.lastHints[0]
		e.mu.Unlock()
		return h, true, nil
	}
	e.mu.Unlock()

	e.ensureSaveGrid(grid)
	result, err := e.getHintList(context.Background(), grid)
	if err != nil {
		return nil, false, err
	}

	e.mu.Lock()
	e.lastGrid = grid.Clone()
	if len(result) > 0 {
		e.lastHints = result[:1]
	} else {
		e.lastHints = nil
	}
	e.mu.Unlock()

	if len(result) == 0 {
		return nil, false, nil
	}
	hintsEmitted.WithLabelValues(hintKind(result[0])).Inc()
	return result[0], true, nil
}

func (e *Engine) getHintList(ctx context.Context, grid GridView) ([]Hint, error) {
	var result []Hint
	var err error

	if e.config.Multiple || e.config.Dynamic {
		result, err = e.collectMultipleChainsHints(ctx, grid)
		if err != nil {
			return nil, err
		}
	} else {
		xLoops, err := e.getLoopHintList(ctx, grid, false, true)
		if err != nil {
			return nil, err
		}
		yLoops, err := e.getLoopHintList(ctx, grid, true, false)
		if err != nil {
			return nil, err
		}
		xyLoops, err := e.getLoopHintList(ctx, grid, true, true)
		if err != nil {
			return nil, err
		}
		result = append(result, xLoops...)
		result = append(result, yLoops...)
		result = append(result, xyLoops...)
	}

	if len(result) == 0 {
		return result, nil
	}
	return sortHints(dedupeHints(result)), nil
}

func (e *Engine) getLoopHintList(ctx context.Context, grid GridView, yChain, xChain bool) ([]Hint, error) {
	var result []Hint
	for i := Cell(0); i < 81; i++ {
		if grid.CellValue(i) != 0 {
			continue
		}
		if grid.Candidates(i).Count() <= 1 {
			continue
		}
		select {
		case <-ctx.Done():
			return nil, &ChainError{Kind: Cancelled, Message: "loop search cancelled", Cause: ctx.Err()}
		default:
		}
		for v := Digit(1); v <= 9; v++ {
			if !grid.HasCandidate(i, v) {
				continue
			}
			pOn := NewPotential(i, v, true)
			hints, err := e.doUnaryChaining(ctx, grid, pOn, yChain, xChain)
			if err != nil {
				return nil, err
			}
			result = append(result, hints...)
		}
	}
	return result, nil
}
