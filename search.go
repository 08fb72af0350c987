package digitsplit

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Report is a tree that came at least as close to the goal as every tree
// reported before it.
type Report struct {
	// Expr is the fully parenthesized tree, e.g. "((1+2)*3)".
	Expr string
	// Value is the value of the tree.
	Value float64
	// Error is the absolute difference between Value and the goal.
	Error float64
}

// String formats the report as "expr = value" with up to 18 significant
// digits in the value.
func (r Report) String() string {
	return r.Expr + " = " + strconv.FormatFloat(r.Value, 'g', 18, 64)
}

// Stats summarizes one run of a search.
type Stats struct {
	// Trees is the number of trees evaluated.
	Trees int
	// Reports is the number of reports made.
	Reports int
	// Best is the smallest error reported, or math.MaxFloat64 if nothing was
	// reported.
	Best float64
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
}

// Search is an exhaustive search over the trees of a digit string. It is not
// safe to use a Search concurrently, but separate searches are independent.
type Search struct {
	tree      Tree
	maxSplits int
	goal      float64
	ops       []Op
	log       zerolog.Logger
	observe   func(*Tree)

	// State of the current run.
	running   bool
	best      float64
	lastSplit int
	report    func(Report)
	stats     Stats
}

// NewSearch creates a search over digits using at most maxSplits operators,
// looking for values close to goal. digits must be a non-empty string of
// decimal digits and maxSplits must not be negative.
func NewSearch(digits string, maxSplits int, goal float64, opts ...Option) (*Search, error) {
	if err := checkDigits(digits); err != nil {
		return nil, err
	}
	if maxSplits < 0 {
		return nil, &SplitsError{Splits: maxSplits}
	}
	s := Search{
		tree:      Tree{digits: digits, a: newArena(len(digits))},
		maxSplits: maxSplits,
		goal:      goal,
		ops:       AllOps,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case opsopt:
			ops, err := canonicalOps(opt)
			if err != nil {
				return nil, err
			}
			s.ops = ops
		case logopt:
			s.log = zerolog.Logger(opt)
		case observeopt:
			s.observe = opt
		default:
			panic("digitsplit: unknown option type")
		}
	}
	return &s, nil
}

// Run searches every tree and calls report for each one whose value is at
// least as close to the goal as the best so far, ties included. Reports
// arrive in search order, so the sequence of errors never increases. Running
// the same search again produces the same reports.
func (s *Search) Run(report func(Report)) Stats {
	if s.running {
		panic("digitsplit: Run during Run")
	}
	s.running = true
	defer func() { s.running = false }()

	start := time.Now()
	a := s.tree.a
	a.reset()
	a.setLeaf(a.allocate(), Run{Digits: s.tree.digits})
	s.best = math.MaxFloat64
	s.lastSplit = 0
	s.report = report
	s.stats = Stats{}
	s.log.Debug().
		Str("digits", s.tree.digits).
		Int("splits", s.maxSplits).
		Float64("goal", s.goal).
		Str("ops", opString(s.ops)).
		Msg("search started")

	s.split(s.maxSplits)

	if a.used != 1 {
		panic("digitsplit: unbalanced search left " + strconv.Itoa(a.used) + " nodes in use")
	}
	a.release(1)
	s.report = nil
	s.stats.Best = s.best
	s.stats.Elapsed = time.Since(start)
	s.log.Debug().
		Int("trees", s.stats.Trees).
		Int("reports", s.stats.Reports).
		Float64("best", s.stats.Best).
		Dur("elapsed", s.stats.Elapsed).
		Msg("search finished")
	return s.stats
}

// split evaluates the current tree, then tries every way to split one more
// leaf while budget remains.
func (s *Search) split(budget int) {
	v := s.tree.Value()
	s.stats.Trees++
	if s.observe != nil {
		s.observe(&s.tree)
	}
	if e := math.Abs(v - s.goal); e <= s.best {
		s.best = e
		s.stats.Reports++
		r := Report{Expr: s.tree.String(), Value: v, Error: e}
		s.log.Trace().Str("expr", r.Expr).Float64("value", v).Float64("error", e).Msg("report")
		if s.report != nil {
			s.report(r)
		}
	}
	if budget == 0 {
		return
	}
	// Leaves left of the last split were already considered on this path.
	// Splitting them now would only reach the same trees in another order.
	a := s.tree.a
	for i := 0; i < a.used; i++ {
		l, ok := a.nodes[i].(*Leaf)
		if !ok || len(l.Digits) <= 1 || l.Offset < s.lastSplit {
			continue
		}
		s.splitLeaf(i, l.Run, budget)
	}
}

// splitLeaf replaces leaf i with each branch over every cut of run and every
// operator, searching below each. On return, i is the same leaf again.
func (s *Search) splitLeaf(i int, run Run, budget int) {
	a := s.tree.a
	saved := s.lastSplit
	s.lastSplit = run.Offset
	left, right := a.allocate(), a.allocate()
	defer func() {
		a.release(2)
		a.unsplit(i)
		s.lastSplit = saved
	}()
	for n := len(run.Digits) - 1; n > 0; n-- {
		a.setLeaf(left, Run{Digits: run.Digits[:n], Offset: run.Offset})
		a.setLeaf(right, Run{Digits: run.Digits[n:], Offset: run.Offset + n})
		for _, op := range s.ops {
			a.setBranch(i, op, left, right)
			s.split(budget - 1)
		}
	}
}

// Solve is a shortcut to create a search, run it, and collect its reports.
func Solve(digits string, maxSplits int, goal float64, opts ...Option) ([]Report, error) {
	s, err := NewSearch(digits, maxSplits, goal, opts...)
	if err != nil {
		return nil, err
	}
	var r []Report
	s.Run(func(rep Report) { r = append(r, rep) })
	return r, nil
}

func opString(ops []Op) string {
	var b strings.Builder
	for _, op := range ops {
		b.WriteByte(op.Symbol())
	}
	return b.String()
}
