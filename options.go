package digitsplit

import (
	"github.com/rs/zerolog"
)

// Option is an option used when creating a search.
type Option interface {
	searchOption()
}

type (
	opsopt     []Op
	logopt     zerolog.Logger
	observeopt func(*Tree)
)

func (opsopt) searchOption()     {}
func (logopt) searchOption()     {}
func (observeopt) searchOption() {}

// WithOps restricts the operators the search tries. Whatever order they are
// given in, they are tried in the order of AllOps.
func WithOps(ops ...Op) Option {
	return opsopt(ops)
}

// WithLogger sets a logger for search progress. Starting and finishing are
// logged at debug level and each report at trace level. By default a search
// logs nothing.
func WithLogger(log zerolog.Logger) Option {
	return logopt(log)
}

// Observe sets a function to call with every tree the search evaluates, in
// search order, before the tree is compared with the goal. The tree must not
// be retained after f returns.
func Observe(f func(*Tree)) Option {
	return observeopt(f)
}

// canonicalOps checks ops and returns them in search order.
func canonicalOps(ops []Op) ([]Op, error) {
	var seen [numOps]bool
	for _, op := range ops {
		if !op.valid() {
			return nil, &OpError{Op: op.String()}
		}
		if seen[op] {
			return nil, &OpError{Op: string(op.Symbol()), Duplicate: true}
		}
		seen[op] = true
	}
	r := make([]Op, 0, len(ops))
	for _, op := range AllOps {
		if seen[op] {
			r = append(r, op)
		}
	}
	if len(r) == 0 {
		return nil, &OpError{}
	}
	return r, nil
}
