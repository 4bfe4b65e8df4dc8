// Package vertex: options, status and diagnostic reason types.
package vertex

// Status reports how a solve concluded.
//
//   - Solved   — the linear system was solved; the result is the genuine
//     minimizer of the (regularized) quadric objective.
//   - FellBack — the system could not be solved; the reference vertex was
//     substituted. The output is still a complete homogeneous point.
type Status int

const (
	// Solved: the returned position came out of the decomposition.
	Solved Status = iota

	// FellBack: the returned position is the reference vertex v0 with w=1.
	FellBack
)

// Reason identifies the numerical edge case that triggered a fallback or a
// degraded solution. Delivered through Options.Hook; purely diagnostic.
type Reason int

const (
	// ReasonSingular — the 4×4 constrained system is not invertible.
	ReasonSingular Reason = iota

	// ReasonDegenerateW — the solved homogeneous coordinate was within
	// HomogeneousEps of zero, so the solution has no finite normalization.
	ReasonDegenerateW

	// ReasonRankDeficient — the 3×3 regularized system is rank deficient;
	// the minimum-norm least-squares solution was returned instead.
	ReasonRankDeficient

	// ReasonFactorizationFailed — the SVD did not converge (not observed
	// for finite inputs); the reference vertex was substituted.
	ReasonFactorizationFailed
)

// DefaultHomogeneousEps is the tolerance under which a solved homogeneous
// coordinate is considered zero and the solve falls back to v0.
const DefaultHomogeneousEps = 1e-10

// Options configures the solver.
//
// Fields:
//   - HomogeneousEps — |w| at or below this is treated as degenerate in
//     the 4×4 constrained solve. Values ≤ 0 fall back to
//     DefaultHomogeneousEps.
//   - Hook — optional diagnostic callback, invoked at most once per solve
//     when a numerical edge case occurs. Nil disables diagnostics. Hooks
//     must not assume any particular goroutine; the solver calls them
//     synchronously.
type Options struct {
	HomogeneousEps float64
	Hook           func(Reason)
}

// DefaultOptions returns the canonical solver configuration.
func DefaultOptions() Options {
	return Options{HomogeneousEps: DefaultHomogeneousEps}
}

// eps returns the effective homogeneous tolerance.
func (o *Options) eps() float64 {
	if o == nil || o.HomogeneousEps <= 0 {
		return DefaultHomogeneousEps
	}
	return o.HomogeneousEps
}

// notify fires the diagnostic hook, if any.
func (o *Options) notify(r Reason) {
	if o != nil && o.Hook != nil {
		o.Hook(r)
	}
}
