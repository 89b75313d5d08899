package nav

// DefaultFailureRate is the share of connection attempts that fail.
const DefaultFailureRate = 0.1

// RandomSource yields values in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts a plain function such as rand.Float64.
type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }

// Outcome draws once from src and picks the connecting result: success when
// the draw is strictly greater than failureRate.
func Outcome(src RandomSource, failureRate float64) EventKind {
	if src.Float64() > failureRate {
		return EventConnectingComplete
	}
	return EventConnectingError
}
