package histviz

// ScottFactor is the width factor of Scott's rule.
const ScottFactor = 3.49

// FalseAlarmP0 is the false alarm probability used by the Bayesian blocks
// prior.
const FalseAlarmP0 = 0.05

// DefaultFixedCount is the bin count used when no rule parameter is given.
const DefaultFixedCount = 10

// span bump for zero-variance samples, keeps edges strictly increasing;
// relativeSpan takes over once the data magnitude makes the absolute bump
// vanish below the ulp
const (
	degenerateSpan = 1e-9
	relativeSpan   = 1e-12
)
