package reactive

// DefaultMaxPasses is the pass budget of a single flush.
const DefaultMaxPasses = 100

// passBudget limits how many passes one flush may run. It protects against
// effects that keep invalidating each other (a write loop).
type passBudget struct {
	max  int
	used int
}

func newPassBudget(max int) *passBudget {
	if max <= 0 {
		max = DefaultMaxPasses
	}
	return &passBudget{max: max}
}

// reset starts a new flush.
func (b *passBudget) reset() {
	b.used = 0
}

// next consumes one pass. It returns false once the budget is exhausted.
func (b *passBudget) next() bool {
	if b.used >= b.max {
		return false
	}
	b.used++
	return true
}
