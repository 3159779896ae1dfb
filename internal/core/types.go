package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Automaton defines the contract a cellular automaton must implement to be
// driven by the scheduler and edited from the view.
type Automaton interface {
	Name() string
	Size() Size
	// Cells exposes the current per-cell state, row-major, valid until the
	// next Step or direct mutation.
	Cells() []uint8
	// Step advances the automaton by exactly one generation.
	Step()
	// Toggle flips the cell at (x, y) between dead and live.
	Toggle(x, y int)
	// Reset reseeds the board from the provided seed.
	Reset(seed int64)
	// Clear kills every cell.
	Clear()
}

// Factory constructs an Automaton using an optional configuration map.
type Factory func(cfg map[string]string) Automaton

var sims = map[string]Factory{}

// Register adds an automaton factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available automaton factories.
func Sims() map[string]Factory {
	return sims
}
