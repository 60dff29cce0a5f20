package progression

import "sync"

// Engine evaluates snapshots against a validated set of tables. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	l *ladders
}

// New validates tables and builds an Engine. Table violations are programmer
// errors and should stop the process at startup.
func New(tables Tables) (*Engine, error) {
	l, err := tables.build()
	if err != nil {
		return nil, err
	}
	return &Engine{l: l}, nil
}

// MustNew is New that panics on invalid tables.
func MustNew(tables Tables) *Engine {
	e, err := New(tables)
	if err != nil {
		panic("progression: " + err.Error())
	}
	return e
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return MustNew(DefaultTables())
})

// Default returns the engine over DefaultTables.
func Default() *Engine {
	return defaultEngine()
}

// Tables returns a copy of the tables the engine was built from.
func (e *Engine) Tables() Tables {
	return Tables{
		Ranks:      e.l.ranks.Entries(),
		Flames:     e.l.flames.Entries(),
		Belts:      e.l.belts.Entries(),
		Milestones: e.l.milestones.Entries(),
	}
}
