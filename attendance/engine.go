package attendance

import "sync"

// Engine runs the attendance rules for every poll against a Store. All
// reads that feed a capacity decision and the write that follows happen
// under a per-poll-date lock, so two racing votes can never both pass
// the same capacity check. Actions for different dates do not contend.
type Engine struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEngine(store Store) *Engine {
	return &Engine{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockDate acquires the serialization lock for one poll date and returns
// the release func.
func (e *Engine) lockDate(date string) func() {
	e.mu.Lock()
	l, ok := e.locks[date]
	if !ok {
		l = &sync.Mutex{}
		e.locks[date] = l
	}
	e.mu.Unlock()

	l.Lock()
	return l.Unlock
}
