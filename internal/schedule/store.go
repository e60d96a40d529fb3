package schedule

import "github.com/google/uuid"

// Store holds the current schedule. Readers get a copy and writers replace the
// whole value, so a schedule handed out is never changed underneath its holder.
type Store struct {
	current Schedule
}

// NewStore returns a store holding s.
func NewStore(s Schedule) *Store {
	return &Store{current: s.Clone()}
}

// Get returns a copy of the current schedule.
func (st *Store) Get() Schedule {
	return st.current.Clone()
}

// Replace swaps in a new schedule.
func (st *Store) Replace(s Schedule) {
	st.current = s.Clone()
}

// NewClassID returns a fresh id for a class entry.
func NewClassID() string {
	return uuid.NewString()
}
