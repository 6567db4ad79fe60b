package domain

// State is the session store: the in-progress session, if any, and the
// completed history, most recent first. Every update returns a new State and
// leaves the receiver untouched.
type State struct {
	current *InProgress
	history []Completed
}

func NewState(history []Completed) State {
	return State{history: cloneHistory(history)}
}

func (s State) Tracking() bool {
	return s.current != nil
}

func (s State) Current() (InProgress, bool) {
	if s.current == nil {
		return InProgress{}, false
	}
	return *s.current, true
}

func (s State) History() []Completed {
	return cloneHistory(s.history)
}

func (s State) Len() int {
	return len(s.history)
}

func (s State) SetCurrent(session InProgress) State {
	next := s
	next.current = &session
	return next
}

func (s State) ClearCurrent() State {
	next := s
	next.current = nil
	return next
}

func (s State) PrependToHistory(session Completed) State {
	history := make([]Completed, 0, len(s.history)+1)
	history = append(history, session)
	history = append(history, s.history...)
	next := s
	next.history = history
	return next
}

func cloneHistory(history []Completed) []Completed {
	out := make([]Completed, len(history))
	copy(out, history)
	return out
}
