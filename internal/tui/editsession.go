package tui

import (
	"errors"

	"nbntrack/internal/model"
)

// EditMode is the state of one kind's edit session.
type EditMode int

const (
	ModeIdle EditMode = iota
	ModeCreating
	ModeEditing
)

// EditSessions tracks one edit session per resource kind. A kind is
// either idle or has exactly one open create/edit session; opening a
// new session replaces any existing one, discarding its state. The
// session pins the record id so a save after a background refresh
// still targets the right record.
type EditSessions struct {
	state map[model.Kind]EditMode
	ids   map[model.Kind]string
}

// NewEditSessions returns an all-idle controller.
func NewEditSessions() *EditSessions {
	return &EditSessions{
		state: make(map[model.Kind]EditMode),
		ids:   make(map[model.Kind]string),
	}
}

// Mode returns the kind's current mode.
func (s *EditSessions) Mode(kind model.Kind) EditMode {
	return s.state[kind]
}

// EditingID returns the record id of an open edit session, or "".
func (s *EditSessions) EditingID(kind model.Kind) string {
	return s.ids[kind]
}

// BeginCreate opens a create session for the kind, replacing any open
// session.
func (s *EditSessions) BeginCreate(kind model.Kind) {
	s.state[kind] = ModeCreating
	delete(s.ids, kind)
}

// BeginEdit opens an edit session pinned to a record id, replacing any
// open session.
func (s *EditSessions) BeginEdit(kind model.Kind, id string) error {
	if id == "" {
		return errors.New("edit session needs a record id")
	}
	s.state[kind] = ModeEditing
	s.ids[kind] = id
	return nil
}

// End closes the kind's session, whether saved or cancelled.
func (s *EditSessions) End(kind model.Kind) {
	s.state[kind] = ModeIdle
	delete(s.ids, kind)
}

// AnyActive reports whether any kind has an open session.
func (s *EditSessions) AnyActive() bool {
	for _, m := range s.state {
		if m != ModeIdle {
			return true
		}
	}
	return false
}
