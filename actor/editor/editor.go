// Package editor provides the interactive removal path for duplicate
// actors found while a world is being edited rather than simulated.
// Instead of destroying the duplicate directly, the Subsystem routes the
// deletion through editor-style selection bookkeeping and shows the user
// a notice explaining what happened.
package editor

import (
	"go.uber.org/zap"

	"github.com/plus3/highlander/actor"
)

const (
	defaultNoticeTitle = "Duplicate Removed"
	defaultNoticeBody  = "A duplicate instance was found and has been removed.\n" +
		"This world already has a live instance of the same kind.\n" +
		"(check the log for details)"
)

// Notice resolves the title and body for an actor's removal notice,
// honoring the actor's NoticeProvider override when present.
func Notice(a actor.Actor) (title, body string) {
	if p, ok := a.(actor.NoticeProvider); ok {
		return p.NoticeTitle(), p.NoticeBody()
	}
	return defaultNoticeTitle, defaultNoticeBody
}

// Notifier receives the notice shown when a duplicate is removed.
type Notifier interface {
	Notify(title, body string)
}

// LogNotifier routes notices to a logger, for headless editing sessions.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n LogNotifier) Notify(title, body string) {
	if n.Logger == nil {
		return
	}
	n.Logger.Info("editor notice",
		zap.String("title", title),
		zap.String("body", body))
}

// Subsystem stands in for an editor's actor-management facilities: a
// selection set, a focused actor (the details panel), and removal
// notices. It implements actor.RemovalStrategy and is meant to be
// installed on edit-mode worlds via actor.WithEditorRemoval.
type Subsystem struct {
	notifier  Notifier
	selection []actor.Actor
	focused   actor.Actor
}

// NewSubsystem creates a subsystem delivering notices to n. A nil
// Notifier drops notices.
func NewSubsystem(n Notifier) *Subsystem {
	return &Subsystem{notifier: n}
}

// Select adds the actor to the selection set and focuses it.
func (s *Subsystem) Select(a actor.Actor) {
	if a == nil {
		return
	}
	s.selection = append(s.selection, a)
	s.focused = a
}

// Selected returns the current selection set.
func (s *Subsystem) Selected() []actor.Actor {
	return s.selection
}

// Focused returns the actor shown in the details panel, if any.
func (s *Subsystem) Focused() actor.Actor {
	return s.focused
}

// ClearSelection empties the selection set. The focused actor is kept;
// use SelectNothing to drop that too.
func (s *Subsystem) ClearSelection() {
	s.selection = nil
}

// SelectNothing empties the selection set and drops the focused actor.
func (s *Subsystem) SelectNothing() {
	s.selection = nil
	s.focused = nil
}

// DeleteSelected destroys every selected actor through the world and
// marks the editing session dirty. The selection set is cleared; the
// focused actor is not, so the details panel keeps showing the deleted
// object until something clears it.
func (s *Subsystem) DeleteSelected(w *actor.World) {
	for _, a := range s.selection {
		w.Destroy(a)
	}
	s.selection = nil
	w.MarkDirty()
}

// Remove implements actor.RemovalStrategy: notify the user, then delete
// the duplicate through the selection machinery rather than destroying
// it directly, and clear the lingering focus one tick later.
//
// Known caveats: the editing session is marked dirty even though no
// persistent change happened; an undo performed after the deletion
// resurrects the duplicate; side effects the duplicate caused before
// removal are not rolled back.
func (s *Subsystem) Remove(w *actor.World, a actor.Actor) {
	title, body := Notice(a)
	if s.notifier != nil {
		s.notifier.Notify(title, body)
	}
	s.ClearSelection()
	s.Select(a)
	s.DeleteSelected(w)
	w.Defer(s.SelectNothing)
}
