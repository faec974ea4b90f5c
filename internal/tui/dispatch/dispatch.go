// SPDX-License-Identifier: MPL-2.0

// Package dispatch implements the handler-selection priority rules and the
// message/event types that flow between the input, dispatcher, and
// renderer tasks described by the TUI's concurrency architecture.
package dispatch

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvigo/cl/internal/tui/state"
)

// InputMessage wraps a single terminal input event for the input->dispatcher
// channel.
type InputMessage struct {
	Key tea.KeyMsg
}

// EventKind names the class of effect an AppEvent carries.
type EventKind int

const (
	// EventNone performs no state mutation.
	EventNone EventKind = iota
	// EventQuit requests shutdown with no callback command.
	EventQuit
	// EventRunCallback requests shutdown, then running the selected command.
	EventRunCallback
	// EventEnterInsert switches to the Insert form.
	EventEnterInsert
	// EventEnterEdit switches to the Edit form for the selected command.
	EventEnterEdit
	// EventCycleNamespace moves the namespace selector by Delta.
	EventCycleNamespace
	// EventMoveSelection moves the selected row by Delta.
	EventMoveSelection
	// EventFocusQuery focuses or blurs the querybox.
	EventFocusQuery
	// EventQueryChanged routes Key into the querybox and recomputes the
	// filtered list from the resulting text.
	EventQueryChanged
	// EventRaiseDeletePopup raises the delete-confirmation popup for the
	// selected command.
	EventRaiseDeletePopup
	// EventYank copies the selected command's template to the clipboard
	// and starts the yank indicator.
	EventYank
	// EventShowHelp activates the help overlay.
	EventShowHelp
	// EventDismissHelp clears the help overlay.
	EventDismissHelp
	// EventPopupMove moves the active popup's choice by Delta.
	EventPopupMove
	// EventPopupConfirm runs the active popup's selected choice.
	EventPopupConfirm
	// EventPopupDismiss clears the active popup without running it.
	EventPopupDismiss
	// EventFormNextField / EventFormPrevField cycle form focus.
	EventFormNextField
	EventFormPrevField
	// EventFormSubmit validates and commits the Insert/Edit form.
	EventFormSubmit
	// EventFormCancel exits the form, raising a confirmation popup first
	// if the form is dirty.
	EventFormCancel
	// EventFormKey routes a key to the focused field's text widget.
	EventFormKey
)

// AppEvent is the dispatcher's verdict: what the renderer should apply to
// state on its next drain.
type AppEvent struct {
	Kind  EventKind
	Delta int
	Focus bool
	Query string
	Key   tea.KeyMsg
}

// Select picks the handler to run given a read-only state snapshot, per the
// priority rules: popup > help > querybox > view mode.
func Select(snap state.Snapshot) Handler {
	switch {
	case snap.PopupActive:
		return PopupHandler
	case snap.HelpShowing:
		return HelpHandler
	case snap.QueryFocused:
		return QueryboxHandler
	default:
		switch snap.ViewMode {
		case state.Insert, state.Edit:
			return FormHandler
		default:
			return MainHandler
		}
	}
}

// Handler maps a key message to an AppEvent, given only the read-only
// snapshot (never the locked State itself).
type Handler func(msg tea.KeyMsg, snap state.Snapshot) AppEvent

// Dispatch is the pure entry point used by both the dispatcher goroutine and
// tests: select a handler for the current snapshot and run it.
func Dispatch(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	return Select(snap)(msg, snap)
}
