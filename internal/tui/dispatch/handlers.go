// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvigo/cl/internal/tui/state"
)

// MainHandler implements the main screen's key map.
func MainHandler(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return AppEvent{Kind: EventQuit}
	case "f", "/":
		return AppEvent{Kind: EventFocusQuery, Focus: true}
	case "h", "left", "shift+tab":
		return AppEvent{Kind: EventCycleNamespace, Delta: -1}
	case "l", "right", "tab":
		return AppEvent{Kind: EventCycleNamespace, Delta: 1}
	case "j", "down":
		return AppEvent{Kind: EventMoveSelection, Delta: 1}
	case "k", "up":
		return AppEvent{Kind: EventMoveSelection, Delta: -1}
	case "i", "insert":
		return AppEvent{Kind: EventEnterInsert}
	case "e":
		return AppEvent{Kind: EventEnterEdit}
	case "d", "delete":
		return AppEvent{Kind: EventRaiseDeletePopup}
	case "enter":
		return AppEvent{Kind: EventRunCallback}
	case "y":
		return AppEvent{Kind: EventYank}
	case "f1", "?":
		return AppEvent{Kind: EventShowHelp}
	default:
		return AppEvent{Kind: EventNone}
	}
}

// QueryboxHandler routes keys while the querybox has focus. Esc/Enter blur
// it; every other key updates the query text (the renderer owns the actual
// textinput.Model mutation via EventFormKey-style routing, so this handler
// only signals focus changes and lets EventQueryChanged + Key carry the
// raw key through for the textinput to consume).
func QueryboxHandler(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	switch msg.String() {
	case "esc", "enter":
		return AppEvent{Kind: EventFocusQuery, Focus: false}
	case "ctrl+c":
		return AppEvent{Kind: EventQuit}
	default:
		return AppEvent{Kind: EventQueryChanged, Key: msg}
	}
}

// FormHandler implements the Insert/Edit form's key map.
func FormHandler(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	switch msg.String() {
	case "tab":
		return AppEvent{Kind: EventFormNextField}
	case "shift+tab":
		return AppEvent{Kind: EventFormPrevField}
	case "ctrl+s":
		return AppEvent{Kind: EventFormSubmit}
	case "esc", "ctrl+c":
		return AppEvent{Kind: EventFormCancel}
	case "f1":
		return AppEvent{Kind: EventShowHelp}
	default:
		return AppEvent{Kind: EventFormKey, Key: msg}
	}
}

// PopupHandler implements the popup overlay's key map.
func PopupHandler(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	switch msg.String() {
	case "left", "h":
		return AppEvent{Kind: EventPopupMove, Delta: -1}
	case "right", "l":
		return AppEvent{Kind: EventPopupMove, Delta: 1}
	case "enter":
		return AppEvent{Kind: EventPopupConfirm}
	case "esc", "q":
		return AppEvent{Kind: EventPopupDismiss}
	default:
		return AppEvent{Kind: EventNone}
	}
}

// HelpHandler implements the help overlay's key map: Esc, q, F1, ? and
// Enter dismiss it; every other key is ignored.
func HelpHandler(msg tea.KeyMsg, snap state.Snapshot) AppEvent {
	switch msg.String() {
	case "esc", "q", "f1", "?", "enter":
		return AppEvent{Kind: EventDismissHelp}
	default:
		return AppEvent{Kind: EventNone}
	}
}
