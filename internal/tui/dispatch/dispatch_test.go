// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvigo/cl/internal/tui/state"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestSelectPopupTakesPriority(t *testing.T) {
	snap := state.Snapshot{PopupActive: true, HelpShowing: true, QueryFocused: true, ViewMode: state.Insert}
	h := Select(snap)
	got := h(keyMsg("enter"), snap)
	if got.Kind != EventPopupConfirm {
		t.Errorf("Kind = %v, want EventPopupConfirm", got.Kind)
	}
}

func TestSelectHelpBeatsQueryboxAndViewMode(t *testing.T) {
	snap := state.Snapshot{HelpShowing: true, QueryFocused: true, ViewMode: state.Edit}
	got := Dispatch(keyMsg("q"), snap)
	if got.Kind != EventDismissHelp {
		t.Errorf("Kind = %v, want EventDismissHelp", got.Kind)
	}
}

func TestSelectQueryboxBeatsViewMode(t *testing.T) {
	snap := state.Snapshot{QueryFocused: true, ViewMode: state.Insert}
	got := Dispatch(keyMsg("x"), snap)
	if got.Kind != EventQueryChanged {
		t.Errorf("Kind = %v, want EventQueryChanged", got.Kind)
	}
}

func TestSelectMainViewMode(t *testing.T) {
	snap := state.Snapshot{ViewMode: state.Main}
	got := Dispatch(keyMsg("j"), snap)
	if got.Kind != EventMoveSelection || got.Delta != 1 {
		t.Errorf("got = %+v, want MoveSelection delta 1", got)
	}
}

func TestSelectFormViewMode(t *testing.T) {
	snap := state.Snapshot{ViewMode: state.Edit}
	got := Dispatch(keyMsg("tab"), snap)
	if got.Kind != EventFormNextField {
		t.Errorf("Kind = %v, want EventFormNextField", got.Kind)
	}
}

func TestMainHandlerQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "esc", "ctrl+c"} {
		got := MainHandler(keyMsg(k), state.Snapshot{})
		if got.Kind != EventQuit {
			t.Errorf("MainHandler(%q) = %+v, want EventQuit", k, got)
		}
	}
}

func TestFormHandlerCancel(t *testing.T) {
	got := FormHandler(keyMsg("esc"), state.Snapshot{})
	if got.Kind != EventFormCancel {
		t.Errorf("Kind = %v, want EventFormCancel", got.Kind)
	}
}

func TestPopupHandlerMove(t *testing.T) {
	got := PopupHandler(keyMsg("right"), state.Snapshot{})
	if got.Kind != EventPopupMove || got.Delta != 1 {
		t.Errorf("got = %+v, want PopupMove delta 1", got)
	}
}
