// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rvigo/cl/internal/tui/dispatch"
	"github.com/rvigo/cl/internal/tui/state"
)

// applyEvent mutates m.state according to event, returning any tea.Cmd the
// underlying widgets produced (e.g. cursor blink).
func (m *Model) applyEvent(event dispatch.AppEvent) tea.Cmd {
	switch event.Kind {
	case dispatch.EventQuit:
		m.state.Quit()
		m.shouldQuit = true

	case dispatch.EventRunCallback:
		if c, ok := m.state.SelectedCommand(); ok {
			m.state.SetCallback(c)
			m.callback = &c
			m.shouldQuit = true
		}

	case dispatch.EventEnterInsert:
		m.state.BeginInsert()

	case dispatch.EventEnterEdit:
		if c, ok := m.state.SelectedCommand(); ok {
			m.state.BeginEdit(c)
		}

	case dispatch.EventCycleNamespace:
		m.state.CycleNamespace(m.store, event.Delta)

	case dispatch.EventMoveSelection:
		m.state.MoveSelection(event.Delta)

	case dispatch.EventFocusQuery:
		m.state.FocusQuery(event.Focus)

	case dispatch.EventQueryChanged:
		return m.state.UpdateQuery(m.store, event.Key)

	case dispatch.EventRaiseDeletePopup:
		m.raiseDeletePopup()

	case dispatch.EventYank:
		m.yankSelected()

	case dispatch.EventShowHelp:
		m.state.ShowHelp()

	case dispatch.EventDismissHelp:
		m.state.DismissHelp()

	case dispatch.EventPopupMove:
		m.state.MovePopupChoice(event.Delta)

	case dispatch.EventPopupConfirm:
		m.confirmPopup()

	case dispatch.EventPopupDismiss:
		m.state.DismissPopup()

	case dispatch.EventFormNextField:
		m.state.CycleFormFocus(1)

	case dispatch.EventFormPrevField:
		m.state.CycleFormFocus(-1)

	case dispatch.EventFormSubmit:
		m.submitForm()

	case dispatch.EventFormCancel:
		m.cancelForm()

	case dispatch.EventFormKey:
		return m.state.UpdateFocusedField(event.Key)
	}
	return nil
}

func (m *Model) raiseDeletePopup() {
	c, ok := m.state.SelectedCommand()
	if !ok {
		return
	}
	m.state.ShowPopup(state.Popup{
		Message: "Delete " + c.Namespace + "/" + c.Alias + "?",
		Kind:    state.PopupWarning,
		Choices: []string{"Ok", "Cancel"},
		Action:  state.ActionRemoveCommand,
		Target:  c,
	})
}

func (m *Model) yankSelected() {
	c, ok := m.state.SelectedCommand()
	if !ok {
		return
	}
	if err := m.clipboard.WriteAll(c.Command); err != nil {
		if m.logger != nil {
			m.logger.Error("yank to clipboard failed", "err", err)
		}
		return
	}
	m.state.StartYank(time.Now(), yankDuration, c)
}

func (m *Model) confirmPopup() {
	p, ok := m.state.Popup()
	if !ok {
		return
	}
	choice := ""
	if p.Selected < len(p.Choices) {
		choice = p.Choices[p.Selected]
	}
	m.state.DismissPopup()

	if choice != "Ok" {
		return
	}

	switch p.Action {
	case state.ActionRemoveCommand:
		if err := m.store.Remove(p.Target); err != nil {
			m.raiseErrorPopup(err)
			return
		}
		m.state.Refresh(m.store)
	case state.ActionRenderTarget:
		m.state.SetViewMode(p.TargetView)
	}
}

func (m *Model) submitForm() {
	built := m.state.BuildFromForm("default")

	var err error
	if m.state.ViewMode() == state.Edit {
		err = m.store.Edit(built, m.state.EditOriginal())
	} else {
		err = m.store.Add(built)
	}

	if err != nil {
		m.raiseErrorPopup(err)
		return
	}
	m.state.Refresh(m.store)
	m.state.SetViewMode(state.Main)
}

func (m *Model) cancelForm() {
	if !m.state.FormDirty() {
		m.state.SetViewMode(state.Main)
		return
	}
	m.state.ShowPopup(state.Popup{
		Message:    "Wait, you didn't save your changes!",
		Kind:       state.PopupWarning,
		Choices:    []string{"Ok", "Cancel"},
		Action:     state.ActionRenderTarget,
		TargetView: state.Main,
	})
}

func (m *Model) raiseErrorPopup(err error) {
	m.state.ShowPopup(state.Popup{
		Message: err.Error(),
		Kind:    state.PopupError,
		Choices: []string{"Ok"},
	})
}
