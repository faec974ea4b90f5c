// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"testing"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/config"
	"github.com/rvigo/cl/internal/executor"
	"github.com/rvigo/cl/internal/store"
	"github.com/rvigo/cl/internal/tui/dispatch"
	"github.com/rvigo/cl/internal/tui/state"
)

type fakeClipboard struct {
	written string
	err     error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = text
	return nil
}

func newTestModel() (*Model, *store.Store, *fakeClipboard) {
	s := store.New([]command.Command{
		{Namespace: "work", Alias: "build", Command: "make build"},
		{Namespace: "work", Alias: "deploy", Command: "make deploy"},
	}, store.NopPersister{})
	clip := &fakeClipboard{}
	m := New(s, config.Default(), clip, executor.New(), nil)
	return m, s, clip
}

func TestApplyEventQuit(t *testing.T) {
	m, _, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventQuit})
	if !m.shouldQuit {
		t.Error("expected shouldQuit after EventQuit")
	}
}

func TestApplyEventRunCallbackSetsCallback(t *testing.T) {
	m, _, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventRunCallback})
	if !m.shouldQuit {
		t.Fatal("expected shouldQuit after EventRunCallback")
	}
	c, ok := m.Callback()
	if !ok || c.Alias != "build" {
		t.Errorf("Callback() = %+v, %v, want first alias build", c, ok)
	}
}

func TestApplyEventYankWritesClipboard(t *testing.T) {
	m, _, clip := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventYank})
	if clip.written != "make build" {
		t.Errorf("clipboard = %q, want %q", clip.written, "make build")
	}
}

func TestApplyEventEnterInsertAndSubmit(t *testing.T) {
	m, s, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventEnterInsert})
	if m.state.ViewMode() != state.Insert {
		t.Fatalf("ViewMode() = %v, want Insert", m.state.ViewMode())
	}

	m.state.Form()[state.FieldAlias].SetValue("newcmd")
	m.state.Form()[state.FieldNamespace].SetValue("home")
	m.state.Form()[state.FieldCommand].SetValue("echo hi")

	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventFormSubmit})
	if m.state.ViewMode() != state.Main {
		t.Errorf("ViewMode() = %v, want Main after submit", m.state.ViewMode())
	}

	if _, err := s.Find("newcmd", "home"); err != nil {
		t.Errorf("Find() error = %v, want the new command to be stored", err)
	}
}

func TestApplyEventDeletePopupAndConfirm(t *testing.T) {
	m, s, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventRaiseDeletePopup})
	p, ok := m.state.Popup()
	if !ok {
		t.Fatal("expected popup after EventRaiseDeletePopup")
	}
	if p.Action != state.ActionRemoveCommand {
		t.Errorf("Action = %v, want ActionRemoveCommand", p.Action)
	}

	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventPopupConfirm})
	if _, ok := m.state.Popup(); ok {
		t.Error("expected popup dismissed after confirm")
	}
	if _, err := s.Find("build", "work"); err == nil {
		t.Error("expected build to be removed from the store")
	}
}

func TestApplyEventFormCancelUnmodifiedReturnsToMain(t *testing.T) {
	m, _, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventEnterInsert})
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventFormCancel})
	if m.state.ViewMode() != state.Main {
		t.Errorf("ViewMode() = %v, want Main", m.state.ViewMode())
	}
}

func TestApplyEventFormCancelDirtyRaisesConfirmation(t *testing.T) {
	m, _, _ := newTestModel()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventEnterInsert})
	m.state.MarkFormDirty()
	m.applyEvent(dispatch.AppEvent{Kind: dispatch.EventFormCancel})
	if _, ok := m.state.Popup(); !ok {
		t.Error("expected confirmation popup for a dirty form")
	}
}
