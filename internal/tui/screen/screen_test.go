// SPDX-License-Identifier: MPL-2.0

package screen

import (
	"strings"
	"testing"
	"time"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/store"
	"github.com/rvigo/cl/internal/tui/state"
)

func newTestState() *state.State {
	s := store.New([]command.Command{
		{Namespace: "work", Alias: "build", Command: "make build"},
	}, store.NopPersister{})
	return state.New(s)
}

func TestRenderMainShowsCommand(t *testing.T) {
	st := newTestState()
	out := Render(st, 80, 24)
	if !strings.Contains(out, "work/build") {
		t.Errorf("Render() = %q, want it to contain work/build", out)
	}
}

func TestRenderFormShowsFields(t *testing.T) {
	st := newTestState()
	st.BeginInsert()
	out := Render(st, 80, 24)
	if !strings.Contains(out, "alias") || !strings.Contains(out, "command") {
		t.Errorf("Render() = %q, want field labels", out)
	}
}

func TestRenderPopupOverlaysBase(t *testing.T) {
	st := newTestState()
	st.ShowPopup(state.Popup{Message: "delete this?", Kind: state.PopupWarning, Choices: []string{"Ok", "Cancel"}})
	out := Render(st, 80, 24)
	if !strings.Contains(out, "delete this?") {
		t.Errorf("Render() = %q, want popup message", out)
	}
	if !strings.Contains(out, "work/build") {
		t.Errorf("Render() = %q, want base view still visible", out)
	}
}

func TestRenderHelpShowsDocument(t *testing.T) {
	out := renderHelp(80, 24)
	if !strings.Contains(out, "cl") {
		t.Errorf("renderHelp() = %q, want title", out)
	}
}

func TestYankIndicator(t *testing.T) {
	c := command.Command{Namespace: "work", Alias: "build"}
	out := YankIndicator(c)
	if !strings.Contains(out, "work/build") {
		t.Errorf("YankIndicator() = %q, want to mention work/build", out)
	}
}

func TestRenderShowsYankIndicatorWhileActive(t *testing.T) {
	st := newTestState()
	c, ok := st.SelectedCommand()
	if !ok {
		t.Fatal("expected a selected command")
	}
	st.StartYank(time.Now(), 3*time.Second, c)

	out := Render(st, 80, 24)
	if !strings.Contains(out, "yanked work/build") {
		t.Errorf("Render() = %q, want the yank indicator", out)
	}
}

func TestRenderOmitsYankIndicatorAfterExpiry(t *testing.T) {
	st := newTestState()
	c, ok := st.SelectedCommand()
	if !ok {
		t.Fatal("expected a selected command")
	}
	past := time.Now().Add(-time.Hour)
	st.StartYank(past, 3*time.Second, c)

	out := Render(st, 80, 24)
	if strings.Contains(out, "yanked work/build") {
		t.Errorf("Render() = %q, want no yank indicator after expiry", out)
	}
}
