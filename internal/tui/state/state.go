// SPDX-License-Identifier: MPL-2.0

// Package state holds the TUI's shared application state: view mode,
// selection indices, form buffers, the querybox, and any active popup. All
// mutation goes through State's mutex-guarded methods; the dispatcher only
// ever reads an immutable Snapshot.
package state

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/store"
)

// ViewMode selects which screen is active.
type ViewMode int

const (
	// Main is the default list/filter/namespace-switch screen.
	Main ViewMode = iota
	// Insert is the new-command form.
	Insert
	// Edit is the existing-command form, pre-populated.
	Edit
)

// String renders the ViewMode name, mainly for logging.
func (v ViewMode) String() string {
	switch v {
	case Main:
		return "main"
	case Insert:
		return "insert"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// PopupKind selects which button set and styling a Popup uses.
type PopupKind int

const (
	// PopupError shows only an Ok choice.
	PopupError PopupKind = iota
	// PopupWarning shows Ok/Cancel.
	PopupWarning
	// PopupHelp is an informational popup, drawn in the muted style. The
	// glamour-rendered help document is shown through ShowHelp, not through
	// a popup of this kind.
	PopupHelp
)

// PopupAction names what happens when a popup's Ok choice is confirmed.
type PopupAction int

const (
	// ActionNone performs no side effect beyond dismissing the popup.
	ActionNone PopupAction = iota
	// ActionRemoveCommand deletes Popup.Target from the store.
	ActionRemoveCommand
	// ActionRenderTarget switches ViewMode to Popup.TargetView.
	ActionRenderTarget
)

// Popup is a modal overlay: a message, a choice set, and a callback action.
type Popup struct {
	Message    string
	Kind       PopupKind
	Choices    []string
	Selected   int
	Action     PopupAction
	Target     command.Command
	TargetView ViewMode
}

// FieldName identifies one of the form's text buffers.
type FieldName int

const (
	FieldAlias FieldName = iota
	FieldNamespace
	FieldCommand
	FieldDescription
	FieldTags
)

// FormField is one editable field of the Insert/Edit form. Command is the
// only multiline field and uses a textarea; the rest use textinput.
type FormField struct {
	Name      FieldName
	Input     textinput.Model
	Area      textarea.Model
	Multiline bool
}

// Value returns the field's current text.
func (f FormField) Value() string {
	if f.Multiline {
		return f.Area.Value()
	}
	return f.Input.Value()
}

// SetValue replaces the field's current text.
func (f *FormField) SetValue(v string) {
	if f.Multiline {
		f.Area.SetValue(v)
		return
	}
	f.Input.SetValue(v)
}

// Focus focuses the field's underlying widget.
func (f *FormField) Focus() {
	if f.Multiline {
		f.Area.Focus()
		return
	}
	f.Input.Focus()
}

// Blur unfocuses the field's underlying widget.
func (f *FormField) Blur() {
	if f.Multiline {
		f.Area.Blur()
		return
	}
	f.Input.Blur()
}

// Update routes msg into the field's underlying widget.
func (f *FormField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.Multiline {
		f.Area, cmd = f.Area.Update(msg)
		return cmd
	}
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// NewFormFields builds the five Insert/Edit fields in tab order.
func NewFormFields() []FormField {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		return ti
	}

	ta := textarea.New()
	ta.Placeholder = "command"

	return []FormField{
		{Name: FieldAlias, Input: mk("alias")},
		{Name: FieldNamespace, Input: mk("namespace")},
		{Name: FieldCommand, Area: ta, Multiline: true},
		{Name: FieldDescription, Input: mk("description (optional)")},
		{Name: FieldTags, Input: mk("tags, comma-separated (optional)")},
	}
}

// State is the full mutable UI state, guarded by its own mutex.
type State struct {
	mu sync.Mutex

	viewMode ViewMode

	namespaces   []string
	namespaceIdx int
	filtered     []command.Command
	selectedIdx  int
	queryFocused bool
	query        textinput.Model

	form         []FormField
	formFocusIdx int
	editOriginal command.Command
	formDirty    bool

	popup    *Popup
	showHelp bool

	yankUntil   time.Time
	yankCommand command.Command

	callback    command.Command
	hasCallback bool

	shouldQuit bool
}

// New builds a State seeded from the store's current snapshot.
func New(s *store.Store) *State {
	q := textinput.New()
	q.Placeholder = "filter"

	st := &State{
		namespaces: s.Namespaces(),
		query:      q,
		form:       NewFormFields(),
	}
	st.refreshFiltered(s)
	return st
}

// Snapshot is an immutable, lock-free copy of the fields the dispatcher
// needs to pick a handler. It never exposes widgets directly.
type Snapshot struct {
	ViewMode      ViewMode
	PopupActive   bool
	HelpShowing   bool
	QueryFocused  bool
	SelectedIdx   int
	FilteredCount int
}

// Snapshot copies the read-only subset of state under the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ViewMode:      s.viewMode,
		PopupActive:   s.popup != nil,
		HelpShowing:   s.showHelp,
		QueryFocused:  s.queryFocused,
		SelectedIdx:   s.selectedIdx,
		FilteredCount: len(s.filtered),
	}
}

// ViewMode returns the current view mode.
func (s *State) ViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// SetViewMode switches the active view.
func (s *State) SetViewMode(v ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = v
}

// CurrentNamespace returns the selected namespace selector (AllNamespaces
// included among s.namespaces at index 0).
func (s *State) CurrentNamespace() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.namespaces) == 0 {
		return ""
	}
	return s.namespaces[s.namespaceIdx]
}

// CycleNamespace moves the namespace selector by delta (wrapping) and
// recomputes the filtered list.
func (s *State) CycleNamespace(st *store.Store, delta int) {
	s.mu.Lock()
	n := len(s.namespaces)
	if n > 0 {
		s.namespaceIdx = ((s.namespaceIdx+delta)%n + n) % n
	}
	s.selectedIdx = 0
	s.mu.Unlock()
	s.refreshFiltered(st)
}

// SetQuery updates the query buffer and recomputes the filtered list.
func (s *State) SetQuery(st *store.Store, q string) {
	s.mu.Lock()
	s.query.SetValue(q)
	s.selectedIdx = 0
	s.mu.Unlock()
	s.refreshFiltered(st)
}

// Query returns the current query text.
func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.Value()
}

// QueryView renders the querybox's current widget view.
func (s *State) QueryView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query.View()
}

// UpdateQuery routes msg into the querybox's textinput and recomputes the
// filtered list from the resulting text.
func (s *State) UpdateQuery(st *store.Store, msg tea.Msg) tea.Cmd {
	s.mu.Lock()
	var cmd tea.Cmd
	s.query, cmd = s.query.Update(msg)
	s.selectedIdx = 0
	s.mu.Unlock()
	s.refreshFiltered(st)
	return cmd
}

// FocusQuery focuses or blurs the querybox.
func (s *State) FocusQuery(focus bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryFocused = focus
	if focus {
		s.query.Focus()
	} else {
		s.query.Blur()
	}
}

// QueryFocused reports whether the querybox currently has focus.
func (s *State) QueryFocused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryFocused
}

// refreshFiltered recomputes the filtered list from the store using the
// current namespace selector and query, clamping the selection index.
func (s *State) refreshFiltered(st *store.Store) {
	s.mu.Lock()
	ns := ""
	if len(s.namespaces) > 0 {
		ns = s.namespaces[s.namespaceIdx]
	}
	q := s.query.Value()
	s.mu.Unlock()

	filtered := st.Filter(ns, q)

	s.mu.Lock()
	s.filtered = filtered
	if s.selectedIdx >= len(filtered) {
		s.selectedIdx = maxInt(0, len(filtered)-1)
	}
	s.mu.Unlock()
}

// Refresh re-syncs the namespace list and filtered list after a store
// mutation (add/edit/remove).
func (s *State) Refresh(st *store.Store) {
	s.mu.Lock()
	s.namespaces = st.Namespaces()
	if s.namespaceIdx >= len(s.namespaces) {
		s.namespaceIdx = 0
	}
	s.mu.Unlock()
	s.refreshFiltered(st)
}

// Filtered returns the currently filtered command list.
func (s *State) Filtered() []command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]command.Command, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// Namespaces returns the namespace selector list (AllNamespaces first).
func (s *State) Namespaces() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.namespaces))
	copy(out, s.namespaces)
	return out
}

// NamespaceIndex returns the currently selected namespace index.
func (s *State) NamespaceIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namespaceIdx
}

// SelectedIndex returns the currently selected row in the filtered list.
func (s *State) SelectedIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedIdx
}

// MoveSelection moves the selected row by delta, wrapping around at either
// end of the filtered list.
func (s *State) MoveSelection(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.filtered)
	if n == 0 {
		s.selectedIdx = 0
		return
	}
	s.selectedIdx = ((s.selectedIdx+delta)%n + n) % n
}

// SelectedCommand returns the currently selected command and whether one
// exists.
func (s *State) SelectedCommand() (command.Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.filtered) {
		return command.Command{}, false
	}
	return s.filtered[s.selectedIdx], true
}

// BeginInsert resets the form to blank values and switches to Insert.
func (s *State) BeginInsert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = NewFormFields()
	s.formFocusIdx = 0
	s.formDirty = false
	s.viewMode = Insert
	s.form[0].Focus()
}

// BeginEdit pre-populates the form from c and switches to Edit.
func (s *State) BeginEdit(c command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = NewFormFields()
	s.form[0].SetValue(c.Alias)
	s.form[1].SetValue(c.Namespace)
	s.form[2].SetValue(c.Command)
	s.form[3].SetValue(c.Description)
	s.form[4].SetValue(joinTags(c.Tags))
	s.editOriginal = c
	s.formFocusIdx = 0
	s.formDirty = false
	s.viewMode = Edit
	s.form[0].Focus()
}

// Form returns the form field slice for rendering/key routing.
func (s *State) Form() []FormField {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// FocusedField returns a pointer to the currently focused form field, so
// callers can route a key into its widget in place.
func (s *State) FocusedField() *FormField {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.form) == 0 {
		return nil
	}
	return &s.form[s.formFocusIdx]
}

// FormFocusIndex returns the index of the currently focused field.
func (s *State) FormFocusIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formFocusIdx
}

// CycleFormFocus moves focus by delta (wrapping) among the form fields.
func (s *State) CycleFormFocus(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.form)
	if n == 0 {
		return
	}
	s.form[s.formFocusIdx].Blur()
	s.formFocusIdx = ((s.formFocusIdx+delta)%n + n) % n
	s.form[s.formFocusIdx].Focus()
}

// UpdateFocusedField routes msg into the focused form field's widget and
// marks the form dirty.
func (s *State) UpdateFocusedField(msg tea.Msg) tea.Cmd {
	f := s.FocusedField()
	if f == nil {
		return nil
	}
	cmd := f.Update(msg)
	s.MarkFormDirty()
	return cmd
}

// MarkFormDirty records that the form has unsaved edits.
func (s *State) MarkFormDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formDirty = true
}

// FormDirty reports whether the form has unsaved edits.
func (s *State) FormDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formDirty
}

// EditOriginal returns the command being edited (valid only in Edit view).
func (s *State) EditOriginal() command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editOriginal
}

// BuildFromForm assembles a command.Command from the current form buffers.
// defaultNamespace is used only when the form's own namespace field is
// blank.
func (s *State) BuildFromForm(defaultNamespace string) command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := s.form[FieldNamespace].Value()
	if strings.TrimSpace(ns) == "" {
		ns = defaultNamespace
	}
	return command.Command{
		Alias:       s.form[FieldAlias].Value(),
		Namespace:   ns,
		Command:     s.form[FieldCommand].Value(),
		Description: s.form[FieldDescription].Value(),
		Tags:        splitTags(s.form[FieldTags].Value()),
	}
}

// ShowPopup activates a popup overlay.
func (s *State) ShowPopup(p Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = &p
}

// Popup returns the active popup, if any.
func (s *State) Popup() (Popup, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.popup == nil {
		return Popup{}, false
	}
	return *s.popup, true
}

// DismissPopup clears the active popup.
func (s *State) DismissPopup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = nil
}

// MovePopupChoice moves the popup's selected choice by delta (wrapping).
func (s *State) MovePopupChoice(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.popup == nil || len(s.popup.Choices) == 0 {
		return
	}
	n := len(s.popup.Choices)
	s.popup.Selected = ((s.popup.Selected+delta)%n + n) % n
}

// ShowHelp activates the help overlay.
func (s *State) ShowHelp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHelp = true
}

// DismissHelp clears the help overlay.
func (s *State) DismissHelp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showHelp = false
}

// HelpShowing reports whether the help overlay is active.
func (s *State) HelpShowing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showHelp
}

// StartYank begins the clipboard-yank indicator for c, visible until now+d.
func (s *State) StartYank(now time.Time, d time.Duration, c command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.yankUntil = now.Add(d)
	s.yankCommand = c
}

// YankActive reports whether the yank indicator is still visible at now.
func (s *State) YankActive(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Before(s.yankUntil)
}

// YankedCommand returns the command the yank indicator is showing.
func (s *State) YankedCommand() command.Command {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yankCommand
}

// SetCallback records the command to run after the terminal is restored
// and requests shutdown.
func (s *State) SetCallback(c command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callback = c
	s.hasCallback = true
	s.shouldQuit = true
}

// Callback returns the pending callback command, if any.
func (s *State) Callback() (command.Command, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callback, s.hasCallback
}

// Quit requests shutdown without a callback command.
func (s *State) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shouldQuit = true
}

// ShouldQuit reports whether shutdown has been requested.
func (s *State) ShouldQuit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shouldQuit
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func splitTags(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
