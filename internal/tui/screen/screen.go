// SPDX-License-Identifier: MPL-2.0

// Package screen renders the TUI's views (Main, Insert/Edit form, popups,
// help) from a state.State snapshot into a single string, composing
// lipgloss styles around bubbles widgets.
package screen

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvigo/cl/internal/command"
	"github.com/rvigo/cl/internal/tui/state"
	"github.com/rvigo/cl/internal/tui/style"
)

// The palette colors are validated against style.ColorSpec so a value that
// fails ColorSpec.IsValid (not a hex code, ANSI-256 index, or named color)
// falls back to the built-in default.
var (
	titleColor   = validColor(style.ColorSpec("#7C3AED"), "#7C3AED")
	accentColor  = validColor(style.ColorSpec("#10B981"), "#10B981")
	mutedColor   = validColor(style.ColorSpec("#6B7280"), "#6B7280")
	errorColor   = validColor(style.ColorSpec("#EF4444"), "#EF4444")
	warningColor = validColor(style.ColorSpec("#F59E0B"), "#F59E0B")
)

func validColor(c style.ColorSpec, fallback string) lipgloss.Color {
	if ok, _ := c.IsValid(); !ok {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(c.String())
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(errorColor)

	warningStyle = lipgloss.NewStyle().Foreground(warningColor)

	borderStyle = lipgloss.NewStyle().
			Border(borderFor(style.BorderRounded)).
			Padding(0, 1)

	yankStyle = lipgloss.NewStyle().Foreground(accentColor).Italic(true)
)

// borderFor maps a style.BorderStyle onto its lipgloss.Border rendering,
// falling back to a rounded border for anything not recognized.
func borderFor(b style.BorderStyle) lipgloss.Border {
	if ok, _ := b.IsValid(); !ok {
		return lipgloss.RoundedBorder()
	}
	switch b {
	case style.BorderNone:
		return lipgloss.Border{}
	case style.BorderNormal:
		return lipgloss.NormalBorder()
	case style.BorderThick:
		return lipgloss.ThickBorder()
	case style.BorderDouble:
		return lipgloss.DoubleBorder()
	case style.BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Render draws the whole frame for the current state. The help screen, when
// showing, replaces the base view; an active popup is drawn below the base
// view.
func Render(st *state.State, width, height int) string {
	var base string
	switch st.ViewMode() {
	case state.Insert, state.Edit:
		base = renderForm(st)
	default:
		base = renderMain(st)
	}

	if st.HelpShowing() {
		return renderHelp(width, height)
	}
	if p, ok := st.Popup(); ok {
		return overlayPopup(base, p)
	}
	if st.YankActive(time.Now()) {
		base += "\n" + YankIndicator(st.YankedCommand())
	}
	return base
}

func renderMain(st *state.State) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("cl"))
	b.WriteString("  ")
	b.WriteString(renderNamespaces(st))
	b.WriteString("\n\n")

	if st.QueryFocused() {
		b.WriteString(subtitleStyle.Render("filter: ") + st.QueryView())
		b.WriteString("\n\n")
	} else if q := st.Query(); q != "" {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("filter: %s", q)))
		b.WriteString("\n\n")
	}

	filtered := st.Filtered()
	selected := st.SelectedIndex()
	if len(filtered) == 0 {
		b.WriteString(subtitleStyle.Render("no commands"))
	}
	for i, c := range filtered {
		line := fmt.Sprintf("%s/%s", c.Namespace, c.Alias)
		if i == selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(helpFooter(st)))
	return b.String()
}

func helpFooter(st *state.State) string {
	footer := "j/k move  tab/shift+tab namespace  i insert  e edit  d delete  enter run  y yank  f1 help  q quit"
	return footer
}

func renderNamespaces(st *state.State) string {
	ns := st.Namespaces()
	idx := st.NamespaceIndex()
	var parts []string
	for i, n := range ns {
		if i == idx {
			parts = append(parts, selectedStyle.Render("["+n+"]"))
		} else {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}

func renderForm(st *state.State) string {
	var b strings.Builder

	title := "Insert"
	if st.ViewMode() == state.Edit {
		title = "Edit"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	focusIdx := st.FormFocusIndex()
	for i, f := range st.Form() {
		label := fieldLabel(f.Name)
		if i == focusIdx {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n")
		if f.Multiline {
			b.WriteString(f.Area.View())
		} else {
			b.WriteString(f.Input.View())
		}
		b.WriteString("\n\n")
	}

	b.WriteString(subtitleStyle.Render("tab next field  ctrl+s save  esc cancel  f1 help"))
	return b.String()
}

func fieldLabel(name state.FieldName) string {
	switch name {
	case state.FieldAlias:
		return "alias"
	case state.FieldNamespace:
		return "namespace"
	case state.FieldCommand:
		return "command"
	case state.FieldDescription:
		return "description"
	case state.FieldTags:
		return "tags"
	default:
		return ""
	}
}

func overlayPopup(base string, p state.Popup) string {
	var style lipgloss.Style
	switch p.Kind {
	case state.PopupError:
		style = errorStyle
	case state.PopupWarning:
		style = warningStyle
	default:
		style = subtitleStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(p.Message))
	b.WriteString("\n\n")
	for i, c := range p.Choices {
		if i == p.Selected {
			b.WriteString(selectedStyle.Render("[" + c + "]"))
		} else {
			b.WriteString(" " + c + " ")
		}
		b.WriteString("  ")
	}

	return base + "\n\n" + borderStyle.Render(b.String())
}

func renderHelp(width, height int) string {
	doc := "# cl\n\n" +
		"## Main screen\n" +
		"- `j`/`k`: move selection\n" +
		"- `tab`/`shift+tab`: switch namespace\n" +
		"- `f`, `/`: filter\n" +
		"- `i`: insert, `e`: edit, `d`: delete\n" +
		"- `enter`: run selected command\n" +
		"- `y`: yank command to clipboard\n" +
		"- `q`, `esc`, `ctrl+c`: quit\n\n" +
		"## Form screen\n" +
		"- `tab`/`shift+tab`: next/previous field\n" +
		"- `ctrl+s`: save\n" +
		"- `esc`: cancel\n"

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return doc
	}
	rendered, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return borderStyle.Render(rendered)
}

// YankIndicator renders the transient "copied to clipboard" message for c.
func YankIndicator(c command.Command) string {
	return yankStyle.Render(fmt.Sprintf("yanked %s/%s", c.Namespace, c.Alias))
}
