// Package substitution implements the named-parameter substitution engine:
// scan a command template for #{name} placeholders, classify invocation
// arguments as named parameters or free-form options, and render the final
// shell string.
package substitution

import (
	"regexp"
	"strings"
)

var placeholderRe = regexp.MustCompile(`#\{([^}]+)\}`)

// Placeholders returns the set of distinct placeholder names found in
// template, in first-occurrence order.
func Placeholders(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// token is a classified argument: either a named parameter bound to a
// placeholder, or a free-form option appended verbatim.
type token struct {
	prefix string // "--" or ""
	key    string // stripped of prefix
	value  string
	hasVal bool
	raw    string // original token, reconstructed for options
}

func classify(raw string) token {
	t := token{raw: raw}
	rest := raw
	if strings.HasPrefix(rest, "--") {
		t.prefix = "--"
		rest = rest[2:]
	}
	if idx := strings.Index(rest, "="); idx >= 0 {
		t.key = rest[:idx]
		t.value = rest[idx+1:]
		t.hasVal = true
	} else {
		t.key = rest
	}
	return t
}

func (t token) reconstruct() string {
	if t.hasVal {
		return t.prefix + t.key + "=" + t.value
	}
	return t.prefix + t.key
}

// Render parses args, validates the named-parameter count against
// template's placeholders, and returns the rendered shell string:
// replace_all(template, #{name}, value).trim() + " " + join(options, " ").
func Render(template string, args []string) (string, error) {
	placeholders := Placeholders(template)
	placeholderSet := make(map[string]struct{}, len(placeholders))
	for _, p := range placeholders {
		placeholderSet[p] = struct{}{}
	}

	bindings := make(map[string]string, len(placeholders))
	var options []token
	namedCount := 0

	for _, raw := range args {
		t := classify(raw)
		if t.key == "" {
			return "", &ParseError{Token: raw, Cause: "missing parameter name"}
		}
		_, keyMatches := placeholderSet[t.key]
		// A token only binds a named parameter when it carries an explicit
		// "=VALUE" part (possibly empty, e.g. "--name="). A bare flag whose
		// key happens to match a placeholder name but has no "=" is not a
		// one-token binding — it is classified as an option, and the
		// argument that would have supplied the value (e.g. a following
		// "world" token) is itself just another option, never consumed as
		// a value. This is what makes split tokens ("--name", "world")
		// fail ArgCountMismatch instead of silently binding an empty value.
		if keyMatches && t.hasVal {
			bindings[t.key] = t.value
			namedCount++
			continue
		}
		options = append(options, t)
	}

	if namedCount != len(placeholders) {
		return "", &ArgCountMismatchError{Expected: len(placeholders), Found: namedCount}
	}

	rendered := template
	for name, value := range bindings {
		if _, ok := placeholderSet[name]; !ok {
			continue
		}
		rendered = strings.ReplaceAll(rendered, "#{"+name+"}", value)
	}
	for _, name := range placeholders {
		if _, ok := bindings[name]; !ok {
			return "", &RenderError{Name: name}
		}
	}
	rendered = strings.TrimSpace(rendered)

	if len(options) == 0 {
		return rendered, nil
	}

	parts := make([]string, len(options))
	for i, t := range options {
		parts[i] = t.reconstruct()
	}
	return rendered + " " + strings.Join(parts, " "), nil
}
