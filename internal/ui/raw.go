package ui

import (
	"bytes"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/objedit/internal/mapfile"
	"github.com/gravitrone/objedit/internal/objectinput"
	"github.com/gravitrone/objedit/internal/ui/components"
)

// RawEditor edits the whole mapping as JSON text. Applying it hands the
// parsed mapping back to the editor as an external change.
type RawEditor struct {
	Active bool
	Buffer string

	err string
}

// Open loads the mapping as indented JSON and activates the pane.
func (r *RawEditor) Open(m objectinput.Mapping[any]) {
	var buf bytes.Buffer
	_ = mapfile.EncodeJSON(&buf, m, 2)
	r.Active = true
	r.Buffer = strings.TrimRight(buf.String(), "\n")
	r.err = ""
}

// Reset closes the pane and drops the buffer.
func (r *RawEditor) Reset() {
	r.Active = false
	r.Buffer = ""
	r.err = ""
}

// HandleKey edits the buffer. It returns the parsed mapping and true when
// ctrl+s applied a valid buffer; esc closes without applying.
func (r *RawEditor) HandleKey(msg tea.KeyMsg) (objectinput.Mapping[any], bool) {
	switch {
	case isBack(msg):
		r.Reset()
	case isSave(msg):
		m, err := mapfile.DecodeJSON(strings.NewReader(r.Buffer))
		if err != nil {
			r.err = err.Error()
			return objectinput.Mapping[any]{}, false
		}
		r.Reset()
		return m, true
	case isKey(msg, "backspace"):
		r.Buffer = dropLastRune(r.Buffer)
	case isKey(msg, "ctrl+u"):
		r.Buffer = ""
	case isEnter(msg):
		r.Buffer += "\n"
	case isKey(msg, "tab"):
		r.Buffer += "  "
	case isSpace(msg):
		r.Buffer += " "
	case msg.Type == tea.KeyRunes && !msg.Alt:
		r.Buffer += string(msg.Runes)
	}
	r.err = ""
	return objectinput.Mapping[any]{}, false
}

// Err returns the last apply error, if any.
func (r RawEditor) Err() string {
	return r.err
}

func (r RawEditor) Render(width int) string {
	body := renderRawInput(r.Buffer)
	if strings.TrimSpace(body) == "" {
		body = MutedStyle.Render("{}")
	}
	body += AccentStyle.Render("█")
	hint := MutedStyle.Render("ctrl+s apply  |  tab indent  |  enter newline  |  esc cancel")
	out := components.Indent(components.ActiveTitledBox("Raw JSON", body+"\n\n"+hint, width), 1)
	if r.err != "" {
		out += "\n" + components.Indent(components.ErrorBox("Invalid JSON", r.err, width), 1)
	}
	return out
}

var rawKeyLine = regexp.MustCompile(`^(\s*)("(?:[^"\\]|\\.)*")(\s*:)(.*)$`)

func renderRawInput(buffer string) string {
	lines := strings.Split(components.SanitizeText(buffer), "\n")
	for i, line := range lines {
		m := rawKeyLine.FindStringSubmatch(line)
		if m == nil {
			lines[i] = MetaValueStyle.Render(line)
			continue
		}
		lines[i] = m[1] + MetaKeyStyle.Render(m[2]) + MetaPunctStyle.Render(m[3]) + MetaValueStyle.Render(m[4])
	}
	return strings.Join(lines, "\n")
}

func dropLastRune(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(runes[:len(runes)-1])
}
