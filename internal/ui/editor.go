package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/gravitrone/objedit/internal/logging"
	"github.com/gravitrone/objedit/internal/mapfile"
	"github.com/gravitrone/objedit/internal/objectinput"
	"github.com/gravitrone/objedit/internal/ui/components"
)

// Saver persists the mapping being edited.
type Saver func(objectinput.Mapping[any]) error

// EditorOptions configures an ObjectEditor.
type EditorOptions struct {
	Title    string
	VimKeys  bool
	PageSize int
	// NewValue supplies the value of added rows. Nil leaves them unset until
	// a value is typed.
	NewValue func() any
	Save     Saver
	Logger   *zap.Logger
}

type column int

const (
	columnKey column = iota
	columnValue
)

type rowKind int

const (
	rowItem rowKind = iota
	rowEmpty
	rowAdd
)

// row is what the widget produces per entry, plus the empty and add rows.
type row struct {
	kind        rowKind
	key         string
	value       any
	updateKey   func(string)
	updateValue func(any)
	remove      func()
	add         func()
}

// document is the state owned by the caller of the widget. onChange writes
// it and every render reads it back.
type document struct {
	value   objectinput.Mapping[any]
	initial objectinput.Mapping[any]
	saved   objectinput.Mapping[any]
}

type savedMsg struct {
	value objectinput.Mapping[any]
	err   error
}

// ObjectEditor is a bubbletea model editing a mapping as key/value rows.
type ObjectEditor struct {
	doc    *document
	widget *objectinput.Widget[any, row]
	opts   EditorOptions
	logger *zap.Logger

	cursor      *components.Cursor
	column      column
	editing     bool
	textCell    bool
	input       textinput.Model
	raw         RawEditor
	confirmQuit bool
	status      string
	statusErr   bool
	width       int
}

// NewObjectEditor returns an editor over initial.
func NewObjectEditor(initial objectinput.Mapping[any], opts EditorOptions) ObjectEditor {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 12
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 4096

	e := ObjectEditor{
		doc: &document{
			value:   initial.Clone(),
			initial: initial.Clone(),
			saved:   initial.Clone(),
		},
		opts:   opts,
		logger: logger,
		cursor: components.NewCursor(opts.PageSize),
		input:  input,
	}
	e.widget = &objectinput.Widget[any, row]{
		Reconciler: e.newReconciler(initial),
		RenderItem: func(key string, value any, updateKey func(string), updateValue func(any), remove func()) row {
			return row{
				kind:        rowItem,
				key:         key,
				value:       value,
				updateKey:   updateKey,
				updateValue: updateValue,
				remove:      remove,
			}
		},
		RenderEmpty: func() row { return row{kind: rowEmpty} },
		RenderAdd:   func(add func()) row { return row{kind: rowAdd, add: add} },
	}
	e.sync()
	return e
}

func (e ObjectEditor) newReconciler(m objectinput.Mapping[any]) *objectinput.Reconciler[any] {
	doc := e.doc
	opts := []objectinput.Option[any]{
		objectinput.WithLogger[any](e.logger.Named(logging.NameReconciler)),
	}
	if e.opts.NewValue != nil {
		opts = append(opts, objectinput.WithDefaultValue(e.opts.NewValue))
	}
	return objectinput.New(m, func(next objectinput.Mapping[any]) {
		doc.value = next
	}, opts...)
}

// Value returns the mapping as last emitted.
func (e ObjectEditor) Value() objectinput.Mapping[any] {
	return e.doc.value.Clone()
}

// Dirty reports whether the mapping differs from what was last saved.
func (e ObjectEditor) Dirty() bool {
	return !e.doc.value.Equal(e.doc.saved, func(a, b any) bool { return cmp.Equal(a, b) })
}

func (e ObjectEditor) Init() tea.Cmd {
	return nil
}

func (e ObjectEditor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.cursor.PageSize = max(msg.Height-16, 3)
		e.cursor.Jump(e.cursor.Index)
		return e, nil
	case savedMsg:
		if msg.err != nil {
			e.logger.Error("save failed", zap.Error(msg.err))
			e.setError("save failed: " + msg.err.Error())
			return e, nil
		}
		e.doc.saved = msg.value
		e.logger.Info("saved", zap.Int("keys", msg.value.Len()))
		e.setStatus("saved")
		return e, nil
	case tea.KeyMsg:
		return e.handleKey(msg)
	}
	return e, nil
}

func (e ObjectEditor) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case e.confirmQuit:
		return e.handleConfirmKey(msg)
	case e.raw.Active:
		if m, ok := e.raw.HandleKey(msg); ok {
			// Applied order wins, even for the same pairs reordered.
			e.widget.Reconciler.Replace(m)
			e.doc.value = m
			e.sync()
			e.logger.Debug("raw mapping applied", zap.Int("keys", m.Len()))
			e.setStatus("applied raw JSON")
		}
		return e, nil
	case e.editing:
		return e.handleEditKey(msg)
	}
	return e.handleNavKey(msg)
}

func (e ObjectEditor) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isKey(msg, "y"):
		return e, tea.Quit
	case isKey(msg, "n"), isBack(msg):
		e.confirmQuit = false
	}
	return e, nil
}

func (e ObjectEditor) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isUp(msg, e.opts.VimKeys):
		e.cursor.Up()
	case isDown(msg, e.opts.VimKeys):
		e.cursor.Down()
	case isKey(msg, "tab"):
		e.toggleColumn()
	case isKey(msg, "left"):
		e.column = columnKey
	case isKey(msg, "right"):
		e.column = columnValue
	case isEnter(msg):
		return e.startEditing()
	case isKey(msg, "a"):
		return e.addRow()
	case isDelete(msg):
		if r, ok := e.focused(); ok {
			r.remove()
			e.sync()
		}
	case isKey(msg, "r"):
		e.raw.Open(e.doc.value)
	case isKey(msg, "ctrl+r"):
		e.reset()
	case isSave(msg):
		cmd := e.save()
		return e, cmd
	case isQuit(msg):
		if e.Dirty() {
			e.confirmQuit = true
			return e, nil
		}
		return e, tea.Quit
	}
	return e, nil
}

func (e ObjectEditor) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case isEnter(msg), isBack(msg):
		e.stopEditing()
		return e, nil
	case isKey(msg, "tab"):
		e.stopEditing()
		e.toggleColumn()
		return e.startEditing()
	}

	r, ok := e.focused()
	if !ok {
		e.stopEditing()
		return e, nil
	}

	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	text := e.input.Value()

	if e.column == columnKey {
		if text == r.key {
			return e, cmd
		}
		r.updateKey(text)
		e.sync()
		if stored, _ := e.focused(); stored.key != text {
			// Controlled input: show what the store kept.
			e.input.SetValue(stored.key)
			e.input.CursorEnd()
			e.setError(fmt.Sprintf("key %q already exists", text))
		} else {
			e.clearStatus()
		}
		return e, cmd
	}

	if text == editText(r.value) {
		return e, cmd
	}
	r.updateValue(parseCell(text, e.textCell))
	e.sync()
	return e, cmd
}

func (e *ObjectEditor) startEditing() (tea.Model, tea.Cmd) {
	r, ok := e.focused()
	if !ok {
		return *e, nil
	}
	text := r.key
	if e.column == columnValue {
		text = editText(r.value)
		_, e.textCell = r.value.(string)
	}
	e.input.SetValue(text)
	e.input.CursorEnd()
	e.editing = true
	cmd := e.input.Focus()
	return *e, cmd
}

func (e *ObjectEditor) stopEditing() {
	e.editing = false
	e.input.Blur()
}

func (e *ObjectEditor) toggleColumn() {
	if e.column == columnKey {
		e.column = columnValue
	} else {
		e.column = columnKey
	}
}

func (e *ObjectEditor) addRow() (tea.Model, tea.Cmd) {
	for _, r := range e.widget.Render(e.doc.value) {
		if r.kind == rowAdd {
			r.add()
		}
	}
	e.sync()
	e.cursor.Last()
	e.column = columnKey
	return e.startEditing()
}

func (e *ObjectEditor) reset() {
	e.widget.Reconciler = e.newReconciler(e.doc.initial)
	e.doc.value = e.doc.initial.Clone()
	e.sync()
	e.cursor.Jump(0)
	e.logger.Debug("reset to initial mapping")
	e.setStatus("reset")
}

func (e *ObjectEditor) save() tea.Cmd {
	if e.opts.Save == nil {
		e.setError("nothing to save to")
		return nil
	}
	value := e.doc.value.Clone()
	save := e.opts.Save
	return func() tea.Msg {
		return savedMsg{value: value, err: save(value)}
	}
}

// items renders the widget and returns the entry rows only.
func (e ObjectEditor) items() []row {
	rows := e.widget.Render(e.doc.value)
	items := make([]row, 0, len(rows))
	for _, r := range rows {
		if r.kind == rowItem {
			items = append(items, r)
		}
	}
	return items
}

func (e ObjectEditor) focused() (row, bool) {
	items := e.items()
	if e.cursor.Index < len(items) {
		return items[e.cursor.Index], true
	}
	return row{}, false
}

// sync re-renders so external changes are accepted and the cursor stays
// within the rows.
func (e *ObjectEditor) sync() {
	e.cursor.SetCount(len(e.items()))
}

func (e *ObjectEditor) setStatus(s string) {
	e.status, e.statusErr = s, false
}

func (e *ObjectEditor) setError(s string) {
	e.status, e.statusErr = s, true
}

func (e *ObjectEditor) clearStatus() {
	e.status, e.statusErr = "", false
}

// editText is the text a value cell starts with when editing begins.
func editText(v any) string {
	if v == nil {
		return ""
	}
	return mapfile.FormatValue(v)
}

// parseCell turns typed text into a value. Cells that held text when
// editing began stay text; others are parsed so numbers and literals keep
// their type.
func parseCell(text string, textCell bool) any {
	if textCell {
		return text
	}
	return mapfile.ParseValue(text)
}

func (e ObjectEditor) View() string {
	title := e.opts.Title
	if title == "" {
		title = "Object"
	}
	if e.Dirty() {
		title += " *"
	}

	var b strings.Builder
	b.WriteString(components.Indent(components.TitledBox(title, e.renderRows(), e.width), 1))
	b.WriteString("\n")
	if e.raw.Active {
		b.WriteString(e.raw.Render(e.width))
	} else {
		b.WriteString(components.Indent(components.TitledBox("Mapping", e.renderPreview(), e.width), 1))
	}
	b.WriteString("\n")
	if e.confirmQuit {
		b.WriteString(components.Indent(components.ConfirmDialog("Unsaved changes", "Quit without saving?"), 1))
		b.WriteString("\n")
	}
	if e.status != "" {
		style := SuccessStyle
		if e.statusErr {
			style = ErrorStyle
		}
		b.WriteString("  " + style.Render(components.SanitizeOneLine(e.status)) + "\n")
	}
	b.WriteString(components.StatusBar(e.hints(), e.width))
	return b.String()
}

func (e ObjectEditor) renderRows() string {
	rows := e.widget.Render(e.doc.value)

	keyWidth := 6
	for _, r := range rows {
		if r.kind == rowItem {
			keyWidth = max(keyWidth, len([]rune(components.SanitizeOneLine(r.key))))
		}
	}
	keyWidth = min(keyWidth, 24)
	valueWidth := 0
	if inner := components.BoxContentWidth(e.width); inner > 0 {
		valueWidth = max(inner-keyWidth-5, 8)
	}

	start, end := e.cursor.Window()
	var lines, tail []string
	idx := 0
	for _, r := range rows {
		switch r.kind {
		case rowEmpty:
			tail = append(tail, MutedStyle.Render("No items"))
		case rowAdd:
			tail = append(tail, MutedStyle.Render("+ add (a)"))
		case rowItem:
			if idx >= start && idx < end {
				lines = append(lines, e.renderItem(idx, r, keyWidth, valueWidth))
			}
			idx++
		}
	}
	if start > 0 || end < idx {
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("%d-%d of %d", start+1, end, idx)))
	}
	return strings.Join(append(lines, tail...), "\n")
}

func (e ObjectEditor) renderItem(i int, r row, keyWidth, valueWidth int) string {
	selected := i == e.cursor.Index

	keyCell := MetaKeyStyle.Render(components.ClampTextWidth(r.key, keyWidth))
	if r.key == "" {
		keyCell = MutedStyle.Render("(blank)")
	}
	valueCell := renderValue(r.value, valueWidth)

	if selected {
		switch {
		case e.editing && e.column == columnKey:
			keyCell = e.input.View()
		case e.editing:
			valueCell = e.input.View()
		case e.column == columnKey:
			keyCell = CellFocusStyle.Render(components.SanitizeOneLine(r.key) + " ")
		default:
			valueCell = CellFocusStyle.Render(components.SanitizeOneLine(editText(r.value)) + " ")
		}
	}

	marker := "  "
	if selected {
		marker = SelectedStyle.Render("› ")
	}
	return marker + components.PadRight(keyCell, keyWidth) + MetaPunctStyle.Render(" : ") + valueCell
}

func renderValue(v any, width int) string {
	switch v := v.(type) {
	case nil:
		return MutedStyle.Render("null")
	case string:
		return MetaValueStyle.Render(clampCell(v, width))
	default:
		return AccentStyle.Render(clampCell(mapfile.FormatValue(v), width))
	}
}

func clampCell(s string, width int) string {
	if width <= 0 {
		return components.SanitizeOneLine(s)
	}
	return components.ClampTextWidth(s, width)
}

func (e ObjectEditor) renderPreview() string {
	var buf bytes.Buffer
	if err := mapfile.EncodeJSON(&buf, e.doc.value, 2); err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return renderRawInput(strings.TrimRight(buf.String(), "\n"))
}

func (e ObjectEditor) hints() []string {
	switch {
	case e.confirmQuit:
		return []string{components.Hint("y", "Quit"), components.Hint("n", "Stay")}
	case e.raw.Active:
		return []string{components.Hint("ctrl+s", "Apply"), components.Hint("esc", "Cancel")}
	case e.editing:
		return []string{
			components.Hint("enter", "Done"),
			components.Hint("tab", "Next cell"),
			components.Hint("esc", "Done"),
		}
	}
	move := "↑/↓"
	if e.opts.VimKeys {
		move = "j/k"
	}
	return []string{
		components.Hint(move, "Move"),
		components.Hint("enter", "Edit"),
		components.Hint("a", "Add"),
		components.Hint("d", "Delete"),
		components.Hint("r", "Raw"),
		components.Hint("ctrl+r", "Reset"),
		components.Hint("ctrl+s", "Save"),
		components.Hint("q", "Quit"),
	}
}
