// Package objectinput keeps an editable list of key/value rows and an
// external string-keyed mapping synchronized in both directions.
//
// Rows carry identities that never change while the row lives, so a half
// typed key keeps its place across renders. The mapping the caller sees is
// always the canonical projection of the rows: blank keys are left out and
// the earliest row wins a repeated key. Renaming a row onto a key held by
// another row is refused and leaves everything as it was.
//
// Callers that hand every emitted mapping straight back (a controlled
// component) get an echo check: a mapping equal to the last emission is
// ignored, anything else replaces the rows.
package objectinput
