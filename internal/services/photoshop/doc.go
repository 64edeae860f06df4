// Package photoshop is the single point of contact with the external editor.
//
// It locates the editor executable across platforms, serializes job specs into
// the parameter form the editor's scripting runtime expects (a JSON file read
// by a JSX loader preamble), launches the editor as a supervised subprocess
// with a per-job timeout, captures its log output, and classifies the outcome.
// The editor's internal adjustment pipeline stays opaque: the driver only
// observes exit status, known failure markers in the log, and whether the
// expected output artifact exists afterwards.
package photoshop
