// Package jobspec builds normalized job descriptions for the external editor.
//
// A job is either a single-photo batch edit or one bracket set's HDR merge.
// Construction is pure: builders map scan and grouping results plus user
// options into immutable specs without touching the filesystem or any process.
// Each spec knows how to render itself into the parameter structure the
// editor's scripting runtime expects.
package jobspec
