package jobspec

import (
	"fmt"
	"strings"
)

// Kind discriminates the two job flavours.
type Kind string

const (
	KindBatchEdit Kind = "batch_edit"
	KindHDRMerge  Kind = "hdr_merge"
)

// Format is an output image format accepted by the editor's save step.
type Format string

const (
	FormatJPEG Format = "jpg"
	FormatTIFF Format = "tif"
	FormatPSD  Format = "psd"
)

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "psd":
		return FormatPSD, nil
	default:
		return "", fmt.Errorf("unsupported save format %q", value)
	}
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// matches reports whether an existing file extension already satisfies the
// format, so the original name can be kept.
func (f Format) matches(ext string) bool {
	ext = strings.ToLower(ext)
	switch f {
	case FormatJPEG:
		return ext == ".jpg" || ext == ".jpeg"
	case FormatTIFF:
		return ext == ".tif" || ext == ".tiff"
	case FormatPSD:
		return ext == ".psd"
	default:
		return false
	}
}

// Toggles selects which adjustment steps a batch edit applies.
type Toggles struct {
	Exposure bool
	Lens     bool
	Color    bool
}

// Job is one unit of work for the external editor. Implementations are
// immutable after construction.
type Job interface {
	// Kind selects the adjustment script the driver invokes.
	Kind() Kind
	// ID identifies the job in logs and the run summary.
	ID() string
	// OutputPath is the artifact the job is expected to produce.
	OutputPath() string
	// Params renders the parameter structure passed to the scripting runtime.
	Params() map[string]any
}
