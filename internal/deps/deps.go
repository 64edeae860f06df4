// Package deps reports the availability of the external tools photoflow
// drives, so users can check their environment before queueing a run.
package deps

import (
	"os/exec"
	"runtime"

	"photoflow/internal/services/photoshop"
)

// Status reports the availability of one external dependency.
type Status struct {
	Name      string
	Detail    string
	Optional  bool
	Available bool
}

// Check evaluates the editor executable and, on macOS, the osascript bridge
// used to drive it.
func Check(executableOverride string) []Status {
	results := make([]Status, 0, 2)

	editor := Status{Name: "photoshop"}
	if handle, err := photoshop.Locate(executableOverride); err != nil {
		editor.Detail = err.Error()
	} else {
		editor.Available = true
		editor.Detail = handle.Path
	}
	results = append(results, editor)

	if runtime.GOOS == "darwin" {
		bridge := Status{Name: "osascript"}
		if path, err := exec.LookPath("osascript"); err != nil {
			bridge.Detail = "osascript not found in PATH"
		} else {
			bridge.Available = true
			bridge.Detail = path
		}
		results = append(results, bridge)
	}

	return results
}
