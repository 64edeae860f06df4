package photoshop

import (
	"fmt"
	"os"
	"runtime"

	"photoflow/internal/services"
)

// Handle is the resolved path to the editor executable. Resolve it once per
// run and treat it as read-only afterwards.
type Handle struct {
	Path string
}

// searchPaths lists known install locations per platform. Linux entries cover
// Wine-based installs; the editor has no native Linux build.
var searchPaths = map[string][]string{
	"darwin": {
		"/Applications/Adobe Photoshop 2023/Adobe Photoshop 2023.app/Contents/MacOS/Adobe Photoshop 2023",
		"/Applications/Adobe Photoshop 2022/Adobe Photoshop 2022.app/Contents/MacOS/Adobe Photoshop 2022",
		"/Applications/Adobe Photoshop 2021/Adobe Photoshop 2021.app/Contents/MacOS/Adobe Photoshop 2021",
		"/Applications/Adobe Photoshop CC 2020/Adobe Photoshop CC 2020.app/Contents/MacOS/Adobe Photoshop CC 2020",
	},
	"windows": {
		`C:\Program Files\Adobe\Adobe Photoshop 2023\Photoshop.exe`,
		`C:\Program Files\Adobe\Adobe Photoshop 2022\Photoshop.exe`,
		`C:\Program Files\Adobe\Adobe Photoshop 2021\Photoshop.exe`,
		`C:\Program Files\Adobe\Adobe Photoshop CC 2020\Photoshop.exe`,
	},
	"linux": {
		"/usr/bin/photoshop",
		"/opt/photoshop/photoshop",
	},
}

var statFile = os.Stat

// Locate resolves the editor executable. A non-empty override wins and must
// exist; otherwise the platform's known install locations are probed in
// order. Failure to resolve is fatal for the run.
func Locate(override string) (Handle, error) {
	return locateFor(runtime.GOOS, override)
}

func locateFor(goos, override string) (Handle, error) {
	if override != "" {
		if _, err := statFile(override); err != nil {
			return Handle{}, services.Wrap(services.ErrAppNotFound, "photoshop", "locate",
				fmt.Sprintf("override %s not found", override), err)
		}
		return Handle{Path: override}, nil
	}

	candidates, ok := searchPaths[goos]
	if !ok {
		return Handle{}, services.Wrap(services.ErrAppNotFound, "photoshop", "locate",
			fmt.Sprintf("unsupported platform %s", goos), nil)
	}
	for _, candidate := range candidates {
		if _, err := statFile(candidate); err == nil {
			return Handle{Path: candidate}, nil
		}
	}
	return Handle{}, services.Wrap(services.ErrAppNotFound, "photoshop", "locate",
		"no known install location resolved; pass --photoshop or set photoshop.executable_path", nil)
}
