package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"photoflow/internal/services"
)

// supportedExtensions mirrors the formats the editor's adjustment scripts
// accept. Matching is case-insensitive.
var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".tif":  {},
	".tiff": {},
	".raw":  {},
	".cr2":  {},
	".nef":  {},
	".arw":  {},
}

// Order selects how scanned items are sequenced.
type Order string

const (
	// OrderPath sorts by full path string ascending. This is the default and
	// the ordering bracket grouping relies on.
	OrderPath Order = "path"
	// OrderModTime sorts by file modification time ascending, ties broken by
	// path so the result stays deterministic.
	OrderModTime Order = "modtime"
)

// InputItem is one discovered image file. Immutable once scanned.
type InputItem struct {
	Path    string
	Name    string
	ModTime time.Time
}

// Stem returns the item's file name without its extension.
func (i InputItem) Stem() string {
	return strings.TrimSuffix(i.Name, filepath.Ext(i.Name))
}

// Options controls a scan.
type Options struct {
	Recursive bool
	Order     Order
}

// Scan enumerates supported image files under rootDir. Only direct children
// are considered unless opts.Recursive is set. The root must exist and be a
// readable directory.
func Scan(rootDir string, opts Options) ([]InputItem, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "stat", rootDir, err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "stat", fmt.Sprintf("%s is not a directory", rootDir), nil)
	}

	var items []InputItem
	if opts.Recursive {
		err = filepath.WalkDir(rootDir, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			item, ok, err := toItem(path, entry)
			if err != nil {
				return err
			}
			if ok {
				items = append(items, item)
			}
			return nil
		})
		if err != nil {
			return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "walk", rootDir, err)
		}
	} else {
		entries, err := os.ReadDir(rootDir)
		if err != nil {
			return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "read", rootDir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			item, ok, err := toItem(filepath.Join(rootDir, entry.Name()), entry)
			if err != nil {
				return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "read", rootDir, err)
			}
			if ok {
				items = append(items, item)
			}
		}
	}

	sortItems(items, opts.Order)
	return items, nil
}

// SupportedExtensions returns the extension allow-list in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func toItem(path string, entry fs.DirEntry) (InputItem, bool, error) {
	ext := strings.ToLower(filepath.Ext(entry.Name()))
	if _, ok := supportedExtensions[ext]; !ok {
		return InputItem{}, false, nil
	}
	info, err := entry.Info()
	if err != nil {
		return InputItem{}, false, err
	}
	return InputItem{Path: path, Name: entry.Name(), ModTime: info.ModTime()}, true, nil
}

func sortItems(items []InputItem, order Order) {
	switch order {
	case OrderModTime:
		sort.Slice(items, func(i, j int) bool {
			if !items[i].ModTime.Equal(items[j].ModTime) {
				return items[i].ModTime.Before(items[j].ModTime)
			}
			return items[i].Path < items[j].Path
		})
	default:
		sort.Slice(items, func(i, j int) bool {
			return items[i].Path < items[j].Path
		})
	}
}
