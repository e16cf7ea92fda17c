package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"
)

//go:embed *.yaml levels/*.yaml
var PrefabsFS embed.FS

var diskDir atomic.Value

func init() {
	diskDir.Store("prefabs")
}

// SetDiskDir changes the directory whose files take precedence over the
// embedded prefabs. An empty dir disables disk overrides.
func SetDiskDir(dir string) {
	diskDir.Store(dir)
}

// DiskDir returns the override directory.
func DiskDir() string {
	return diskDir.Load().(string)
}

// Load reads a prefab, preferring the on-disk copy so edits apply without a rebuild.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if p := diskPrefabPath(clean); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	p := diskPrefabPath(cleanPrefabPath(name))
	if p == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(p)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if dir := filepath.ToSlash(DiskDir()); dir != "" {
		if after, ok := strings.CutPrefix(s, strings.TrimSuffix(dir, "/")+"/"); ok {
			return after
		}
	}
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	dir := DiskDir()
	if dir == "" || clean == "" {
		return ""
	}
	return filepath.Join(dir, filepath.FromSlash(clean))
}
