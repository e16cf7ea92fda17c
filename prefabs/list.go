package prefabs

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Info names a prefab file.
type Info struct {
	Name string
	Path string
}

// List returns the prefabs in dir ("" for the top level), merging the disk
// override directory with the embedded copies.
func List(dir string) ([]Info, error) {
	seen := make(map[string]Info)

	embedDir := dir
	if embedDir == "" {
		embedDir = "."
	}
	entries, err := fs.ReadDir(PrefabsFS, embedDir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	addEntries(seen, dir, entries)

	if disk := DiskDir(); disk != "" {
		diskEntries, err := os.ReadDir(filepath.Join(disk, filepath.FromSlash(dir)))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		addEntries(seen, dir, diskEntries)
	}

	out := make([]Info, 0, len(seen))
	for _, info := range seen {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})
	return out, nil
}

func addEntries(seen map[string]Info, dir string, entries []fs.DirEntry) {
	for _, entry := range entries {
		if entry.IsDir() || !isSpecFile(entry.Name()) {
			continue
		}
		ext := filepath.Ext(entry.Name())
		p := path.Join(dir, entry.Name())
		seen[p] = Info{
			Name: strings.TrimSuffix(entry.Name(), ext),
			Path: p,
		}
	}
}
