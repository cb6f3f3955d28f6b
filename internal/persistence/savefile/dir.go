package savefile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// SaveInfo describes one save file on disk.
type SaveInfo struct {
	Path    string
	Name    string
	ModTime time.Time
}

// ListDir returns the .save files in dir, newest first.
func ListDir(dir string) ([]SaveInfo, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []SaveInfo
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".save") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, SaveInfo{
			Path:    filepath.Join(dir, e.Name()),
			Name:    e.Name(),
			ModTime: info.ModTime(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ModTime.After(out[j].ModTime) })
	return out, nil
}
