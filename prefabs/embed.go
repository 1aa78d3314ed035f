package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var PrefabsFS embed.FS

// diskDir is checked before the embedded copies so edited files win.
var diskDir = "prefabs"

// SetDir changes the on-disk override directory. An empty dir disables it.
func SetDir(dir string) {
	diskDir = dir
}

func Dir() string {
	return diskDir
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := readDisk(clean); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := readDisk(clean); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	if diskDir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(diskPrefabPath(cleanPrefabPath(name)))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func readDisk(clean string) ([]byte, error) {
	if diskDir == "" {
		return nil, os.ErrNotExist
	}
	return os.ReadFile(diskPrefabPath(clean))
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if dir := filepath.ToSlash(diskDir); dir != "" {
		if after, ok := strings.CutPrefix(s, dir+"/"); ok {
			return after
		}
	}
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := cleanPrefabPath(path)

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskDir, filepath.FromSlash(clean))
}
