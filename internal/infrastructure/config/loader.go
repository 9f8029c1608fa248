package config

import (
	"embed"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/game.yaml defaults/maps/*.txt
var defaultFS embed.FS

const gameFile = "game.yaml"

// Loader loads game configuration and maps using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// NewDefaultLoader creates a loader over the embedded defaults
func NewDefaultLoader() *Loader {
	sub, err := fs.Sub(defaultFS, "defaults")
	if err != nil {
		// The embed pattern guarantees the directory exists
		panic(err)
	}
	return NewFSLoader(sub, "defaults")
}

// Default returns the embedded default configuration
func Default() (*GameConfig, error) {
	return NewDefaultLoader().LoadGame()
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, gameFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", gameFile, err)
	}

	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", gameFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate %s: %w", gameFile, err)
	}

	return &cfg, nil
}

// MapNames returns the .txt map files in the maps directory, sorted by name
func (l *Loader) MapNames(maps MapsConfig) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, maps.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps in %s: %w", maps.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// LoadMap loads and parses a map file from the maps directory
func (l *Loader) LoadMap(name string, cfg *GameConfig) (*MapData, error) {
	p := path.Join(cfg.Maps.Dir, name)
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open map %s: %w", name, err)
	}
	defer f.Close()

	return ParseMap(f, name, cfg.Physics, cfg.Maps)
}

// PickMap returns a random map name. The first map is reserved for the
// tutorial and is only picked when it is the only one.
func PickMap(names []string, rng *rand.Rand) (string, bool) {
	switch len(names) {
	case 0:
		return "", false
	case 1:
		return names[0], true
	}
	idx := rng.Intn(len(names))
	if idx == 0 {
		idx = 1
	}
	return names[idx], true
}
