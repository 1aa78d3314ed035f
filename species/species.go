// Package species is the catalog of creature species. Each species package
// registers its ability types and a Definition from init.
package species

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/creature"
)

// Definition is everything the arena needs to field a species.
type Definition struct {
	Name string
	// Prefab is the tuning file, Scripts the ability scripts it uses.
	Prefab  string
	Scripts []string
	Reload  func() error
	Spawn   func(a *creature.Arena, pos cp.Vector, faction string) (*creature.Creature, error)
}

var (
	mu   sync.RWMutex
	defs = map[string]Definition{}
)

// Define adds d to the catalog. It panics on duplicates since it only runs
// from init.
func Define(d Definition) {
	mu.Lock()
	defer mu.Unlock()
	if d.Name == "" || d.Spawn == nil || d.Reload == nil {
		panic(fmt.Sprintf("species: incomplete definition %q", d.Name))
	}
	if _, ok := defs[d.Name]; ok {
		panic(fmt.Sprintf("species: %q defined twice", d.Name))
	}
	defs[d.Name] = d
}

func Lookup(name string) (Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := defs[name]
	return d, ok
}

// All returns the definitions sorted by name.
func All() []Definition {
	mu.RLock()
	out := make([]Definition, 0, len(defs))
	for _, d := range defs {
		out = append(out, d)
	}
	mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ReloadAll reloads every species and reports all failures together.
func ReloadAll() error {
	var errs []error
	for _, d := range All() {
		if err := d.Reload(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ReloadFile reloads the species that use file as prefab or script and
// returns their names.
func ReloadFile(file string) ([]string, error) {
	var (
		names []string
		errs  []error
	)
	for _, d := range All() {
		if d.Prefab != file && !slices.Contains(d.Scripts, file) {
			continue
		}
		names = append(names, d.Name)
		if err := d.Reload(); err != nil {
			errs = append(errs, err)
		}
	}
	return names, errors.Join(errs...)
}
