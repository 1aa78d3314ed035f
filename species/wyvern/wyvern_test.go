package wyvern

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/creature"
	"github.com/LilRicefield/saints-dragons/prefabs"
	"github.com/LilRicefield/saints-dragons/species"
)

func TestSpawnFromTuning(t *testing.T) {
	a := creature.NewArena(1)
	c, err := Spawn(a, cp.Vector{X: 4}, "wild")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if c.Species() != Name || c.Health().Max != 60 {
		t.Fatalf("unexpected creature %s with %+v", c, c.Health())
	}
	if c.Goals() == nil || len(c.Abilities()) != 3 {
		t.Fatalf("wyvern should carry goals and 3 abilities")
	}
}

func TestReloadFromDisk(t *testing.T) {
	dir := t.TempDir()
	prefabs.SetDir(dir)
	t.Cleanup(func() {
		prefabs.SetDir("prefabs")
		if err := tuning.Load(); err != nil {
			t.Errorf("restore: %v", err)
		}
	})

	data, err := prefabs.Load("wyvern.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	edited := strings.Replace(string(data), "health: 60", "health: 75", 1)
	if err := os.WriteFile(filepath.Join(dir, "wyvern.yaml"), []byte(edited), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	names, err := species.ReloadFile("wyvern.yaml")
	if err != nil || !slices.Contains(names, Name) {
		t.Fatalf("ReloadFile = %v, %v", names, err)
	}
	c, err := Spawn(creature.NewArena(1), cp.Vector{}, "wild")
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if c.Health().Max != 75 {
		t.Fatalf("reload should raise health to 75, got %v", c.Health().Max)
	}

	if err := os.WriteFile(filepath.Join(dir, "wyvern.yaml"), []byte("name: wyvern\nabilities: {}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := species.ReloadFile("wyvern.yaml"); err == nil {
		t.Fatalf("tuning missing abilities should fail to reload")
	}
	c, err = Spawn(creature.NewArena(1), cp.Vector{}, "wild")
	if err != nil {
		t.Fatalf("Spawn after failed reload: %v", err)
	}
	if c.Health().Max != 75 {
		t.Fatalf("failed reload must keep the previous values, got %v", c.Health().Max)
	}
}
