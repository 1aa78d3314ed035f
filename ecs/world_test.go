package ecs

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name    string
		create  int
		destroy []int
		want    []int
	}{
		{name: "single", create: 1, destroy: []int{0}, want: nil},
		{name: "destroy_middle", create: 3, destroy: []int{1}, want: []int{0, 2}},
		{name: "destroy_first_and_last", create: 4, destroy: []int{0, 3}, want: []int{1, 2}},
		{name: "none_destroyed", create: 2, want: []int{0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, tc.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
				if !ents[i].Valid() {
					t.Fatalf("entity %d should be valid", i)
				}
			}
			for _, i := range tc.destroy {
				if !DestroyEntity(w, ents[i]) {
					t.Fatalf("DestroyEntity(%v) should succeed", ents[i])
				}
			}

			live := Entities(w)
			if len(live) != len(tc.want) {
				t.Fatalf("expected %d live entities, got %v", len(tc.want), live)
			}
			for i, idx := range tc.want {
				if live[i] != ents[idx] {
					t.Fatalf("Entities()[%d] = %v, want %v", i, live[i], ents[idx])
				}
			}
		})
	}
}

func TestComponentErrors(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	var zero component.ComponentKind[component.Health]
	if err := Add(w, e, zero, &component.Health{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
	if err := Add(w, e, component.HealthComponent.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	DestroyEntity(w, e)
	if err := Add(w, e, component.HealthComponent.Kind(), &component.Health{}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if _, ok := Get(w, e, component.HealthComponent.Kind()); ok {
		t.Fatalf("Get on a destroyed entity should fail")
	}
	if Remove(w, e, component.DeadComponent.Kind()) {
		t.Fatalf("Remove from a store that was never created should report false")
	}
}

func TestCreatureComponents(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "pointer_identity",
			run: func(t *testing.T) {
				h := &component.Health{Current: 40, Max: 40}
				if err := Add(w, e, component.HealthComponent.Kind(), h); err != nil {
					t.Fatal(err)
				}
				got, ok := Get(w, e, component.HealthComponent.Kind())
				if !ok || got != h {
					t.Fatalf("Get should return the stored pointer")
				}
				got.Current = 10
				if h.Fraction() != 0.25 {
					t.Fatalf("writes through Get should reach the stored value, fraction = %v", h.Fraction())
				}
			},
		},
		{
			name: "replace_ability_slot",
			run: func(t *testing.T) {
				first := &component.AbilitySlot{}
				second := &component.AbilitySlot{Active: &ability.Ability{}}
				if err := Add(w, e, component.AbilitySlotComponent.Kind(), first); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, e, component.AbilitySlotComponent.Kind(), second); err != nil {
					t.Fatal(err)
				}
				got, _ := Get(w, e, component.AbilitySlotComponent.Kind())
				if got != second || got.Active == nil {
					t.Fatalf("second Add should replace the slot")
				}
			},
		},
		{
			name: "transient_damage_request",
			run: func(t *testing.T) {
				req := &component.DamageRequest{Amount: 5, Hits: 1, Knockback: cp.Vector{X: 1}}
				if err := Add(w, e, component.DamageRequestComponent.Kind(), req); err != nil {
					t.Fatal(err)
				}
				if !Has(w, e, component.DamageRequestComponent.Kind()) {
					t.Fatalf("request should be present")
				}
				if !Remove(w, e, component.DamageRequestComponent.Kind()) {
					t.Fatalf("Remove should report true")
				}
				if Has(w, e, component.DamageRequestComponent.Kind()) {
					t.Fatalf("request should be gone")
				}
				if !Has(w, e, component.HealthComponent.Kind()) {
					t.Fatalf("removing one kind must leave the others")
				}
			},
		},
		{
			name: "destroy_clears_all_stores",
			run: func(t *testing.T) {
				DestroyEntity(w, e)
				for _, has := range []bool{
					Has(w, e, component.HealthComponent.Kind()),
					Has(w, e, component.AbilitySlotComponent.Kind()),
				} {
					if has {
						t.Fatalf("destroyed entity kept a component")
					}
				}
				if w.store(component.HealthComponent.Kind().ID(), false).Len() != 0 {
					t.Fatalf("health store should be empty")
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

// A damage pass queues follow-up requests and removes the ones it handles
// while iterating; the snapshot keeps the walk stable.
func TestForEachDamageRequests(t *testing.T) {
	w := NewWorld()
	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
		must(t, Add(w, ents[i], component.HealthComponent.Kind(), &component.Health{Current: 10, Max: 10}))
	}
	for _, i := range []int{2, 0} {
		must(t, Add(w, ents[i], component.DamageRequestComponent.Kind(), &component.DamageRequest{Amount: 3, Hits: 1}))
	}

	var visited []Entity
	ForEach2(w, component.DamageRequestComponent.Kind(), component.HealthComponent.Kind(), func(e Entity, req *component.DamageRequest, h *component.Health) {
		visited = append(visited, e)
		h.Current -= req.Amount
		Remove(w, e, component.DamageRequestComponent.Kind())
		if e == ents[0] {
			must(t, Add(w, ents[3], component.DamageRequestComponent.Kind(), &component.DamageRequest{Amount: 1}))
		}
	})

	if len(visited) != 2 || visited[0] != ents[0] || visited[1] != ents[2] {
		t.Fatalf("expected ascending visit of the snapshot %v, got %v", []Entity{ents[0], ents[2]}, visited)
	}
	if !Has(w, ents[3], component.DamageRequestComponent.Kind()) {
		t.Fatalf("request added mid-iteration should wait for the next pass")
	}
	for i, want := range []float64{7, 10, 7, 10} {
		h, _ := Get(w, ents[i], component.HealthComponent.Kind())
		if h.Current != want {
			t.Fatalf("entity %d health = %v, want %v", i, h.Current, want)
		}
	}
}

func TestForEach3SkipsPartialMatches(t *testing.T) {
	w := NewWorld()
	full := CreateEntity(w)
	noHealth := CreateEntity(w)
	dead := CreateEntity(w)

	for _, e := range []Entity{full, noHealth, dead} {
		must(t, Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
		must(t, Add(w, e, component.TargetingComponent.Kind(), &component.Targeting{}))
	}
	must(t, Add(w, full, component.HealthComponent.Kind(), &component.Health{Current: 1, Max: 1}))
	must(t, Add(w, dead, component.HealthComponent.Kind(), &component.Health{Max: 1}))

	var got []Entity
	ForEach3(w, component.TransformComponent.Kind(), component.TargetingComponent.Kind(), component.HealthComponent.Kind(),
		func(e Entity, tr *component.Transform, _ *component.Targeting, h *component.Health) {
			got = append(got, e)
			tr.Position = cp.Vector{X: h.Max}
			if e == full {
				DestroyEntity(w, dead)
			}
		})
	if len(got) != 1 || got[0] != full {
		t.Fatalf("expected only %v, got %v", full, got)
	}
	tr, _ := Get(w, full, component.TransformComponent.Kind())
	if tr.Position.X != 1 {
		t.Fatalf("callback writes should stick, got %v", tr.Position)
	}

	ForEach3(w, component.TransformComponent.Kind(), component.TargetingComponent.Kind(), component.InertComponent.Kind(),
		func(Entity, *component.Transform, *component.Targeting, *component.Inert) {
			t.Fatalf("no entity has Inert")
		})
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}


func TestEntityRecycling(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(7)); err != nil {
		t.Fatal(err)
	}
	if !DestroyEntity(w, old) {
		t.Fatal("failed to destroy entity")
	}
	if DestroyEntity(w, old) {
		t.Fatal("destroying twice should report false")
	}

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), fresh.id())
	}
	if fresh == old || IsAlive(w, old) {
		t.Fatalf("stale handle %v must not alias %v", old, fresh)
	}
	if Has(w, fresh, h.Kind()) {
		t.Fatalf("recycled entity must start without components")
	}
	if err := Add(w, old, h.Kind(), intPtr(1)); err == nil {
		t.Fatalf("adding to a stale handle should fail")
	}
}

func TestForEachOrderAndMutation(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	ents := make([]Entity, 5)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	// Insert out of order so dense order differs from id order.
	for _, i := range []int{3, 0, 4, 1, 2} {
		if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	var seen []int
	ForEach(w, h.Kind(), func(e Entity, v *int) {
		seen = append(seen, *v)
		if *v == 1 {
			Remove(w, ents[2], h.Kind())
		}
	})
	want := []int{0, 1, 3, 4}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}

	first, ok := First(w, h.Kind())
	if !ok || first != ents[0] {
		t.Fatalf("First = %v, want %v", first, ents[0])
	}
}

type recordSystem struct {
	name string
	log  *[]string
}

func (s recordSystem) Update(w *World) {
	*s.log = append(*s.log, s.name)
	w.Emit(s.name, nil)
}

func TestWorldUpdate(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(recordSystem{"targeting", &log})
	w.AddSystem(recordSystem{"ability", &log})
	w.AddSystem(nil)

	w.Update()
	if w.Tick() != 1 {
		t.Fatalf("expected tick 1, got %d", w.Tick())
	}
	if len(log) != 2 || log[0] != "targeting" || log[1] != "ability" {
		t.Fatalf("systems ran out of order: %v", log)
	}
	if w.Events().Len() != 2 {
		t.Fatalf("expected 2 queued events, got %d", w.Events().Len())
	}

	w.Update()
	evts := w.Events().Drain()
	if len(evts) != 4 || evts[0].Type != "targeting" || evts[3].Type != "ability" {
		t.Fatalf("events should accumulate in push order until drained, got %v", evts)
	}
	if evts[0].Tick != 1 || evts[3].Tick != 2 {
		t.Fatalf("events should carry the tick they were raised on, got %d and %d", evts[0].Tick, evts[3].Tick)
	}
	if w.Events().Drain() != nil {
		t.Fatalf("drain should empty the queue")
	}
}
