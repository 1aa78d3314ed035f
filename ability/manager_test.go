package ability

import (
	"math/rand"
	"slices"
	"testing"
)

func TestManagerGates(t *testing.T) {
	host := &testHost{}
	bite := typeFor(t, "bite", simpleAttackTrack(), 15, plain, nil)
	gore := typeFor(t, "gore", simpleAttackTrack(), 30, plain, nil)
	unknown := typeFor(t, "tail", simpleAttackTrack(), 0, plain, nil)
	host.types = []*Type{bite, gore}

	m := NewManager(host)
	l := &testListener{}
	m.SetListener(l)

	if m.CanStart(unknown) {
		t.Fatalf("types the host does not know must not start")
	}
	first, ok := m.TryStart(bite)
	if !ok || host.active != first {
		t.Fatalf("TryStart(bite) failed")
	}
	if _, ok := m.TryStart(gore); ok {
		t.Fatalf("second ability must not start while the slot is taken")
	}
	if !slices.Equal(l.rejected, []string{"gore"}) {
		t.Fatalf("expected gore rejection, got %v", l.rejected)
	}

	for host.active != nil {
		m.Tick()
	}
	if m.CanStart(bite) {
		t.Fatalf("bite should be cooling down")
	}
	if !m.CanStart(gore) {
		t.Fatalf("gore should be available once the slot is free")
	}

	for i := 0; i < 15; i++ {
		m.Tick()
	}
	second, ok := m.TryStart(bite)
	if !ok {
		t.Fatalf("bite should be usable after its cooldown")
	}
	if second == first {
		t.Fatalf("each activation must get a fresh instance")
	}
	if m.Instance(bite) != second {
		t.Fatalf("manager should retain the newest instance")
	}
	if len(l.started) != 2 || len(l.ended) != 1 || l.ended[0].reason != EndComplete {
		t.Fatalf("unexpected lifecycle events started=%v ended=%+v", l.started, l.ended)
	}
}

func TestManagerOnDamage(t *testing.T) {
	host := &testHost{}
	bite := typeFor(t, "bite", simpleAttackTrack(), 5, plain, nil)
	die := typeFor(t, "die", MustTrack(Duration(Active, 40)), 0, func() *recorder {
		return &recorder{noDamage: true}
	}, nil)
	host.types = []*Type{bite, die}
	m := NewManager(host)

	if m.OnDamage() {
		t.Fatalf("nothing active, nothing to interrupt")
	}
	if _, ok := m.TryStart(bite); !ok {
		t.Fatalf("TryStart(bite) failed")
	}
	m.Tick()
	if !m.OnDamage() || host.active != nil {
		t.Fatalf("damage should interrupt bite")
	}
	if _, ok := m.TryStart(die); !ok {
		t.Fatalf("TryStart(die) failed")
	}
	if m.OnDamage() || host.active == nil {
		t.Fatalf("die must survive damage")
	}
	m.Interrupt()
	if host.active != nil {
		t.Fatalf("Interrupt should clear the slot")
	}
}

func TestManagerOverlayBypassesSlot(t *testing.T) {
	host := &testHost{}
	bite := typeFor(t, "bite", simpleAttackTrack(), 0, plain, nil)
	charge := typeFor(t, "charge", MustTrack(Instant(Active)), 20, func() *recorder {
		return &recorder{overlay: true, completeOnBegin: true}
	}, nil)
	host.types = []*Type{bite, charge}
	m := NewManager(host)

	a, _ := m.TryStart(bite)
	if !m.CanStart(charge) {
		t.Fatalf("overlay should start while bite holds the slot")
	}
	if _, ok := m.TryStart(charge); !ok {
		t.Fatalf("TryStart(charge) failed")
	}
	if host.active != a {
		t.Fatalf("overlay must leave the slot alone")
	}
	if m.CanStart(charge) {
		t.Fatalf("overlay cooldown should gate it")
	}
}

// Randomised activation attempts never leave two non-overlay instances in use.
func TestManagerMutualExclusion(t *testing.T) {
	host := &testHost{}
	types := []*Type{
		typeFor(t, "a", simpleAttackTrack(), 3, plain, nil),
		typeFor(t, "b", MustTrack(Instant(Startup), Duration(Active, 4)), 0, plain, nil),
		typeFor(t, "c", MustTrack(Duration(Active, 2)), 1, plain, nil),
		typeFor(t, "o", MustTrack(Instant(Active)), 2, func() *recorder {
			return &recorder{overlay: true}
		}, nil),
	}
	host.types = types
	m := NewManager(host)
	rng := rand.New(rand.NewSource(42))

	for tick := 0; tick < 2000; tick++ {
		m.TryStart(types[rng.Intn(len(types))])
		if rng.Intn(10) == 0 {
			m.OnDamage()
		}
		m.Tick()

		using := 0
		for _, typ := range types {
			inst := m.Instance(typ)
			if inst != nil && inst.IsUsing() && !inst.IsOverlay() {
				using++
				if host.active != inst {
					t.Fatalf("tick %d: %s in use without holding the slot", tick, typ.Name())
				}
			}
		}
		if using > 1 {
			t.Fatalf("tick %d: %d abilities in use", tick, using)
		}
	}
}
