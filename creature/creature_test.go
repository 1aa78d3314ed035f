package creature

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/LilRicefield/saints-dragons/ability"
	"github.com/LilRicefield/saints-dragons/ecs/component"
)

type pose struct{ ability.Hooks }

func (pose) BeginSection(a *ability.Ability, s ability.Section) {
	a.User().PlayAnimation(ability.Animation{Controller: "body", Clip: s.Phase.String()})
	ability.PlaySound(a.User(), ability.Sound{Name: "step", Volume: 1, Pitch: 1})
}

func poseType(t *testing.T, name string) *ability.Type {
	t.Helper()
	return ability.MustType(name, func(typ *ability.Type, user ability.Host) (*ability.Ability, error) {
		return ability.New(typ, user, ability.MustTrack(ability.Duration(ability.Active, 3)), 0, pose{})
	})
}

func spawnAt(t *testing.T, a *Arena, faction string, pos cp.Vector, types ...*ability.Type) *Creature {
	t.Helper()
	c, err := a.Spawn(Spec{
		Species:    "test_" + faction,
		Faction:    faction,
		Position:   pos,
		Radius:     1,
		Health:     100,
		Speed:      0.5,
		PhaseTwoAt: 0.5,
		Abilities:  types,
	})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	return c
}

func TestLineOfSight(t *testing.T) {
	a := NewArena(1)
	a.AddWall(cp.Vector{X: 5, Y: -10}, cp.Vector{X: 5, Y: 10}, 0.5)
	a.AddPillar(cp.Vector{X: 0, Y: 30}, 4, 4)

	tests := []struct {
		name     string
		from, to cp.Vector
		want     bool
	}{
		{name: "through_wall", from: cp.Vector{}, to: cp.Vector{X: 10}, want: false},
		{name: "same_side", from: cp.Vector{}, to: cp.Vector{X: 3, Y: 3}, want: true},
		{name: "around_the_end", from: cp.Vector{Y: 15}, to: cp.Vector{X: 10, Y: 15}, want: true},
		{name: "through_pillar", from: cp.Vector{X: -10, Y: 30}, to: cp.Vector{X: 10, Y: 30}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.LineOfSight(tc.from, tc.to); got != tc.want {
				t.Fatalf("LineOfSight = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSpawnValidation(t *testing.T) {
	a := NewArena(1)
	stray := poseType(t, "stray")
	tests := []struct {
		name string
		spec Spec
	}{
		{name: "empty", spec: Spec{}},
		{name: "no_radius", spec: Spec{Species: "x", Health: 1}},
		{name: "unknown_reaction", spec: Spec{Species: "x", Health: 1, Radius: 1, Hurt: stray}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := a.Spawn(tc.spec); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
	if len(a.Creatures()) != 0 {
		t.Fatalf("failed spawns must not leave creatures behind")
	}
}

func TestCreatureHostAndSink(t *testing.T) {
	a := NewArena(1)
	roar := poseType(t, "roar")
	c := spawnAt(t, a, "storm", cp.Vector{}, roar)

	inst, ok := c.AbilityManager().TryStart(roar)
	if !ok || c.ActiveAbility() != inst {
		t.Fatalf("ability should hold the creature's slot")
	}
	evts := a.Step()
	if len(evts) != 2 || evts[0].Type != EventAnimation || evts[1].Type != EventSound {
		t.Fatalf("expected animation then sound, got %+v", evts)
	}
	anim := evts[0].Data.(AnimationEvent)
	if anim.Entity != c.ID() || anim.Animation.Clip != "ACTIVE" {
		t.Fatalf("unexpected animation event %+v", anim)
	}
	for c.ActiveAbility() != nil {
		a.Step()
	}
	if a.World.Tick() != 4 {
		t.Fatalf("Duration(3) should hold the slot for 4 ticks, took %d", a.World.Tick())
	}
}

func TestDamageAndPhaseTwo(t *testing.T) {
	a := NewArena(1)
	dragon := spawnAt(t, a, "storm", cp.Vector{})
	wyvern := spawnAt(t, a, "wild", cp.Vector{X: 3})

	dragon.Damage(20, wyvern, dragon.KnockbackFrom(wyvern.Position(), 1))
	dragon.Damage(15, wyvern, cp.Vector{})
	a.Step()

	if h := dragon.Health(); h.Current != 65 {
		t.Fatalf("hits should accumulate, health = %v", h.Current)
	}
	if pos := dragon.Position(); math.Abs(pos.X+1) > 1e-9 {
		t.Fatalf("knockback should push away from the source, got %v", pos)
	}
	if dragon.InPhaseTwo() {
		t.Fatalf("65%% health is still phase one")
	}

	dragon.Damage(20, wyvern, cp.Vector{})
	a.Step()
	if !dragon.InPhaseTwo() {
		t.Fatalf("45%% health should be phase two")
	}

	dragon.Damage(100, wyvern, cp.Vector{})
	a.Step()
	if dragon.Alive() || !dragon.Dead() || dragon.InPhaseTwo() {
		t.Fatalf("lethal damage should kill the creature")
	}
	if dragon.Health().Current != 0 {
		t.Fatalf("health should clamp at zero")
	}
}

func TestTargetingAndNavigation(t *testing.T) {
	a := NewArena(1)
	dragon := spawnAt(t, a, "storm", cp.Vector{})
	wyvern := spawnAt(t, a, "wild", cp.Vector{X: 10})

	a.Step()
	if dragon.TargetCreature() != wyvern || dragon.Target() == nil {
		t.Fatalf("dragon should target the wyvern")
	}
	dragon.MoveTo(dragon.Target(), 0)
	if !dragon.Navigating() {
		t.Fatalf("MoveTo should start navigation")
	}
	for i := 0; i < 40; i++ {
		a.Step()
	}
	if gap := dragon.Gap(wyvern); gap > 1e-9 {
		t.Fatalf("navigation should close to contact, gap = %v", gap)
	}

	dragon.SetTarget(nil)
	if dragon.Target() != nil {
		t.Fatalf("Target should be a nil interface without a target")
	}

	a.Despawn(wyvern)
	if _, ok := a.Creature(wyvern.ID()); ok || len(a.Creatures()) != 1 {
		t.Fatalf("Despawn should remove the creature")
	}
	a.Step()
	if dragon.TargetCreature() != nil {
		t.Fatalf("despawned creatures cannot be targeted")
	}
}

func TestRouteAroundPillar(t *testing.T) {
	a := NewArena(1)
	a.SetNavBounds(cp.BB{L: -12, B: -12, R: 12, T: 12}, 1, 1.2)
	pillar := cp.NewBBForExtents(cp.Vector{}, 2, 3)
	a.AddPillar(cp.Vector{}, 4, 6)
	hunter := spawnAt(t, a, "storm", cp.Vector{X: -8})
	prey := spawnAt(t, a, "wild", cp.Vector{X: 8})

	if hunter.CanSee(prey) {
		t.Fatalf("pillar should block sight")
	}
	if route := a.Route(hunter.Position(), prey.Position()); len(route) < 2 {
		t.Fatalf("expected a route with waypoints, got %v", route)
	}
	if route := a.Route(cp.Vector{X: -8, Y: 8}, cp.Vector{X: 8, Y: 8}); len(route) != 1 {
		t.Fatalf("clear line should route straight, got %v", route)
	}

	for i := 0; i < 100 && hunter.Gap(prey) > 1e-9; i++ {
		hunter.MoveTo(prey, 0)
		a.Step()
		if pillar.ContainsVect(hunter.Position()) {
			t.Fatalf("tick %d: hunter walked into the pillar at %v", i, hunter.Position())
		}
	}
	if gap := hunter.Gap(prey); gap > 1e-9 {
		t.Fatalf("hunter should reach the prey, gap = %v", gap)
	}
}

func TestMarkInert(t *testing.T) {
	a := NewArena(1)
	c := spawnAt(t, a, "storm", cp.Vector{})
	c.MarkInert()
	if !c.Inert() || c.Navigating() {
		t.Fatalf("inert creature should stop")
	}
	c.SetFlag("supercharged", true)
	if !c.Flag("supercharged") || c.Flag("other") {
		t.Fatalf("flags should round trip")
	}
	if c.Health() != (component.Health{Current: 100, Max: 100}) {
		t.Fatalf("unexpected health %+v", c.Health())
	}
}

func TestKnockbackStopsAtObstacles(t *testing.T) {
	a := NewArena(1)
	a.AddPillar(cp.Vector{X: 5}, 4, 6)
	c := spawnAt(t, a, "storm", cp.Vector{})

	c.Damage(1, nil, cp.Vector{X: 10})
	a.Step()
	x := c.Position().X
	if x > 2 || x < 1.9 {
		t.Fatalf("knockback into the pillar should stop at its face, x = %v", x)
	}

	c.Damage(1, nil, cp.Vector{X: -3})
	a.Step()
	if got := c.Position().X; math.Abs(got-(x-3)) > 1e-9 {
		t.Fatalf("knockback away from the pillar should apply in full, x = %v", got)
	}

	clip := a.ClipMove(cp.Vector{Y: 10}, cp.Vector{X: 10}, 1)
	if clip != (cp.Vector{X: 10}) {
		t.Fatalf("open ground should not clip, got %v", clip)
	}
}

func TestAbilitiesReturnsCopy(t *testing.T) {
	a := NewArena(1)
	bite := poseType(t, "bite")
	c := spawnAt(t, a, "storm", cp.Vector{}, bite)

	got := c.Abilities()
	got[0] = nil
	if c.Abilities()[0] != bite {
		t.Fatalf("callers must not be able to change the host's abilities")
	}
	if !c.AbilityManager().CanStart(bite) {
		t.Fatalf("bite should still be startable")
	}
}
