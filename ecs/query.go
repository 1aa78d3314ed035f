package ecs

import (
	"slices"

	"github.com/LilRicefield/saints-dragons/ecs/component"
)

// snapshot returns the entities of s in ascending id order. Iterating a copy
// lets callbacks add and remove components freely.
func snapshot(s *SparseSet) []Entity {
	if s.Len() == 0 {
		return nil
	}
	out := slices.Clone(s.Entities())
	slices.SortFunc(out, func(a, b Entity) int {
		return int(a.id()) - int(b.id())
	})
	return out
}

// smallest picks the store with the fewest entries to drive iteration.
func smallest(w *World, ids ...component.ComponentID) *SparseSet {
	var best *SparseSet
	for _, id := range ids {
		s := w.store(id, false)
		if s == nil {
			return nil
		}
		if best == nil || s.Len() < best.Len() {
			best = s
		}
	}
	return best
}

// ForEach calls fn for every live entity with kind, in ascending id order.
func ForEach[A any](w *World, kind component.ComponentKind[A], fn func(Entity, *A)) {
	if w == nil {
		return
	}
	for _, e := range snapshot(w.store(kind.ID(), false)) {
		a, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil {
		return
	}
	for _, e := range snapshot(smallest(w, ka.ID(), kb.ID())) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil {
		return
	}
	for _, e := range snapshot(smallest(w, ka.ID(), kb.ID(), kc.ID())) {
		a, ok := Get(w, e, ka)
		if !ok {
			continue
		}
		b, ok := Get(w, e, kb)
		if !ok {
			continue
		}
		c, ok := Get(w, e, kc)
		if !ok {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the lowest-id entity with kind.
func First[A any](w *World, kind component.ComponentKind[A]) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	ents := snapshot(w.store(kind.ID(), false))
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
