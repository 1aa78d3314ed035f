package ecs

import "github.com/LilRicefield/saints-dragons/ecs/component"

// World owns entities, component stores, and system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue
	tick      uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*SparseSet{}}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once. Queued events accumulate until drained.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.tick++
	w.scheduler.Update(w)
}

// Tick returns how many updates have started.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit queues an event stamped with the current tick.
func (w *World) Emit(typ string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: typ, Tick: w.tick, Data: data})
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
