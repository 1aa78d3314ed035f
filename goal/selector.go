package goal

import "sort"

type entry struct {
	priority int
	goal     Goal
	running  bool
}

func (e *entry) canBeReplacedBy(o *entry) bool {
	return e.goal.IsInterruptable() && o.priority < e.priority
}

// Selector picks and ticks goals. Lower priority values win.
type Selector struct {
	entries  []*entry
	locks    map[Flag]*entry
	disabled Flag
	ticks    int
}

func NewSelector() *Selector {
	return &Selector{locks: map[Flag]*entry{}}
}

// Add registers g at priority. Goals with equal priority keep insertion order.
func (s *Selector) Add(priority int, g Goal) {
	if g == nil {
		return
	}
	s.entries = append(s.entries, &entry{priority: priority, goal: g})
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].priority < s.entries[j].priority
	})
}

// Remove stops g if it is running and drops it from the selector.
func (s *Selector) Remove(g Goal) {
	for i, e := range s.entries {
		if e.goal != g {
			continue
		}
		s.stop(e)
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return
	}
}

func (s *Selector) DisableFlag(f Flag) { s.disabled |= f }
func (s *Selector) EnableFlag(f Flag)  { s.disabled &^= f }

func (s *Selector) start(e *entry) {
	e.goal.Flags().each(func(f Flag) {
		if holder := s.locks[f]; holder != nil && holder != e {
			s.stop(holder)
		}
		s.locks[f] = e
	})
	e.running = true
	e.goal.Start()
}

func (s *Selector) stop(e *entry) {
	if !e.running {
		return
	}
	e.running = false
	e.goal.Stop()
	e.goal.Flags().each(func(f Flag) {
		if s.locks[f] == e {
			delete(s.locks, f)
		}
	})
}

func (s *Selector) claimable(e *entry) bool {
	ok := true
	e.goal.Flags().each(func(f Flag) {
		if holder := s.locks[f]; holder != nil && !holder.canBeReplacedBy(e) {
			ok = false
		}
	})
	return ok
}

// Tick stops goals that can no longer run, starts the best eligible goals,
// then ticks everything running.
func (s *Selector) Tick() {
	s.ticks++

	for _, e := range s.entries {
		if e.running && (e.goal.Flags()&s.disabled != 0 || !e.goal.CanContinueToUse()) {
			s.stop(e)
		}
	}

	for _, e := range s.entries {
		if e.running || e.goal.Flags()&s.disabled != 0 {
			continue
		}
		if s.claimable(e) && e.goal.CanUse() {
			s.start(e)
		}
	}

	for _, e := range s.entries {
		if e.running && (e.goal.RequiresUpdateEveryTick() || s.ticks%2 == 0) {
			e.goal.Tick()
		}
	}
}

// Running returns the running goals in priority order.
func (s *Selector) Running() []Goal {
	var out []Goal
	for _, e := range s.entries {
		if e.running {
			out = append(out, e.goal)
		}
	}
	return out
}

// IsRunning reports whether g is currently running.
func (s *Selector) IsRunning(g Goal) bool {
	for _, e := range s.entries {
		if e.goal == g {
			return e.running
		}
	}
	return false
}

// StopAll stops every running goal.
func (s *Selector) StopAll() {
	for _, e := range s.entries {
		s.stop(e)
	}
}
