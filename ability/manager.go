package ability

import (
	"slices"

	"github.com/LilRicefield/saints-dragons/logging"
)

// Manager is the per-entity entry point for starting abilities. It keeps the
// most recent instance of every type so its cooldown keeps counting down
// after the instance ends; each activation still gets a fresh instance.
type Manager struct {
	host      Host
	instances map[string]*Ability
	order     []string
	listener  Listener
}

func NewManager(host Host) *Manager {
	return &Manager{host: host, instances: map[string]*Ability{}}
}

func (m *Manager) Host() Host { return m.host }

// SetListener attaches l to every instance the manager builds from now on.
func (m *Manager) SetListener(l Listener) {
	m.listener = l
	for _, a := range m.instances {
		a.SetListener(l)
	}
}

// Active returns the ability holding the host's slot, if any.
func (m *Manager) Active() *Ability {
	if m == nil || m.host == nil {
		return nil
	}
	return m.host.ActiveAbility()
}

// Instance returns the retained instance for t, or nil when t was never built.
func (m *Manager) Instance(t *Type) *Ability {
	if t == nil {
		return nil
	}
	return m.instances[t.Name()]
}

func (m *Manager) knows(t *Type) bool {
	return slices.Contains(m.host.Abilities(), t)
}

func (m *Manager) retain(a *Ability) {
	name := a.Type().Name()
	if _, ok := m.instances[name]; !ok {
		m.order = append(m.order, name)
		slices.Sort(m.order)
	}
	a.SetListener(m.listener)
	m.instances[name] = a
}

func (m *Manager) probe(t *Type) *Ability {
	if a, ok := m.instances[t.Name()]; ok {
		return a
	}
	a, err := t.New(m.host)
	if err != nil {
		logging.Log.WithField("ability", t.Name()).WithError(err).Error("ability: factory failed")
		return nil
	}
	m.retain(a)
	return a
}

// CanStart reports whether t may start now: the host knows t, the previous
// instance is idle and off cooldown, and the slot is free unless t is an
// overlay.
func (m *Manager) CanStart(t *Type) bool {
	if m == nil || t == nil || !m.knows(t) {
		return false
	}
	a := m.probe(t)
	if a == nil || !a.CanUse() {
		return false
	}
	return a.IsOverlay() || m.host.ActiveAbility() == nil
}

// TryStart builds a fresh instance of t and starts it when CanStart allows.
// A false return is normal flow control, not a failure.
func (m *Manager) TryStart(t *Type) (*Ability, bool) {
	if !m.CanStart(t) {
		if m != nil && m.listener != nil && t != nil {
			m.listener.AbilityRejected(t)
		}
		return nil, false
	}
	a, err := t.New(m.host)
	if err != nil {
		logging.Log.WithField("ability", t.Name()).WithError(err).Error("ability: factory failed")
		return nil, false
	}
	m.retain(a)
	if err := a.Start(); err != nil {
		logging.Log.WithField("ability", t.Name()).WithError(err).Warn("ability: start failed")
		return nil, false
	}
	return a, true
}

// Tick advances every retained instance exactly once, in name order.
// Instances created during the tick are first ticked on the next one.
func (m *Manager) Tick() {
	if m == nil {
		return
	}
	snapshot := make([]*Ability, 0, len(m.order))
	for _, name := range m.order {
		snapshot = append(snapshot, m.instances[name])
	}
	for _, a := range snapshot {
		a.Tick()
	}
}

// OnDamage interrupts the active ability when it is interruptible by damage.
// It reports whether an interrupt happened.
func (m *Manager) OnDamage() bool {
	a := m.Active()
	if a == nil || !a.DamageInterrupts() {
		return false
	}
	a.Interrupt()
	return true
}

// Interrupt interrupts the active ability, if any.
func (m *Manager) Interrupt() {
	if a := m.Active(); a != nil {
		a.Interrupt()
	}
}

// Using reports how many retained instances are currently in use.
func (m *Manager) Using() int {
	n := 0
	for _, a := range m.instances {
		if a.IsUsing() {
			n++
		}
	}
	return n
}
