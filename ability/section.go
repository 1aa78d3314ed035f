package ability

import (
	"fmt"
	"strings"
)

// Phase tags a section of an ability timeline.
type Phase int

const (
	Startup Phase = iota
	Active
	Recovery
)

func (p Phase) String() string {
	switch p {
	case Startup:
		return "STARTUP"
	case Active:
		return "ACTIVE"
	case Recovery:
		return "RECOVERY"
	default:
		return "UNKNOWN"
	}
}

// ParsePhase accepts the String form of a phase, case-insensitively.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "STARTUP":
		return Startup, nil
	case "ACTIVE":
		return Active, nil
	case "RECOVERY":
		return Recovery, nil
	}
	return 0, fmt.Errorf("ability: unknown phase %q", s)
}

// Kind decides how a section advances.
type Kind int

const (
	// KindDuration advances once the section has run for more than Ticks ticks.
	KindDuration Kind = iota
	// KindInstant advances on the first tick after it begins.
	KindInstant
	// KindInfinite never advances on its own; something has to call NextSection.
	KindInfinite
)

func (k Kind) String() string {
	switch k {
	case KindDuration:
		return "duration"
	case KindInstant:
		return "instant"
	case KindInfinite:
		return "infinite"
	default:
		return "unknown"
	}
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duration", "":
		return KindDuration, nil
	case "instant":
		return KindInstant, nil
	case "infinite":
		return KindInfinite, nil
	}
	return 0, fmt.Errorf("ability: unknown section kind %q", s)
}

// Section is one immutable step of a Track.
type Section struct {
	Phase Phase
	Kind  Kind
	// Ticks is only meaningful for KindDuration.
	Ticks int
}

func Duration(phase Phase, ticks int) Section {
	return Section{Phase: phase, Kind: KindDuration, Ticks: ticks}
}

func Instant(phase Phase) Section {
	return Section{Phase: phase, Kind: KindInstant}
}

func Infinite(phase Phase) Section {
	return Section{Phase: phase, Kind: KindInfinite}
}

// Validate reports whether the section can be placed on a track.
func (s Section) Validate() error {
	switch s.Kind {
	case KindDuration:
		if s.Ticks <= 0 {
			return fmt.Errorf("%w: %s duration section has %d ticks", ErrInvalidSection, s.Phase, s.Ticks)
		}
	case KindInstant, KindInfinite:
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidSection, s.Kind)
	}
	switch s.Phase {
	case Startup, Active, Recovery:
	default:
		return fmt.Errorf("%w: phase %d", ErrInvalidSection, s.Phase)
	}
	return nil
}

func (s Section) String() string {
	if s.Kind == KindDuration {
		return fmt.Sprintf("%s(%s,%d)", s.Kind, s.Phase, s.Ticks)
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Phase)
}

// Track is the ordered, read-only timeline template of an ability. Tracks are
// shared between every instance of an ability type.
type Track struct {
	sections []Section
}

// NewTrack validates the sections and returns a track that owns a copy of them.
func NewTrack(sections ...Section) (Track, error) {
	if len(sections) == 0 {
		return Track{}, ErrEmptyTrack
	}
	for i, s := range sections {
		if err := s.Validate(); err != nil {
			return Track{}, fmt.Errorf("ability: section %d: %w", i, err)
		}
	}
	return Track{sections: append([]Section(nil), sections...)}, nil
}

// MustTrack is NewTrack for static declarations; it panics on invalid input.
func MustTrack(sections ...Section) Track {
	t, err := NewTrack(sections...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Track) Len() int { return len(t.sections) }

func (t Track) At(i int) Section { return t.sections[i] }

// Sections returns a copy of the track's sections.
func (t Track) Sections() []Section {
	return append([]Section(nil), t.sections...)
}

func (t Track) String() string {
	parts := make([]string, 0, len(t.sections))
	for _, s := range t.sections {
		parts = append(parts, s.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
