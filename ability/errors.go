package ability

import "errors"

var (
	ErrEmptyName      = errors.New("ability: empty type name")
	ErrNilFactory     = errors.New("ability: nil factory")
	ErrEmptyTrack     = errors.New("ability: empty track")
	ErrInvalidSection = errors.New("ability: invalid section")
	ErrNilUser        = errors.New("ability: nil user")
	ErrNilBehavior    = errors.New("ability: nil behavior")
	ErrDuplicateType  = errors.New("ability: duplicate type")
	ErrRegistryFrozen = errors.New("ability: registry is frozen")
	ErrSlotOccupied   = errors.New("ability: user already has an active ability")
	ErrAlreadyUsing   = errors.New("ability: instance already in use")
)
