package component

type Health struct {
	Current float64
	Max     float64
}

// Fraction returns Current/Max, or 0 for a zero Max.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()
