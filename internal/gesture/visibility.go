// Package gesture contains the small state machines that sit beside page
// navigation: the banner visibility observer, pull-to-refresh, the card
// carousel and the tutorial trigger. Each one answers events with
// snap.Effect values and consults the modal lock through ModalLock.
package gesture

import "github.com/pders01/pagesnap/internal/snap"

// ModalLock is the read side of the modal lock.
type ModalLock interface {
	ModalOpen() bool
}

// FullThreshold is the ratio at which a section counts as fully visible.
const FullThreshold = 1.0

// Visibility hides the navbar, the dots and the contact popup while the
// banner fills the viewport and shows them otherwise.
type Visibility struct {
	enabled bool
	hasDots bool
}

// NewVisibility returns an observer. Without a banner it never emits.
func NewVisibility(hasBanner, hasDots bool) *Visibility {
	return &Visibility{enabled: hasBanner, hasDots: hasDots}
}

// Start returns the chrome state applied before the first observation.
func (v *Visibility) Start() []snap.Effect {
	if !v.enabled {
		return nil
	}
	return v.chrome(false)
}

// Observe applies the rule for one intersection change of the banner.
func (v *Visibility) Observe(ratio float64) []snap.Effect {
	if !v.enabled {
		return nil
	}
	return v.chrome(ratio < FullThreshold)
}

func (v *Visibility) chrome(visible bool) []snap.Effect {
	effects := []snap.Effect{snap.Chrome{Visible: visible}}
	if v.hasDots {
		opacity := 0.0
		if visible {
			opacity = 1
		}
		effects = append(effects, snap.DotsOpacity{Value: opacity})
	}
	return effects
}
