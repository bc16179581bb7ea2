package gesture

import "github.com/pders01/pagesnap/internal/snap"

// Tutorial plays the overlay video the first time the cards section is
// fully visible, and never again.
type Tutorial struct {
	enabled   bool
	threshold float64
	played    bool
	playing   bool
}

// NewTutorial returns a trigger. It stays inert unless both the cards
// section and the video exist.
func NewTutorial(hasSection, hasVideo bool, threshold float64) *Tutorial {
	if threshold <= 0 || threshold > FullThreshold {
		threshold = FullThreshold
	}
	return &Tutorial{enabled: hasSection && hasVideo, threshold: threshold}
}

func (t *Tutorial) Played() bool { return t.played }

func (t *Tutorial) Playing() bool { return t.playing }

func (t *Tutorial) Observe(ratio float64) []snap.Effect {
	if !t.enabled || t.played || ratio < t.threshold {
		return nil
	}
	t.played = true
	t.playing = true
	return []snap.Effect{snap.VideoPlay{}}
}

// Ended is the completion handler for the playback started by Observe.
func (t *Tutorial) Ended() []snap.Effect {
	if !t.playing {
		return nil
	}
	t.playing = false
	return []snap.Effect{snap.VideoHide{}}
}
