package snap

import "time"

// DefaultScrollCooldown is how long a page snap holds the scroll lock.
const DefaultScrollCooldown = 700 * time.Millisecond

// Locks tracks the self-expiring scroll lock and the externally driven modal
// lock. The scroll lock is a deadline checked against the caller's clock, so
// no timer has to fire for it to clear.
type Locks struct {
	cooldown time.Duration
	deadline time.Time
	held     bool
	modal    bool
}

func NewLocks(cooldown time.Duration) *Locks {
	if cooldown <= 0 {
		cooldown = DefaultScrollCooldown
	}
	return &Locks{cooldown: cooldown}
}

// TryBeginScroll takes the scroll lock until now+cooldown. It reports false
// while the modal is open or a previous lock is still live.
func (l *Locks) TryBeginScroll(now time.Time) bool {
	if l.ScrollLocked(now) {
		return false
	}
	l.deadline = now.Add(l.cooldown)
	return true
}

// ScrollLocked reports whether navigation would be dropped at now.
func (l *Locks) ScrollLocked(now time.Time) bool {
	return l.modal || l.held || now.Before(l.deadline)
}

// Deadline is the instant the current scroll lock expires.
func (l *Locks) Deadline() time.Time { return l.deadline }

// SetModal toggles the modal lock. Opening freezes scrolling until the modal
// closes; closing drops any pending scroll deadline as well.
func (l *Locks) SetModal(open bool) {
	l.modal = open
	if open {
		l.held = true
		return
	}
	l.held = false
	l.deadline = time.Time{}
}

func (l *Locks) ModalOpen() bool { return l.modal }

func (l *Locks) Cooldown() time.Duration { return l.cooldown }
