package sim

// QueueSize is the number of upcoming elements shown to the player.
const QueueSize = 3

// ShotQueue holds the loaded element, the upcoming queue and the hold slot.
type ShotQueue struct {
	rng      Rand
	queue    [QueueSize]Element // Oldest first
	current  Element
	hold     Element
	hasHold  bool
	swapUsed bool // Set from fire or swap until the shot resolves
}

// NewShotQueue fills the queue with uniform draws and loads the first shot.
func NewShotQueue(rng Rand) *ShotQueue {
	q := &ShotQueue{rng: rng}
	for i := range q.queue {
		q.queue[i] = RandomElement(rng)
	}
	q.current = q.DrawNext()
	return q
}

// DrawNext pops the front of the queue and refills the back with a fair
// draw seeded by the popped element and the remaining entries.
func (q *ShotQueue) DrawNext() Element {
	next := q.queue[0]
	history := make([]Element, 0, QueueSize)
	history = append(history, next)
	history = append(history, q.queue[1:]...)

	copy(q.queue[:], q.queue[1:])
	q.queue[QueueSize-1] = DrawFair(history, q.rng)
	return next
}

// Swap exchanges the loaded element with the hold slot. An empty hold takes
// the loaded element and a new one is drawn. Only one swap is allowed per
// shot cycle; a rejected swap returns false.
func (q *ShotQueue) Swap() bool {
	if q.swapUsed {
		return false
	}

	if !q.hasHold {
		q.hold = q.current
		q.hasHold = true
		q.current = q.DrawNext()
	} else {
		q.current, q.hold = q.hold, q.current
	}

	q.swapUsed = true
	return true
}

// Lock blocks swapping until ResetSwapLock. Called when a shot is fired.
func (q *ShotQueue) Lock() {
	q.swapUsed = true
}

// ResetSwapLock re-enables swapping for the next shot.
func (q *ShotQueue) ResetSwapLock() {
	q.swapUsed = false
}

// Advance loads the next element after a shot resolves.
func (q *ShotQueue) Advance() {
	q.current = q.DrawNext()
}

// Current returns the element loaded for the next shot.
func (q *ShotQueue) Current() Element {
	return q.current
}

// Hold returns the held element, if any.
func (q *ShotQueue) Hold() (Element, bool) {
	return q.hold, q.hasHold
}

// Upcoming returns a copy of the queue, oldest first.
func (q *ShotQueue) Upcoming() [QueueSize]Element {
	return q.queue
}

// SwapLocked reports whether a swap would be rejected.
func (q *ShotQueue) SwapLocked() bool {
	return q.swapUsed
}
