// Package forms validates and normalises the raw input of the listing and
// request forms before it reaches the catalog store.
package forms

import "time"

// Form-level messages. A failed validation reports exactly one of these, never
// per-field errors.
const (
	MsgFillAllFields  = "Please fill in all fields"
	MsgInvalidPrice   = "Please enter a valid price"
	MsgInvalidUrgency = "Urgency must be between 1 and 10"

	MsgListingAdded     = "Book added successfully!"
	MsgRequestSubmitted = "Book request submitted successfully!"
)

// Key is the validator key under which form messages are recorded.
const Key = "form"

// SuccessDelay is how long a submitted form keeps its success message up
// before signalling completion.
const SuccessDelay = 1500 * time.Millisecond

// Completion signals that a submitted form is done showing its success message.
type Completion struct {
	done chan struct{}
}

// Done is closed once the delay has elapsed.
func (c *Completion) Done() <-chan struct{} {
	return c.done
}

// afterSuccess closes the returned completion after delay. The timer cannot be
// cancelled; nobody waiting on Done makes the signal a no-op.
func afterSuccess(delay time.Duration) *Completion {
	c := &Completion{done: make(chan struct{})}
	time.AfterFunc(delay, func() { close(c.done) })
	return c
}
