package types

// Participant is a member of the group taking part in a draw.
//
// Name is for display only and need not be unique; Email must be unique
// within one draw.
type Participant struct {
	Name  string
	Email Email
}

// Pairing records that Giver buys a gift for Receiver.
type Pairing struct {
	Giver    Participant
	Receiver Participant
}

// History maps a giver's email to the receiver they were assigned in the
// previous round. A giver without an entry is unconstrained.
type History map[Email]Email

// Lookup returns the previous receiver for giver, if any. It is safe on a nil History.
func (h History) Lookup(giver Email) (Email, bool) {
	prev, ok := h[giver]
	return prev, ok
}

// Forbids reports whether history rules out giver being paired with receiver.
func (h History) Forbids(giver, receiver Email) bool {
	prev, ok := h[giver]
	return ok && prev == receiver
}
