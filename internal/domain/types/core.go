package types

// Email identifies a participant. It is the equality and lookup key within one draw.
type Email string

// String returns the string form of the email.
func (e Email) String() string { return string(e) }
