package types

// DrawRequest describes one end-to-end draw: where to read participants and
// last year's history from, and where to write the result.
type DrawRequest struct {
	ParticipantsPath string
	HistoryPath      string // optional; missing file means no history
	OutputPath       string
	Passphrase       string // unlocks a sealed history file, and seals output when Seal is set
	Seal             bool
	Notify           bool
}

// DrawResult is returned by a successful draw.
type DrawResult struct {
	RunID       string
	Pairings    []Pairing
	Fingerprint string
	OutputPath  string
	Sealed      bool
}
