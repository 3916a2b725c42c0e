package interfaces

import domaintypes "secretsanta/internal/domain/types"

// ParticipantStore loads the participant list for a draw.
type ParticipantStore interface {
	LoadParticipants(path string) ([]domaintypes.Participant, error)
}

// HistoryStore loads the previous round's giver to receiver mapping.
type HistoryStore interface {
	LoadHistory(path, passphrase string) (domaintypes.History, error)
}

// PairingStore persists and reloads draw results.
type PairingStore interface {
	SavePairings(path, passphrase string, pairings []domaintypes.Pairing) error
	LoadPairings(path, passphrase string) ([]domaintypes.Pairing, error)
}
