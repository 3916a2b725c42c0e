package interfaces

import (
	"context"

	domaintypes "secretsanta/internal/domain/types"
)

// Assigner produces a complete set of pairings for participants that
// respects history.
type Assigner interface {
	Assign(
		participants []domaintypes.Participant,
		history domaintypes.History,
	) ([]domaintypes.Pairing, error)
}

// Notifier tells a giver who they were assigned.
type Notifier interface {
	Notify(ctx context.Context, runID string, pairing domaintypes.Pairing) error
}

// DrawService runs draws and inspects their stored results.
type DrawService interface {
	Draw(ctx context.Context, req domaintypes.DrawRequest) (domaintypes.DrawResult, error)
	Reveal(path, passphrase string, giver domaintypes.Email) (domaintypes.Pairing, error)
	Verify(ctx context.Context, participantsPath, historyPath, pairingsPath, passphrase string) error
}
