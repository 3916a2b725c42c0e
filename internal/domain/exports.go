package domain

import (
	interfaces "secretsanta/internal/domain/interfaces"
	types "secretsanta/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Email       = types.Email
	Participant = types.Participant
	Pairing     = types.Pairing
	History     = types.History
	DrawRequest = types.DrawRequest
	DrawResult  = types.DrawResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	ParticipantStore = interfaces.ParticipantStore
	HistoryStore     = interfaces.HistoryStore
	PairingStore     = interfaces.PairingStore
	Assigner         = interfaces.Assigner
	Notifier         = interfaces.Notifier
	DrawService      = interfaces.DrawService
)
