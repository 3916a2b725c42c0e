package draw

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"secretsanta/internal/crypto"
	"secretsanta/internal/domain"
	"secretsanta/internal/logging"
	"secretsanta/internal/services/assigner"
)

var (
	// ErrUnknownGiver is returned by Reveal when the email is not a giver in the file.
	ErrUnknownGiver = errors.New("no assignment for that email")

	// ErrNoNotifier is returned when notification is requested but no notifier is configured.
	ErrNoNotifier = errors.New("no notifier configured")

	// ErrSealWithoutPassphrase is returned when sealing is requested without a passphrase.
	ErrSealWithoutPassphrase = errors.New("sealing requires a passphrase")
)

// Service runs draws against the configured stores.
type Service struct {
	participants domain.ParticipantStore
	history      domain.HistoryStore
	pairings     domain.PairingStore
	assigner     domain.Assigner
	notifier     domain.Notifier // nil when notifications are disabled
	logger       logging.Logger
}

// New constructs a draw Service. notifier may be nil.
func New(
	participants domain.ParticipantStore,
	history domain.HistoryStore,
	pairings domain.PairingStore,
	asg domain.Assigner,
	notifier domain.Notifier,
	logger logging.Logger,
) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		participants: participants,
		history:      history,
		pairings:     pairings,
		assigner:     asg,
		notifier:     notifier,
		logger:       logger,
	}
}

// Draw loads the inputs named by req, assigns every participant a receiver,
// saves the result and, when req.Notify is set, notifies each giver.
//
// The result file is written before any notification goes out, so a failed
// notification can be retried from the file.
func (s *Service) Draw(ctx context.Context, req domain.DrawRequest) (domain.DrawResult, error) {
	if req.Seal && req.Passphrase == "" {
		return domain.DrawResult{}, ErrSealWithoutPassphrase
	}
	if req.Notify && s.notifier == nil {
		return domain.DrawResult{}, ErrNoNotifier
	}

	runID := uuid.NewString()
	log := s.logger

	participants, err := s.participants.LoadParticipants(req.ParticipantsPath)
	if err != nil {
		return domain.DrawResult{}, err
	}
	history, err := s.history.LoadHistory(req.HistoryPath, req.Passphrase)
	if err != nil {
		return domain.DrawResult{}, err
	}
	log.Info("draw started",
		"run_id", runID,
		"participants", len(participants),
		"history", len(history),
	)

	pairings, err := s.assigner.Assign(participants, history)
	if err != nil {
		log.Error("draw failed", "run_id", runID, "err", err)
		return domain.DrawResult{}, fmt.Errorf("assign: %w", err)
	}

	var sealWith string
	if req.Seal {
		sealWith = req.Passphrase
	}
	if err := s.pairings.SavePairings(req.OutputPath, sealWith, pairings); err != nil {
		return domain.DrawResult{}, fmt.Errorf("save pairings: %w", err)
	}

	res := domain.DrawResult{
		RunID:       runID,
		Pairings:    pairings,
		Fingerprint: Fingerprint(pairings),
		OutputPath:  req.OutputPath,
		Sealed:      req.Seal,
	}
	log.Info("draw saved",
		"run_id", runID,
		"output", req.OutputPath,
		"sealed", req.Seal,
		"fingerprint", res.Fingerprint,
	)

	if req.Notify {
		for _, p := range pairings {
			if err := s.notifier.Notify(ctx, runID, p); err != nil {
				return res, fmt.Errorf("notify %s: %w", p.Giver.Email, err)
			}
		}
		log.Info("givers notified", "run_id", runID, "count", len(pairings))
	}
	return res, nil
}

// Reveal returns the pairing for giver from a stored result.
func (s *Service) Reveal(path, passphrase string, giver domain.Email) (domain.Pairing, error) {
	pairings, err := s.pairings.LoadPairings(path, passphrase)
	if err != nil {
		return domain.Pairing{}, err
	}
	for _, p := range pairings {
		if p.Giver.Email == giver {
			return p, nil
		}
	}
	return domain.Pairing{}, fmt.Errorf("%w: %s", ErrUnknownGiver, giver)
}

// Verify checks a stored result against the participant list and history it
// was drawn from.
func (s *Service) Verify(
	ctx context.Context,
	participantsPath string,
	historyPath string,
	pairingsPath string,
	passphrase string,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	participants, err := s.participants.LoadParticipants(participantsPath)
	if err != nil {
		return err
	}
	history, err := s.history.LoadHistory(historyPath, passphrase)
	if err != nil {
		return err
	}
	pairings, err := s.pairings.LoadPairings(pairingsPath, passphrase)
	if err != nil {
		return err
	}
	if err := assigner.Verify(participants, history, pairings); err != nil {
		return err
	}
	s.logger.Info("pairings verified", "file", pairingsPath, "fingerprint", Fingerprint(pairings))
	return nil
}

// Fingerprint identifies a set of pairings independent of row order, so two
// organisers can confirm they hold the same draw without revealing it.
func Fingerprint(pairings []domain.Pairing) string {
	lines := make([]string, len(pairings))
	for i, p := range pairings {
		lines[i] = p.Giver.Email.String() + "->" + p.Receiver.Email.String()
	}
	sort.Strings(lines)
	return crypto.Fingerprint([]byte(strings.Join(lines, "\n")))
}

// Compile-time assertion that Service implements domain.DrawService.
var _ domain.DrawService = (*Service)(nil)
