package assigner

import (
	"errors"
	"math/rand/v2"
	"sync"

	"secretsanta/internal/crypto"
	"secretsanta/internal/domain"
	"secretsanta/internal/logging"
)

var (
	// ErrInsufficientParticipants is returned when fewer than two participants are supplied.
	ErrInsufficientParticipants = errors.New("at least two participants required")

	// ErrUnsatisfiable is returned when no assignment satisfies the constraints.
	ErrUnsatisfiable = errors.New("unable to generate valid assignments")
)

const minParticipants = 2

// Assigner produces pairings using a shuffled backtracking search.
//
// An Assigner may be shared between goroutines; calls are serialised on the
// random source.
type Assigner struct {
	mu     sync.Mutex
	rng    *rand.Rand
	logger logging.Logger
}

// Option configures an Assigner.
type Option func(*Assigner)

// WithSeed makes the Assigner's choices reproducible for a given seed.
func WithSeed(seed [crypto.SeedSize]byte) Option {
	return func(a *Assigner) { a.rng = rand.New(rand.NewChaCha8(seed)) }
}

// WithRand sets the random source directly.
func WithRand(rng *rand.Rand) Option {
	return func(a *Assigner) { a.rng = rng }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l logging.Logger) Option {
	return func(a *Assigner) { a.logger = l }
}

// New returns an Assigner. Without WithSeed or WithRand it is seeded from crypto/rand.
func New(opts ...Option) (*Assigner, error) {
	a := &Assigner{logger: logging.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		seed, err := crypto.RandomSeed()
		if err != nil {
			return nil, err
		}
		a.rng = rand.New(rand.NewChaCha8(seed))
	}
	return a, nil
}

// Assign returns one pairing per participant, in participant order, such that
// nobody gives to themselves and nobody gives to the receiver history records
// for them. A nil history imposes no constraint.
//
// Participants must have unique emails.
func (a *Assigner) Assign(participants []domain.Participant, history domain.History) ([]domain.Pairing, error) {
	if len(participants) < minParticipants {
		return nil, ErrInsufficientParticipants
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	s := &search{rng: a.rng, history: history}
	pairings, ok := s.run(participants, participants)
	if !ok {
		a.logger.Warn("assignment search exhausted",
			"participants", len(participants),
			"history", len(history),
			"backtracks", s.backtracks,
		)
		return nil, ErrUnsatisfiable
	}

	a.logger.Debug("assignment complete",
		"participants", len(participants),
		"history", len(history),
		"backtracks", s.backtracks,
	)
	return pairings, nil
}

// search holds the state of a single Assign call.
type search struct {
	rng        *rand.Rand
	history    domain.History
	backtracks int
}

// run assigns givers[0] a receiver from pool and recurses on the rest.
// It reports false when no completion exists from this state.
func (s *search) run(givers, pool []domain.Participant) ([]domain.Pairing, bool) {
	if len(givers) == 0 {
		return []domain.Pairing{}, true
	}

	giver := givers[0]
	candidates := make([]domain.Participant, 0, len(pool))
	for _, r := range pool {
		if r.Email == giver.Email || s.history.Forbids(giver.Email, r.Email) {
			continue
		}
		candidates = append(candidates, r)
	}
	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, candidate := range candidates {
		sub, ok := s.run(givers[1:], without(pool, candidate.Email))
		if !ok {
			s.backtracks++
			continue
		}
		return append([]domain.Pairing{{Giver: giver, Receiver: candidate}}, sub...), true
	}
	return nil, false
}

// without returns a new slice holding pool minus every participant with email.
func without(pool []domain.Participant, email domain.Email) []domain.Participant {
	out := make([]domain.Participant, 0, len(pool))
	for _, p := range pool {
		if p.Email != email {
			out = append(out, p)
		}
	}
	return out
}

// Compile-time assertion that Assigner implements domain.Assigner.
var _ domain.Assigner = (*Assigner)(nil)
