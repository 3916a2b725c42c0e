package assigner

import (
	"errors"
	"fmt"

	"secretsanta/internal/domain"
)

// ErrInvalidAssignment wraps every violation reported by Verify.
var ErrInvalidAssignment = errors.New("invalid assignment")

// Verify checks that pairings is a complete assignment of participants that
// respects history. It reports the first violation found.
func Verify(participants []domain.Participant, history domain.History, pairings []domain.Pairing) error {
	if len(pairings) != len(participants) {
		return fmt.Errorf("%w: %d pairings for %d participants",
			ErrInvalidAssignment, len(pairings), len(participants))
	}

	known := make(map[domain.Email]struct{}, len(participants))
	for _, p := range participants {
		known[p.Email] = struct{}{}
	}

	givers := make(map[domain.Email]struct{}, len(pairings))
	receivers := make(map[domain.Email]struct{}, len(pairings))
	for _, p := range pairings {
		g, r := p.Giver.Email, p.Receiver.Email

		if _, ok := known[g]; !ok {
			return fmt.Errorf("%w: unknown giver %s", ErrInvalidAssignment, g)
		}
		if _, ok := known[r]; !ok {
			return fmt.Errorf("%w: unknown receiver %s", ErrInvalidAssignment, r)
		}
		if _, dup := givers[g]; dup {
			return fmt.Errorf("%w: %s gives more than once", ErrInvalidAssignment, g)
		}
		if _, dup := receivers[r]; dup {
			return fmt.Errorf("%w: %s receives more than once", ErrInvalidAssignment, r)
		}
		if g == r {
			return fmt.Errorf("%w: %s is assigned to themselves", ErrInvalidAssignment, g)
		}
		if history.Forbids(g, r) {
			return fmt.Errorf("%w: %s is assigned %s again", ErrInvalidAssignment, g, r)
		}
		givers[g] = struct{}{}
		receivers[r] = struct{}{}
	}
	return nil
}
