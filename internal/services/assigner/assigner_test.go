package assigner_test

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"secretsanta/internal/crypto"
	"secretsanta/internal/domain"
	"secretsanta/internal/services/assigner"
)

func people(emails ...string) []domain.Participant {
	out := make([]domain.Participant, len(emails))
	for i, e := range emails {
		out[i] = domain.Participant{Name: fmt.Sprintf("P%d", i), Email: domain.Email(e)}
	}
	return out
}

func newAssigner(t *testing.T, opts ...assigner.Option) *assigner.Assigner {
	t.Helper()
	a, err := assigner.New(opts...)
	require.NoError(t, err)
	return a
}

// requireValid checks every invariant of a successful result.
func requireValid(t *testing.T, participants []domain.Participant, history domain.History, pairings []domain.Pairing) {
	t.Helper()
	require.Len(t, pairings, len(participants))

	givers := make(map[domain.Email]int)
	receivers := make(map[domain.Email]int)
	for i, p := range pairings {
		require.Equal(t, participants[i], p.Giver, "pairings follow participant order")
		require.NotEqual(t, p.Giver.Email, p.Receiver.Email)
		if prev, ok := history.Lookup(p.Giver.Email); ok {
			require.NotEqual(t, prev, p.Receiver.Email)
		}
		givers[p.Giver.Email]++
		receivers[p.Receiver.Email]++
	}
	for _, p := range participants {
		require.Equal(t, 1, givers[p.Email], "giver %s", p.Email)
		require.Equal(t, 1, receivers[p.Email], "receiver %s", p.Email)
	}
	require.NoError(t, assigner.Verify(participants, history, pairings))
}

func TestAssign_InsufficientParticipants(t *testing.T) {
	a := newAssigner(t)

	for _, ps := range [][]domain.Participant{nil, {}, people("a@x")} {
		_, err := a.Assign(ps, domain.History{"a@x": "b@x"})
		require.ErrorIs(t, err, assigner.ErrInsufficientParticipants)

		_, err = a.Assign(ps, nil)
		require.ErrorIs(t, err, assigner.ErrInsufficientParticipants)
	}
}

func TestAssign_TwoParticipantsSwap(t *testing.T) {
	ps := people("x@x", "y@x")
	got, err := newAssigner(t).Assign(ps, nil)
	require.NoError(t, err)
	requireValid(t, ps, nil, got)
	require.Equal(t, domain.Email("y@x"), got[0].Receiver.Email)
	require.Equal(t, domain.Email("x@x"), got[1].Receiver.Email)
}

func TestAssign_MutualHistoryIsUnsatisfiable(t *testing.T) {
	ps := people("x@x", "y@x")
	history := domain.History{"x@x": "y@x", "y@x": "x@x"}
	a := newAssigner(t)

	for i := 0; i < 20; i++ {
		got, err := a.Assign(ps, history)
		require.ErrorIs(t, err, assigner.ErrUnsatisfiable)
		require.Nil(t, got)
	}
}

func TestAssign_ThreeParticipantsAreACycle(t *testing.T) {
	ps := people("a@x", "b@x", "c@x")
	a := newAssigner(t)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got, err := a.Assign(ps, domain.History{})
		require.NoError(t, err)
		requireValid(t, ps, nil, got)

		key := fmt.Sprintf("%s,%s,%s", got[0].Receiver.Email, got[1].Receiver.Email, got[2].Receiver.Email)
		require.Contains(t, []string{"b@x,c@x,a@x", "c@x,a@x,b@x"}, key)
		seen[key] = true
	}
	require.Len(t, seen, 2, "both cycles should appear across repeated draws")
}

func TestAssign_RespectsPartialHistory(t *testing.T) {
	ps := people("a", "b", "c", "d")
	history := domain.History{"a": "b"}
	a := newAssigner(t)

	for i := 0; i < 100; i++ {
		got, err := a.Assign(ps, history)
		require.NoError(t, err)
		requireValid(t, ps, history, got)
		require.NotEqual(t, domain.Email("b"), got[0].Receiver.Email)
	}
}

func TestAssign_BacktracksOutOfDeadEnds(t *testing.T) {
	// Greedy choice for a and b can strand c: c's only legal receiver is a.
	ps := people("a", "b", "c")
	history := domain.History{"c": "b"}
	a := newAssigner(t)

	for i := 0; i < 50; i++ {
		got, err := a.Assign(ps, history)
		require.NoError(t, err)
		requireValid(t, ps, history, got)
		require.Equal(t, domain.Email("a"), got[2].Receiver.Email)
	}
}

func TestAssign_HistoryWithUnknownEmailsIsIgnored(t *testing.T) {
	ps := people("a", "b", "c")
	history := domain.History{"zed": "a", "a": "left-the-company"}

	got, err := newAssigner(t).Assign(ps, history)
	require.NoError(t, err)
	requireValid(t, ps, history, got)
}

func TestAssign_LargerGroupWithFullHistory(t *testing.T) {
	emails := make([]string, 30)
	for i := range emails {
		emails[i] = fmt.Sprintf("p%02d@x", i)
	}
	ps := people(emails...)

	// Last year everyone gave to the next person along.
	history := domain.History{}
	for i, p := range ps {
		history[p.Email] = ps[(i+1)%len(ps)].Email
	}

	got, err := newAssigner(t).Assign(ps, history)
	require.NoError(t, err)
	requireValid(t, ps, history, got)
}

func TestAssign_SameSeedSameDraw(t *testing.T) {
	ps := people("a", "b", "c", "d", "e", "f")
	seed := crypto.SeedFromPhrase("office-2026")

	first, err := newAssigner(t, assigner.WithSeed(seed)).Assign(ps, nil)
	require.NoError(t, err)
	second, err := newAssigner(t, assigner.WithSeed(seed)).Assign(ps, nil)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestAssign_WithRand(t *testing.T) {
	ps := people("a", "b", "c", "d")
	a := newAssigner(t, assigner.WithRand(rand.New(rand.NewPCG(1, 2))))

	got, err := a.Assign(ps, nil)
	require.NoError(t, err)
	requireValid(t, ps, nil, got)
}

func TestAssign_DoesNotMutateInputs(t *testing.T) {
	ps := people("a", "b", "c", "d")
	orig := append([]domain.Participant(nil), ps...)
	history := domain.History{"a": "b"}

	_, err := newAssigner(t).Assign(ps, history)
	require.NoError(t, err)
	require.Equal(t, orig, ps)
	require.Equal(t, domain.History{"a": "b"}, history)
}

func TestAssign_ConcurrentCallers(t *testing.T) {
	ps := people("a", "b", "c", "d", "e")
	a := newAssigner(t)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := a.Assign(ps, nil)
			if err == nil {
				err = assigner.Verify(ps, nil, got)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
