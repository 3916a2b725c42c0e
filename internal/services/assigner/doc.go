// Package assigner draws Secret Santa pairings.
//
// Assign runs a randomized backtracking search over the participants: givers
// are taken in input order, each giver's eligible receivers (not themselves,
// not last round's receiver) are shuffled, and each candidate is tried in turn
// against a copy of the remaining receiver pool. A branch that cannot be
// completed returns to its caller, which tries its next candidate. The search
// is exhaustive, so ErrUnsatisfiable means no valid assignment exists at all.
//
// Verify checks a finished set of pairings against the same rules and is used
// to audit stored results.
package assigner
