// Package draw runs a complete Secret Santa draw and inspects stored results.
//
// A draw loads participants and last round's history, asks the assigner for
// pairings, writes them (sealed when requested) and optionally notifies each
// giver. Reveal and Verify work on a previously written result.
package draw
