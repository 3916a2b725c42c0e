// Package store reads and writes the files a draw works with.
//
// CSVFileStore implements the domain participant, history and pairing stores
// over the CSV layout used by HR exports:
//
//	Employee_Name,Employee_EmailID                                       participants
//	Employee_Name,Employee_EmailID,Secret_Child_Name,Secret_Child_EmailID  pairings
//
// A previous year's pairings file doubles as the history input. Pairings may
// be sealed under a passphrase (scrypt + ChaCha20-Poly1305) so whoever runs
// the draw cannot read it; readers detect sealed files automatically.
//
// Writes go through a temp file and rename, so a failed write never leaves a
// half-written result behind.
package store
