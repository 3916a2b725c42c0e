package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"secretsanta/internal/domain"
)

// Column headers shared with the HR export and with last year's output.
const (
	colGiverName     = "Employee_Name"
	colGiverEmail    = "Employee_EmailID"
	colReceiverName  = "Secret_Child_Name"
	colReceiverEmail = "Secret_Child_EmailID"
)

var (
	// ErrParticipantsNotFound is returned when the participants file does not exist.
	ErrParticipantsNotFound = errors.New("participants file not found")

	// ErrPairingsNotFound is returned when a pairings file does not exist.
	ErrPairingsNotFound = errors.New("pairings file not found")

	// ErrDuplicateParticipant is returned when two rows share an email.
	ErrDuplicateParticipant = errors.New("duplicate participant email")

	// ErrMissingColumn is returned when a required header is absent.
	ErrMissingColumn = errors.New("missing column")
)

// Spreadsheet exports often start with a byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVFileStore reads participants and history, and reads and writes pairings, as CSV files.
type CSVFileStore struct {
	mu sync.Mutex

	// scrypt parameters used when sealing; zero values select the defaults.
	scryptN, scryptR, scryptP int
}

// CSVOption configures a CSVFileStore.
type CSVOption func(*CSVFileStore)

// WithScryptCost overrides the key derivation cost used when sealing.
// Files record their own parameters, so reading is unaffected.
func WithScryptCost(N, r, p int) CSVOption {
	return func(s *CSVFileStore) { s.scryptN, s.scryptR, s.scryptP = N, r, p }
}

// NewCSVFileStore returns a CSVFileStore.
func NewCSVFileStore(opts ...CSVOption) *CSVFileStore {
	s := &CSVFileStore{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CSVFileStore) scryptCost() (N, r, p int) {
	if s.scryptN == 0 {
		return scryptParamsDefault()
	}
	return s.scryptN, s.scryptR, s.scryptP
}

// LoadParticipants reads the participants file. Names and emails are trimmed
// and must be non-empty; emails must be unique.
func (s *CSVFileStore) LoadParticipants(path string) ([]domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrParticipantsNotFound, path)
	}

	rows, err := readTable(b, colGiverName, colGiverEmail)
	if err != nil {
		return nil, fmt.Errorf("read participants %s: %w", path, err)
	}

	seen := make(map[domain.Email]int, len(rows))
	out := make([]domain.Participant, 0, len(rows))
	for _, row := range rows {
		p := domain.Participant{
			Name:  row.get(colGiverName),
			Email: domain.Email(row.get(colGiverEmail)),
		}
		if p.Name == "" || p.Email == "" {
			return nil, fmt.Errorf("read participants %s: line %d: name and email are required", path, row.line)
		}
		if first, dup := seen[p.Email]; dup {
			return nil, fmt.Errorf("%w: %s on lines %d and %d", ErrDuplicateParticipant, p.Email, first, row.line)
		}
		seen[p.Email] = row.line
		out = append(out, p)
	}
	return out, nil
}

// LoadHistory reads a previous pairings file into giver -> receiver emails.
// An empty path or a missing file yields an empty History.
func (s *CSVFileStore) LoadHistory(path, passphrase string) (domain.History, error) {
	history := domain.History{}
	if path == "" {
		return history, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return history, nil
	}
	if b, err = unseal(passphrase, b); err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}

	rows, err := readTable(b, colGiverEmail, colReceiverEmail)
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	for _, row := range rows {
		giver, receiver := row.get(colGiverEmail), row.get(colReceiverEmail)
		if giver == "" || receiver == "" {
			continue
		}
		history[domain.Email(giver)] = domain.Email(receiver)
	}
	return history, nil
}

// SavePairings writes pairings as CSV. A non-empty passphrase seals the file.
func (s *CSVFileStore) SavePairings(path, passphrase string, pairings []domain.Pairing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{colGiverName, colGiverEmail, colReceiverName, colReceiverEmail}); err != nil {
		return err
	}
	for _, p := range pairings {
		rec := []string{
			p.Giver.Name,
			p.Giver.Email.String(),
			p.Receiver.Name,
			p.Receiver.Email.String(),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	if passphrase == "" {
		return writeFile(path, buf.Bytes(), 0o644)
	}
	N, r, p := s.scryptCost()
	sealed, err := seal(passphrase, buf.Bytes(), N, r, p)
	if err != nil {
		return fmt.Errorf("seal pairings: %w", err)
	}
	return writeFile(path, sealed, 0o600)
}

// LoadPairings reads a pairings file written by SavePairings.
func (s *CSVFileStore) LoadPairings(path, passphrase string) ([]domain.Pairing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrPairingsNotFound, path)
	}
	if b, err = unseal(passphrase, b); err != nil {
		return nil, fmt.Errorf("read pairings %s: %w", path, err)
	}

	rows, err := readTable(b, colGiverName, colGiverEmail, colReceiverName, colReceiverEmail)
	if err != nil {
		return nil, fmt.Errorf("read pairings %s: %w", path, err)
	}
	out := make([]domain.Pairing, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Pairing{
			Giver: domain.Participant{
				Name:  row.get(colGiverName),
				Email: domain.Email(row.get(colGiverEmail)),
			},
			Receiver: domain.Participant{
				Name:  row.get(colReceiverName),
				Email: domain.Email(row.get(colReceiverEmail)),
			},
		})
	}
	return out, nil
}

// row is one CSV record addressed by header name.
type row struct {
	line   int
	fields []string
	index  map[string]int
}

func (r row) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

// readTable parses b as CSV with a header row that must contain required.
// Blank lines are skipped.
func readTable(b []byte, required ...string) ([]row, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(b, utf8BOM)))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}

	var rows []row
	for {
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		rows = append(rows, row{line: line, fields: fields, index: index})
	}
	return rows, nil
}

// Compile-time assertions that CSVFileStore implements the domain stores.
var (
	_ domain.ParticipantStore = (*CSVFileStore)(nil)
	_ domain.HistoryStore     = (*CSVFileStore)(nil)
	_ domain.PairingStore     = (*CSVFileStore)(nil)
)
