// Package history is the audit log: one SQLite row per scrub run that
// changed the clipboard. Writes are best-effort; a broken or missing
// database never affects the scrub itself.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"clipscrub/pkg/filter"
	"clipscrub/pkg/scrub"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// EventID is the fixed numeric identifier attached to every audit entry.
const EventID = 63301

// Entry is one recorded scrub run.
type Entry struct {
	RunID          string
	EventID        int
	CreatedAt      time.Time
	OriginalLength int
	CleanedLength  int
	RemovedCount   int
	NBSPNormalized bool
	Histogram      map[string]int
	Summary        string
}

type Store struct {
	db *sql.DB
}

// DefaultPath returns the default history database location.
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "clipscrub", "history.db"), nil
}

// Open opens (and if needed creates) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		run_id TEXT PRIMARY KEY,
		event_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		original_length INTEGER NOT NULL,
		cleaned_length INTEGER NOT NULL,
		removed_count INTEGER NOT NULL,
		nbsp_normalized INTEGER NOT NULL,
		histogram TEXT NOT NULL,
		summary TEXT NOT NULL
	)`)
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a scrub run and returns the stored entry.
func (s *Store) Append(res scrub.Result) (Entry, error) {
	hist := make(map[string]int, len(res.Histogram))
	for cat, count := range res.Histogram {
		hist[string(cat)] = count
	}
	histJSON, err := json.Marshal(hist)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to encode histogram: %w", err)
	}

	entry := Entry{
		RunID:          uuid.NewString(),
		EventID:        EventID,
		CreatedAt:      time.Now().UTC(),
		OriginalLength: res.OriginalLength,
		CleanedLength:  res.CleanedLength,
		RemovedCount:   res.RemovedCount,
		NBSPNormalized: res.NBSPNormalized,
		Histogram:      hist,
		Summary:        res.Summary(),
	}

	_, err = s.db.Exec(`INSERT INTO entries
		(run_id, event_id, created_at, original_length, cleaned_length,
		 removed_count, nbsp_normalized, histogram, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.EventID, entry.CreatedAt,
		entry.OriginalLength, entry.CleanedLength, entry.RemovedCount,
		boolToInt(entry.NBSPNormalized), string(histJSON), entry.Summary)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry, nil
}

// ListOptions narrows a List call. A zero value returns the most recent
// defaultListLimit entries.
type ListOptions struct {
	Limit  int
	Filter *filter.StringFilter // matched against the entry summary
}

const defaultListLimit = 25

// List returns entries newest first.
func (s *Store) List(opts ListOptions) ([]Entry, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`SELECT
		run_id, event_id, created_at, original_length, cleaned_length,
		removed_count, nbsp_normalized, histogram, summary
		FROM entries ORDER BY created_at DESC, run_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var nbsp int
		var histJSON string
		if err := rows.Scan(&e.RunID, &e.EventID, &e.CreatedAt,
			&e.OriginalLength, &e.CleanedLength, &e.RemovedCount,
			&nbsp, &histJSON, &e.Summary); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		e.NBSPNormalized = nbsp != 0
		if err := json.Unmarshal([]byte(histJSON), &e.Histogram); err != nil {
			return nil, fmt.Errorf("failed to decode histogram: %w", err)
		}

		if !opts.Filter.Match(e.Summary) {
			continue
		}
		entries = append(entries, e)
		if len(entries) >= limit {
			break
		}
	}

	return entries, rows.Err()
}

// Clear deletes all entries and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM entries`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear entries: %w", err)
	}
	return res.RowsAffected()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
