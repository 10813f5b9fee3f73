package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/logger"
)

const (
	snapshotPrefix     = "stock-data-"
	snapshotSuffix     = ".json"
	snapshotDateLayout = "2006-01-02" // YYYY-MM-DD
)

var (
	// ErrSnapshotNotFound means no snapshot resource could be resolved.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrMalformedSnapshot means the snapshot is not a JSON array of stock records.
	ErrMalformedSnapshot = errors.New("malformed snapshot")
)

// StocksRepository defines the contract for reading stock records.
type StocksRepository interface {
	// ListStocks returns every record of the snapshot in source order.
	// It either returns the complete list or an error, never a partial list.
	ListStocks(ctx context.Context) ([]models.StockRecord, error)
	// Ping reports whether a snapshot can currently be resolved.
	Ping() error
}

type snapshotRepository struct {
	fsys fs.FS
	file string
}

// NewSnapshotRepository returns a StocksRepository reading JSON snapshots from fsys.
//
// Parameters:
//   - fsys (fs.FS): the snapshot source (embedded files or a directory).
//   - file (string): explicit snapshot name; empty selects the latest
//     "stock-data-YYYY-MM-DD.json" found at the root of fsys.
//
// Returns:
//   - StocksRepository: a repository safe for concurrent use.
func NewSnapshotRepository(fsys fs.FS, file string) StocksRepository {
	return &snapshotRepository{fsys: fsys, file: strings.TrimSpace(file)}
}

// ListStocks resolves the snapshot, then decodes it fully before returning.
func (r *snapshotRepository) ListStocks(ctx context.Context) ([]models.StockRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name, err := r.resolve()
	if err != nil {
		return nil, err
	}

	f, err := r.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %s: %w", name, ErrSnapshotNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	records, err := decodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	logger.L().Debug().Str("snapshot", name).Int("records", len(records)).Msg("snapshot loaded")
	return records, nil
}

// Ping checks that a snapshot can be resolved and opened.
func (r *snapshotRepository) Ping() error {
	name, err := r.resolve()
	if err != nil {
		return err
	}
	if _, err := fs.Stat(r.fsys, name); err != nil {
		return fmt.Errorf("stat %s: %w", name, ErrSnapshotNotFound)
	}
	return nil
}

func (r *snapshotRepository) resolve() (string, error) {
	if r.file != "" {
		return r.file, nil
	}
	return LatestSnapshot(r.fsys)
}

// LatestSnapshot returns the name of the most recent dated snapshot at the
// root of fsys. Files not named "stock-data-YYYY-MM-DD.json" are ignored.
func LatestSnapshot(fsys fs.FS) (string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("read snapshot dir: %w", ErrSnapshotNotFound)
		}
		return "", fmt.Errorf("read snapshot dir: %w", err)
	}

	var (
		latest     string
		latestDate time.Time
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		d, ok := SnapshotDate(e.Name())
		if !ok {
			continue
		}
		if latest == "" || d.After(latestDate) {
			latest, latestDate = e.Name(), d
		}
	}

	if latest == "" {
		return "", ErrSnapshotNotFound
	}
	return latest, nil
}

// SnapshotDate extracts the business date from a snapshot file name.
func SnapshotDate(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, snapshotPrefix) || !strings.HasSuffix(name, snapshotSuffix) {
		return time.Time{}, false
	}
	datePart := strings.TrimSuffix(strings.TrimPrefix(name, snapshotPrefix), snapshotSuffix)
	d, err := time.Parse(snapshotDateLayout, datePart)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// decodeRecords reads exactly one JSON array of records from r.
//
// It fails on:
//   - anything other than an array at the top level (including null)
//   - numeric fields encoded as strings or other type mismatches
//   - trailing data after the array
//
// Unknown keys are tolerated; values are not checked for business validity.
func decodeRecords(r io.Reader) ([]models.StockRecord, error) {
	dec := json.NewDecoder(r)

	var records []models.StockRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedSnapshot)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after array", ErrMalformedSnapshot)
	}
	return records, nil
}
