package beamform

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Ledger records beamforming runs in a sqlite database so strategies and
// worker counts can be compared across runs.
type Ledger struct {
	*sql.DB
}

// RunRecord is one ledger row. RMS is nil when no reference was given.
type RunRecord struct {
	ID            uuid.UUID
	Size          int
	Strategy      string
	Topology      string
	Phase1Workers int
	Phase2Workers int
	ElapsedUsec   int64
	RMS           *float64
	CreatedAt     time.Time
}

// OpenLedger opens or creates the ledger database at path.
func OpenLedger(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			run_id            TEXT PRIMARY KEY,
			size              INTEGER NOT NULL,
			strategy          TEXT NOT NULL,
			topology          TEXT NOT NULL,
			phase1_workers    INTEGER NOT NULL,
			phase2_workers    INTEGER NOT NULL,
			elapsed_usec      BIGINT NOT NULL,
			rms               DOUBLE,
			created_unix_ns   BIGINT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}
	return &Ledger{db}, nil
}

// Record inserts rec, assigning a new ID when rec.ID is zero. It returns the ID used.
func (l *Ledger) Record(rec RunRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	var rms sql.NullFloat64
	if rec.RMS != nil {
		rms = sql.NullFloat64{Float64: *rec.RMS, Valid: true}
	}
	_, err := l.Exec(`
		INSERT INTO runs (run_id, size, strategy, topology, phase1_workers, phase2_workers, elapsed_usec, rms, created_unix_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID.String(), rec.Size, rec.Strategy, rec.Topology,
		rec.Phase1Workers, rec.Phase2Workers, rec.ElapsedUsec, rms, rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("record run %s: %w", rec.ID, err)
	}
	return rec.ID, nil
}

// Runs returns all recorded runs, oldest first.
func (l *Ledger) Runs() ([]RunRecord, error) {
	rows, err := l.Query(`
		SELECT run_id, size, strategy, topology, phase1_workers, phase2_workers, elapsed_usec, rms, created_unix_ns
		FROM runs ORDER BY created_unix_ns, run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var (
			rec RunRecord
			id  string
			rms sql.NullFloat64
			ns  int64
		)
		if err := rows.Scan(&id, &rec.Size, &rec.Strategy, &rec.Topology,
			&rec.Phase1Workers, &rec.Phase2Workers, &rec.ElapsedUsec, &rms, &ns); err != nil {
			return nil, err
		}
		if rec.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("bad run id %q: %w", id, err)
		}
		rec.CreatedAt = time.Unix(0, ns).UTC()
		if rms.Valid {
			v := rms.Float64
			rec.RMS = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
