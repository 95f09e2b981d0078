package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals turns and attempts to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log.With().Str("component", "recorder").Logger()}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	r.log.Info().Str("path", dbPath).Msg("sqlite journal opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS turns (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			session_id     TEXT NOT NULL,
			attempt        INTEGER NOT NULL,
			year_index     INTEGER,
			year           INTEGER,
			social_pct     INTEGER,
			infra_pct      INTEGER,
			security_pct   INTEGER,
			ref_social     REAL,
			ref_infra      REAL,
			ref_security   REAL,
			match_score    REAL,
			gdp_before     REAL,
			delta          REAL,
			gdp_after      REAL,
			invaded        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id)`,

		`CREATE TABLE IF NOT EXISTS attempts (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			session_id   TEXT NOT NULL,
			attempt      INTEGER NOT NULL,
			region       TEXT,
			outcome      TEXT,
			turns_played INTEGER,
			final_gdp    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_session ON attempts(session_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTurn(evt *TurnEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := evt.Result
	invaded := 0
	if res.Invaded {
		invaded = 1
	}

	_, err := r.db.Exec(`INSERT INTO turns
		(timestamp, session_id, attempt, year_index, year,
		 social_pct, infra_pct, security_pct,
		 ref_social, ref_infra, ref_security,
		 match_score, gdp_before, delta, gdp_after, invaded)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, evt.Attempt, res.YearIndex, res.Year,
		res.Allocation[0], res.Allocation[1], res.Allocation[2],
		res.Reference[0], res.Reference[1], res.Reference[2],
		res.MatchScore, res.GDPBefore, res.Delta, res.GDPAfter, invaded,
	)
	return err
}

func (r *SQLiteRecorder) RecordAttempt(evt *AttemptEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO attempts
		(timestamp, session_id, attempt, region, outcome, turns_played, final_gdp)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.SessionID, evt.Attempt, evt.Region,
		string(evt.Outcome), evt.TurnsPlayed, evt.FinalGDP,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info().Msg("closing sqlite journal")
	return r.db.Close()
}
