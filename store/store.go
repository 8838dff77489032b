/*
Package store persists a kinetics trajectory to a sqlite3 journal and can
stream it back out. The streaming-read half is the slow5 parser's idiom
(io/slow5/slow5.go): a header row parsed once up front, then a channel of
typed records read off a single cursor, so a trajectory never has to be
held entirely in memory to be replayed or re-reported.
*/
package store

import (
	"database/sql"
	"encoding/binary"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spaolacci/murmur3"
)

// Event is one complex's row at one recorded simulation step (spec.md §6
// StateOutput, the trajectory-mode row of Multistrand's output: step, time,
// and that complex's id, energy and structure). cmd/kinsim appends one
// Event per complex in the population at every step.
type Event struct {
	Step      int
	Time      float64
	ComplexID int
	Energy    float64
	Structure string
}

// Journal wraps a sqlite3-backed trajectory log.
type Journal struct {
	db *sql.DB
}

// Open creates (or reopens) a trajectory journal at path, an ordinary file
// path sqlite3 manages directly — ":memory:" is accepted for ephemeral runs.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) migrate() error {
	_, err := j.db.Exec(`CREATE TABLE IF NOT EXISTS events (
		step INTEGER NOT NULL,
		time REAL NOT NULL,
		complex_id INTEGER NOT NULL,
		energy REAL NOT NULL,
		structure TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("store: migrating schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append records a single Event.
func (j *Journal) Append(e Event) error {
	_, err := j.db.Exec(
		`INSERT INTO events (step, time, complex_id, energy, structure) VALUES (?, ?, ?, ?, ?)`,
		e.Step, e.Time, e.ComplexID, e.Energy, e.Structure,
	)
	if err != nil {
		return fmt.Errorf("store: appending event at step %d: %w", e.Step, err)
	}
	return nil
}

// Stream opens a cursor over every recorded Event, oldest first, and
// returns a channel of them — the same producer/consumer shape
// io/slow5/slow5.Write expects on its read side, so a Journal can be
// drained without materializing the whole trajectory in memory.
//
// The returned channel is closed when the cursor is exhausted or an error
// occurs; callers should drain it before inspecting the error return.
func (j *Journal) Stream() (<-chan Event, <-chan error) {
	events := make(chan Event)
	errs := make(chan error, 1)

	go func() {
		defer close(events)
		defer close(errs)

		rows, err := j.db.Query(`SELECT step, time, complex_id, energy, structure FROM events ORDER BY step ASC, complex_id ASC`)
		if err != nil {
			errs <- fmt.Errorf("store: querying events: %w", err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var e Event
			if err := rows.Scan(&e.Step, &e.Time, &e.ComplexID, &e.Energy, &e.Structure); err != nil {
				errs <- fmt.Errorf("store: scanning event row: %w", err)
				return
			}
			events <- e
		}
		if err := rows.Err(); err != nil {
			errs <- fmt.Errorf("store: iterating event rows: %w", err)
		}
	}()

	return events, errs
}

// Fingerprint returns a non-cryptographic 128-bit digest of an Event's
// ComplexID and structure string, used only for cheap debug-dump deduplication when
// comparing two journals' worth of structures — never for anything
// security-sensitive.
func Fingerprint(e Event) string {
	hi, lo := murmur3.Sum128([]byte(fmt.Sprintf("%d:%s", e.ComplexID, e.Structure)))
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], hi)
	binary.BigEndian.PutUint64(buf[8:], lo)
	return fmt.Sprintf("%x", buf)
}
