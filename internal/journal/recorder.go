package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/stagehand/scene"
)

// Recorder journals one run of the application: a session row, one
// row per frame, and one row per navigation transition or missed
// jump. It implements scene.Observer. Per-row writes are
// best-effort; telemetry must never fail the frame loop.
type Recorder struct {
	db      *sql.DB
	session string
	seq     int
}

// NewRecorder starts a new journal session.
func NewRecorder(db *sql.DB) (*Recorder, error) {
	id := uuid.NewString()
	if _, err := db.Exec(
		`INSERT INTO sessions (id, started_at) VALUES (?, ?)`,
		id, stamp(Now()),
	); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return &Recorder{db: db, session: id}, nil
}

// SessionID returns the journal session id.
func (r *Recorder) SessionID() string { return r.session }

// Frame records one dispatched frame.
func (r *Recorder) Frame(at time.Time, active scene.Name, events, renders int) {
	r.seq++
	_, _ = r.db.Exec(
		`INSERT INTO frames (id, session_id, seq, at, scene, events, renders)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), r.session, r.seq, stamp(at), string(active), events, renders,
	)
}

// SceneChanged implements scene.Observer.
func (r *Recorder) SceneChanged(from, to scene.Name, cause scene.NavEvent) {
	_, _ = r.db.Exec(
		`INSERT INTO transitions (session_id, at, from_scene, to_scene, cause)
		 VALUES (?, ?, ?, ?, ?)`,
		r.session, stamp(Now()), string(from), string(to), causeLabel(cause),
	)
}

// JumpMissed implements scene.Observer. The nearest registered name
// goes into the row so a miss is diagnosable after the fact.
func (r *Recorder) JumpMissed(from, target, nearest scene.Name) {
	_, _ = r.db.Exec(
		`INSERT INTO misses (session_id, at, from_scene, target, nearest)
		 VALUES (?, ?, ?, ?, ?)`,
		r.session, stamp(Now()), string(from), string(target), string(nearest),
	)
}

// Counts returns the row counts for this session, for status display
// and tests.
func (r *Recorder) Counts() (frames, transitions, misses int, err error) {
	row := r.db.QueryRow(
		`SELECT
		   (SELECT COUNT(*) FROM frames WHERE session_id = ?),
		   (SELECT COUNT(*) FROM transitions WHERE session_id = ?),
		   (SELECT COUNT(*) FROM misses WHERE session_id = ?)`,
		r.session, r.session, r.session,
	)
	err = row.Scan(&frames, &transitions, &misses)
	return frames, transitions, misses, err
}

func stamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func causeLabel(ev scene.NavEvent) string {
	switch e := ev.(type) {
	case scene.Next:
		return "next"
	case scene.Previous:
		return "previous"
	case scene.JumpTo:
		return "jump:" + string(e.Target)
	default:
		return "unknown"
	}
}
