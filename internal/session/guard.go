// Package session tracks recently started test sessions so the app can
// warn before regenerating questions for a topic the user just tested.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	sessionsKey = "witsiq.sessions"

	// A session counts as "recent" for an hour.
	recentWindow = time.Hour

	// Never persist more than this many records.
	maxRecords = 50
)

// Storage is the KV collaborator the guard persists through. Read
// reports found=false for a missing key without an error.
type Storage interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Record is one started session.
type Record struct {
	Topic     string    `json:"topic"`
	Mode      string    `json:"mode"`
	StartedAt time.Time `json:"started_at"`
}

// Guard answers "did the user already start this session recently?" and
// records new sessions. Storage failures never block the user: reads
// fail open, writes are logged and swallowed.
type Guard struct {
	storage Storage

	now func() time.Time
}

// NewGuard creates a Guard over the given storage.
func NewGuard(storage Storage) *Guard {
	return &Guard{storage: storage, now: time.Now}
}

// IsDuplicate reports whether a session with the same topic (case
// insensitive) and mode was started within the last hour. Expired
// records found along the way are pruned and persisted.
func (g *Guard) IsDuplicate(ctx context.Context, topic, mode string) bool {
	records, err := g.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read session records: %v\n", err)
		return false
	}

	recent := g.pruneExpired(records)
	if len(recent) > maxRecords {
		recent = recent[len(recent)-maxRecords:]
	}
	if len(recent) != len(records) {
		g.save(ctx, recent)
	}

	want := strings.ToLower(strings.TrimSpace(topic))
	for _, r := range recent {
		if strings.ToLower(strings.TrimSpace(r.Topic)) == want && r.Mode == mode {
			return true
		}
	}
	return false
}

// Record stores a newly started session, dropping expired records and
// keeping the list within its cap.
func (g *Guard) Record(ctx context.Context, topic, mode string) {
	records, err := g.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to read session records: %v\n", err)
		records = nil
	}

	recent := g.pruneExpired(records)
	recent = append(recent, Record{Topic: topic, Mode: mode, StartedAt: g.now()})
	if len(recent) > maxRecords {
		recent = recent[len(recent)-maxRecords:]
	}

	g.save(ctx, recent)
}

// Clear removes all session records.
func (g *Guard) Clear(ctx context.Context) error {
	return g.storage.Write(ctx, sessionsKey, "[]")
}

// RecordRemoteCall satisfies the generation pipeline's rate recorder.
// No per-call limit is enforced today; the hook keeps the call site in
// place for when one is.
func (g *Guard) RecordRemoteCall() {}

func (g *Guard) load(ctx context.Context) ([]Record, error) {
	value, found, err := g.storage.Read(ctx, sessionsKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		// A corrupt record list is discarded rather than wedging every
		// future session start.
		return nil, fmt.Errorf("corrupt session records: %w", err)
	}
	return records, nil
}

func (g *Guard) pruneExpired(records []Record) []Record {
	cutoff := g.now().Add(-recentWindow)
	recent := make([]Record, 0, len(records))
	for _, r := range records {
		if r.StartedAt.After(cutoff) {
			recent = append(recent, r)
		}
	}
	return recent
}

func (g *Guard) save(ctx context.Context, records []Record) {
	data, err := json.Marshal(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode session records: %v\n", err)
		return
	}
	if err := g.storage.Write(ctx, sessionsKey, string(data)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to persist session records: %v\n", err)
	}
}
