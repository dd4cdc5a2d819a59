// Package storage persists user-registry snapshots. A snapshot is always
// written whole; backends differ only in where the bytes end up.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/lockify/internal/server/models"
)

// Snapshot is the persisted form of the registry.
//
// Counter is the next-id watermark at save time. Snapshots written by older
// servers stored the user count there instead; readers must not trust it
// blindly.
type Snapshot struct {
	Users   []models.User
	Counter int64
}

// Snapshotter loads and saves snapshots. Load returns an empty snapshot and
// no error when nothing has been saved yet. Errors wrap common.ErrorPersistence.
type Snapshotter interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, s *Snapshot) error
}

// entry is one [id, user] pair of the wire format.
type entry struct {
	ID   string
	User models.User
}

func (e entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.ID, e.User})
}

func (e *entry) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("snapshot entry: want [id, user], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &e.ID); err != nil {
		return fmt.Errorf("snapshot entry id: %w", err)
	}
	if err := json.Unmarshal(pair[1], &e.User); err != nil {
		return fmt.Errorf("snapshot entry user: %w", err)
	}
	return nil
}

type snapshotJSON struct {
	Users   []entry `json:"users"`
	Counter int64   `json:"counter"`
}

// MarshalSnapshot renders s as
//
//	{"users": [[id, {id, email, password, role}], ...], "counter": n}
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	doc := snapshotJSON{Users: make([]entry, 0, len(s.Users)), Counter: s.Counter}
	for _, u := range s.Users {
		doc.Users = append(doc.Users, entry{ID: u.ID, User: u})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalSnapshot parses the MarshalSnapshot format. The map key wins over
// the id stored inside the record, as it does when the registry is rebuilt
// from pairs.
func UnmarshalSnapshot(b []byte) (*Snapshot, error) {
	var doc snapshotJSON
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}

	s := &Snapshot{Users: make([]models.User, 0, len(doc.Users)), Counter: doc.Counter}
	for _, e := range doc.Users {
		u := e.User
		u.ID = e.ID
		s.Users = append(s.Users, u)
	}
	return s, nil
}
