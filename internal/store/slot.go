package store

import (
	"database/sql"
	"errors"
	"time"
)

// Slot is one named cell of durable key-value storage. Reads and writes are
// synchronous and local; there is exactly one writer per session.
type Slot interface {
	// Read returns the stored payload, or ok=false when the slot is empty.
	Read() (payload []byte, ok bool, err error)

	// Write replaces the stored payload.
	Write(payload []byte) error

	// Clear erases the slot.
	Clear() error
}

type sqliteSlot struct {
	db  *sql.DB
	key string
}

func (s *sqliteSlot) Read() ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM session_slot WHERE key = ?`, s.key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

func (s *sqliteSlot) Write(payload []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO session_slot (key, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.key, payload, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (s *sqliteSlot) Clear() error {
	_, err := s.db.Exec(`DELETE FROM session_slot WHERE key = ?`, s.key)
	return err
}

// MemorySlot is an in-process Slot for tests and previews.
type MemorySlot struct {
	payload []byte
	ok      bool

	// WriteErr, when set, is returned from Write to simulate storage failure.
	WriteErr error
}

func (m *MemorySlot) Read() ([]byte, bool, error) {
	if !m.ok {
		return nil, false, nil
	}
	cp := make([]byte, len(m.payload))
	copy(cp, m.payload)
	return cp, true, nil
}

func (m *MemorySlot) Write(payload []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.payload = make([]byte, len(payload))
	copy(m.payload, payload)
	m.ok = true
	return nil
}

func (m *MemorySlot) Clear() error {
	m.payload = nil
	m.ok = false
	return nil
}
