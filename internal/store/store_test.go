package store

import (
	"path/filepath"
	"testing"

	"github.com/nasigu/diagquiz/internal/catalog"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "diagquiz.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteSlot_ReadEmpty(t *testing.T) {
	slot := openTestDB(t).Slot(StorageKey)

	_, ok, err := slot.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ok {
		t.Error("empty slot reported a payload")
	}
}

func TestSQLiteSlot_WriteReadClear(t *testing.T) {
	slot := openTestDB(t).Slot(StorageKey)

	if err := slot.Write([]byte(`{"completed":false}`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	payload, ok, err := slot.Read()
	if err != nil || !ok {
		t.Fatalf("Read: ok=%v err=%v", ok, err)
	}
	if string(payload) != `{"completed":false}` {
		t.Errorf("payload = %s", payload)
	}

	if err := slot.Write([]byte(`{"completed":true}`)); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	payload, _, _ = slot.Read()
	if string(payload) != `{"completed":true}` {
		t.Errorf("payload after overwrite = %s", payload)
	}

	if err := slot.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := slot.Read(); ok {
		t.Error("slot still holds a payload after Clear")
	}
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	db := openTestDB(t)

	s := NewStore(db.Slot(StorageKey))
	s.Load()
	s.SaveAnswer("industry", catalog.SingleValue("Производство"))
	s.UpdatePosition("profile", 1)
	want := s.State()

	s2 := NewStore(db.Slot(StorageKey))
	got := s2.Load()

	if len(got.Answers) != 1 || got.Answers[0].QuestionID != "industry" {
		t.Fatalf("answers = %+v, want the saved one", got.Answers)
	}
	if !got.Answers[0].Timestamp.Equal(want.Answers[0].Timestamp) {
		t.Errorf("timestamp = %v, want %v", got.Answers[0].Timestamp, want.Answers[0].Timestamp)
	}
	if got.CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", got.CurrentQuestionIndex)
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "quiz.db")
	t.Setenv("DIAGQUIZ_DB", p)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if got != p {
		t.Errorf("DefaultDBPath = %q, want %q", got, p)
	}
}
