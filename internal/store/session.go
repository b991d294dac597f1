package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nasigu/diagquiz/internal/catalog"
	"github.com/nasigu/diagquiz/internal/telegram"
)

// StorageKey is the slot name the session lives under. Kept identical to the
// web client's localStorage key so both front-ends share one result schema.
const StorageKey = "singularity-quiz-result"

// QuizVersion tags exported snapshots with the result schema version.
const QuizVersion = "1.0"

// Answer is one recorded answer. At most one exists per question id.
type Answer struct {
	QuestionID string        `json:"questionId"`
	Value      catalog.Value `json:"answer"`
	Timestamp  time.Time     `json:"timestamp"`
}

// Result is the full session state persisted to the durable slot.
type Result struct {
	Answers              []Answer           `json:"answers"`
	StartTime            time.Time          `json:"startTime"`
	EndTime              *time.Time         `json:"endTime,omitempty"`
	CurrentSection       string             `json:"currentSection"`
	CurrentQuestionIndex int                `json:"currentQuestionIndex"`
	Completed            bool               `json:"completed"`
	TelegramUser         *telegram.UserInfo `json:"telegramUser,omitempty"`
}

// Snapshot is the read-only export projection: the session plus client
// metadata, used for webhook submission and user-facing download.
type Snapshot struct {
	Result
	UserAgent   string    `json:"userAgent"`
	QuizVersion string    `json:"quizVersion"`
	ExportTime  time.Time `json:"exportTime"`
}

// Store owns the session state for the lifetime of the process. Every
// mutation writes the whole serialized state back to the slot before
// returning; a failed write is logged and the in-memory state stands.
type Store struct {
	slot   Slot
	result Result
}

// NewStore creates a Store over the given slot with fresh default state.
// Call Load to rehydrate a prior session.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot, result: freshResult()}
}

func freshResult() Result {
	return Result{
		Answers:              []Answer{},
		StartTime:            time.Now(),
		CurrentSection:       catalog.Sections[0].ID,
		CurrentQuestionIndex: 0,
		Completed:            false,
	}
}

// Load reads the slot and rehydrates the session. Missing or malformed
// content is never fatal: it falls back to fresh default state.
func (s *Store) Load() Result {
	payload, ok, err := s.slot.Read()
	if err != nil || !ok {
		if err != nil {
			fmt.Fprintln(os.Stderr, "read session slot:", err)
		}
		s.result = freshResult()
		return s.State()
	}

	var r Result
	if err := json.Unmarshal(payload, &r); err != nil {
		fmt.Fprintln(os.Stderr, "decode session slot:", err)
		s.result = freshResult()
		return s.State()
	}
	if r.Answers == nil {
		r.Answers = []Answer{}
	}
	s.result = r
	return s.State()
}

// State returns a copy of the current session state.
func (s *Store) State() Result {
	r := s.result
	r.Answers = append([]Answer(nil), s.result.Answers...)
	return r
}

// GetAnswer returns the recorded answer for a question id.
func (s *Store) GetAnswer(questionID string) (Answer, bool) {
	for _, a := range s.result.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}

// Lookup adapts the store for flow building and condition evaluation.
func (s *Store) Lookup() catalog.Lookup {
	return func(questionID string) (catalog.Value, bool) {
		a, ok := s.GetAnswer(questionID)
		return a.Value, ok
	}
}

// SaveAnswer records an answer, replacing any prior one for the same id,
// and persists the session.
func (s *Store) SaveAnswer(questionID string, value catalog.Value) {
	kept := s.result.Answers[:0]
	for _, a := range s.result.Answers {
		if a.QuestionID != questionID {
			kept = append(kept, a)
		}
	}
	s.result.Answers = append(kept, Answer{
		QuestionID: questionID,
		Value:      value,
		Timestamp:  time.Now(),
	})
	s.persist()
}

// UpdatePosition records the current section and active-sequence index.
func (s *Store) UpdatePosition(sectionID string, questionIndex int) {
	s.result.CurrentSection = sectionID
	s.result.CurrentQuestionIndex = questionIndex
	s.persist()
}

// SetTelegramUser attaches the host-supplied identity. Last write wins.
func (s *Store) SetTelegramUser(info telegram.UserInfo) {
	s.result.TelegramUser = &info
	s.persist()
}

// Complete marks the session finished and stamps the end time.
func (s *Store) Complete() {
	now := time.Now()
	s.result.Completed = true
	s.result.EndTime = &now
	s.persist()
}

// EvaluateCondition checks a visibility condition against recorded answers.
func (s *Store) EvaluateCondition(c catalog.Condition) bool {
	a, ok := s.GetAnswer(c.QuestionID)
	return c.SatisfiedBy(a.Value, ok)
}

// Export builds the submission/download snapshot. It never mutates state.
func (s *Store) Export(userAgent string) Snapshot {
	return Snapshot{
		Result:      s.State(),
		UserAgent:   userAgent,
		QuizVersion: QuizVersion,
		ExportTime:  time.Now(),
	}
}

// Reset erases the durable slot and returns to fresh default state.
func (s *Store) Reset() {
	s.result = freshResult()
	if err := s.slot.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, "clear session slot:", err)
	}
}

func (s *Store) persist() {
	payload, err := json.Marshal(s.result)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode session state:", err)
		return
	}
	if err := s.slot.Write(payload); err != nil {
		fmt.Fprintln(os.Stderr, "write session slot:", err)
	}
}
