// Package engine drives the question flow: it owns the cursor into the
// active sequence, rebuilds that sequence after every answer change, and
// fires completion exactly once when the final active question is answered.
package engine

import (
	"errors"

	"github.com/nasigu/diagquiz/internal/catalog"
	"github.com/nasigu/diagquiz/internal/flow"
	"github.com/nasigu/diagquiz/internal/store"
	"github.com/nasigu/diagquiz/internal/validate"
)

// State is the navigator's lifecycle phase.
type State int

const (
	// Building: the active sequence has not been computed yet.
	Building State = iota
	// Presenting: a question at Index() is being shown.
	Presenting
	// Completed: the final question was answered; no transitions remain.
	Completed
)

// ErrEmptyFlow is returned when the catalog and answers produce no active
// questions. The caller must surface it, never present an undefined question.
var ErrEmptyFlow = errors.New("active question sequence is empty")

// Submitter delivers the completed result. The engine fires it once, from
// the completion transition, and never waits on the outcome.
type Submitter interface {
	SubmitAsync(snap store.Snapshot)
}

// Config assembles an Engine. Zero catalog fields default to the shipped one.
type Config struct {
	Store     *store.Store
	Submitter Submitter
	UserAgent string

	Sections []catalog.Section
	BranchA  []catalog.Question
	BranchB  []catalog.Question
}

// Engine is the quiz navigator. All methods run on the UI goroutine; the
// only asynchronous effect is the detached submission at completion.
type Engine struct {
	store     *store.Store
	submitter Submitter
	userAgent string

	sections []catalog.Section
	branchA  []catalog.Question
	branchB  []catalog.Question

	seq   []flow.ActiveQuestion
	index int
	state State
}

// New creates an Engine in the Building state.
func New(cfg Config) *Engine {
	e := &Engine{
		store:     cfg.Store,
		submitter: cfg.Submitter,
		userAgent: cfg.UserAgent,
		sections:  cfg.Sections,
		branchA:   cfg.BranchA,
		branchB:   cfg.BranchB,
		state:     Building,
	}
	if e.sections == nil {
		e.sections = catalog.Sections
		e.branchA = catalog.B2B
		e.branchB = catalog.B2C
	}
	return e
}

// Start builds the initial sequence and restores the session position: the
// first unanswered question when a prior session exists, else the persisted
// index clamped to the sequence. A session already completed goes straight
// to Completed.
func (e *Engine) Start() error {
	result := e.store.State()
	if result.Completed {
		e.state = Completed
		return nil
	}

	e.seq = e.build()
	if len(e.seq) == 0 {
		return ErrEmptyFlow
	}

	e.index = 0
	if len(result.Answers) > 0 {
		e.index = e.restoreIndex(result.CurrentQuestionIndex)
	}
	e.state = Presenting
	return nil
}

func (e *Engine) build() []flow.ActiveQuestion {
	return flow.Build(e.sections, e.branchA, e.branchB, e.store.Lookup())
}

func (e *Engine) restoreIndex(saved int) int {
	for i, q := range e.seq {
		if _, ok := e.store.GetAnswer(q.ID); !ok {
			return i
		}
	}
	if saved > len(e.seq)-1 {
		return len(e.seq) - 1
	}
	if saved < 0 {
		return 0
	}
	return saved
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Current returns the question under the cursor.
func (e *Engine) Current() (flow.ActiveQuestion, bool) {
	if e.state != Presenting || e.index < 0 || e.index >= len(e.seq) {
		return flow.ActiveQuestion{}, false
	}
	return e.seq[e.index], true
}

// Index returns the cursor position within the active sequence.
func (e *Engine) Index() int { return e.index }

// Len returns the length of the active sequence.
func (e *Engine) Len() int { return len(e.seq) }

// CanGoBack reports whether back-navigation is permitted.
func (e *Engine) CanGoBack() bool {
	return e.state == Presenting && e.index > 0
}

// Back retreats one position and persists it. Disabled at the first question.
func (e *Engine) Back() {
	if !e.CanGoBack() {
		return
	}
	e.index--
	e.store.UpdatePosition(e.seq[e.index].SectionID, e.index)
}

// Next validates and records the answer for the current question, rebuilds
// the active sequence, reconciles the cursor, and advances — or completes
// when the cursor sits on the final active question. A validation error
// leaves every piece of session state untouched.
func (e *Engine) Next(v catalog.Value) error {
	cur, ok := e.Current()
	if !ok {
		return nil
	}

	if err := validate.Answer(cur.Question, v); err != nil {
		return err
	}

	e.store.SaveAnswer(cur.ID, v)

	// Visibility may have changed: re-derive and find ourselves again.
	newSeq := e.build()
	if len(newSeq) == 0 {
		return ErrEmptyFlow
	}
	e.index = reconcile(e.seq, e.index, newSeq)
	e.seq = newSeq

	if e.index < len(e.seq)-1 {
		e.index++
		e.store.UpdatePosition(e.seq[e.index].SectionID, e.index)
		return nil
	}

	e.complete()
	return nil
}

func (e *Engine) complete() {
	e.store.Complete()
	if e.submitter != nil {
		e.submitter.SubmitAsync(e.store.Export(e.userAgent))
	}
	e.state = Completed
}

// reconcile maps a cursor in the old sequence to the new one: the same
// question id when it survived, else the nearest earlier old entry that
// still exists, else 0.
func reconcile(oldSeq []flow.ActiveQuestion, oldIdx int, newSeq []flow.ActiveQuestion) int {
	if oldIdx >= len(oldSeq) {
		oldIdx = len(oldSeq) - 1
	}
	for i := oldIdx; i >= 0; i-- {
		if j := flow.IndexOf(newSeq, oldSeq[i].ID); j >= 0 {
			return j
		}
	}
	return 0
}
