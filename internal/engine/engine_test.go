package engine

import (
	"errors"
	"testing"

	"github.com/nasigu/diagquiz/internal/catalog"
	"github.com/nasigu/diagquiz/internal/flow"
	"github.com/nasigu/diagquiz/internal/store"
)

type fakeSubmitter struct {
	calls int
	last  store.Snapshot
}

func (f *fakeSubmitter) SubmitAsync(s store.Snapshot) {
	f.calls++
	f.last = s
}

var smallSections = []catalog.Section{
	{
		ID:    "one",
		Title: "One",
		Questions: []catalog.Question{
			{ID: "q1", Kind: catalog.Single, Options: []string{"a", "b"}},
			{ID: "q2", Kind: catalog.Text, Optional: true},
		},
	},
}

func smallEngine(t *testing.T, sub Submitter) (*Engine, *store.Store) {
	t.Helper()
	st := store.NewStore(&store.MemorySlot{})
	st.Load()
	e := New(Config{
		Store:     st,
		Submitter: sub,
		UserAgent: "diagquiz/test",
		Sections:  smallSections,
	})
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return e, st
}

func TestStart_FreshSession(t *testing.T) {
	e, _ := smallEngine(t, nil)

	if e.State() != Presenting {
		t.Fatalf("State = %v, want Presenting", e.State())
	}
	cur, ok := e.Current()
	if !ok || cur.ID != "q1" {
		t.Errorf("Current = %v/%v, want q1", cur.ID, ok)
	}
}

func TestStart_EmptyFlow(t *testing.T) {
	st := store.NewStore(&store.MemorySlot{})
	st.Load()
	gated := []catalog.Section{{
		ID:        "one",
		Condition: &catalog.Condition{QuestionID: "never", Values: []string{"x"}},
		Questions: []catalog.Question{{ID: "q1", Kind: catalog.Text}},
	}}
	e := New(Config{Store: st, Sections: gated})

	err := e.Start()
	if !errors.Is(err, ErrEmptyFlow) {
		t.Errorf("Start = %v, want ErrEmptyFlow", err)
	}
	if e.State() != Building {
		t.Errorf("State = %v, want Building after empty flow", e.State())
	}
}

func TestStart_CompletedSession(t *testing.T) {
	st := store.NewStore(&store.MemorySlot{})
	st.Load()
	st.Complete()
	e := New(Config{Store: st, Sections: smallSections})

	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if e.State() != Completed {
		t.Errorf("State = %v, want Completed", e.State())
	}
}

func TestNext_ValidationBlocks(t *testing.T) {
	e, st := smallEngine(t, nil)
	before := st.State()

	err := e.Next(catalog.SingleValue(""))

	if err == nil {
		t.Fatal("required single choice with no selection must block advance")
	}
	if idx := e.Index(); idx != 0 {
		t.Errorf("Index = %d, want 0", idx)
	}
	after := st.State()
	if len(after.Answers) != len(before.Answers) {
		t.Error("blocked advance recorded an answer")
	}
	if after.CurrentQuestionIndex != before.CurrentQuestionIndex {
		t.Error("blocked advance moved the persisted position")
	}
}

func TestNext_AdvancesAndPersists(t *testing.T) {
	e, st := smallEngine(t, nil)

	if err := e.Next(catalog.SingleValue("a")); err != nil {
		t.Fatalf("Next: %v", err)
	}

	if e.Index() != 1 {
		t.Errorf("Index = %d, want 1", e.Index())
	}
	r := st.State()
	if r.CurrentQuestionIndex != 1 || r.CurrentSection != "one" {
		t.Errorf("persisted position = %q/%d, want one/1", r.CurrentSection, r.CurrentQuestionIndex)
	}
	if _, ok := st.GetAnswer("q1"); !ok {
		t.Error("answer for q1 not recorded")
	}
}

func TestBack_DisabledAtStart(t *testing.T) {
	e, _ := smallEngine(t, nil)

	if e.CanGoBack() {
		t.Error("CanGoBack at index 0")
	}
	e.Back()
	if e.Index() != 0 {
		t.Errorf("Back at index 0 moved to %d", e.Index())
	}
}

func TestBack_Retreats(t *testing.T) {
	e, st := smallEngine(t, nil)
	if err := e.Next(catalog.SingleValue("a")); err != nil {
		t.Fatal(err)
	}

	e.Back()

	if e.Index() != 0 {
		t.Errorf("Index = %d, want 0", e.Index())
	}
	if st.State().CurrentQuestionIndex != 0 {
		t.Error("retreat not persisted")
	}
}

func TestNext_LastQuestionCompletes(t *testing.T) {
	sub := &fakeSubmitter{}
	e, st := smallEngine(t, sub)
	if err := e.Next(catalog.SingleValue("a")); err != nil {
		t.Fatal(err)
	}

	if err := e.Next(catalog.SingleValue("done")); err != nil {
		t.Fatalf("final Next: %v", err)
	}

	if e.State() != Completed {
		t.Errorf("State = %v, want Completed", e.State())
	}
	r := st.State()
	if !r.Completed {
		t.Error("completed flag not set")
	}
	if r.EndTime == nil {
		t.Error("endTime not set")
	}
	if sub.calls != 1 {
		t.Errorf("submissions = %d, want exactly 1", sub.calls)
	}
	if sub.last.QuizVersion != "1.0" {
		t.Errorf("submitted quizVersion = %q, want 1.0", sub.last.QuizVersion)
	}
}

func TestNext_AnswerExtendsSequencePastLast(t *testing.T) {
	// Answering the (currently) last question can reveal a follow-up; the
	// engine must keep presenting instead of completing.
	sections := []catalog.Section{{
		ID: "one",
		Questions: []catalog.Question{
			{ID: "q1", Kind: catalog.Single, Options: []string{"yes", "no"}},
			{
				ID: "q2", Kind: catalog.Text, Optional: true,
				Condition: &catalog.Condition{QuestionID: "q1", Values: []string{"yes"}},
			},
		},
	}}
	st := store.NewStore(&store.MemorySlot{})
	st.Load()
	e := New(Config{Store: st, Submitter: &fakeSubmitter{}, Sections: sections})
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	if err := e.Next(catalog.SingleValue("yes")); err != nil {
		t.Fatal(err)
	}

	if e.State() != Presenting {
		t.Fatalf("State = %v, want Presenting", e.State())
	}
	cur, _ := e.Current()
	if cur.ID != "q2" {
		t.Errorf("Current = %q, want the revealed q2", cur.ID)
	}
}

func TestNext_B2BBranchOpens(t *testing.T) {
	st := store.NewStore(&store.MemorySlot{})
	st.Load()
	e := New(Config{Store: st, Submitter: &fakeSubmitter{}})
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	baseLen := e.Len()

	if err := e.Next(catalog.SingleValue("E-commerce / Интернет-торговля")); err != nil {
		t.Fatal(err)
	}
	if err := e.Next(catalog.SingleValue("B2B (работаем с другими компаниями)")); err != nil {
		t.Fatal(err)
	}

	if e.Len() != baseLen+3 {
		t.Errorf("Len after B2B answer = %d, want %d", e.Len(), baseLen+3)
	}
}

func TestStart_RestoresFirstUnanswered(t *testing.T) {
	slot := &store.MemorySlot{}
	st := store.NewStore(slot)
	st.Load()
	first := New(Config{Store: st, Sections: smallSections})
	if err := first.Start(); err != nil {
		t.Fatal(err)
	}
	if err := first.Next(catalog.SingleValue("a")); err != nil {
		t.Fatal(err)
	}

	// Reload as if the process restarted.
	st2 := store.NewStore(slot)
	st2.Load()
	second := New(Config{Store: st2, Sections: smallSections})
	if err := second.Start(); err != nil {
		t.Fatal(err)
	}

	cur, _ := second.Current()
	if cur.ID != "q2" {
		t.Errorf("resumed at %q, want first unanswered q2", cur.ID)
	}
}

func TestReconcile(t *testing.T) {
	q := func(id string) flow.ActiveQuestion {
		return flow.ActiveQuestion{Question: catalog.Question{ID: id}}
	}
	oldSeq := []flow.ActiveQuestion{q("a"), q("b"), q("c")}

	// Survivor keeps its identity even when its index shifted.
	newSeq := []flow.ActiveQuestion{q("x"), q("b"), q("c")}
	if got := reconcile(oldSeq, 1, newSeq); got != 1 {
		t.Errorf("reconcile survivor = %d, want 1", got)
	}

	// Vanished cursor falls back to the nearest earlier survivor.
	newSeq = []flow.ActiveQuestion{q("a"), q("c")}
	if got := reconcile(oldSeq, 1, newSeq); got != 0 {
		t.Errorf("reconcile vanished = %d, want 0 (a)", got)
	}

	// Nothing survives: fall back to the start.
	newSeq = []flow.ActiveQuestion{q("x"), q("y")}
	if got := reconcile(oldSeq, 2, newSeq); got != 0 {
		t.Errorf("reconcile no survivors = %d, want 0", got)
	}
}
