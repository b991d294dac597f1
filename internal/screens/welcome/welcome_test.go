package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nasigu/diagquiz/internal/screen"
)

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestPhaseReveal(t *testing.T) {
	w := New(false)

	view := w.View(100, 30)
	if strings.Contains(view, "Добро пожаловать") {
		t.Error("greeting should not be visible at start")
	}

	// 12 ticks puts us past the second phase boundary.
	sendTicks(w, 12)
	view = w.View(100, 30)
	if !strings.Contains(view, "Добро пожаловать") {
		t.Error("greeting should be visible after the reveal")
	}
	if !strings.Contains(view, "Быстро") {
		t.Error("feature cards should be visible after the reveal")
	}
}

func TestEnterEmitsStart(t *testing.T) {
	w := New(false)
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}
	if _, ok := cmd().(screen.StartQuizMsg); !ok {
		t.Fatalf("expected StartQuizMsg, got %T", cmd())
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	w := New(false)
	sendTicks(w, 25)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd != nil {
		t.Error("non-enter keypress should not produce a command")
	}
}

func TestStartEmittedOnce(t *testing.T) {
	w := New(false)
	sendTicks(w, 25)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("first enter should produce a command")
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second enter should not produce another command")
	}
}

func TestResumeWording(t *testing.T) {
	w := New(true)
	sendTicks(w, 25)

	view := w.View(100, 30)
	if !strings.Contains(view, "продолжить") {
		t.Error("resume welcome should offer to continue")
	}

	hints := w.KeyHints()
	if len(hints) == 0 || hints[0].Description != "Продолжить" {
		t.Errorf("resume key hint = %v, want Продолжить", hints)
	}
}

func TestCompactBanner(t *testing.T) {
	wide := RenderBanner(120)
	narrow := RenderBanner(60)
	if wide == narrow {
		t.Error("narrow terminals should get the compact banner")
	}
	if !strings.Contains(narrow, "S I N G U L A R I T Y") {
		t.Errorf("compact banner = %q", narrow)
	}
}

func TestTitleEmpty(t *testing.T) {
	if got := New(false).Title(); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
}
