// Package flow derives the active question sequence from the catalog and the
// answers recorded so far. The derivation runs from scratch after every
// answer change; it is pure, so identical inputs always produce an identical
// sequence and the navigator can reconcile its cursor against the output.
package flow

import "github.com/nasigu/diagquiz/internal/catalog"

// ActiveQuestion is a catalog question annotated with its owning section.
type ActiveQuestion struct {
	catalog.Question
	SectionID    string
	SectionTitle string
}

// Build linearizes the currently visible questions. A section whose condition
// is unsatisfied is skipped wholesale, branch injections included. Branch A
// (b2b) then branch B (b2c) questions are appended after the injection
// section's own questions, each gated only by its own condition.
func Build(sections []catalog.Section, b2b, b2c []catalog.Question, lookup catalog.Lookup) []ActiveQuestion {
	var out []ActiveQuestion

	satisfied := func(c *catalog.Condition) bool {
		if c == nil {
			return true
		}
		v, ok := lookup(c.QuestionID)
		return c.SatisfiedBy(v, ok)
	}

	for _, sec := range sections {
		if !satisfied(sec.Condition) {
			continue
		}
		for _, q := range sec.Questions {
			if !satisfied(q.Condition) {
				continue
			}
			out = append(out, ActiveQuestion{Question: q, SectionID: sec.ID, SectionTitle: sec.Title})
		}
		if sec.ID == catalog.BranchSectionID {
			for _, q := range b2b {
				if satisfied(q.Condition) {
					out = append(out, ActiveQuestion{Question: q, SectionID: sec.ID, SectionTitle: sec.Title})
				}
			}
			for _, q := range b2c {
				if satisfied(q.Condition) {
					out = append(out, ActiveQuestion{Question: q, SectionID: sec.ID, SectionTitle: sec.Title})
				}
			}
		}
	}
	return out
}

// IndexOf returns the position of a question id in the sequence, or -1.
func IndexOf(seq []ActiveQuestion, questionID string) int {
	for i, q := range seq {
		if q.ID == questionID {
			return i
		}
	}
	return -1
}
