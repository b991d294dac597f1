package catalog

import "fmt"

// Verify checks the catalog authoring preconditions: unique question ids,
// options present exactly on choice kinds, and every condition targeting a
// question that appears strictly earlier in the nominal traversal order
// (sections in order, section questions, then branch A, then branch B at the
// injection point). The build never checks these at runtime; a test does.
func Verify(sections []Section, b2b, b2c []Question) error {
	seen := make(map[string]bool)

	check := func(q Question) error {
		if q.ID == "" {
			return fmt.Errorf("question with empty id (title %q)", q.Title)
		}
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.Kind.Choice() && len(q.Options) == 0 {
			return fmt.Errorf("question %q: choice kind without options", q.ID)
		}
		if !q.Kind.Choice() && len(q.Options) > 0 {
			return fmt.Errorf("question %q: text kind with options", q.ID)
		}
		if q.Condition != nil && !seen[q.Condition.QuestionID] {
			return fmt.Errorf("question %q: condition targets %q which does not appear earlier", q.ID, q.Condition.QuestionID)
		}
		seen[q.ID] = true
		return nil
	}

	for _, sec := range sections {
		if sec.Condition != nil && !seen[sec.Condition.QuestionID] {
			return fmt.Errorf("section %q: condition targets %q which does not appear earlier", sec.ID, sec.Condition.QuestionID)
		}
		for _, q := range sec.Questions {
			if err := check(q); err != nil {
				return fmt.Errorf("section %q: %w", sec.ID, err)
			}
		}
		if sec.ID == BranchSectionID {
			for _, q := range b2b {
				if err := check(q); err != nil {
					return fmt.Errorf("branch B2B: %w", err)
				}
			}
			for _, q := range b2c {
				if err := check(q); err != nil {
					return fmt.Errorf("branch B2C: %w", err)
				}
			}
		}
	}
	return nil
}
