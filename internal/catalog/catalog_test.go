package catalog

import (
	"encoding/json"
	"testing"
)

func TestVerify_ShippedCatalog(t *testing.T) {
	if err := Verify(Sections, B2B, B2C); err != nil {
		t.Fatalf("Verify() = %v, want nil", err)
	}
}

func TestVerify_DuplicateID(t *testing.T) {
	sections := []Section{{
		ID: "s1",
		Questions: []Question{
			{ID: "q1", Kind: Text},
			{ID: "q1", Kind: Text},
		},
	}}

	if err := Verify(sections, nil, nil); err == nil {
		t.Error("expected error for duplicate question id")
	}
}

func TestVerify_ChoiceWithoutOptions(t *testing.T) {
	sections := []Section{{
		ID:        "s1",
		Questions: []Question{{ID: "q1", Kind: Single}},
	}}

	if err := Verify(sections, nil, nil); err == nil {
		t.Error("expected error for choice question without options")
	}
}

func TestVerify_ForwardCondition(t *testing.T) {
	sections := []Section{{
		ID: "s1",
		Questions: []Question{
			{ID: "q1", Kind: Text, Condition: &Condition{QuestionID: "q2", Values: []string{"x"}}},
			{ID: "q2", Kind: Text},
		},
	}}

	if err := Verify(sections, nil, nil); err == nil {
		t.Error("expected error for condition targeting a later question")
	}
}

func TestCondition_Unanswered(t *testing.T) {
	c := Condition{QuestionID: "q", Values: []string{"a"}}

	if c.SatisfiedBy(Value{}, false) {
		t.Error("unanswered target must not satisfy a condition")
	}
}

func TestCondition_SingleMembership(t *testing.T) {
	c := Condition{QuestionID: "q", Values: []string{"a", "b"}}

	if !c.SatisfiedBy(SingleValue("b"), true) {
		t.Error("SatisfiedBy(b) = false, want true")
	}
	if c.SatisfiedBy(SingleValue("c"), true) {
		t.Error("SatisfiedBy(c) = true, want false")
	}
}

func TestCondition_MultiIntersection(t *testing.T) {
	c := Condition{QuestionID: "q", Values: []string{"a", "b"}}

	if !c.SatisfiedBy(MultiValue([]string{"x", "b"}), true) {
		t.Error("intersecting multi answer should satisfy")
	}
	if c.SatisfiedBy(MultiValue([]string{"x", "y"}), true) {
		t.Error("disjoint multi answer should not satisfy")
	}
	if c.SatisfiedBy(MultiValue(nil), true) {
		t.Error("empty multi answer should not satisfy")
	}
}

func TestValue_JSONRoundTrip_Single(t *testing.T) {
	data, err := json.Marshal(SingleValue("hello"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"hello"` {
		t.Errorf("Marshal = %s, want %q", data, `"hello"`)
	}

	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.IsMulti() || v.Text != "hello" {
		t.Errorf("round trip = %+v, want single %q", v, "hello")
	}
}

func TestValue_JSONRoundTrip_Multi(t *testing.T) {
	data, err := json.Marshal(MultiValue([]string{"a", "b"}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["a","b"]` {
		t.Errorf("Marshal = %s, want %s", data, `["a","b"]`)
	}

	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !v.IsMulti() || len(v.List) != 2 {
		t.Errorf("round trip = %+v, want multi of 2", v)
	}
}

func TestValue_UnmarshalRejectsObjects(t *testing.T) {
	var v Value
	if err := json.Unmarshal([]byte(`{"a":1}`), &v); err == nil {
		t.Error("expected error for object value")
	}
}

func TestValue_Empty(t *testing.T) {
	if !SingleValue("").Empty() {
		t.Error("empty single value should be Empty")
	}
	if !MultiValue(nil).Empty() {
		t.Error("empty multi value should be Empty")
	}
	if SingleValue("x").Empty() || MultiValue([]string{"x"}).Empty() {
		t.Error("non-empty values should not be Empty")
	}
}
