package telegram

import "testing"

func TestDeriveLink_WithUsername(t *testing.T) {
	got := DeriveLink(User{ID: 42, Username: "ivan"})
	if got != "@ivan" {
		t.Errorf("DeriveLink = %q, want @ivan", got)
	}
}

func TestDeriveLink_WithoutUsername(t *testing.T) {
	got := DeriveLink(User{ID: 42})
	if got != "tg://user?id=42" {
		t.Errorf("DeriveLink = %q, want tg://user?id=42", got)
	}
}

func TestEnvDetector_Absent(t *testing.T) {
	t.Setenv(EnvVar, "")
	if _, ok := (EnvDetector{}).Detect(); ok {
		t.Error("Detect reported an identity with no env var set")
	}
}

func TestEnvDetector_Present(t *testing.T) {
	t.Setenv(EnvVar, `{"id":7,"first_name":"Анна","username":"anna_s","language_code":"ru"}`)

	info, ok := (EnvDetector{}).Detect()
	if !ok {
		t.Fatal("Detect() ok = false, want true")
	}
	if info.FirstName != "Анна" || info.UserLink != "@anna_s" {
		t.Errorf("Detect() = %+v, want first_name Анна, user_link @anna_s", info)
	}
}

func TestEnvDetector_Malformed(t *testing.T) {
	t.Setenv(EnvVar, `{not json`)
	if _, ok := (EnvDetector{}).Detect(); ok {
		t.Error("Detect accepted malformed JSON")
	}
}
