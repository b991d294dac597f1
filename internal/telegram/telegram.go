// Package telegram captures the identity a Telegram mini-app host supplies.
// The core never reads ambient state itself: the session controller queries
// an injected Detector once at startup and attaches whatever it reports.
package telegram

import (
	"encoding/json"
	"fmt"
	"os"
)

// User is the identity record as the host supplies it.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// UserInfo is the stored form: the host record plus a derived profile link.
type UserInfo struct {
	User
	UserLink string `json:"user_link,omitempty"`
}

// DeriveLink returns @username when a username is present, else a synthetic
// per-id profile reference.
func DeriveLink(u User) string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return fmt.Sprintf("tg://user?id=%d", u.ID)
}

// Info builds the stored identity record from a host-supplied user.
func Info(u User) UserInfo {
	return UserInfo{User: u, UserLink: DeriveLink(u)}
}

// Detector reports the host-supplied identity, if the environment has one.
type Detector interface {
	Detect() (UserInfo, bool)
}

// EnvVar is where a mini-app wrapper places the init-data user object.
const EnvVar = "TG_INIT_USER"

// EnvDetector reads the identity from the process environment. Outside a
// Telegram host the variable is absent and Detect reports nothing.
type EnvDetector struct{}

func (EnvDetector) Detect() (UserInfo, bool) {
	raw := os.Getenv(EnvVar)
	if raw == "" {
		return UserInfo{}, false
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == 0 {
		return UserInfo{}, false
	}
	return Info(u), true
}
