package model

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Role is the account role assigned by the backend.
type Role string

const (
	RoleUser    Role = "USER"
	RoleAdmin   Role = "ADMIN"
	RolePremium Role = "PREMIUM"
)

// User is a registered app user as returned by GET /admin/users.
// Timestamps are kept as the backend sent them; see FormatDate.
type User struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           Role    `json:"role"`
	IsPremium      bool    `json:"isPremium"`
	PremiumUntil   *string `json:"premiumUntil,omitempty"`
	TotalQuestions int     `json:"totalQuestions"`
	CurrentStreak  int     `json:"currentStreak"`
	LastActive     string  `json:"lastActive"`
	CreatedAt      string  `json:"createdAt"`
}

// Badge is the role label shown next to the user.
func (u User) Badge() string {
	switch {
	case u.Role == RoleAdmin:
		return "Admin"
	case u.IsPremium:
		return "Premium"
	default:
		return "User"
	}
}

// DisplayName falls back to a placeholder for accounts without a name.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return "Unnamed"
	}
	return u.Name
}

// Initial is the avatar letter.
func (u User) Initial() string {
	r, _ := utf8.DecodeRuneInString(u.Name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// FormatDate renders a backend timestamp as "2 Jan 2006", returning the input
// unchanged when it cannot be parsed.
func FormatDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2 Jan 2006")
		}
	}
	return raw
}

// FormatDateTime renders a backend timestamp as "02.01.2006 15:04".
func FormatDateTime(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02.01.2006 15:04")
		}
	}
	return raw
}
