package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_SuccessRate(t *testing.T) {
	tests := []struct {
		name     string
		answered int
		correct  int
		expected int
	}{
		{"unanswered", 0, 0, 0},
		{"all correct", 10, 10, 100},
		{"rounds down", 3, 1, 33},
		{"rounds half up", 8, 5, 63},
		{"two thirds", 3, 2, 67},
		{"none correct", 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{TotalAnswered: tt.answered, CorrectCount: tt.correct}
			assert.Equal(t, tt.expected, q.SuccessRate())
		})
	}
}

func TestClassifyAction(t *testing.T) {
	tests := map[string]ActionKind{
		"DELETE_QUESTION":   ActionDelete,
		"CREATE_USER":       ActionCreate,
		"UPDATE_SETTINGS":   ActionUpdate,
		"ADMIN_LOGIN":       ActionLogin,
		"LOGOUT":            ActionLogout,
		"EXPORT_REPORT":     ActionOther,
		"CREATE_OR_DELETE":  ActionDelete,
		"create_lowercased": ActionOther,
	}

	for action, expected := range tests {
		t.Run(action, func(t *testing.T) {
			assert.Equal(t, expected, ClassifyAction(action))
		})
	}
}

func TestPagination(t *testing.T) {
	p := Pagination{Page: 1, Limit: 20, Total: 45}.Normalize()
	assert.Equal(t, 3, p.Pages)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())

	server := Pagination{Page: 2, Limit: 20, Total: 45, Pages: 5}.Normalize()
	assert.Equal(t, 5, server.Pages, "server pages are kept as-is")

	empty := Pagination{Limit: 20}.Normalize()
	assert.Equal(t, 1, empty.Page)
	assert.False(t, empty.HasPrev())
	assert.False(t, empty.HasNext())
}

func TestSettings_Clamped(t *testing.T) {
	s := DefaultSettings()
	s.TotalActiveQuestions = 5
	s.QuickTestQuestionCount = 500
	s.ExamLimits.ResetHour = 30
	s.ExamLimits.FreeExamsPerDay = -1

	clamped := s.Clamped()

	assert.Equal(t, 100, clamped.TotalActiveQuestions)
	assert.Equal(t, 50, clamped.QuickTestQuestionCount)
	assert.Equal(t, 23, clamped.ExamLimits.ResetHour)
	assert.Equal(t, 0, clamped.ExamLimits.FreeExamsPerDay)
	assert.Equal(t, 50, clamped.ClassicExamQuestionCount)
	assert.Equal(t, 5, s.TotalActiveQuestions, "original is not modified")
}

func TestDefaultSettings_WithinBounds(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, s, s.Clamped())
}

func TestNotification(t *testing.T) {
	userID := "u-1"
	n := Notification{Type: "SOMETHING_NEW", UserID: &userID}
	assert.Equal(t, "Notification", n.Type.Label())
	assert.False(t, n.Type.Known())
	assert.False(t, n.Broadcast())
	assert.True(t, n.CanSend())

	n.IsSent = true
	assert.False(t, n.CanSend())

	broadcast := Notification{Type: NotificationBadgeEarned}
	assert.True(t, broadcast.Broadcast())
	assert.Equal(t, "Badge Earned", broadcast.Type.Label())
}

func TestUser_Display(t *testing.T) {
	assert.Equal(t, "Admin", User{Role: RoleAdmin, IsPremium: true}.Badge())
	assert.Equal(t, "Premium", User{Role: RolePremium, IsPremium: true}.Badge())
	assert.Equal(t, "User", User{Role: RoleUser}.Badge())
	assert.Equal(t, "Unnamed", User{}.DisplayName())
	assert.Equal(t, "?", User{}.Initial())
	assert.Equal(t, "Ö", User{Name: "özge"}.Initial())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 Dec 2025", FormatDate("2025-12-15"))
	assert.Equal(t, "8 Jan 2026", FormatDate("2026-01-08T10:30:00Z"))
	assert.Equal(t, "yesterday", FormatDate("yesterday"))
	assert.Equal(t, "08.01.2026 10:30", FormatDateTime("2026-01-08T10:30:00Z"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 30))
	assert.Equal(t, "abc...", Truncate("abcdef", 3))
	assert.Equal(t, "çğı...", Truncate("çğıöü", 3))
}
