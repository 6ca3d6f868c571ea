// Package fallback holds the fixed demo datasets shown when the backend
// cannot be reached. Only the Dashboard and Users pages use them.
package fallback

import (
	"time"

	"examadmin/internal/model"
)

// DashboardStats returns the demo headline counters.
func DashboardStats() model.DashboardStats {
	return model.DashboardStats{
		TotalUsers:     1247,
		PremiumUsers:   89,
		TotalQuestions: 572,
		TotalTests:     3421,
		ActiveUsers:    156,
		NewUsers:       42,
	}
}

// Users returns the five demo users. lastActive is stamped with the current
// time on every call so the list looks alive.
func Users() []model.User {
	now := time.Now().UTC().Format(time.RFC3339)
	return []model.User{
		{ID: "1", Name: "Ahmet Yılmaz", Email: "ahmet@example.com", Role: model.RoleUser, IsPremium: false, TotalQuestions: 245, CurrentStreak: 5, LastActive: now, CreatedAt: "2025-12-15"},
		{ID: "2", Name: "Fatma Kaya", Email: "fatma@example.com", Role: model.RolePremium, IsPremium: true, TotalQuestions: 512, CurrentStreak: 12, LastActive: now, CreatedAt: "2025-11-20"},
		{ID: "3", Name: "Mehmet Demir", Email: "mehmet@example.com", Role: model.RoleUser, IsPremium: false, TotalQuestions: 89, CurrentStreak: 2, LastActive: now, CreatedAt: "2026-01-05"},
		{ID: "4", Name: "Ayşe Öztürk", Email: "ayse@example.com", Role: model.RoleAdmin, IsPremium: true, TotalQuestions: 1024, CurrentStreak: 30, LastActive: now, CreatedAt: "2025-10-01"},
		{ID: "5", Name: "Ali Çelik", Email: "ali@example.com", Role: model.RoleUser, IsPremium: false, TotalQuestions: 156, CurrentStreak: 0, LastActive: now, CreatedAt: "2026-01-08"},
	}
}

// RecentActivity is the static feed shown under the dashboard counters.
func RecentActivity() []model.Activity {
	return []model.Activity{
		{Icon: "user", Text: "New user registered: Ahmet Y.", Time: "2 minutes ago"},
		{Icon: "check", Text: "Test completed: 45/50 correct", Time: "5 minutes ago"},
		{Icon: "crown", Text: "Premium membership purchased", Time: "12 minutes ago"},
		{Icon: "phone", Text: "iOS app updated", Time: "1 hour ago"},
	}
}
