package model

// NotificationType is the push notification kind.
type NotificationType string

const (
	NotificationDailyReminder     NotificationType = "DAILY_REMINDER"
	NotificationStreakAchievement NotificationType = "STREAK_ACHIEVEMENT"
	NotificationBadgeEarned       NotificationType = "BADGE_EARNED"
	NotificationExamReminder      NotificationType = "EXAM_REMINDER"
	NotificationPremiumExpiring   NotificationType = "PREMIUM_EXPIRING"
)

var notificationLabels = map[NotificationType]string{
	NotificationDailyReminder:     "Daily Reminder",
	NotificationStreakAchievement: "Streak Achievement",
	NotificationBadgeEarned:       "Badge Earned",
	NotificationExamReminder:      "Exam Reminder",
	NotificationPremiumExpiring:   "Premium Expiring",
}

// Label returns the display label; unknown kinds get a generic one.
func (t NotificationType) Label() string {
	if label, ok := notificationLabels[t]; ok {
		return label
	}
	return "Notification"
}

// Known reports whether t is one of the five supported kinds.
func (t NotificationType) Known() bool {
	_, ok := notificationLabels[t]
	return ok
}

// Notification is a push notification managed under /admin/notifications.
// A nil UserID means broadcast to all users.
type Notification struct {
	ID           string           `json:"id"`
	UserID       *string          `json:"userId"`
	Type         NotificationType `json:"type"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	IsRead       bool             `json:"isRead"`
	IsSent       bool             `json:"isSent"`
	SentAt       *string          `json:"sentAt"`
	ScheduledFor *string          `json:"scheduledFor"`
	CreatedAt    string           `json:"createdAt"`
}

// Broadcast reports whether the notification targets every user.
func (n Notification) Broadcast() bool {
	return n.UserID == nil || *n.UserID == ""
}

// CanSend is true only while the notification is pending.
func (n Notification) CanSend() bool {
	return !n.IsSent
}

// NotificationStats are the counters from GET /admin/notifications/stats.
type NotificationStats struct {
	Total     int `json:"total"`
	Sent      int `json:"sent"`
	Pending   int `json:"pending"`
	Scheduled int `json:"scheduled"`
}
