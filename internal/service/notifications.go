package service

import (
	"context"
	"strings"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/model"
)

// EmptyNotifications is shown when there are no notifications.
const EmptyNotifications = "No notifications yet"

// Row actions offered per notification.
const (
	ActionSend   = "send"
	ActionRemove = "delete"
)

// NotificationRow is a notification with its display attributes and the
// actions currently allowed on it.
type NotificationRow struct {
	model.Notification
	TypeLabel string   `json:"typeLabel"`
	Target    string   `json:"target"`
	Status    string   `json:"status"`
	Created   string   `json:"created"`
	Actions   []string `json:"actions"`
}

// TypeOption is an entry of the type selector.
type TypeOption struct {
	Value model.NotificationType `json:"value"`
	Label string                 `json:"label"`
}

// NotificationsView is the notifications page as rendered.
type NotificationsView struct {
	State         controller.State        `json:"state"`
	Notifications []NotificationRow       `json:"notifications"`
	Stats         model.NotificationStats `json:"stats"`
	Types         []TypeOption            `json:"types"`
	Empty         string                  `json:"empty,omitempty"`
}

// NotificationForm creates a notification. With SendToAll set the
// notification is a broadcast and UserID is ignored.
type NotificationForm struct {
	Title     string                 `json:"title" validate:"required"`
	Message   string                 `json:"message" validate:"required"`
	Type      model.NotificationType `json:"type" validate:"required,oneof=DAILY_REMINDER STREAK_ACHIEVEMENT BADGE_EARNED EXAM_REMINDER PREMIUM_EXPIRING"`
	SendToAll bool                   `json:"sendToAll"`
	UserID    string                 `json:"userId" validate:"required_if=SendToAll false"`
}

// NewNotificationForm returns the blank form: a daily reminder to everyone.
func NewNotificationForm() NotificationForm {
	return NotificationForm{Type: model.NotificationDailyReminder, SendToAll: true}
}

type notificationPayload struct {
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Type    model.NotificationType `json:"type"`
	UserID  *string                `json:"userId"`
}

func (f NotificationForm) payload() notificationPayload {
	p := notificationPayload{Title: f.Title, Message: f.Message, Type: f.Type}
	if !f.SendToAll {
		userID := f.UserID
		p.UserID = &userID
	}
	return p
}

// NotificationService manages push notifications.
type NotificationService interface {
	View(ctx context.Context, refresh bool) NotificationsView
	Create(ctx context.Context, form NotificationForm) (controller.Notice, error)
	Send(ctx context.Context, id string) (controller.Notice, error)
	Delete(ctx context.Context, id string, confirm controller.Confirmer) (controller.Notice, error)
}

type notificationService struct {
	api           Backend
	notifications *controller.Resource[[]model.Notification]
	stats         *controller.Resource[model.NotificationStats]
}

// NewNotificationService creates the notifications page service. The list has
// no demo fallback and the stats stay at zero when they cannot be loaded.
func NewNotificationService(api Backend) NotificationService {
	list := func(ctx context.Context) ([]model.Notification, error) {
		raw, err := api.Get(ctx, "/admin/notifications")
		if err != nil {
			return nil, err
		}
		return apiclient.Unwrap[model.Notification](raw, "notifications")
	}
	stats := func(ctx context.Context) (model.NotificationStats, error) {
		raw, err := api.Get(ctx, "/admin/notifications/stats")
		if err != nil {
			return model.NotificationStats{}, err
		}
		return apiclient.UnwrapObject[model.NotificationStats](raw, "stats")
	}
	return &notificationService{
		api:           api,
		notifications: controller.NewResource("notifications", list, controller.WithEmpty([]model.Notification{})),
		stats:         controller.NewResource("notification stats", stats),
	}
}

// View returns the list with the counters.
func (s *notificationService) View(ctx context.Context, refresh bool) NotificationsView {
	snap := load(ctx, s.notifications, refresh)
	stats := load(ctx, s.stats, refresh)

	rows := make([]NotificationRow, 0, len(snap.Value))
	for _, n := range snap.Value {
		rows = append(rows, toNotificationRow(n))
	}

	view := NotificationsView{
		State:         snap.State,
		Notifications: rows,
		Stats:         stats.Value,
		Types:         typeOptions(),
	}
	if len(rows) == 0 {
		view.Empty = EmptyNotifications
	}
	return view
}

func toNotificationRow(n model.Notification) NotificationRow {
	row := NotificationRow{
		Notification: n,
		TypeLabel:    n.Type.Label(),
		Target:       "All users",
		Status:       "Pending",
		Created:      model.FormatDateTime(n.CreatedAt),
	}
	if !n.Broadcast() {
		row.Target = "User " + *n.UserID
	}
	if n.IsSent {
		row.Status = "Sent"
	}
	if n.CanSend() {
		row.Actions = append(row.Actions, ActionSend)
	}
	row.Actions = append(row.Actions, ActionRemove)
	return row
}

func typeOptions() []TypeOption {
	kinds := []model.NotificationType{
		model.NotificationDailyReminder,
		model.NotificationStreakAchievement,
		model.NotificationBadgeEarned,
		model.NotificationExamReminder,
		model.NotificationPremiumExpiring,
	}
	out := make([]TypeOption, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, TypeOption{Value: k, Label: k.Label()})
	}
	return out
}

// refetch resyncs both the list and the counters after a mutation.
func (s *notificationService) refetch(ctx context.Context) error {
	s.notifications.Load(ctx)
	s.stats.Load(ctx)
	return nil
}

// Create posts a new pending notification.
func (s *notificationService) Create(ctx context.Context, form NotificationForm) (controller.Notice, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Message = strings.TrimSpace(form.Message)
	form.UserID = strings.TrimSpace(form.UserID)
	return controller.Run(ctx, controller.Mutation{
		Name:     "create notification",
		Validate: func() error { return validateForm(form) },
		Call: func(ctx context.Context) error {
			_, err := s.api.Post(ctx, "/admin/notifications", form.payload())
			return err
		},
		Refetch: s.refetch,
		Success: "Notification created.",
		Failure: "Could not create notification",
	})
}

// Send delivers a pending notification.
func (s *notificationService) Send(ctx context.Context, id string) (controller.Notice, error) {
	return controller.Run(ctx, controller.Mutation{
		Name: "send notification " + id,
		Call: func(ctx context.Context) error {
			_, err := s.api.Post(ctx, "/admin/notifications/"+id+"/send", nil)
			return err
		},
		Refetch: s.refetch,
		Success: "Notification sent!",
		Failure: "Could not send notification",
	})
}

// Delete removes a notification after confirmation.
func (s *notificationService) Delete(ctx context.Context, id string, confirm controller.Confirmer) (controller.Notice, error) {
	return controller.Run(ctx, controller.Mutation{
		Name:    "delete notification " + id,
		Confirm: required(confirm),
		Prompt:  "Are you sure you want to delete this notification?",
		Call: func(ctx context.Context) error {
			_, err := s.api.Delete(ctx, "/admin/notifications/"+id)
			return err
		},
		Refetch: s.refetch,
		Success: "Notification deleted.",
		Failure: "Could not delete notification",
	})
}
