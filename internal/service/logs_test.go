package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"examadmin/internal/controller"
	"examadmin/internal/model"
)

func strPtr(s string) *string { return &s }

// logPages serves 45 entries in pages of the requested size and leaves out
// the page count so the client has to derive it.
func logPages(total int) http.HandlerFunc {
	actions := []string{"CREATE_QUESTION", "UPDATE_SETTINGS", "DELETE_NOTIFICATION", "ADMIN_LOGIN", "EXPORT"}
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		logs := []model.AuditLog{}
		for i := (page - 1) * limit; i < page*limit && i < total; i++ {
			logs = append(logs, model.AuditLog{
				ID:        fmt.Sprintf("log-%d", i),
				Action:    actions[i%len(actions)],
				Entity:    strPtr("Question"),
				CreatedAt: "2026-01-08T10:30:00Z",
			})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"logs":       logs,
				"pagination": map[string]int{"page": page, "limit": limit, "total": total},
			},
		})
	}
}

func TestLogService_Pagination(t *testing.T) {
	fb, api := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /admin/logs": logPages(45),
	})
	svc := NewLogService(api, 20)

	first := svc.View(context.Background(), LogQuery{Page: 1})
	assert.Equal(t, 1, fb.calls("GET /admin/logs?page=1&limit=20"))
	assert.Equal(t, 3, first.Pagination.Pages)
	assert.Equal(t, 45, first.Pagination.Total)
	assert.Len(t, first.Logs, 20)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := svc.View(context.Background(), LogQuery{Page: 3})
	assert.Equal(t, 1, fb.calls("GET /admin/logs?page=3&limit=20"))
	assert.Len(t, last.Logs, 5)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)

	svc.View(context.Background(), LogQuery{Page: 3})
	assert.Equal(t, 1, fb.calls("GET /admin/logs?page=3&limit=20"), "same page is not refetched")

	svc.View(context.Background(), LogQuery{Page: 9})
	assert.Equal(t, 1, fb.calls("GET /admin/logs?page=3&limit=20"), "pages past the end clamp to the last one")
	assert.Equal(t, 0, fb.calls("GET /admin/logs?page=9&limit=20"))
}

func TestLogService_FilterAndCounts(t *testing.T) {
	_, api := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /admin/logs": logPages(10),
	})
	svc := NewLogService(api, 0)

	view := svc.View(context.Background(), LogQuery{})
	assert.Equal(t, DefaultLogsPageSize, view.Pagination.Limit)
	assert.Equal(t, LogCounts{Create: 2, Update: 2, Delete: 2, Login: 2}, view.Counts)
	assert.Equal(t, model.ActionCreate, view.Logs[0].Kind)
	assert.Equal(t, "08.01.2026 10:30", view.Logs[0].Time)

	filtered := svc.View(context.Background(), LogQuery{Search: "settings"})
	assert.Len(t, filtered.Logs, 2)
	assert.Equal(t, view.Counts, filtered.Counts, "counts cover the whole page")

	byEntity := svc.View(context.Background(), LogQuery{Search: "question"})
	assert.Len(t, byEntity.Logs, 10)
}

func TestLogService_BareBodyAndServerPages(t *testing.T) {
	_, api := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /admin/logs": respond(http.StatusOK, map[string]interface{}{
			"logs": []model.AuditLog{{ID: "a", Action: "LOGOUT", Changes: json.RawMessage(`{"field":"x"}`)}},
			"pagination": model.Pagination{Page: 2, Limit: 20, Total: 21, Pages: 2},
		}),
	})
	svc := NewLogService(api, 20)

	view := svc.View(context.Background(), LogQuery{})
	assert.Len(t, view.Logs, 1)
	assert.True(t, view.Logs[0].HasChanges)
	assert.Equal(t, model.ActionLogout, view.Logs[0].Kind)
	assert.Equal(t, 2, view.Pagination.Page)
	assert.True(t, view.HasPrev)
	assert.False(t, view.HasNext)
}

func TestLogService_FailureShowsEmptyState(t *testing.T) {
	svc := NewLogService(unreachable(), 20)

	view := svc.View(context.Background(), LogQuery{})

	assert.Equal(t, controller.StateError, view.State)
	assert.Empty(t, view.Logs)
	assert.Equal(t, EmptyLogs, view.Empty)
	assert.False(t, view.HasPrev)
	assert.False(t, view.HasNext)
}
