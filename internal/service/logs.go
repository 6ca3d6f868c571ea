package service

import (
	"context"
	"fmt"
	"sync"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/model"
)

// EmptyLogs is shown when the loaded page has no matching entries.
const EmptyLogs = "No log entries yet"

// DefaultLogsPageSize is used when no page size is configured.
const DefaultLogsPageSize = 20

// LogRow is an audit entry with its display attributes.
type LogRow struct {
	model.AuditLog
	Kind       model.ActionKind `json:"kind"`
	Time       string           `json:"time"`
	HasChanges bool             `json:"hasChanges"`
}

// LogCounts are per-verb counts over the loaded page.
type LogCounts struct {
	Create int `json:"create"`
	Update int `json:"update"`
	Delete int `json:"delete"`
	Login  int `json:"login"`
}

// LogQuery selects a page and filters it.
type LogQuery struct {
	Page    int
	Search  string
	Refresh bool
}

// LogsView is the logs page as rendered.
type LogsView struct {
	State      controller.State `json:"state"`
	Search     string           `json:"search"`
	Logs       []LogRow         `json:"logs"`
	Counts     LogCounts        `json:"counts"`
	Pagination model.Pagination `json:"pagination"`
	HasPrev    bool             `json:"hasPrev"`
	HasNext    bool             `json:"hasNext"`
	Empty      string           `json:"empty,omitempty"`
}

// LogService pages through the audit log.
type LogService interface {
	View(ctx context.Context, q LogQuery) LogsView
}

type logService struct {
	mu    sync.Mutex
	page  int
	limit int
	logs  *controller.Resource[model.LogPage]
}

// NewLogService creates the logs page service. Failed fetches show an empty
// page; there is no demo data for logs.
func NewLogService(api Backend, pageSize int) LogService {
	if pageSize <= 0 {
		pageSize = DefaultLogsPageSize
	}
	s := &logService{page: 1, limit: pageSize}
	fetch := func(ctx context.Context) (model.LogPage, error) {
		page, limit := s.current()
		raw, err := api.Get(ctx, fmt.Sprintf("/admin/logs?page=%d&limit=%d", page, limit))
		if err != nil {
			return model.LogPage{}, err
		}
		// the page body sits under data, or is the body itself
		out, err := apiclient.UnwrapObject[model.LogPage](raw, "data")
		if err != nil {
			return model.LogPage{}, err
		}
		if out.Logs == nil {
			out.Logs = []model.AuditLog{}
		}
		if out.Pagination.Limit == 0 {
			out.Pagination.Page = page
			out.Pagination.Limit = limit
		}
		out.Pagination = out.Pagination.Normalize()
		return out, nil
	}
	empty := model.LogPage{
		Logs:       []model.AuditLog{},
		Pagination: model.Pagination{Page: 1, Limit: pageSize},
	}
	s.logs = controller.NewResource("logs", fetch, controller.WithEmpty(empty))
	return s
}

func (s *logService) current() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page, s.limit
}

// turnTo records the requested page and reports whether it differs from the
// one last requested.
func (s *logService) turnTo(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	if pages := s.logs.Snapshot().Value.Pagination.Pages; pages > 0 && page > pages {
		page = pages
	}
	if page == s.page {
		return false
	}
	s.page = page
	return true
}

func logFields(l model.AuditLog) []string {
	return []string{l.Action, l.EntityName()}
}

// View fetches when the page changes, then filters the loaded entries.
func (s *logService) View(ctx context.Context, q LogQuery) LogsView {
	refresh := q.Refresh
	if q.Page > 0 && s.turnTo(q.Page) {
		refresh = true
	}
	snap := load(ctx, s.logs, refresh)

	entries := snap.Value.Logs
	matched := controller.Filter(entries, controller.MatchText(q.Search, logFields))
	rows := make([]LogRow, 0, len(matched))
	for _, entry := range matched {
		rows = append(rows, LogRow{
			AuditLog:   entry,
			Kind:       entry.Kind(),
			Time:       model.FormatDateTime(entry.CreatedAt),
			HasChanges: len(entry.Changes) > 0 && string(entry.Changes) != "null",
		})
	}

	pagination := snap.Value.Pagination
	view := LogsView{
		State:      snap.State,
		Search:     q.Search,
		Logs:       rows,
		Counts:     countKinds(entries),
		Pagination: pagination,
		HasPrev:    pagination.HasPrev(),
		HasNext:    pagination.HasNext(),
	}
	if len(rows) == 0 {
		view.Empty = EmptyLogs
	}
	return view
}

func countKinds(entries []model.AuditLog) LogCounts {
	var counts LogCounts
	for _, entry := range entries {
		switch entry.Kind() {
		case model.ActionCreate:
			counts.Create++
		case model.ActionUpdate:
			counts.Update++
		case model.ActionDelete:
			counts.Delete++
		case model.ActionLogin:
			counts.Login++
		}
	}
	return counts
}
