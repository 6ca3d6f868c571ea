package service

import (
	"context"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/fallback"
	"examadmin/internal/model"
)

// DashboardView is the dashboard page as rendered.
type DashboardView struct {
	State          controller.State     `json:"state"`
	Stats          model.DashboardStats `json:"stats"`
	RecentActivity []model.Activity     `json:"recentActivity"`
	Banner         string               `json:"banner,omitempty"`
	Demo           bool                 `json:"demo"`
}

// DashboardService serves the headline statistics.
type DashboardService interface {
	View(ctx context.Context, refresh bool) DashboardView
}

type dashboardService struct {
	stats *controller.Resource[model.DashboardStats]
}

// NewDashboardService creates the dashboard page service. A failed stats
// fetch is replaced with demo counters.
func NewDashboardService(api Backend) DashboardService {
	fetch := func(ctx context.Context) (model.DashboardStats, error) {
		raw, err := api.Get(ctx, "/admin/dashboard")
		if err != nil {
			return model.DashboardStats{}, err
		}
		return apiclient.UnwrapObject[model.DashboardStats](raw, "stats")
	}
	return &dashboardService{
		stats: controller.NewResource("dashboard", fetch, controller.WithFallback(fallback.DashboardStats)),
	}
}

// View loads the stats on first use or when refresh is set.
func (s *dashboardService) View(ctx context.Context, refresh bool) DashboardView {
	snap := load(ctx, s.stats, refresh)
	return DashboardView{
		State:          snap.State,
		Stats:          snap.Value,
		RecentActivity: fallback.RecentActivity(),
		Banner:         snap.Banner,
		Demo:           snap.Demo,
	}
}

func load[V any](ctx context.Context, res *controller.Resource[V], refresh bool) controller.Snapshot[V] {
	if refresh {
		return res.Load(ctx)
	}
	return res.LoadIfIdle(ctx)
}
