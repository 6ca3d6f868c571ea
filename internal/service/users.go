package service

import (
	"context"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/fallback"
	"examadmin/internal/model"
)

// EmptyUsers is shown when no user matches.
const EmptyUsers = "No users found"

// UserRow is a user with its display attributes.
type UserRow struct {
	model.User
	DisplayName string `json:"displayName"`
	Initial     string `json:"initial"`
	Badge       string `json:"badge"`
	Joined      string `json:"joined"`
}

// UsersView is the users page as rendered.
type UsersView struct {
	State  controller.State `json:"state"`
	Search string           `json:"search"`
	Users  []UserRow        `json:"users"`
	Count  int              `json:"count"`
	Total  int              `json:"total"`
	Empty  string           `json:"empty,omitempty"`
	Banner string           `json:"banner,omitempty"`
	Demo   bool             `json:"demo"`
}

// UserService lists registered users.
type UserService interface {
	View(ctx context.Context, search string, refresh bool) UsersView
}

type userService struct {
	users *controller.Resource[[]model.User]
}

// NewUserService creates the users page service. A failed fetch shows the
// demo users.
func NewUserService(api Backend) UserService {
	fetch := func(ctx context.Context) ([]model.User, error) {
		raw, err := api.Get(ctx, "/admin/users")
		if err != nil {
			return nil, err
		}
		return apiclient.Unwrap[model.User](raw, "users")
	}
	return &userService{
		users: controller.NewResource("users", fetch,
			controller.WithFallback(fallback.Users),
			controller.WithEmpty([]model.User{}),
		),
	}
}

func userFields(u model.User) []string {
	return []string{u.Name, u.Email}
}

// View filters the loaded users by name or email.
func (s *userService) View(ctx context.Context, search string, refresh bool) UsersView {
	snap := load(ctx, s.users, refresh)
	matched := controller.Filter(snap.Value, controller.MatchText(search, userFields))

	rows := make([]UserRow, 0, len(matched))
	for _, u := range matched {
		rows = append(rows, UserRow{
			User:        u,
			DisplayName: u.DisplayName(),
			Initial:     u.Initial(),
			Badge:       u.Badge(),
			Joined:      model.FormatDate(u.CreatedAt),
		})
	}

	view := UsersView{
		State:  snap.State,
		Search: search,
		Users:  rows,
		Count:  len(rows),
		Total:  len(snap.Value),
		Banner: snap.Banner,
		Demo:   snap.Demo,
	}
	if len(rows) == 0 && snap.State != controller.StateLoading {
		view.Empty = EmptyUsers
	}
	return view
}
