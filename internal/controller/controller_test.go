package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "examadmin/internal/errors"
)

type row struct {
	Name     string
	Email    string
	Category string
}

func rowFields(r row) []string { return []string{r.Name, r.Email} }

func TestResource_LoadSuccess(t *testing.T) {
	res := NewResource("rows", func(ctx context.Context) ([]row, error) {
		return []row{{Name: "a"}}, nil
	}, WithEmpty([]row{}))

	assert.Equal(t, StateIdle, res.Snapshot().State)

	snap := res.Load(context.Background())

	assert.Equal(t, StateReady, snap.State)
	assert.Len(t, snap.Value, 1)
	assert.Empty(t, snap.Banner)
	assert.False(t, snap.Demo)
	assert.NoError(t, snap.Err)
}

func TestResource_FailureWithFallback(t *testing.T) {
	res := NewResource("users", func(ctx context.Context) ([]row, error) {
		return nil, errors.New("dial tcp: connection refused")
	}, WithFallback(func() []row { return []row{{Name: "demo"}} }))

	snap := res.Load(context.Background())

	assert.Equal(t, StateReady, snap.State)
	assert.Equal(t, []row{{Name: "demo"}}, snap.Value)
	assert.Equal(t, DemoBanner, snap.Banner)
	assert.True(t, snap.Demo)
	assert.Error(t, snap.Err)
}

func TestResource_FailureWithoutFallback(t *testing.T) {
	calls := 0
	res := NewResource("logs", func(ctx context.Context) ([]row, error) {
		calls++
		if calls == 1 {
			return []row{{Name: "first"}}, nil
		}
		return nil, errors.New("timeout")
	}, WithEmpty([]row{}))

	res.Load(context.Background())
	snap := res.Load(context.Background())

	assert.Equal(t, StateError, snap.State)
	assert.Equal(t, []row{}, snap.Value)
	assert.False(t, snap.Demo)
	assert.Empty(t, snap.Banner)
}

func TestResource_RecoversAfterFallback(t *testing.T) {
	fail := true
	res := NewResource("users", func(ctx context.Context) ([]row, error) {
		if fail {
			return nil, errors.New("down")
		}
		return []row{{Name: "real"}}, nil
	}, WithFallback(func() []row { return []row{{Name: "demo"}} }))

	assert.True(t, res.Load(context.Background()).Demo)
	fail = false
	snap := res.Load(context.Background())
	assert.False(t, snap.Demo)
	assert.Empty(t, snap.Banner)
	assert.Equal(t, "real", snap.Value[0].Name)
}

func TestResource_LoadIfIdle(t *testing.T) {
	calls := 0
	res := NewResource("rows", func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	})

	assert.Equal(t, 1, res.LoadIfIdle(context.Background()).Value)
	assert.Equal(t, 1, res.LoadIfIdle(context.Background()).Value)
	assert.Equal(t, 2, res.Load(context.Background()).Value)
	assert.Equal(t, 2, calls)
}

func TestResource_LoadingStateDuringFetch(t *testing.T) {
	var res *Resource[int]
	var during State
	res = NewResource("rows", func(ctx context.Context) (int, error) {
		during = res.Snapshot().State
		return 1, nil
	})

	res.Load(context.Background())
	assert.Equal(t, StateLoading, during)
}

func TestFilter_Text(t *testing.T) {
	rows := []row{
		{Name: "Ahmet Yılmaz", Email: "ahmet@example.com"},
		{Name: "Fatma Kaya", Email: "fatma@example.com"},
		{Name: "Ali Çelik", Email: "ali@example.com"},
	}

	tests := []struct {
		query    string
		expected int
	}{
		{"", 3},
		{"AHMET", 1},
		{"example.com", 3},
		{"kaya", 1},
		{"al", 1},
		{"nobody", 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Filter(rows, MatchText(tt.query, rowFields))
			assert.Len(t, got, tt.expected)
			for _, r := range got {
				joined := strings.ToLower(r.Name + " " + r.Email)
				assert.Contains(t, joined, strings.ToLower(tt.query))
			}
		})
	}
}

func TestFilter_EmptyQueryReturnsInputUnchanged(t *testing.T) {
	rows := []row{{Name: "b"}, {Name: "a"}}
	assert.Equal(t, rows, Filter(rows, MatchText("", rowFields)))
}

func TestFilter_ComposesWithAnd(t *testing.T) {
	rows := []row{
		{Name: "stop sign", Category: "TRAFFIC_SIGNS"},
		{Name: "stop distance", Category: "TRAFFIC_RULES"},
		{Name: "bandage", Category: "FIRST_AID"},
	}
	category := func(r row) string { return r.Category }

	got := Filter(rows,
		MatchText("stop", func(r row) []string { return []string{r.Name} }),
		MatchExact("TRAFFIC_RULES", category),
	)
	assert.Equal(t, []row{{Name: "stop distance", Category: "TRAFFIC_RULES"}}, got)

	all := Filter(rows, MatchExact("", category))
	assert.Len(t, all, 3)
}

func TestCount(t *testing.T) {
	rows := []row{{Name: "a"}, {Name: "b"}, {Name: "a"}}
	assert.Equal(t, 2, Count(rows, func(r row) bool { return r.Name == "a" }))
}

func TestRun_Success(t *testing.T) {
	called, refetched := false, false
	notice, err := Run(context.Background(), Mutation{
		Name:    "create question",
		Call:    func(ctx context.Context) error { called = true; return nil },
		Refetch: func(ctx context.Context) error { refetched = true; return nil },
		Success: "Question created.",
		Failure: "Could not create question",
	})

	assert.NoError(t, err)
	assert.True(t, called)
	assert.True(t, refetched)
	assert.Equal(t, Notice{Kind: NoticeSuccess, Text: "Question created."}, notice)
}

func TestRun_ValidationBlocksCall(t *testing.T) {
	called := false
	notice, err := Run(context.Background(), Mutation{
		Validate: func() error { return apperrors.NewValidationError("optionB", "is required") },
		Call:     func(ctx context.Context) error { called = true; return nil },
	})

	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.False(t, called)
	assert.Equal(t, NoticeError, notice.Kind)
}

func TestRun_DeclinedConfirmation(t *testing.T) {
	called := false
	var prompt string
	_, err := Run(context.Background(), Mutation{
		Confirm: func(p string) bool { prompt = p; return false },
		Prompt:  "Delete this question?",
		Call:    func(ctx context.Context) error { called = true; return nil },
	})

	assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)
	assert.False(t, called)
	assert.Equal(t, "Delete this question?", prompt)
}

func TestRun_FailureSkipsRefetch(t *testing.T) {
	refetched := false
	notice, err := Run(context.Background(), Mutation{
		Confirm: Confirmed(true),
		Call: func(ctx context.Context) error {
			return apperrors.NewHTTPError(http.StatusNotFound, "question not found")
		},
		Refetch: func(ctx context.Context) error { refetched = true; return nil },
		Failure: "Could not delete question",
	})

	assert.Error(t, err)
	assert.False(t, refetched)
	assert.Equal(t, "Could not delete question: question not found", notice.Text)
}

func TestRun_GenericFailure(t *testing.T) {
	notice, _ := Run(context.Background(), Mutation{
		Call:    func(ctx context.Context) error { return &apperrors.NetworkError{Op: "POST", Err: errors.New("reset")} },
		Failure: "Could not create notification",
	})
	assert.Equal(t, "Could not create notification", notice.Text)
}
