package service

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examadmin/internal/controller"
	apperrors "examadmin/internal/errors"
	"examadmin/internal/model"
)

// questionBackend keeps question state so mutations are visible on refetch.
type questionBackend struct {
	mu        sync.Mutex
	questions []model.Question
}

func (b *questionBackend) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"GET /questions": func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "data": map[string]interface{}{"questions": b.questions}})
		},
		"POST /questions": func(w http.ResponseWriter, r *http.Request) {
			var q model.Question
			_ = json.NewDecoder(r.Body).Decode(&q)
			b.mu.Lock()
			defer b.mu.Unlock()
			q.ID = "q-new"
			b.questions = append(b.questions, q)
			writeJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "data": q})
		},
		"PUT /admin/questions/{id}": func(w http.ResponseWriter, r *http.Request) {
			var patch struct {
				IsActive bool `json:"isActive"`
			}
			_ = json.NewDecoder(r.Body).Decode(&patch)
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.questions {
				if b.questions[i].ID == r.PathValue("id") {
					b.questions[i].IsActive = patch.IsActive
					writeJSON(w, http.StatusOK, map[string]bool{"success": true})
					return
				}
			}
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "question not found"})
		},
		"DELETE /admin/questions/{id}": func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.questions[:0]
			for _, q := range b.questions {
				if q.ID != r.PathValue("id") {
					kept = append(kept, q)
				}
			}
			b.questions = kept
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		},
	}
}

func seedQuestions() []model.Question {
	return []model.Question{
		{ID: "q1", Text: "What does a red octagonal sign mean?", OptionA: "Stop", OptionB: "Yield", OptionC: "No entry", OptionD: "Parking", CorrectAnswer: "A", Category: model.CategoryTrafficSigns, Difficulty: model.DifficultyEasy, IsActive: true, TotalAnswered: 8, CorrectCount: 5},
		{ID: "q2", Text: "Minimum following distance on a wet road", OptionA: "1s", OptionB: "2s", OptionC: "4s", OptionD: "8s", CorrectAnswer: "C", Category: model.CategoryTrafficRules, Difficulty: model.DifficultyMedium, IsActive: false},
		{ID: "q3", Text: "First step when approaching an accident scene", OptionA: "Call", OptionB: "Secure the scene", OptionC: "Move victims", OptionD: "Leave", CorrectAnswer: "B", Category: model.CategoryFirstAid, Difficulty: model.DifficultyHard, IsActive: true},
	}
}

func validQuestionForm() QuestionForm {
	form := NewQuestionForm()
	form.Text = "Which sign warns of a sharp bend?"
	form.OptionA = "Triangle with curved arrow"
	form.OptionB = "Blue circle"
	form.OptionC = "Red octagon"
	form.OptionD = "White rectangle"
	return form
}

func TestQuestionService_View(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	_, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	tests := []struct {
		name     string
		query    QuestionQuery
		expected []string
		empty    string
	}{
		{"no filter", QuestionQuery{}, []string{"q1", "q2", "q3"}, ""},
		{"text", QuestionQuery{Search: "ROAD"}, []string{"q2"}, ""},
		{"category", QuestionQuery{Category: model.CategoryFirstAid}, []string{"q3"}, ""},
		{"text and category", QuestionQuery{Search: "sign", Category: model.CategoryTrafficRules}, []string{}, EmptyQuestionsFiltered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := svc.View(context.Background(), tt.query)

			ids := []string{}
			for _, row := range view.Questions {
				ids = append(ids, row.ID)
			}
			assert.Equal(t, tt.expected, ids)
			assert.Equal(t, tt.empty, view.Empty)
			assert.Equal(t, QuestionCounts{Total: 3, Active: 2, Inactive: 1}, view.Counts, "counts ignore filters")
			assert.False(t, view.Capabilities.CanEdit)
			assert.Len(t, view.Categories, 8)
		})
	}

	first := svc.View(context.Background(), QuestionQuery{}).Questions[0]
	assert.Equal(t, 63, first.SuccessRate)
	assert.Equal(t, "Traffic Signs", first.CategoryLabel)
	assert.Equal(t, "Easy", first.DifficultyLabel)
	assert.True(t, first.Options[0].Correct)
	assert.Equal(t, "Stop", first.Options[0].Text)
}

func TestQuestionService_EmptyStates(t *testing.T) {
	_, api := newFakeBackend(t, map[string]http.HandlerFunc{
		"GET /questions": respond(http.StatusInternalServerError, map[string]string{"message": "boom"}),
	})
	svc := NewQuestionService(api)

	view := svc.View(context.Background(), QuestionQuery{})
	assert.Equal(t, controller.StateError, view.State)
	assert.Empty(t, view.Questions)
	assert.Equal(t, EmptyQuestions, view.Empty)

	filtered := svc.View(context.Background(), QuestionQuery{Search: "x"})
	assert.Equal(t, EmptyQuestionsFiltered, filtered.Empty)
}

func TestQuestionService_CreateWithEmptyOptionIssuesNoRequest(t *testing.T) {
	qb := &questionBackend{}
	fb, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	form := validQuestionForm()
	form.OptionB = "   "
	assert.False(t, form.CanSubmit())

	notice, err := svc.Create(context.Background(), form)

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "optionB")
	assert.Equal(t, controller.NoticeError, notice.Kind)
	assert.Equal(t, 0, fb.count())
}

func TestQuestionService_CreateRefetches(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	fb, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)
	svc.View(context.Background(), QuestionQuery{})

	form := validQuestionForm()
	assert.True(t, form.CanSubmit())
	notice, err := svc.Create(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, controller.Notice{Kind: controller.NoticeSuccess, Text: "Question created."}, notice)
	assert.Equal(t, 1, fb.calls("POST /questions"))
	assert.Equal(t, 2, fb.calls("GET /questions"))

	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal(fb.body("POST /questions"), &sent))
	assert.Equal(t, "TRAFFIC_SIGNS", sent["category"])
	assert.Equal(t, "MEDIUM", sent["difficulty"])
	assert.Equal(t, true, sent["isActive"])

	view := svc.View(context.Background(), QuestionQuery{})
	assert.Equal(t, 4, view.Counts.Total)
}

func TestQuestionService_CreateFailureKeepsList(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	routes := qb.routes()
	routes["POST /questions"] = respond(http.StatusBadRequest, map[string]string{"message": "duplicate question"})
	fb, api := newFakeBackend(t, routes)
	svc := NewQuestionService(api)
	svc.View(context.Background(), QuestionQuery{})

	notice, err := svc.Create(context.Background(), validQuestionForm())

	assert.Error(t, err)
	assert.Equal(t, "Could not create question: duplicate question", notice.Text)
	assert.Equal(t, 1, fb.calls("GET /questions"), "no refetch after a failure")
	assert.Equal(t, 3, svc.View(context.Background(), QuestionQuery{}).Counts.Total)
}

func TestQuestionService_ToggleTwiceRestoresState(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	fb, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	active := func() bool {
		for _, row := range svc.View(context.Background(), QuestionQuery{}).Questions {
			if row.ID == "q1" {
				return row.IsActive
			}
		}
		t.Fatal("q1 missing")
		return false
	}
	original := active()

	notice, err := svc.Toggle(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, "Question deactivated.", notice.Text)
	assert.Equal(t, !original, active())

	_, err = svc.Toggle(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, original, active())
	assert.Equal(t, 2, fb.calls("PUT /admin/questions/q1"))
	assert.JSONEq(t, `{"isActive":true}`, string(fb.body("PUT /admin/questions/q1")))
}

func TestQuestionService_ToggleUnknown(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	fb, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	_, err := svc.Toggle(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 0, fb.calls("PUT /admin/questions/missing"))
}

func TestQuestionService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		confirm controller.Confirmer
		deleted bool
	}{
		{"confirmed", controller.Confirmed(true), true},
		{"declined", controller.Confirmed(false), false},
		{"no confirmer", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qb := &questionBackend{questions: seedQuestions()}
			fb, api := newFakeBackend(t, qb.routes())
			svc := NewQuestionService(api)

			_, err := svc.Delete(context.Background(), "q2", tt.confirm)

			if tt.deleted {
				assert.NoError(t, err)
				assert.Equal(t, 1, fb.calls("DELETE /admin/questions/q2"))
				assert.Equal(t, 2, svc.View(context.Background(), QuestionQuery{}).Counts.Total)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrNotConfirmed)
				assert.Equal(t, 0, fb.count())
			}
		})
	}
}

func TestQuestionService_EditIsUnsupported(t *testing.T) {
	qb := &questionBackend{questions: seedQuestions()}
	fb, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	detail, err := svc.Detail(context.Background(), "q2")
	require.NoError(t, err)
	assert.False(t, detail.Capabilities.CanEdit)
	assert.Equal(t, "2s", detail.Form.OptionB)
	assert.Equal(t, "C", detail.Form.CorrectAnswer)
	assert.False(t, detail.Form.IsActive)
	assert.True(t, detail.CanSubmit)
	requests := fb.count()

	notice, err := svc.Edit(context.Background(), "q2", detail.Form)

	assert.ErrorIs(t, err, apperrors.ErrEditUnsupported)
	assert.Equal(t, controller.NoticeWarning, notice.Kind)
	assert.Equal(t, EditUnsupported, notice.Text)
	assert.Equal(t, requests, fb.count())
}

func TestQuestionService_DetailCanSubmit(t *testing.T) {
	questions := seedQuestions()
	questions[0].OptionD = "  "
	qb := &questionBackend{questions: questions}
	_, api := newFakeBackend(t, qb.routes())
	svc := NewQuestionService(api)

	tests := []struct {
		id        string
		canSubmit bool
	}{
		{"q1", false},
		{"q3", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			detail, err := svc.Detail(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.canSubmit, detail.CanSubmit)
		})
	}

	_, err := svc.Detail(context.Background(), "q9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestImageDataURI(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

	uri, err := ImageDataURI(png)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	_, err = ImageDataURI([]byte("plain text, not a picture"))
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = ImageDataURI(nil)
	assert.Error(t, err)
}

func TestFormFromQuestion(t *testing.T) {
	image := "data:image/png;base64,AAAA"
	q := seedQuestions()[0]
	q.ImageURL = &image
	q.Explanation = "Octagons always mean stop."

	form := FormFromQuestion(q)

	assert.Equal(t, q.Text, form.Text)
	assert.Equal(t, image, form.ImageURL)
	assert.Equal(t, q.Explanation, form.Explanation)
	assert.Equal(t, model.CategoryTrafficSigns, form.Category)
	assert.True(t, form.CanSubmit())
}
