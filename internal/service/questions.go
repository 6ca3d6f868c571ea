package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/errors"
	"examadmin/internal/model"
)

const (
	// EmptyQuestions is shown when nothing is loaded and no filter is set.
	EmptyQuestions = "No questions yet"
	// EmptyQuestionsFiltered is shown when a filter hides every question.
	EmptyQuestionsFiltered = "No questions match the search criteria"
	// EditUnsupported is the notice shown when an edit is submitted.
	EditUnsupported = "Editing questions is not supported by the backend yet"

	questionPreviewLen = 200
	optionPreviewLen   = 30
	maxImageBytes      = 5 << 20
)

// QuestionCapabilities declares which actions the backend supports.
type QuestionCapabilities struct {
	CanCreate bool `json:"canCreate"`
	CanEdit   bool `json:"canEdit"`
	CanToggle bool `json:"canToggle"`
	CanDelete bool `json:"canDelete"`
}

// questionCapabilities reflects the backend today: there is no update
// endpoint for question content.
var questionCapabilities = QuestionCapabilities{CanCreate: true, CanEdit: false, CanToggle: true, CanDelete: true}

// QuestionCounts are derived from the whole loaded list, not the filtered one.
type QuestionCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// OptionPreview is one answer slot in the list.
type OptionPreview struct {
	Letter  string `json:"letter"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// QuestionRow is a question with its display attributes.
type QuestionRow struct {
	model.Question
	Preview         string          `json:"preview"`
	Options         []OptionPreview `json:"options"`
	CategoryLabel   string          `json:"categoryLabel"`
	DifficultyLabel string          `json:"difficultyLabel"`
	SuccessRate     int             `json:"successRate"`
}

// CategoryOption is an entry of the category filter.
type CategoryOption struct {
	Value model.Category `json:"value"`
	Label string         `json:"label"`
}

// QuestionQuery carries the client-side filters.
type QuestionQuery struct {
	Search   string
	Category model.Category
	Refresh  bool
}

// QuestionsView is the questions page as rendered.
type QuestionsView struct {
	State        controller.State     `json:"state"`
	Search       string               `json:"search"`
	Category     model.Category       `json:"category"`
	Categories   []CategoryOption     `json:"categories"`
	Questions    []QuestionRow        `json:"questions"`
	Counts       QuestionCounts       `json:"counts"`
	Capabilities QuestionCapabilities `json:"capabilities"`
	Empty        string               `json:"empty,omitempty"`
}

// QuestionForm is the create/edit form. Every text field except the
// explanation must be filled before it can be submitted.
type QuestionForm struct {
	Text          string           `json:"text" form:"text" validate:"required"`
	ImageURL      string           `json:"imageUrl,omitempty" form:"imageUrl"`
	OptionA       string           `json:"optionA" form:"optionA" validate:"required"`
	OptionB       string           `json:"optionB" form:"optionB" validate:"required"`
	OptionC       string           `json:"optionC" form:"optionC" validate:"required"`
	OptionD       string           `json:"optionD" form:"optionD" validate:"required"`
	CorrectAnswer string           `json:"correctAnswer" form:"correctAnswer" validate:"required,oneof=A B C D"`
	Explanation   string           `json:"explanation" form:"explanation"`
	Category      model.Category   `json:"category" form:"category" validate:"required,oneof=TRAFFIC_SIGNS TRAFFIC_RULES FIRST_AID MOTOR_KNOWLEDGE ENVIRONMENT TRAFFIC_ETHICS DANGEROUS_GOODS AVOIDANCE_TECHNIQUES"`
	Difficulty    model.Difficulty `json:"difficulty" form:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	IsActive      bool             `json:"isActive" form:"isActive"`
}

// NewQuestionForm returns the blank form with its preselected values.
func NewQuestionForm() QuestionForm {
	return QuestionForm{
		CorrectAnswer: "A",
		Category:      model.CategoryTrafficSigns,
		Difficulty:    model.DifficultyMedium,
		IsActive:      true,
	}
}

// FormFromQuestion pre-fills the form from an existing record.
func FormFromQuestion(q model.Question) QuestionForm {
	form := QuestionForm{
		Text:          q.Text,
		OptionA:       q.OptionA,
		OptionB:       q.OptionB,
		OptionC:       q.OptionC,
		OptionD:       q.OptionD,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Category:      q.Category,
		Difficulty:    q.Difficulty,
		IsActive:      q.IsActive,
	}
	if q.ImageURL != nil {
		form.ImageURL = *q.ImageURL
	}
	return form
}

// CanSubmit reports whether the required text fields are all filled.
func (f QuestionForm) CanSubmit() bool {
	for _, v := range []string{f.Text, f.OptionA, f.OptionB, f.OptionC, f.OptionD} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

func (f QuestionForm) trimmed() QuestionForm {
	f.Text = strings.TrimSpace(f.Text)
	f.OptionA = strings.TrimSpace(f.OptionA)
	f.OptionB = strings.TrimSpace(f.OptionB)
	f.OptionC = strings.TrimSpace(f.OptionC)
	f.OptionD = strings.TrimSpace(f.OptionD)
	f.Explanation = strings.TrimSpace(f.Explanation)
	return f
}

// ImageDataURI encodes an uploaded image as a data URI for the question payload.
func ImageDataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.NewValidationError("image", "is empty")
	}
	if len(data) > maxImageBytes {
		return "", errors.NewValidationError("image", "is larger than 5 MB")
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", errors.NewValidationError("image", "must be an image, got "+mtype.String())
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// QuestionDetail is a single question with its form pre-filled for editing.
// CanSubmit is false while a required field of the form is blank.
type QuestionDetail struct {
	Question     QuestionRow          `json:"question"`
	Form         QuestionForm         `json:"form"`
	CanSubmit    bool                 `json:"canSubmit"`
	Capabilities QuestionCapabilities `json:"capabilities"`
}

// QuestionService manages the exam question pool.
type QuestionService interface {
	View(ctx context.Context, q QuestionQuery) QuestionsView
	Detail(ctx context.Context, id string) (*QuestionDetail, error)
	Create(ctx context.Context, form QuestionForm) (controller.Notice, error)
	Edit(ctx context.Context, id string, form QuestionForm) (controller.Notice, error)
	Toggle(ctx context.Context, id string) (controller.Notice, error)
	Delete(ctx context.Context, id string, confirm controller.Confirmer) (controller.Notice, error)
}

type questionService struct {
	api       Backend
	questions *controller.Resource[[]model.Question]
}

// NewQuestionService creates the questions page service. There is no demo
// fallback: a failed fetch shows an empty list.
func NewQuestionService(api Backend) QuestionService {
	fetch := func(ctx context.Context) ([]model.Question, error) {
		raw, err := api.Get(ctx, "/questions")
		if err != nil {
			return nil, err
		}
		return apiclient.Unwrap[model.Question](raw, "questions")
	}
	return &questionService{
		api:       api,
		questions: controller.NewResource("questions", fetch, controller.WithEmpty([]model.Question{})),
	}
}

func questionText(q model.Question) []string {
	return []string{q.Text}
}

func questionCategory(q model.Question) model.Category {
	return q.Category
}

func isActive(q model.Question) bool {
	return q.IsActive
}

// View applies the text and category filters to the loaded questions.
func (s *questionService) View(ctx context.Context, q QuestionQuery) QuestionsView {
	snap := load(ctx, s.questions, q.Refresh)
	all := snap.Value
	matched := controller.Filter(all,
		controller.MatchText(q.Search, questionText),
		controller.MatchExact(q.Category, questionCategory),
	)

	rows := make([]QuestionRow, 0, len(matched))
	for _, question := range matched {
		rows = append(rows, toQuestionRow(question))
	}

	active := controller.Count(all, isActive)
	view := QuestionsView{
		State:        snap.State,
		Search:       q.Search,
		Category:     q.Category,
		Categories:   categoryOptions(),
		Questions:    rows,
		Counts:       QuestionCounts{Total: len(all), Active: active, Inactive: len(all) - active},
		Capabilities: questionCapabilities,
	}
	if len(rows) == 0 {
		if q.Search != "" || q.Category != "" {
			view.Empty = EmptyQuestionsFiltered
		} else {
			view.Empty = EmptyQuestions
		}
	}
	return view
}

func toQuestionRow(q model.Question) QuestionRow {
	options := make([]OptionPreview, 0, len(model.OptionLetters))
	for _, letter := range model.OptionLetters {
		options = append(options, OptionPreview{
			Letter:  letter,
			Text:    model.Truncate(q.Option(letter), optionPreviewLen),
			Correct: q.CorrectAnswer == letter,
		})
	}
	return QuestionRow{
		Question:        q,
		Preview:         model.Truncate(q.Text, questionPreviewLen),
		Options:         options,
		CategoryLabel:   q.Category.Label(),
		DifficultyLabel: q.Difficulty.Label(),
		SuccessRate:     q.SuccessRate(),
	}
}

func categoryOptions() []CategoryOption {
	out := make([]CategoryOption, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, CategoryOption{Value: c, Label: c.Label()})
	}
	return out
}

func (s *questionService) find(ctx context.Context, id string) (model.Question, error) {
	snap := s.questions.LoadIfIdle(ctx)
	for _, q := range snap.Value {
		if q.ID == id {
			return q, nil
		}
	}
	return model.Question{}, fmt.Errorf("question %s: %w", id, errors.ErrNotFound)
}

// Detail returns one loaded question and a form pre-filled from it.
func (s *questionService) Detail(ctx context.Context, id string) (*QuestionDetail, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	form := FormFromQuestion(q)
	return &QuestionDetail{
		Question:     toQuestionRow(q),
		Form:         form,
		CanSubmit:    form.CanSubmit(),
		Capabilities: questionCapabilities,
	}, nil
}

// Create posts a new question. An incomplete form never reaches the backend.
func (s *questionService) Create(ctx context.Context, form QuestionForm) (controller.Notice, error) {
	form = form.trimmed()
	return controller.Run(ctx, controller.Mutation{
		Name:     "create question",
		Validate: func() error { return validateForm(form) },
		Call: func(ctx context.Context) error {
			_, err := s.api.Post(ctx, "/questions", form)
			return err
		},
		Refetch: s.questions.Refetch,
		Success: "Question created.",
		Failure: "Could not create question",
	})
}

// Edit never calls the backend; see questionCapabilities.
func (s *questionService) Edit(ctx context.Context, id string, form QuestionForm) (controller.Notice, error) {
	return controller.Notice{Kind: controller.NoticeWarning, Text: EditUnsupported}, errors.ErrEditUnsupported
}

// Toggle flips the active flag of a loaded question.
func (s *questionService) Toggle(ctx context.Context, id string) (controller.Notice, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return controller.Notice{Kind: controller.NoticeError, Text: errors.UserMessage(err, "")}, err
	}
	next := !q.IsActive
	success := "Question deactivated."
	if next {
		success = "Question activated."
	}
	return controller.Run(ctx, controller.Mutation{
		Name: "toggle question " + id,
		Call: func(ctx context.Context) error {
			_, err := s.api.Put(ctx, "/admin/questions/"+id, map[string]bool{"isActive": next})
			return err
		},
		Refetch: s.questions.Refetch,
		Success: success,
		Failure: "Could not update question status",
	})
}

// Delete removes a question after confirmation.
func (s *questionService) Delete(ctx context.Context, id string, confirm controller.Confirmer) (controller.Notice, error) {
	return controller.Run(ctx, controller.Mutation{
		Name:    "delete question " + id,
		Confirm: required(confirm),
		Prompt:  "Are you sure you want to delete this question?",
		Call: func(ctx context.Context) error {
			_, err := s.api.Delete(ctx, "/admin/questions/"+id)
			return err
		},
		Refetch: s.questions.Refetch,
		Success: "Question deleted.",
		Failure: "Could not delete question",
	})
}
