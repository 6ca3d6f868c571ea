package model

// ExamLimits caps how many exams a user can take per day.
type ExamLimits struct {
	FreeExamsPerDay int `json:"freeExamsPerDay"`
	ExtraExamsPerAd int `json:"extraExamsPerAd"`
	MaxExamsPerDay  int `json:"maxExamsPerDay"`
	ResetHour       int `json:"resetHour"`
}

// AppSettings is the singleton configuration document under /admin/settings.
// Every save overwrites the whole document.
type AppSettings struct {
	TotalActiveQuestions     int        `json:"totalActiveQuestions"`
	ClassicExamQuestionCount int        `json:"classicExamQuestionCount"`
	QuickTestQuestionCount   int        `json:"quickTestQuestionCount"`
	DailyQuestionGoal        int        `json:"dailyQuestionGoal"`
	ExamLimits               ExamLimits `json:"examLimits"`
}

// Bound is the inclusive range a numeric setting may take.
type Bound struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clamp coerces v into [Min, Max].
func (b Bound) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// SettingsBounds holds the range for each top-level field, keyed by JSON name.
var SettingsBounds = map[string]Bound{
	"totalActiveQuestions":     {Min: 100, Max: 10000},
	"classicExamQuestionCount": {Min: 10, Max: 100},
	"quickTestQuestionCount":   {Min: 5, Max: 50},
	"dailyQuestionGoal":        {Min: 5, Max: 100},
}

// ExamLimitBounds holds the range for each examLimits field, keyed by JSON name.
var ExamLimitBounds = map[string]Bound{
	"freeExamsPerDay": {Min: 0, Max: 10},
	"extraExamsPerAd": {Min: 1, Max: 5},
	"maxExamsPerDay":  {Min: 1, Max: 50},
	"resetHour":       {Min: 0, Max: 23},
}

// DefaultSettings is the draft used before the first successful load.
func DefaultSettings() AppSettings {
	return AppSettings{
		TotalActiveQuestions:     500,
		ClassicExamQuestionCount: 50,
		QuickTestQuestionCount:   10,
		DailyQuestionGoal:        20,
		ExamLimits: ExamLimits{
			FreeExamsPerDay: 1,
			ExtraExamsPerAd: 1,
			MaxExamsPerDay:  10,
			ResetHour:       0,
		},
	}
}

// Field returns a pointer to the top-level field with the given JSON name.
func (s *AppSettings) Field(name string) (*int, bool) {
	switch name {
	case "totalActiveQuestions":
		return &s.TotalActiveQuestions, true
	case "classicExamQuestionCount":
		return &s.ClassicExamQuestionCount, true
	case "quickTestQuestionCount":
		return &s.QuickTestQuestionCount, true
	case "dailyQuestionGoal":
		return &s.DailyQuestionGoal, true
	}
	return nil, false
}

// Field returns a pointer to the exam limit with the given JSON name.
func (l *ExamLimits) Field(name string) (*int, bool) {
	switch name {
	case "freeExamsPerDay":
		return &l.FreeExamsPerDay, true
	case "extraExamsPerAd":
		return &l.ExtraExamsPerAd, true
	case "maxExamsPerDay":
		return &l.MaxExamsPerDay, true
	case "resetHour":
		return &l.ResetHour, true
	}
	return nil, false
}

// Clamped returns a copy with every numeric field inside its bound.
func (s AppSettings) Clamped() AppSettings {
	for name, bound := range SettingsBounds {
		if p, ok := s.Field(name); ok {
			*p = bound.Clamp(*p)
		}
	}
	for name, bound := range ExamLimitBounds {
		if p, ok := s.ExamLimits.Field(name); ok {
			*p = bound.Clamp(*p)
		}
	}
	return s
}
