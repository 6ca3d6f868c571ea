package model

import (
	"github.com/shopspring/decimal"
)

// Category groups exam questions by subject.
type Category string

const (
	CategoryTrafficSigns        Category = "TRAFFIC_SIGNS"
	CategoryTrafficRules        Category = "TRAFFIC_RULES"
	CategoryFirstAid            Category = "FIRST_AID"
	CategoryMotorKnowledge      Category = "MOTOR_KNOWLEDGE"
	CategoryEnvironment         Category = "ENVIRONMENT"
	CategoryTrafficEthics       Category = "TRAFFIC_ETHICS"
	CategoryDangerousGoods      Category = "DANGEROUS_GOODS"
	CategoryAvoidanceTechniques Category = "AVOIDANCE_TECHNIQUES"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTrafficSigns,
	CategoryTrafficRules,
	CategoryFirstAid,
	CategoryMotorKnowledge,
	CategoryEnvironment,
	CategoryTrafficEthics,
	CategoryDangerousGoods,
	CategoryAvoidanceTechniques,
}

var categoryLabels = map[Category]string{
	CategoryTrafficSigns:        "Traffic Signs",
	CategoryTrafficRules:        "Traffic Rules",
	CategoryFirstAid:            "First Aid",
	CategoryMotorKnowledge:      "Motor Knowledge",
	CategoryEnvironment:         "Environment",
	CategoryTrafficEthics:       "Traffic Ethics",
	CategoryDangerousGoods:      "Dangerous Goods",
	CategoryAvoidanceTechniques: "Avoidance Techniques",
}

// Label returns the display label, or the raw value for unknown categories.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Label returns the display label, or the raw value for unknown difficulties.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return string(d)
}

// Question is an exam question as returned by GET /questions.
type Question struct {
	ID             string     `json:"id"`
	Text           string     `json:"text"`
	ImageURL       *string    `json:"imageUrl"`
	OptionA        string     `json:"optionA"`
	OptionB        string     `json:"optionB"`
	OptionC        string     `json:"optionC"`
	OptionD        string     `json:"optionD"`
	CorrectAnswer  string     `json:"correctAnswer"`
	Explanation    string     `json:"explanation"`
	Category       Category   `json:"category"`
	Difficulty     Difficulty `json:"difficulty"`
	LicenseClasses []string   `json:"licenseClasses,omitempty"`
	TotalAnswered  int        `json:"totalAnswered"`
	CorrectCount   int        `json:"correctCount"`
	WrongCount     int        `json:"wrongCount"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      string     `json:"createdAt"`
}

// SuccessRate is the rounded percentage of correct answers, 0 when unanswered.
func (q Question) SuccessRate() int {
	if q.TotalAnswered <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(q.CorrectCount)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(q.TotalAnswered))).
		Round(0)
	return int(rate.IntPart())
}

// Option returns the text of option "A".."D".
func (q Question) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// OptionLetters are the answer slots every question carries.
var OptionLetters = []string{"A", "B", "C", "D"}

// Truncate shortens s to max runes, appending "..." when cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
