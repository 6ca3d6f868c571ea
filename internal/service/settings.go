package service

import (
	"context"
	"log"
	"sort"
	"sync"

	"examadmin/internal/apiclient"
	"examadmin/internal/controller"
	"examadmin/internal/errors"
	"examadmin/internal/model"
)

// Save outcomes.
const (
	SettingsSaved       = "Settings saved."
	SettingsNotSaved    = "Settings could not be saved."
	SettingsServerError = "Server error."
)

// SettingsView is the editor as rendered: the current draft and the bounds
// every field is kept within.
type SettingsView struct {
	Loaded          bool                   `json:"loaded"`
	Settings        model.AppSettings      `json:"settings"`
	Bounds          map[string]model.Bound `json:"bounds"`
	ExamLimitBounds map[string]model.Bound `json:"examLimitBounds"`
	Notice          *controller.Notice     `json:"notice,omitempty"`
}

// SettingsEditor loads the app settings once into a local draft, edits the
// draft in place and saves it back as a whole.
type SettingsEditor struct {
	api Backend

	mu      sync.Mutex
	draft   model.AppSettings
	mounted bool // first load attempted, whatever its outcome
	loaded  bool // draft came from the backend
}

// NewSettingsEditor creates an editor whose draft starts at the defaults.
func NewSettingsEditor(api Backend) *SettingsEditor {
	return &SettingsEditor{api: api, draft: model.DefaultSettings()}
}

// Load fetches the settings on first use only; later calls fetch again only
// when forced. A failed or unsuccessful fetch keeps the current draft, and
// edits made after it are not overwritten by a later unforced call.
func (e *SettingsEditor) Load(ctx context.Context, force bool) SettingsView {
	e.mu.Lock()
	done := e.mounted && !force
	e.mounted = true
	e.mu.Unlock()
	if done {
		return e.View()
	}

	raw, err := e.api.Get(ctx, "/admin/settings")
	if err != nil {
		log.Printf("settings: fetch failed: %v", err)
		return e.View()
	}
	if !apiclient.Success(raw) || apiclient.Empty(raw, "settings") {
		log.Printf("settings: no settings in response, keeping draft")
		return e.View()
	}
	settings, err := apiclient.UnwrapObject[model.AppSettings](raw, "settings")
	if err != nil {
		log.Printf("settings: %v", err)
		return e.View()
	}

	e.mu.Lock()
	e.draft = settings
	e.loaded = true
	e.mu.Unlock()
	return e.View()
}

// View returns the current draft.
func (e *SettingsEditor) View() SettingsView {
	e.mu.Lock()
	defer e.mu.Unlock()
	return SettingsView{
		Loaded:          e.loaded,
		Settings:        e.draft,
		Bounds:          model.SettingsBounds,
		ExamLimitBounds: model.ExamLimitBounds,
	}
}

// Apply changes top-level fields and examLimits fields of the draft, each
// clamped to its bound. An unknown name rejects the whole change and the
// draft is left as it was.
func (e *SettingsEditor) Apply(fields, examLimits map[string]int) error {
	if name, ok := unknownField(fields, model.SettingsBounds); ok {
		return errors.NewValidationError(name, "is not a setting")
	}
	if name, ok := unknownField(examLimits, model.ExamLimitBounds); ok {
		return errors.NewValidationError("examLimits."+name, "is not a setting")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for field, value := range fields {
		p, _ := e.draft.Field(field)
		*p = model.SettingsBounds[field].Clamp(value)
	}
	for field, value := range examLimits {
		p, _ := e.draft.ExamLimits.Field(field)
		*p = model.ExamLimitBounds[field].Clamp(value)
	}
	return nil
}

// unknownField returns the first name, in sorted order, that has no bound.
func unknownField(values map[string]int, bounds map[string]model.Bound) (string, bool) {
	names := make([]string, 0, len(values))
	for name := range values {
		if _, ok := bounds[name]; !ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", false
	}
	sort.Strings(names)
	return names[0], true
}

// Replace swaps the whole draft.
func (e *SettingsEditor) Replace(settings model.AppSettings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = settings.Clamped()
}

// Save clamps the draft and writes it as one document. Only an explicit
// success=false from the backend counts as a rejected save.
func (e *SettingsEditor) Save(ctx context.Context) (controller.Notice, error) {
	e.mu.Lock()
	e.draft = e.draft.Clamped()
	doc := e.draft
	e.mu.Unlock()

	raw, err := e.api.Put(ctx, "/admin/settings", doc)
	if err != nil {
		log.Printf("settings: save failed: %v", err)
		return controller.Notice{Kind: controller.NoticeError, Text: SettingsServerError}, err
	}
	if !apiclient.Success(raw) {
		return controller.Notice{Kind: controller.NoticeError, Text: SettingsNotSaved}, nil
	}
	return controller.Notice{Kind: controller.NoticeSuccess, Text: SettingsSaved}, nil
}
