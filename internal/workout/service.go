package workout

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/errors"
	"golang.org/x/sync/singleflight"
)

const (
	minExerciseNameLen = 2
	maxExerciseNameLen = 60
)

// Store is the slice of application state the workout service depends on.
// The concrete implementation is injected so the service can be tested
// against an in-memory fake.
type Store interface {
	ExerciseByID(id uuid.UUID) (Exercise, bool)
	ActiveExercises() []Exercise
	AddExercise(ex Exercise) Exercise
	UpdateExercise(ex Exercise) bool
	TemplateByID(id uuid.UUID) (WorkoutTemplate, bool)
	Templates() []WorkoutTemplate
	AddTemplate(t WorkoutTemplate) WorkoutTemplate
	UpdateTemplate(t WorkoutTemplate) bool
	DeleteTemplate(id uuid.UUID) bool
	AddSession(sess WorkoutSession)
}

// Service handles the business logic for the exercise library, workout
// templates, logged sessions and AI plan generation.
type Service struct {
	store   Store
	logger  *slog.Logger
	planner completionClient
	flight  singleflight.Group
	now     func() time.Time
}

// NewService creates a new workout service. An empty openaiAPIKey disables
// AI plan generation; every other operation works without it.
func NewService(store Store, logger *slog.Logger, openaiAPIKey string) *Service {
	var planner completionClient
	if openaiAPIKey != "" {
		planner = newOpenAICompleter(openaiAPIKey)
	}
	return &Service{
		store:   store,
		logger:  logger,
		planner: planner,
		now:     time.Now,
	}
}

// CreateExercise validates and adds a new exercise to the library.
func (s *Service) CreateExercise(draft Exercise) (Exercise, error) {
	if err := s.validateExercise(draft, uuid.Nil); err != nil {
		return Exercise{}, err
	}
	created := s.store.AddExercise(draft)
	s.logger.Info("exercise created", slog.String("name", created.Name))
	return created, nil
}

// UpdateExercise validates and replaces an existing library exercise.
func (s *Service) UpdateExercise(ex Exercise) error {
	if _, ok := s.store.ExerciseByID(ex.ID); !ok {
		return errors.Wrap(ErrNotFound, "update exercise", slog.String("id", ex.ID.String()))
	}
	if err := s.validateExercise(ex, ex.ID); err != nil {
		return err
	}
	s.store.UpdateExercise(ex)
	return nil
}

// ArchiveExercise soft-deletes an exercise. Archived exercises disappear
// from active listings but remain resolvable by ID so historical sessions
// and templates keep working.
func (s *Service) ArchiveExercise(id uuid.UUID) error {
	ex, ok := s.store.ExerciseByID(id)
	if !ok {
		return errors.Wrap(ErrNotFound, "archive exercise", slog.String("id", id.String()))
	}
	ex.Archived = true
	s.store.UpdateExercise(ex)
	return nil
}

// ExerciseByID resolves an exercise regardless of its archival state.
func (s *Service) ExerciseByID(id uuid.UUID) (Exercise, error) {
	ex, ok := s.store.ExerciseByID(id)
	if !ok {
		return Exercise{}, errors.Wrap(ErrNotFound, "get exercise", slog.String("id", id.String()))
	}
	return ex, nil
}

// ActiveExercises lists the non-archived exercise library.
func (s *Service) ActiveExercises() []Exercise {
	return s.store.ActiveExercises()
}

// SearchActiveExercises filters the non-archived library by a
// case-insensitive substring match on the name. An empty query returns the
// whole active library.
func (s *Service) SearchActiveExercises(query string) []Exercise {
	active := s.store.ActiveExercises()
	if query == "" {
		return active
	}
	var matched []Exercise
	for _, ex := range active {
		if strings.Contains(strings.ToLower(ex.Name), strings.ToLower(query)) {
			matched = append(matched, ex)
		}
	}
	return matched
}

// TemplateByID resolves a workout template.
func (s *Service) TemplateByID(id uuid.UUID) (WorkoutTemplate, error) {
	t, ok := s.store.TemplateByID(id)
	if !ok {
		return WorkoutTemplate{}, errors.Wrap(ErrNotFound, "get template", slog.String("id", id.String()))
	}
	return t, nil
}

// Templates lists all workout templates.
func (s *Service) Templates() []WorkoutTemplate {
	return s.store.Templates()
}

// SaveTemplate persists a template draft. A draft with a zero ID is created
// with a fresh identity; otherwise the template is replaced by identity.
func (s *Service) SaveTemplate(draft WorkoutTemplate) (WorkoutTemplate, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return WorkoutTemplate{}, &ValidationError{Field: "name", Reason: "template name is required"}
	}
	if draft.ID == uuid.Nil {
		return s.store.AddTemplate(draft), nil
	}
	if ok := s.store.UpdateTemplate(draft); !ok {
		return WorkoutTemplate{}, errors.Wrap(ErrNotFound, "update template",
			slog.String("id", draft.ID.String()))
	}
	return draft, nil
}

// DeleteTemplate removes a template. Recorded sessions that reference it are
// unaffected since they copy the template name at session start.
func (s *Service) DeleteTemplate(id uuid.UUID) error {
	if ok := s.store.DeleteTemplate(id); !ok {
		return errors.Wrap(ErrNotFound, "delete template", slog.String("id", id.String()))
	}
	return nil
}

func (s *Service) validateExercise(ex Exercise, selfID uuid.UUID) error {
	nameLen := utf8.RuneCountInString(strings.TrimSpace(ex.Name))
	if nameLen < minExerciseNameLen || nameLen > maxExerciseNameLen {
		return &ValidationError{Field: "name", Reason: "name must be 2-60 characters"}
	}
	if len(ex.PrimaryMuscles) == 0 {
		return &ValidationError{Field: "primary muscles", Reason: "select at least one primary muscle group"}
	}
	for _, group := range ex.PrimaryMuscles {
		if !slices.Contains(MuscleGroups, group) {
			return &ValidationError{Field: "primary muscles", Reason: fmt.Sprintf("unknown muscle group %q", group)}
		}
	}
	for _, group := range ex.SecondaryMuscles {
		if !slices.Contains(MuscleGroups, group) {
			return &ValidationError{Field: "secondary muscles", Reason: fmt.Sprintf("unknown muscle group %q", group)}
		}
	}
	// Uniqueness is scoped to the active library: archiving an exercise
	// frees its name for reuse.
	for _, other := range s.store.ActiveExercises() {
		if other.ID != selfID && strings.EqualFold(other.Name, ex.Name) {
			return &ValidationError{Field: "name", Reason: "an exercise with this name already exists"}
		}
	}
	return nil
}
