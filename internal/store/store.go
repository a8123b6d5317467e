// Package store holds all application state in memory for the lifetime of
// the process. There is no persistence layer: everything is lost on restart.
//
// The store is designed for a single-user, single-goroutine execution model:
// every mutation happens synchronously in response to a caller-issued
// operation, so read/write ordering is simply program order and no locking
// is needed. It must not be shared across concurrent actors.
//
// Lookups and listings return copies so that no consumer can mutate another
// consumer's view in place.
package store

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/workout"
)

// Memory is the in-memory application state store. It implements both
// workout.Store and diary.Store.
type Memory struct {
	logger *slog.Logger

	exercises []workout.Exercise
	templates []workout.WorkoutTemplate
	sessions  []workout.WorkoutSession

	profile   diary.UserProfile
	foodLogs  []diary.FoodLog
	sleepLogs []diary.SleepLog
	meals     []diary.CustomMeal
}

// New creates an empty store.
func New(logger *slog.Logger) *Memory {
	return &Memory{logger: logger}
}

// ExerciseByID resolves an exercise by identity regardless of its archival
// state, so historical references keep working.
func (m *Memory) ExerciseByID(id uuid.UUID) (workout.Exercise, bool) {
	for _, ex := range m.exercises {
		if ex.ID == id {
			return cloneExercise(ex), true
		}
	}
	return workout.Exercise{}, false
}

// ActiveExercises lists all non-archived exercises.
func (m *Memory) ActiveExercises() []workout.Exercise {
	var out []workout.Exercise
	for _, ex := range m.exercises {
		if !ex.Archived {
			out = append(out, cloneExercise(ex))
		}
	}
	return out
}

// AllExercises lists the whole library including archived entries.
func (m *Memory) AllExercises() []workout.Exercise {
	out := make([]workout.Exercise, 0, len(m.exercises))
	for _, ex := range m.exercises {
		out = append(out, cloneExercise(ex))
	}
	return out
}

// AddExercise stores a new exercise, minting an identity when the draft has
// none, and returns the stored value.
func (m *Memory) AddExercise(ex workout.Exercise) workout.Exercise {
	if ex.ID == uuid.Nil {
		ex.ID = uuid.New()
	}
	m.exercises = append(m.exercises, cloneExercise(ex))
	return ex
}

// UpdateExercise replaces an exercise by identity. It reports whether the
// identity resolved; a miss leaves the store untouched.
func (m *Memory) UpdateExercise(ex workout.Exercise) bool {
	for i := range m.exercises {
		if m.exercises[i].ID == ex.ID {
			m.exercises[i] = cloneExercise(ex)
			return true
		}
	}
	return false
}

// TemplateByID resolves a template by identity.
func (m *Memory) TemplateByID(id uuid.UUID) (workout.WorkoutTemplate, bool) {
	for _, t := range m.templates {
		if t.ID == id {
			return cloneTemplate(t), true
		}
	}
	return workout.WorkoutTemplate{}, false
}

// Templates lists all templates.
func (m *Memory) Templates() []workout.WorkoutTemplate {
	out := make([]workout.WorkoutTemplate, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, cloneTemplate(t))
	}
	return out
}

// AddTemplate stores a new template, minting identities for the template and
// any blocks that lack one, and returns the stored value.
func (m *Memory) AddTemplate(t workout.WorkoutTemplate) workout.WorkoutTemplate {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	for i := range t.Blocks {
		if t.Blocks[i].ID == uuid.Nil {
			t.Blocks[i].ID = uuid.New()
		}
	}
	m.templates = append(m.templates, cloneTemplate(t))
	return t
}

// UpdateTemplate replaces a template by identity.
func (m *Memory) UpdateTemplate(t workout.WorkoutTemplate) bool {
	for i := range m.templates {
		if m.templates[i].ID == t.ID {
			m.templates[i] = cloneTemplate(t)
			return true
		}
	}
	return false
}

// DeleteTemplate removes a template by identity, preserving the order of the
// remainder.
func (m *Memory) DeleteTemplate(id uuid.UUID) bool {
	for i := range m.templates {
		if m.templates[i].ID == id {
			m.templates = append(m.templates[:i], m.templates[i+1:]...)
			return true
		}
	}
	return false
}

// AddSession records a finished workout session. Sessions are append-only:
// there is no update or delete.
func (m *Memory) AddSession(sess workout.WorkoutSession) {
	m.sessions = append(m.sessions, cloneSession(sess))
	m.logger.Info("session stored", slog.String("name", sess.Name))
}

// Sessions lists all recorded sessions.
func (m *Memory) Sessions() []workout.WorkoutSession {
	out := make([]workout.WorkoutSession, 0, len(m.sessions))
	for _, sess := range m.sessions {
		out = append(out, cloneSession(sess))
	}
	return out
}

func cloneExercise(ex workout.Exercise) workout.Exercise {
	ex.PrimaryMuscles = append([]workout.MuscleGroup(nil), ex.PrimaryMuscles...)
	ex.SecondaryMuscles = append([]workout.MuscleGroup(nil), ex.SecondaryMuscles...)
	return ex
}

func cloneTemplate(t workout.WorkoutTemplate) workout.WorkoutTemplate {
	t.Blocks = append([]workout.ExerciseBlock(nil), t.Blocks...)
	return t
}

func cloneSession(sess workout.WorkoutSession) workout.WorkoutSession {
	items := make([]workout.SessionItem, len(sess.Items))
	copy(items, sess.Items)
	for i, item := range sess.Items {
		items[i].Sets = append([]workout.LoggedSet(nil), item.Sets...)
	}
	sess.Items = items
	return sess
}
