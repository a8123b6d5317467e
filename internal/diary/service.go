package diary

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/daykey"
	"github.com/repkit/repkit/internal/errors"
	"github.com/repkit/repkit/internal/workout"
)

const (
	minSleepQuality = 1
	maxSleepQuality = 5
)

// Store is the slice of application state the diary service depends on.
type Store interface {
	Profile() UserProfile
	SetProfile(p UserProfile)
	AppendFood(day string, item FoodItem) FoodLog
	FoodLogsByDay(day string) []FoodLog
	UpsertSleep(log SleepLog) SleepLog
	SleepByDay(day string) (SleepLog, bool)
	AddMeal(m CustomMeal) CustomMeal
	UpdateMeal(m CustomMeal) bool
	DeleteMeal(id uuid.UUID) bool
	Meals() []CustomMeal
	Sessions() []workout.WorkoutSession
	SessionsByDay(day string) []workout.WorkoutSession
}

// Service handles profile management, per-day food and sleep logging,
// custom meals and the daily dashboard summary.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new diary service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Profile returns the user profile.
func (s *Service) Profile() UserProfile {
	return s.store.Profile()
}

// SaveProfile replaces the user profile.
func (s *Service) SaveProfile(p UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return &workout.ValidationError{Field: "name", Reason: "profile name is required"}
	}
	s.store.SetProfile(p)
	return nil
}

// LogFood appends a food item to the given day's log, creating the log when
// the day has none yet.
func (s *Service) LogFood(at time.Time, item FoodItem) FoodLog {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return s.store.AppendFood(daykey.Key(at), item)
}

// FoodFor returns the food logs recorded on the same local calendar day as
// the given time.
func (s *Service) FoodFor(at time.Time) []FoodLog {
	return s.store.FoodLogsByDay(daykey.Key(at))
}

// LogSleep records one night's sleep for the given day, replacing an earlier
// entry for the same day.
func (s *Service) LogSleep(at time.Time, hours float64, quality int) (SleepLog, error) {
	if hours <= 0 {
		return SleepLog{}, &workout.ValidationError{Field: "hours", Reason: "sleep duration must be positive"}
	}
	if quality < minSleepQuality || quality > maxSleepQuality {
		return SleepLog{}, &workout.ValidationError{Field: "quality", Reason: "quality must be between 1 and 5"}
	}
	return s.store.UpsertSleep(SleepLog{
		ID:      uuid.New(),
		Day:     daykey.Key(at),
		Hours:   hours,
		Quality: quality,
	}), nil
}

// SleepFor returns the sleep log for the given day, if any.
func (s *Service) SleepFor(at time.Time) (SleepLog, bool) {
	return s.store.SleepByDay(daykey.Key(at))
}

// AddMeal stores a reusable custom meal.
func (s *Service) AddMeal(m CustomMeal) (CustomMeal, error) {
	if strings.TrimSpace(m.Name) == "" {
		return CustomMeal{}, &workout.ValidationError{Field: "name", Reason: "meal name is required"}
	}
	for i := range m.Items {
		if m.Items[i].ID == uuid.Nil {
			m.Items[i].ID = uuid.New()
		}
	}
	return s.store.AddMeal(m), nil
}

// UpdateMeal replaces a custom meal by identity.
func (s *Service) UpdateMeal(m CustomMeal) error {
	if ok := s.store.UpdateMeal(m); !ok {
		return errors.Wrap(workout.ErrNotFound, "update meal", slog.String("id", m.ID.String()))
	}
	return nil
}

// DeleteMeal removes a custom meal.
func (s *Service) DeleteMeal(id uuid.UUID) error {
	if ok := s.store.DeleteMeal(id); !ok {
		return errors.Wrap(workout.ErrNotFound, "delete meal", slog.String("id", id.String()))
	}
	return nil
}

// Meals lists all custom meals.
func (s *Service) Meals() []CustomMeal {
	return s.store.Meals()
}

// Summary is the dashboard aggregation for one calendar day.
type Summary struct {
	Day           string
	CaloriesEaten float64
	CalorieGoal   int
	Workouts      int
	SleepHours    float64
	SleepGoal     float64
}

// DailySummary aggregates the given day's food, workouts and sleep against
// the profile goals. A day without logs yields zero values, not an error.
func (s *Service) DailySummary(at time.Time) Summary {
	day := daykey.Key(at)
	goals := s.store.Profile().Goals

	calories := 0.0
	for _, log := range s.store.FoodLogsByDay(day) {
		for _, item := range log.Items {
			calories += item.Calories
		}
	}

	sleepHours := 0.0
	if log, ok := s.store.SleepByDay(day); ok {
		sleepHours = log.Hours
	}

	return Summary{
		Day:           day,
		CaloriesEaten: calories,
		CalorieGoal:   goals.Calories,
		Workouts:      len(s.store.SessionsByDay(day)),
		SleepHours:    sleepHours,
		SleepGoal:     goals.SleepHours,
	}
}

// RecentSessions returns up to limit sessions ordered by start time, newest
// first.
func (s *Service) RecentSessions(limit int) []workout.WorkoutSession {
	sessions := s.store.Sessions()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartAt.After(sessions[j].StartAt)
	})
	if limit >= 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions
}
