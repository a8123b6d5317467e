package store

import (
	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/daykey"
	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/workout"
)

// Profile returns the user profile.
func (m *Memory) Profile() diary.UserProfile {
	return m.profile
}

// SetProfile replaces the user profile.
func (m *Memory) SetProfile(p diary.UserProfile) {
	m.profile = p
}

// AppendFood adds a food item to the given day's log, creating the log when
// the day has none yet, and returns the updated log.
func (m *Memory) AppendFood(day string, item diary.FoodItem) diary.FoodLog {
	for i := range m.foodLogs {
		if m.foodLogs[i].Day == day {
			m.foodLogs[i].Items = append(m.foodLogs[i].Items, item)
			return cloneFoodLog(m.foodLogs[i])
		}
	}
	log := diary.FoodLog{
		ID:    uuid.New(),
		Day:   day,
		Items: []diary.FoodItem{item},
	}
	m.foodLogs = append(m.foodLogs, log)
	return cloneFoodLog(log)
}

// FoodLogsByDay returns the food logs recorded under the given day key.
func (m *Memory) FoodLogsByDay(day string) []diary.FoodLog {
	var out []diary.FoodLog
	for _, log := range m.foodLogs {
		if log.Day == day {
			out = append(out, cloneFoodLog(log))
		}
	}
	return out
}

// UpsertSleep stores a sleep log, replacing an existing entry for the same
// day key. At most one sleep log exists per day.
func (m *Memory) UpsertSleep(log diary.SleepLog) diary.SleepLog {
	for i := range m.sleepLogs {
		if m.sleepLogs[i].Day == log.Day {
			m.sleepLogs[i] = log
			return log
		}
	}
	m.sleepLogs = append(m.sleepLogs, log)
	return log
}

// SleepByDay returns the sleep log for the given day key, if any.
func (m *Memory) SleepByDay(day string) (diary.SleepLog, bool) {
	for _, log := range m.sleepLogs {
		if log.Day == day {
			return log, true
		}
	}
	return diary.SleepLog{}, false
}

// AddMeal stores a custom meal, minting an identity when the draft has none.
func (m *Memory) AddMeal(meal diary.CustomMeal) diary.CustomMeal {
	if meal.ID == uuid.Nil {
		meal.ID = uuid.New()
	}
	m.meals = append(m.meals, cloneMeal(meal))
	return meal
}

// UpdateMeal replaces a custom meal by identity.
func (m *Memory) UpdateMeal(meal diary.CustomMeal) bool {
	for i := range m.meals {
		if m.meals[i].ID == meal.ID {
			m.meals[i] = cloneMeal(meal)
			return true
		}
	}
	return false
}

// DeleteMeal removes a custom meal by identity.
func (m *Memory) DeleteMeal(id uuid.UUID) bool {
	for i := range m.meals {
		if m.meals[i].ID == id {
			m.meals = append(m.meals[:i], m.meals[i+1:]...)
			return true
		}
	}
	return false
}

// Meals lists all custom meals.
func (m *Memory) Meals() []diary.CustomMeal {
	out := make([]diary.CustomMeal, 0, len(m.meals))
	for _, meal := range m.meals {
		out = append(out, cloneMeal(meal))
	}
	return out
}

// SessionsByDay returns the sessions whose start time falls on the given
// day key.
func (m *Memory) SessionsByDay(day string) []workout.WorkoutSession {
	var out []workout.WorkoutSession
	for _, sess := range m.sessions {
		if daykey.Key(sess.StartAt) == day {
			out = append(out, cloneSession(sess))
		}
	}
	return out
}

func cloneFoodLog(log diary.FoodLog) diary.FoodLog {
	log.Items = append([]diary.FoodItem(nil), log.Items...)
	return log
}

func cloneMeal(meal diary.CustomMeal) diary.CustomMeal {
	meal.Items = append([]diary.FoodItem(nil), meal.Items...)
	return meal
}
