// Package diary covers the daily-wellness side of the application: the user
// profile with its daily goals, food and sleep logs bucketed by calendar
// day, reusable custom meals and the dashboard summary that aggregates them.
package diary

import (
	"github.com/google/uuid"
)

// DailyGoals are the user's daily nutrition and sleep targets.
type DailyGoals struct {
	Calories   int
	ProteinG   int
	CarbsG     int
	FatsG      int
	SleepHours float64
}

// UserProfile is the singleton user record: identity, biometrics and goals.
type UserProfile struct {
	Name     string
	Age      int
	WeightKg float64
	HeightCm float64
	Goals    DailyGoals
}

// FoodItem is one logged or reusable food entry with its macros.
type FoodItem struct {
	ID       uuid.UUID
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatsG    float64
}

// FoodLog groups the food items eaten on one calendar day. Day is a day key
// in YYYY-MM-DD form.
type FoodLog struct {
	ID    uuid.UUID
	Day   string
	Items []FoodItem
}

// SleepLog records one night's sleep. At most one log exists per day key;
// logging again for the same day replaces the earlier entry.
type SleepLog struct {
	ID      uuid.UUID
	Day     string
	Hours   float64
	Quality int
}

// CustomMeal is a reusable named collection of food items.
type CustomMeal struct {
	ID    uuid.UUID
	Name  string
	Items []FoodItem
}
