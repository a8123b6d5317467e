package diary_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/errors"
	"github.com/repkit/repkit/internal/store"
	"github.com/repkit/repkit/internal/testhelpers"
	"github.com/repkit/repkit/internal/workout"
)

func newTestService(t *testing.T) (*diary.Service, *store.Memory) {
	t.Helper()
	st := store.New(testhelpers.NewLogger(testhelpers.NewWriter(t)))
	return diary.NewService(st, testhelpers.NewLogger(testhelpers.NewWriter(t))), st
}

func TestSaveProfile(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	err := svc.SaveProfile(diary.UserProfile{Name: "  "})
	var validationErr *workout.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for a blank name, got %v", err)
	}

	profile := diary.UserProfile{
		Name:     "Alex Doe",
		Age:      30,
		WeightKg: 80,
		Goals:    diary.DailyGoals{Calories: 2500, SleepHours: 8},
	}
	if err = svc.SaveProfile(profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if got := svc.Profile(); got != profile {
		t.Errorf("expected profile %+v, got %+v", profile, got)
	}
}

func TestLogFood(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	log := svc.LogFood(at, diary.FoodItem{Name: "Oatmeal", Calories: 389})
	if len(log.Items) != 1 || log.Items[0].ID == uuid.Nil {
		t.Fatalf("expected one item with a minted identity, got %+v", log.Items)
	}
	svc.LogFood(at.Add(4*time.Hour), diary.FoodItem{Name: "Chicken Salad", Calories: 450})

	logs := svc.FoodFor(at)
	if len(logs) != 1 || len(logs[0].Items) != 2 {
		t.Errorf("expected both items under one same-day log, got %+v", logs)
	}
	if next := svc.FoodFor(at.AddDate(0, 0, 1)); len(next) != 0 {
		t.Errorf("expected the next day to be empty, got %+v", next)
	}
}

func TestLogSleep(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		hours   float64
		quality int
		wantErr bool
	}{
		{name: "valid", hours: 7.5, quality: 4},
		{name: "zero hours", hours: 0, quality: 3, wantErr: true},
		{name: "negative hours", hours: -1, quality: 3, wantErr: true},
		{name: "quality below range", hours: 8, quality: 0, wantErr: true},
		{name: "quality above range", hours: 8, quality: 6, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newTestService(t)

			_, err := svc.LogSleep(at, tt.hours, tt.quality)
			if tt.wantErr {
				var validationErr *workout.ValidationError
				if !errors.As(err, &validationErr) {
					t.Errorf("expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("log sleep: %v", err)
			}
		})
	}
}

func TestLogSleep_replacesSameDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	morning := time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC)
	if _, err := svc.LogSleep(morning, 6, 2); err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	if _, err := svc.LogSleep(morning.Add(2*time.Hour), 7.5, 4); err != nil {
		t.Fatalf("log sleep again: %v", err)
	}

	got, ok := svc.SleepFor(morning)
	if !ok {
		t.Fatal("expected a sleep log for the day")
	}
	if got.Hours != 7.5 || got.Quality != 4 {
		t.Errorf("expected the later entry to win, got %v hours quality %d", got.Hours, got.Quality)
	}
}

func TestMeals(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.AddMeal(diary.CustomMeal{Name: ""})
	var validationErr *workout.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for a blank meal name, got %v", err)
	}

	meal, err := svc.AddMeal(diary.CustomMeal{
		Name:  "Protein Shake",
		Items: []diary.FoodItem{{Name: "Whey", Calories: 120}},
	})
	if err != nil {
		t.Fatalf("add meal: %v", err)
	}
	if meal.Items[0].ID == uuid.Nil {
		t.Error("expected meal items to receive identities")
	}

	meal.Name = "Double Shake"
	if err = svc.UpdateMeal(meal); err != nil {
		t.Fatalf("update meal: %v", err)
	}
	if err = svc.DeleteMeal(meal.ID); err != nil {
		t.Fatalf("delete meal: %v", err)
	}
	if err = svc.DeleteMeal(meal.ID); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a repeated delete, got %v", err)
	}
	if err = svc.UpdateMeal(meal); !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("expected ErrNotFound for updating a deleted meal, got %v", err)
	}
}

func TestDailySummary(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	st.SetProfile(diary.UserProfile{
		Name:  "Alex Doe",
		Goals: diary.DailyGoals{Calories: 2500, SleepHours: 8},
	})

	at := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.LogFood(at, diary.FoodItem{Name: "Oatmeal", Calories: 389})
	svc.LogFood(at, diary.FoodItem{Name: "Chicken Salad", Calories: 450})
	if _, err := svc.LogSleep(at, 7.5, 4); err != nil {
		t.Fatalf("log sleep: %v", err)
	}
	st.AddSession(workout.WorkoutSession{ID: uuid.New(), Name: "Push", StartAt: at})
	st.AddSession(workout.WorkoutSession{ID: uuid.New(), Name: "Legs", StartAt: at.AddDate(0, 0, -1)})

	summary := svc.DailySummary(at)

	want := diary.Summary{
		Day:           "2026-09-01",
		CaloriesEaten: 839,
		CalorieGoal:   2500,
		Workouts:      1,
		SleepHours:    7.5,
		SleepGoal:     8,
	}
	if summary != want {
		t.Errorf("expected summary %+v, got %+v", want, summary)
	}
}

func TestDailySummary_emptyDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	summary := svc.DailySummary(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if summary.CaloriesEaten != 0 || summary.Workouts != 0 || summary.SleepHours != 0 {
		t.Errorf("expected zero values for an unlogged day, got %+v", summary)
	}
}

func TestRecentSessions(t *testing.T) {
	t.Parallel()
	svc, st := newTestService(t)

	base := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	for i, name := range []string{"Legs", "Push", "Pull"} {
		st.AddSession(workout.WorkoutSession{
			ID:      uuid.New(),
			Name:    name,
			StartAt: base.AddDate(0, 0, i),
		})
	}

	recent := svc.RecentSessions(2)
	if len(recent) != 2 {
		t.Fatalf("expected the limit to apply, got %d sessions", len(recent))
	}
	if recent[0].Name != "Pull" || recent[1].Name != "Push" {
		t.Errorf("expected newest-first ordering, got %q then %q", recent[0].Name, recent[1].Name)
	}

	if all := svc.RecentSessions(10); len(all) != 3 {
		t.Errorf("expected a generous limit to return everything, got %d", len(all))
	}
}
