package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/store"
	"github.com/repkit/repkit/internal/testhelpers"
	"github.com/repkit/repkit/internal/workout"
)

func newStore(t *testing.T) *store.Memory {
	t.Helper()
	return store.New(testhelpers.NewLogger(testhelpers.NewWriter(t)))
}

func TestAddExercise_mintsIdentity(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	added := st.AddExercise(workout.Exercise{Name: "Deadlift"})
	if added.ID == uuid.Nil {
		t.Fatal("expected a minted identity")
	}
	if _, ok := st.ExerciseByID(added.ID); !ok {
		t.Error("expected the exercise to resolve by its minted identity")
	}
}

func TestExerciseListings_returnCopies(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	added := st.AddExercise(workout.Exercise{
		Name:           "Barbell Squat",
		PrimaryMuscles: []workout.MuscleGroup{workout.MuscleQuads},
	})

	listed := st.ActiveExercises()
	listed[0].PrimaryMuscles[0] = workout.MuscleAbs
	listed[0].Name = "Hacked"

	got, ok := st.ExerciseByID(added.ID)
	if !ok {
		t.Fatal("exercise vanished")
	}
	if got.Name != "Barbell Squat" || got.PrimaryMuscles[0] != workout.MuscleQuads {
		t.Error("mutating a listing leaked into the store")
	}
}

func TestActiveExercises_excludesArchived(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	kept := st.AddExercise(workout.Exercise{Name: "Pull Up"})
	archived := st.AddExercise(workout.Exercise{Name: "Leg Press", Archived: true})

	active := st.ActiveExercises()
	if len(active) != 1 || active[0].ID != kept.ID {
		t.Errorf("expected only the non-archived exercise, got %v", active)
	}
	if len(st.AllExercises()) != 2 {
		t.Error("expected the full listing to include archived entries")
	}
	if _, ok := st.ExerciseByID(archived.ID); !ok {
		t.Error("expected the archived exercise to stay resolvable by identity")
	}
}

func TestAddTemplate_mintsBlockIdentities(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	added := st.AddTemplate(workout.WorkoutTemplate{
		Name: "Leg Day",
		Blocks: []workout.ExerciseBlock{
			{ExerciseID: uuid.New(), Sets: 3, Reps: 5},
			{ExerciseID: uuid.New(), Sets: 3, Reps: 8},
		},
	})

	if added.ID == uuid.Nil {
		t.Error("expected a minted template identity")
	}
	for i, block := range added.Blocks {
		if block.ID == uuid.Nil {
			t.Errorf("block %d: expected a minted identity", i)
		}
	}
}

func TestDeleteTemplate_preservesOrder(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	first := st.AddTemplate(workout.WorkoutTemplate{Name: "A"})
	second := st.AddTemplate(workout.WorkoutTemplate{Name: "B"})
	third := st.AddTemplate(workout.WorkoutTemplate{Name: "C"})

	if ok := st.DeleteTemplate(second.ID); !ok {
		t.Fatal("expected delete to resolve")
	}
	if ok := st.DeleteTemplate(second.ID); ok {
		t.Error("expected repeated delete to miss")
	}

	templates := st.Templates()
	if len(templates) != 2 || templates[0].ID != first.ID || templates[1].ID != third.ID {
		t.Errorf("expected remaining templates in insertion order, got %v", templates)
	}
}

func TestAppendFood_groupsByDay(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	day := "2026-09-01"
	st.AppendFood(day, diary.FoodItem{Name: "Oatmeal", Calories: 389})
	updated := st.AppendFood(day, diary.FoodItem{Name: "Banana", Calories: 105})
	st.AppendFood("2026-09-02", diary.FoodItem{Name: "Eggs", Calories: 155})

	if len(updated.Items) != 2 {
		t.Errorf("expected same-day items to share one log, got %d items", len(updated.Items))
	}
	logs := st.FoodLogsByDay(day)
	if len(logs) != 1 {
		t.Fatalf("expected one log for the day, got %d", len(logs))
	}
	logs[0].Items[0].Calories = 9999
	if st.FoodLogsByDay(day)[0].Items[0].Calories != 389 {
		t.Error("mutating a returned log leaked into the store")
	}
}

func TestUpsertSleep_replacesSameDay(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	day := "2026-09-01"
	st.UpsertSleep(diary.SleepLog{ID: uuid.New(), Day: day, Hours: 6, Quality: 2})
	st.UpsertSleep(diary.SleepLog{ID: uuid.New(), Day: day, Hours: 8, Quality: 4})

	got, ok := st.SleepByDay(day)
	if !ok {
		t.Fatal("expected a sleep log for the day")
	}
	if got.Hours != 8 || got.Quality != 4 {
		t.Errorf("expected the later entry to win, got %v hours quality %d", got.Hours, got.Quality)
	}
	if _, ok = st.SleepByDay("2026-09-02"); ok {
		t.Error("expected no sleep log for an unlogged day")
	}
}

func TestSessionsByDay(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	monday := time.Date(2026, 8, 31, 18, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 1, 7, 30, 0, 0, time.UTC)
	st.AddSession(workout.WorkoutSession{ID: uuid.New(), Name: "Legs", StartAt: monday})
	st.AddSession(workout.WorkoutSession{ID: uuid.New(), Name: "Push", StartAt: tuesday})
	st.AddSession(workout.WorkoutSession{ID: uuid.New(), Name: "Pull", StartAt: tuesday.Add(10 * time.Hour)})

	if got := st.SessionsByDay("2026-09-01"); len(got) != 2 {
		t.Errorf("expected two sessions on 2026-09-01, got %d", len(got))
	}
	if got := st.SessionsByDay("2026-08-31"); len(got) != 1 || got[0].Name != "Legs" {
		t.Errorf("expected only the Monday session, got %v", got)
	}
}

func TestMeals_copySemantics(t *testing.T) {
	t.Parallel()
	st := newStore(t)

	meal := st.AddMeal(diary.CustomMeal{
		Name:  "Protein Shake",
		Items: []diary.FoodItem{{ID: uuid.New(), Name: "Whey", Calories: 120}},
	})
	if meal.ID == uuid.Nil {
		t.Fatal("expected a minted identity")
	}

	listed := st.Meals()
	listed[0].Items[0].Calories = 9999
	if st.Meals()[0].Items[0].Calories != 120 {
		t.Error("mutating a listed meal leaked into the store")
	}

	meal.Name = "Double Shake"
	if ok := st.UpdateMeal(meal); !ok {
		t.Fatal("expected update to resolve")
	}
	if st.Meals()[0].Name != "Double Shake" {
		t.Error("expected the update to apply")
	}

	if ok := st.DeleteMeal(meal.ID); !ok {
		t.Fatal("expected delete to resolve")
	}
	if ok := st.DeleteMeal(meal.ID); ok {
		t.Error("expected repeated delete to miss")
	}
}

func TestSeed(t *testing.T) {
	t.Parallel()
	st := newStore(t)
	st.Seed()

	if got := len(st.ActiveExercises()); got != 5 {
		t.Errorf("expected 5 seeded exercises, got %d", got)
	}
	templates := st.Templates()
	if len(templates) != 1 {
		t.Fatalf("expected one seeded template, got %d", len(templates))
	}
	for i, block := range templates[0].Blocks {
		if !block.Resolved() {
			t.Errorf("block %d: expected seeded blocks to reference seeded exercises", i)
		}
	}
	if st.Profile().Goals.Calories != 2500 {
		t.Errorf("expected the seeded calorie goal, got %d", st.Profile().Goals.Calories)
	}
}
