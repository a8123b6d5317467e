package store

import (
	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/workout"
)

// Seed loads the starter exercise library, a full-body template built from
// it and a default profile. Meant for fresh stores only.
func (m *Memory) Seed() {
	bench := m.AddExercise(workout.Exercise{
		Name:            "Barbell Bench Press",
		Type:            workout.TypeCompound,
		PrimaryMuscles:  []workout.MuscleGroup{workout.MuscleChest},
		SecondaryMuscles: []workout.MuscleGroup{
			workout.MuscleShoulders, workout.MuscleTriceps,
		},
		Equipment:       workout.EquipmentBarbell,
		MovementPattern: workout.MovementHorizontalPress,
		UnitMode:        workout.UnitKg,
		DefaultReps:     8,
		DefaultRestSec:  90,
		DefaultWeight:   60,
	})
	squat := m.AddExercise(workout.Exercise{
		Name:            "Barbell Squat",
		Type:            workout.TypeCompound,
		PrimaryMuscles:  []workout.MuscleGroup{workout.MuscleQuads, workout.MuscleGlutes},
		Equipment:       workout.EquipmentBarbell,
		MovementPattern: workout.MovementSquat,
		UnitMode:        workout.UnitKg,
		DefaultReps:     10,
		DefaultRestSec:  120,
		DefaultWeight:   80,
	})
	m.AddExercise(workout.Exercise{
		Name: "Deadlift",
		Type: workout.TypeCompound,
		PrimaryMuscles: []workout.MuscleGroup{
			workout.MuscleBack, workout.MuscleHamstrings, workout.MuscleGlutes,
		},
		Equipment:       workout.EquipmentBarbell,
		MovementPattern: workout.MovementHinge,
		UnitMode:        workout.UnitKg,
		DefaultReps:     5,
		DefaultRestSec:  150,
		DefaultWeight:   100,
	})
	m.AddExercise(workout.Exercise{
		Name:            "Dumbbell Bicep Curl",
		Type:            workout.TypeIsolation,
		PrimaryMuscles:  []workout.MuscleGroup{workout.MuscleBiceps},
		Equipment:       workout.EquipmentDumbbell,
		MovementPattern: workout.MovementIsolation,
		UnitMode:        workout.UnitKg,
		DefaultReps:     12,
		DefaultRestSec:  60,
		DefaultWeight:   10,
	})
	pullUp := m.AddExercise(workout.Exercise{
		Name:             "Pull Up",
		Type:             workout.TypeCompound,
		PrimaryMuscles:   []workout.MuscleGroup{workout.MuscleLats, workout.MuscleBack},
		SecondaryMuscles: []workout.MuscleGroup{workout.MuscleBiceps},
		Equipment:        workout.EquipmentBodyweight,
		MovementPattern:  workout.MovementVerticalPull,
		UnitMode:         workout.UnitKg,
		DefaultReps:      8,
		DefaultRestSec:   90,
	})

	m.AddTemplate(workout.WorkoutTemplate{
		Name: "Full Body Strength",
		Goal: "strength",
		Blocks: []workout.ExerciseBlock{
			{ExerciseID: squat.ID, Sets: 3, Reps: 5, Weight: 80, RestSec: 120},
			{ExerciseID: bench.ID, Sets: 3, Reps: 5, Weight: 60, RestSec: 90},
			{ExerciseID: pullUp.ID, Sets: 3, Reps: 8, Weight: 0, RestSec: 90},
		},
	})

	m.SetProfile(diary.UserProfile{
		Name:     "Alex Doe",
		Age:      30,
		WeightKg: 80,
		HeightCm: 180,
		Goals: diary.DailyGoals{
			Calories:   2500,
			ProteinG:   160,
			CarbsG:     300,
			FatsG:      70,
			SleepHours: 8,
		},
	})
}
