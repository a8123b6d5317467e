package workout

import (
	"time"

	"github.com/google/uuid"
)

// ExerciseType classifies how an exercise loads the body.
type ExerciseType string

const (
	TypeCompound   ExerciseType = "compound"
	TypeIsolation  ExerciseType = "isolation"
	TypeCardio     ExerciseType = "cardio"
	TypeStretching ExerciseType = "stretching"
)

// MuscleGroup is a trainable muscle group.
type MuscleGroup string

const (
	MuscleChest      MuscleGroup = "chest"
	MuscleBack       MuscleGroup = "back"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleTriceps    MuscleGroup = "triceps"
	MuscleQuads      MuscleGroup = "quads"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleCalves     MuscleGroup = "calves"
	MuscleAbs        MuscleGroup = "abs"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleTraps      MuscleGroup = "traps"
	MuscleLats       MuscleGroup = "lats"
)

// MuscleGroups lists every known muscle group in display order.
var MuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleShoulders, MuscleBiceps, MuscleTriceps,
	MuscleQuads, MuscleHamstrings, MuscleGlutes, MuscleCalves, MuscleAbs,
	MuscleForearms, MuscleTraps, MuscleLats,
}

// Equipment is the implement an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentMachine    Equipment = "machine"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
	EquipmentBands      Equipment = "bands"
	EquipmentOther      Equipment = "other"
)

// MovementPattern groups exercises by the movement they train.
type MovementPattern string

const (
	MovementHorizontalPress MovementPattern = "horizontal press"
	MovementVerticalPress   MovementPattern = "vertical press"
	MovementHorizontalPull  MovementPattern = "horizontal pull"
	MovementVerticalPull    MovementPattern = "vertical pull"
	MovementSquat           MovementPattern = "squat"
	MovementHinge           MovementPattern = "hinge"
	MovementLunge           MovementPattern = "lunge"
	MovementIsolation       MovementPattern = "isolation"
	MovementCarry           MovementPattern = "carry"
	MovementOther           MovementPattern = "other"
)

// UnitMode is the mass unit an exercise is logged in.
type UnitMode string

const (
	UnitKg  UnitMode = "kg"
	UnitLbs UnitMode = "lbs"
)

// Exercise is a single exercise type in the library, e.g. Squat or Bench Press.
//
// Exercises are archived rather than deleted so that historical sessions and
// templates keep resolving their references.
type Exercise struct {
	ID               uuid.UUID
	Name             string
	Type             ExerciseType
	PrimaryMuscles   []MuscleGroup
	SecondaryMuscles []MuscleGroup
	Equipment        Equipment
	MovementPattern  MovementPattern
	UnitMode         UnitMode
	DefaultReps      int
	DefaultRestSec   int
	DefaultWeight    float64
	Notes            string
	Tempo            string
	Archived         bool
}

// ExerciseBlock is one line item inside a template. It references an exercise
// and carries its own prescription, which may diverge from the exercise's
// defaults. Its position in the template's block sequence is its execution
// order.
type ExerciseBlock struct {
	ID uuid.UUID
	// ExerciseID references the library exercise. UnresolvedExerciseID marks
	// an AI suggestion that has no matching library entry yet.
	ExerciseID uuid.UUID
	// ExerciseName carries the suggested name for display when ExerciseID is
	// unresolved. Empty for resolved blocks.
	ExerciseName string
	Sets         int
	Reps         int
	Weight       float64
	RestSec      int
}

// UnresolvedExerciseID is the sentinel reference for blocks whose exercise
// has not been matched against the library.
var UnresolvedExerciseID = uuid.Nil

// Resolved reports whether the block references a real library exercise.
func (b ExerciseBlock) Resolved() bool {
	return b.ExerciseID != UnresolvedExerciseID
}

// WorkoutTemplate is a reusable, ordered workout plan.
type WorkoutTemplate struct {
	ID       uuid.UUID
	Name     string
	Goal     string
	Notes    string
	Blocks   []ExerciseBlock
	Archived bool
}

// LoggedSet is one set's runtime record. A zero CompletedAt means the set has
// not been performed yet; it transitions to a timestamp exactly once.
type LoggedSet struct {
	ID          uuid.UUID
	SetIndex    int
	Weight      float64
	Reps        int
	Warmup      bool
	CompletedAt time.Time
}

// Completed reports whether the set has been performed.
func (s LoggedSet) Completed() bool {
	return !s.CompletedAt.IsZero()
}

// SessionItem is the runtime instantiation of one block during a session.
// Its set count is fixed at session start to the originating block's Sets.
type SessionItem struct {
	ID         uuid.UUID
	ExerciseID uuid.UUID
	Sets       []LoggedSet
}

// WorkoutSession is a finished, time-stamped execution of a template. The
// store treats sessions as append-only: they are recorded once and never
// edited.
type WorkoutSession struct {
	ID         uuid.UUID
	TemplateID uuid.UUID
	// Name is copied from the template at session start, not live-linked.
	Name        string
	StartAt     time.Time
	EndAt       time.Time
	DurationSec int
	// Volume is the aggregate training load: weight times reps summed over
	// completed sets only.
	Volume float64
	Items  []SessionItem
}
