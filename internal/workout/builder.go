package workout

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/errors"
)

// Block-sequence editing for the template builder. Every operation returns a
// fresh slice so that no caller observes another caller's in-place mutation.

const (
	defaultBlockSets  = 3
	fallbackBlockReps = 8
	fallbackBlockRest = 60
)

// ErrIndexOutOfRange signals a MoveBlock call with indices that do not match
// the current block sequence. The sequence is left unchanged.
var ErrIndexOutOfRange = errors.NewSentinel("block index out of range")

// AddBlock appends a new block seeded from the exercise's defaults. The set
// count is always 3; reps, weight and rest fall back to 8 reps, 0 weight and
// 60 seconds rest when the exercise has no defaults configured.
func AddBlock(blocks []ExerciseBlock, ex Exercise) []ExerciseBlock {
	block := ExerciseBlock{
		ID:         uuid.New(),
		ExerciseID: ex.ID,
		Sets:       defaultBlockSets,
		Reps:       ex.DefaultReps,
		Weight:     ex.DefaultWeight,
		RestSec:    ex.DefaultRestSec,
	}
	if block.Reps == 0 {
		block.Reps = fallbackBlockReps
	}
	if block.RestSec == 0 {
		block.RestSec = fallbackBlockRest
	}

	out := make([]ExerciseBlock, 0, len(blocks)+1)
	out = append(out, blocks...)
	return append(out, block)
}

// UpdateBlock applies mutate to the block with the given ID and returns the
// resulting sequence. Unknown IDs are a no-op: the returned sequence equals
// the input.
func UpdateBlock(blocks []ExerciseBlock, blockID uuid.UUID, mutate func(*ExerciseBlock)) []ExerciseBlock {
	out := make([]ExerciseBlock, len(blocks))
	copy(out, blocks)
	for i := range out {
		if out[i].ID == blockID {
			mutate(&out[i])
			break
		}
	}
	return out
}

// RemoveBlock drops the block with the given ID, preserving the order of the
// remainder. Unknown IDs are a no-op.
func RemoveBlock(blocks []ExerciseBlock, blockID uuid.UUID) []ExerciseBlock {
	out := make([]ExerciseBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.ID != blockID {
			out = append(out, b)
		}
	}
	return out
}

// MoveBlock removes the element at from and reinserts it at to in a single
// splice, shifting the intervening elements by one position. The indices are
// expected to come from the currently rendered order; out-of-range values
// fail with ErrIndexOutOfRange and leave the sequence unchanged.
func MoveBlock(blocks []ExerciseBlock, from, to int) ([]ExerciseBlock, error) {
	if from < 0 || from >= len(blocks) || to < 0 || to >= len(blocks) {
		return nil, errors.Wrap(ErrIndexOutOfRange, "move block",
			slog.Int("from", from), slog.Int("to", to), slog.Int("len", len(blocks)))
	}

	out := make([]ExerciseBlock, len(blocks))
	copy(out, blocks)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]ExerciseBlock{moved}, out[to:]...)...)
	return out, nil
}
