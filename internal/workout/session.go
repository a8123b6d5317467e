package workout

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/repkit/repkit/internal/errors"
)

// ActiveSession is a workout session in progress. It lives only in working
// memory: nothing reaches the store until FinishSession, which converts it
// into an immutable WorkoutSession. Keeping the finished session a separate
// type makes post-finish mutation a compile-time error instead of a caller
// convention.
type ActiveSession struct {
	id         uuid.UUID
	templateID uuid.UUID
	name       string
	startAt    time.Time
	items      []SessionItem
	now        func() time.Time
}

// StartSession instantiates a runtime session from a template: one session
// item per block in block order, each with exactly block.Sets set slots
// pre-filled with the block's weight and reps as a starting suggestion.
//
// Blocks with an unresolved exercise reference are skipped; they cannot be
// logged against until the exercise is created in the library.
func (s *Service) StartSession(templateID uuid.UUID) (*ActiveSession, error) {
	tmpl, ok := s.store.TemplateByID(templateID)
	if !ok {
		return nil, errors.Wrap(ErrNotFound, "start session", slog.String("template_id", templateID.String()))
	}

	var items []SessionItem
	for _, block := range tmpl.Blocks {
		if !block.Resolved() {
			s.logger.Warn("skipping unresolved block at session start",
				slog.String("exercise_name", block.ExerciseName))
			continue
		}
		sets := make([]LoggedSet, block.Sets)
		for i := range sets {
			sets[i] = LoggedSet{
				ID:       uuid.New(),
				SetIndex: i,
				Weight:   block.Weight,
				Reps:     block.Reps,
				Warmup:   false,
			}
		}
		items = append(items, SessionItem{
			ID:         uuid.New(),
			ExerciseID: block.ExerciseID,
			Sets:       sets,
		})
	}

	return &ActiveSession{
		id:         uuid.New(),
		templateID: tmpl.ID,
		name:       tmpl.Name,
		startAt:    s.now(),
		items:      items,
		now:        s.now,
	}, nil
}

// Name returns the session's display name, copied from the template at
// session start.
func (a *ActiveSession) Name() string {
	return a.name
}

// StartAt returns the session's start time.
func (a *ActiveSession) StartAt() time.Time {
	return a.startAt
}

// Items returns a snapshot of the session items. Mutating the snapshot does
// not affect the session.
func (a *ActiveSession) Items() []SessionItem {
	items := make([]SessionItem, len(a.items))
	copy(items, a.items)
	for i, item := range a.items {
		sets := make([]LoggedSet, len(item.Sets))
		copy(sets, item.Sets)
		items[i].Sets = sets
	}
	return items
}

// UpdateSetWeight overwrites the weight of one set, regardless of its
// completion state. The completion timestamp is never touched.
func (a *ActiveSession) UpdateSetWeight(itemID uuid.UUID, setIndex int, weight float64) error {
	set, err := a.set(itemID, setIndex)
	if err != nil {
		return err
	}
	set.Weight = weight
	return nil
}

// UpdateSetReps overwrites the rep count of one set, regardless of its
// completion state.
func (a *ActiveSession) UpdateSetReps(itemID uuid.UUID, setIndex int, reps int) error {
	set, err := a.set(itemID, setIndex)
	if err != nil {
		return err
	}
	set.Reps = reps
	return nil
}

// MarkWarmup flags one set as a warm-up set.
func (a *ActiveSession) MarkWarmup(itemID uuid.UUID, setIndex int, warmup bool) error {
	set, err := a.set(itemID, setIndex)
	if err != nil {
		return err
	}
	set.Warmup = warmup
	return nil
}

// CompleteNextSet stamps the lowest-index incomplete set of the item with
// the current time and returns its index. Completed sets are never
// restamped; when every set of the item is already done it fails with
// ErrAllSetsDone and changes nothing.
func (a *ActiveSession) CompleteNextSet(itemID uuid.UUID) (int, error) {
	item, err := a.item(itemID)
	if err != nil {
		return 0, err
	}
	for i := range item.Sets {
		if !item.Sets[i].Completed() {
			item.Sets[i].CompletedAt = a.now()
			return i, nil
		}
	}
	return 0, errors.Wrap(ErrAllSetsDone, "complete next set", slog.String("item_id", itemID.String()))
}

// CompletedSets returns how many sets of the item have been completed.
func (a *ActiveSession) CompletedSets(itemID uuid.UUID) (int, error) {
	item, err := a.item(itemID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, set := range item.Sets {
		if set.Completed() {
			count++
		}
	}
	return count, nil
}

func (a *ActiveSession) item(itemID uuid.UUID) (*SessionItem, error) {
	for i := range a.items {
		if a.items[i].ID == itemID {
			return &a.items[i], nil
		}
	}
	return nil, errors.Wrap(ErrNotFound, "find session item", slog.String("item_id", itemID.String()))
}

func (a *ActiveSession) set(itemID uuid.UUID, setIndex int) (*LoggedSet, error) {
	item, err := a.item(itemID)
	if err != nil {
		return nil, err
	}
	if setIndex < 0 || setIndex >= len(item.Sets) {
		return nil, errors.Wrap(ErrNotFound, "find set",
			slog.String("item_id", itemID.String()), slog.Int("set_index", setIndex))
	}
	return &item.Sets[setIndex], nil
}

// finish seals the session: it stamps the end time, derives the duration and
// computes the volume over completed sets only.
func (a *ActiveSession) finish(endAt time.Time) WorkoutSession {
	volume := 0.0
	for _, item := range a.items {
		for _, set := range item.Sets {
			if set.Completed() {
				volume += set.Weight * float64(set.Reps)
			}
		}
	}
	return WorkoutSession{
		ID:          a.id,
		TemplateID:  a.templateID,
		Name:        a.name,
		StartAt:     a.startAt,
		EndAt:       endAt,
		DurationSec: int(endAt.Sub(a.startAt).Seconds()),
		Volume:      volume,
		Items:       a.Items(),
	}
}

// FinishSession seals the active session and records the resulting
// WorkoutSession in the store. This is a one-shot, terminal operation; the
// active session must not be used afterwards.
func (s *Service) FinishSession(a *ActiveSession) WorkoutSession {
	done := a.finish(s.now())
	s.store.AddSession(done)
	s.logger.Info("session recorded",
		slog.String("name", done.Name),
		slog.Int("duration_sec", done.DurationSec),
		slog.Float64("volume", done.Volume))
	return done
}
