// Command repkit wires the in-memory application together and runs one
// scripted day through it: seed the library, run a workout session from the
// starter template, log food and sleep, and print the daily summary. All
// state lives in process memory; nothing survives an exit.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/repkit/repkit/internal/diary"
	"github.com/repkit/repkit/internal/envstruct"
	"github.com/repkit/repkit/internal/errors"
	"github.com/repkit/repkit/internal/logging"
	"github.com/repkit/repkit/internal/store"
	"github.com/repkit/repkit/internal/workout"
)

type config struct {
	// OpenAIAPIKey enables AI plan generation when set. Everything else works
	// without it.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// Seed controls whether the starter exercise library and template are
	// loaded at startup.
	Seed bool `env:"REPKIT_SEED" envDefault:"true"`
	// GenTimeoutSec bounds the AI plan generation round-trip.
	GenTimeoutSec int `env:"REPKIT_GEN_TIMEOUT_SEC" envDefault:"60"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	st := store.New(logger)
	if cfg.Seed {
		st.Seed()
	}
	workouts := workout.NewService(st, logger, cfg.OpenAIAPIKey)
	diaries := diary.NewService(st, logger)

	templates := workouts.Templates()
	if len(templates) == 0 {
		return errors.New("no templates available; set REPKIT_SEED=true")
	}
	tmpl := templates[0]
	ctx = logging.WithAttrs(ctx, slog.String("template", tmpl.Name))

	session, err := workouts.StartSession(tmpl.ID)
	if err != nil {
		return errors.Wrap(err, "start session")
	}
	for _, item := range session.Items() {
		for range item.Sets {
			if _, err = session.CompleteNextSet(item.ID); err != nil {
				return errors.Wrap(err, "complete set")
			}
		}
	}
	done := workouts.FinishSession(session)
	logger.LogAttrs(ctx, slog.LevelInfo, "workout finished",
		slog.Float64("volume", done.Volume),
		slog.Int("duration_sec", done.DurationSec))

	now := time.Now()
	diaries.LogFood(now, diary.FoodItem{Name: "Oatmeal", Calories: 389, ProteinG: 17, CarbsG: 66, FatsG: 7})
	if _, err = diaries.LogSleep(now, 7.5, 4); err != nil {
		return errors.Wrap(err, "log sleep")
	}

	if cfg.OpenAIAPIKey != "" {
		genCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.GenTimeoutSec)*time.Second)
		defer cancel()
		plan, genErr := workouts.GeneratePlan(genCtx, workout.PlanRequest{
			Goal:       "hypertrophy",
			Experience: "intermediate",
			Equipment:  []string{"barbell", "dumbbell", "bodyweight"},
		})
		if genErr != nil {
			logger.LogAttrs(ctx, slog.LevelWarn, "plan generation failed", errors.SlogError(genErr))
		} else {
			logger.LogAttrs(ctx, slog.LevelInfo, "plan generated",
				slog.String("name", plan.Draft.Name),
				slog.Int("blocks", len(plan.Draft.Blocks)),
				slog.Int("unresolved", len(plan.Warnings)))
		}
	}

	summary := diaries.DailySummary(now)
	logger.LogAttrs(ctx, slog.LevelInfo, "daily summary",
		slog.String("day", summary.Day),
		slog.Float64("calories_eaten", summary.CaloriesEaten),
		slog.Int("calorie_goal", summary.CalorieGoal),
		slog.Int("workouts", summary.Workouts),
		slog.Float64("sleep_hours", summary.SleepHours))

	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure running application", errors.SlogError(err))
		os.Exit(1)
	}
}
