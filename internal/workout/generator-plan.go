package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// PlanRequest describes what the AI plan generator should produce.
type PlanRequest struct {
	Goal       string
	Experience string
	Equipment  []string
}

// GeneratedPlan is the reconciled result of one generation call. Draft is an
// unsaved template; Warnings lists suggested exercises that could not be
// matched against the library.
type GeneratedPlan struct {
	Draft    WorkoutTemplate
	Warnings []UnresolvedWarning
}

// planDocument is the strict output contract with the generation service.
// Every field is required; any deviation fails the whole call.
type planDocument struct {
	Name   string      `json:"name"`
	Goal   string      `json:"goal"`
	Notes  string      `json:"notes"`
	Blocks []planBlock `json:"blocks"`
}

type planBlock struct {
	ExerciseName string `json:"exerciseName"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	RestSec      int    `json:"rest_sec"`
}

// completionClient abstracts the structured-output chat completion call so
// reconciliation can be tested without network access.
type completionClient interface {
	completeJSON(ctx context.Context, prompt, schemaName string, schema map[string]any) (string, error)
}

// openaiCompleter is the production completionClient backed by OpenAI.
type openaiCompleter struct {
	client openai.Client
}

func newOpenAICompleter(apiKey string) *openaiCompleter {
	return &openaiCompleter{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (c *openaiCompleter) completeJSON(
	ctx context.Context,
	prompt, schemaName string,
	schema map[string]any,
) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        schemaName,
					Description: openai.String("A structured single-session workout plan"),
					Schema:      schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// GeneratePlan asks the generation service for a workout plan and reconciles
// the suggested exercise names against the active library. Unmatched names
// become unresolved placeholder blocks and a warning each; they never abort
// the rest of the plan. Credential, transport and parse failures abort the
// whole call with a GenerationError.
//
// Overlapping calls with identical parameters are collapsed into a single
// outstanding request per invocation site.
func (s *Service) GeneratePlan(ctx context.Context, req PlanRequest) (GeneratedPlan, error) {
	if s.planner == nil {
		return GeneratedPlan{}, &GenerationError{Reason: "API key is not configured"}
	}

	key := strings.Join([]string{req.Goal, req.Experience, strings.Join(req.Equipment, ",")}, "|")
	result, err, _ := s.flight.Do(key, func() (any, error) {
		return s.generatePlan(ctx, req)
	})
	if err != nil {
		return GeneratedPlan{}, err
	}
	plan, ok := result.(GeneratedPlan)
	if !ok {
		return GeneratedPlan{}, &GenerationError{Reason: "unexpected generation result type"}
	}
	return plan, nil
}

func (s *Service) generatePlan(ctx context.Context, req PlanRequest) (GeneratedPlan, error) {
	library := s.store.ActiveExercises()
	names := make([]string, len(library))
	for i, ex := range library {
		names[i] = ex.Name
	}

	raw, err := s.planner.completeJSON(ctx, planPrompt(req, names), "workout_plan", planSchema())
	if err != nil {
		return GeneratedPlan{}, &GenerationError{Reason: "completion request failed", Err: err}
	}

	var doc planDocument
	if err = json.Unmarshal([]byte(raw), &doc); err != nil {
		return GeneratedPlan{}, &GenerationError{Reason: "response is not valid JSON", Err: err}
	}
	if err = doc.validate(); err != nil {
		return GeneratedPlan{}, &GenerationError{Reason: "response violates the plan contract", Err: err}
	}

	draft, warnings := s.reconcile(doc, library)
	for _, w := range warnings {
		s.logger.Warn("plan references unknown exercise", slog.String("name", w.ExerciseName))
	}
	return GeneratedPlan{Draft: draft, Warnings: warnings}, nil
}

// reconcile maps suggested exercise names onto library identities with a
// case-insensitive exact-name lookup. Matched blocks take the exercise's
// default weight and the service's suggested rest; unmatched blocks keep the
// suggested name for display behind the unresolved sentinel reference.
func (s *Service) reconcile(doc planDocument, library []Exercise) (WorkoutTemplate, []UnresolvedWarning) {
	var warnings []UnresolvedWarning
	blocks := make([]ExerciseBlock, 0, len(doc.Blocks))
	for _, suggested := range doc.Blocks {
		block := ExerciseBlock{
			ID:      uuid.New(),
			Sets:    suggested.Sets,
			Reps:    suggested.Reps,
			RestSec: suggested.RestSec,
		}
		if match, ok := findByName(library, suggested.ExerciseName); ok {
			block.ExerciseID = match.ID
			block.Weight = match.DefaultWeight
		} else {
			block.ExerciseID = UnresolvedExerciseID
			block.ExerciseName = suggested.ExerciseName
			block.Weight = 0
			warnings = append(warnings, UnresolvedWarning{ExerciseName: suggested.ExerciseName})
		}
		blocks = append(blocks, block)
	}

	return WorkoutTemplate{
		Name:   doc.Name,
		Goal:   doc.Goal,
		Notes:  doc.Notes,
		Blocks: blocks,
	}, warnings
}

func findByName(library []Exercise, name string) (Exercise, bool) {
	for _, ex := range library {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return Exercise{}, false
}

func (d planDocument) validate() error {
	if d.Name == "" {
		return fmt.Errorf("missing plan name")
	}
	if d.Goal == "" {
		return fmt.Errorf("missing plan goal")
	}
	if len(d.Blocks) == 0 {
		return fmt.Errorf("plan has no blocks")
	}
	for i, b := range d.Blocks {
		if b.ExerciseName == "" {
			return fmt.Errorf("block %d: missing exercise name", i)
		}
		if b.Sets <= 0 || b.Reps <= 0 {
			return fmt.Errorf("block %d: sets and reps must be positive", i)
		}
		if b.RestSec < 0 {
			return fmt.Errorf("block %d: rest must not be negative", i)
		}
	}
	return nil
}

func planPrompt(req PlanRequest, availableExercises []string) string {
	return fmt.Sprintf(`You are a world-class strength and conditioning coach. Create a single, effective workout session for a %s individual whose primary goal is %s.

They have access to the following equipment: %s.

Please create a workout plan that primarily uses exercises from this list of available exercises: %s.
If a perfect exercise from the list isn't available for a specific muscle group, you can suggest a common alternative, but prioritize the provided list.

The response MUST be a valid JSON object that strictly adheres to the provided schema. Do not include any markdown formatting.`,
		req.Experience, req.Goal,
		strings.Join(req.Equipment, ", "),
		strings.Join(availableExercises, ", "))
}

func planSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"name", "goal", "notes", "blocks"},
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "A creative and fitting name for the workout plan",
			},
			"goal": map[string]any{
				"type":        "string",
				"description": "The primary goal of the workout, e.g. strength or hypertrophy",
			},
			"notes": map[string]any{
				"type":        "string",
				"description": "A brief description of the workout plan and its focus",
			},
			"blocks": map[string]any{
				"type":        "array",
				"description": "The exercise blocks of the workout in execution order",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"exerciseName", "sets", "reps", "rest_sec"},
					"properties": map[string]any{
						"exerciseName": map[string]any{
							"type":        "string",
							"description": "The name of the exercise",
						},
						"sets": map[string]any{
							"type":        "integer",
							"description": "Number of sets",
						},
						"reps": map[string]any{
							"type":        "integer",
							"description": "Number of repetitions per set",
						},
						"rest_sec": map[string]any{
							"type":        "integer",
							"description": "Rest time in seconds between sets",
						},
					},
					"additionalProperties": false,
				},
			},
		},
		"additionalProperties": false,
	}
}
