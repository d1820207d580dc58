package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"alcyxob/sportplan/internal/config"
)

// ErrGenerationFailed wraps any upstream failure of the text service.
var ErrGenerationFailed = errors.New("workout generation failed")

// geminiGenerator calls the Gemini generateContent REST endpoint.
type geminiGenerator struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewGeminiGenerator creates a Generator backed by the Gemini API.
func NewGeminiGenerator(cfg config.AIConfig) (Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &geminiGenerator{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}, nil
}

// --- wire types for the generateContent endpoint ---

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate asks Gemini for one session's content. An unusable response
// degrades to the deterministic fallback workout rather than an error;
// only transport and API failures are surfaced.
func (g *geminiGenerator) Generate(ctx context.Context, req GenerationRequest) (*GeneratedWorkout, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(req)}}}},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.model, g.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid response: %v", ErrGenerationFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, fmt.Errorf("%w: %s", ErrGenerationFailed, msg)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return FallbackWorkout(req), nil
	}

	workout, ok := extractWorkoutJSON(parsed.Candidates[0].Content.Parts[0].Text)
	if !ok {
		return FallbackWorkout(req), nil
	}
	fillDefaults(workout, req)
	return workout, nil
}

// extractWorkoutJSON pulls the first {...} block out of the model's text
// reply and unmarshals it. Models wrap JSON in prose or code fences often
// enough that this cannot assume a clean body.
func extractWorkoutJSON(text string) (*GeneratedWorkout, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	var workout GeneratedWorkout
	if err := json.Unmarshal([]byte(text[start:end+1]), &workout); err != nil {
		return nil, false
	}
	return &workout, true
}

// fillDefaults patches any structure the model left out.
func fillDefaults(w *GeneratedWorkout, req GenerationRequest) {
	if w.Title == "" {
		w.Title = fmt.Sprintf("%s %s session", req.Sport, req.WorkoutType)
	}
	if len(w.Warmup) == 0 {
		w.Warmup = []string{"Dynamic warm-up", "Joint mobility", "Light movement preparation"}
	}
	if len(w.Exercises) == 0 {
		w.Exercises = []Exercise{
			{Name: "Main Exercise", Sets: 3, Reps: "8-12", Rest: "60s", Description: "Primary movement pattern"},
		}
	}
	if len(w.Cooldown) == 0 {
		w.Cooldown = []string{"Static stretching", "Deep breathing", "Recovery"}
	}
}

func buildPrompt(req GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a %d-minute %s %s session for a %s level athlete.\n",
		req.DurationMinutes, req.Sport, req.WorkoutType, orDefault(req.FitnessLevel, "intermediate"))
	if len(req.Equipment) > 0 {
		fmt.Fprintf(&b, "Available equipment: %s.\n", strings.Join(req.Equipment, ", "))
	}
	fmt.Fprintf(&b, "Goals: %s.\n", orDefault(req.Goals, "improve "+req.Sport+" performance"))

	if len(req.PreviousSessions) > 0 {
		b.WriteString("\nRecent training history (consider for progression and variety):\n")
		for _, prev := range req.PreviousSessions {
			status := "not completed"
			if prev.Completed {
				status = "completed"
			}
			fmt.Fprintf(&b, "- %s (%s) - %s\n", prev.Title, status, prev.Date.Format("2006-01-02"))
		}
	}

	b.WriteString(`
Provide a structured plan with a warm-up, the main work with sets, reps and rest periods, and a cool-down.
Format the answer as JSON with this structure:
{
  "title": "Session name",
  "warmup": ["exercise 1", "exercise 2"],
  "exercises": [{"name": "Exercise Name", "sets": 3, "reps": "8-12", "rest": "60s", "description": "Brief description"}],
  "cooldown": ["stretch 1", "stretch 2"]
}`)
	return b.String()
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
