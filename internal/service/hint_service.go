package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fundalabs/funda/config"
	"github.com/fundalabs/funda/internal/checker"
	"github.com/fundalabs/funda/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrHintUnavailable = errors.New("hint service is not configured")

// HintService produces a short AI explanation for an incorrect answer. It is
// strictly an enrichment on top of the deterministic checkers: correctness is
// never decided by the model.
type HintService interface {
	ExplainAnswer(ctx context.Context, q model.Question, language string, fb checker.Feedback, ans checker.Answer) (string, error)
}

type hintService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewHintService(cfg *config.Config) (HintService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. HintService will be non-functional.")
		return &hintService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	m := client.GenerativeModel("gemini-1.5-flash")
	return &hintService{client: m, cfg: cfg}, nil
}

func (s *hintService) ExplainAnswer(ctx context.Context, q model.Question, language string, fb checker.Feedback, ans checker.Answer) (string, error) {
	if s.client == nil {
		return "", ErrHintUnavailable
	}
	if !fb.IsChecked || fb.IsCorrect {
		return "", fmt.Errorf("hint requested without an incorrect checked answer for question %d", q.ID)
	}

	prompt := buildHintPrompt(q, language, fb, ans)
	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("Gemini hint generation failed")
		return "", fmt.Errorf("generating hint for question %d: %w", q.ID, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty hint response for question %d", q.ID)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	hint := strings.TrimSpace(sb.String())
	if hint == "" {
		return "", fmt.Errorf("empty hint text for question %d", q.ID)
	}
	return hint, nil
}

func buildHintPrompt(q model.Question, language string, fb checker.Feedback, ans checker.Answer) string {
	var sb strings.Builder
	sb.WriteString("You are a friendly language tutor. A learner answered a ")
	sb.WriteString(string(q.Type))
	sb.WriteString(" exercise incorrectly. In at most two sentences, explain the mistake and give a memorable tip. Target language code: ")
	sb.WriteString(language)
	sb.WriteString(".\n")
	if fb.CorrectAnswer != "" {
		sb.WriteString("Correct answer: ")
		sb.WriteString(fb.CorrectAnswer)
		sb.WriteString("\n")
	}
	if strings.TrimSpace(ans.TypedText) != "" {
		sb.WriteString("Learner typed: ")
		sb.WriteString(strings.TrimSpace(ans.TypedText))
		sb.WriteString("\n")
	}
	return sb.String()
}
