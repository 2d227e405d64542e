package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/clients/openai"
	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

// Fallback texts shown when the assistant cannot answer. The timeout text
// nudges the user toward a simpler question; the error text does not.
const (
	AssistantTimeoutFallback = "I'm sorry, but it's taking me longer than expected to process your request. Please try asking again or simplify your question."
	AssistantErrorFallback   = "I apologize, but I'm having trouble processing your request at the moment. Please try again later."
)

const (
	assistantTemperature = 0.5
	assistantMaxTokens   = 250

	questionMaxLen = 500
)

type AskResult struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// AssistantService answers free-form health questions and keeps the chat
// history.
type AssistantService interface {
	Ask(ctx context.Context, userID uuid.UUID, question string) (*AskResult, error)
}

type assistantService struct {
	db       *gorm.DB
	log      *logger.Logger
	client   openai.Client
	chatRepo repos.ChatMessageRepo
	timeout  time.Duration
}

func NewAssistantService(db *gorm.DB, log *logger.Logger, client openai.Client, chatRepo repos.ChatMessageRepo, timeout time.Duration) AssistantService {
	if timeout <= 0 {
		timeout = 50 * time.Second
	}
	return &assistantService{
		db:       db,
		log:      log.With("service", "AssistantService"),
		client:   client,
		chatRepo: chatRepo,
		timeout:  timeout,
	}
}

func (s *assistantService) Ask(ctx context.Context, userID uuid.UUID, question string) (*AskResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: question is required", pkgerrors.ErrInvalidArgument)
	}
	if len(question) > questionMaxLen {
		return nil, fmt.Errorf("%w: question exceeds %d characters", pkgerrors.ErrInvalidArgument, questionMaxLen)
	}

	start := time.Now()
	answer := s.answer(ctx, question)
	s.log.Info("Assistant answered", "elapsed_ms", time.Since(start).Milliseconds())

	if s.chatRepo != nil {
		if _, err := s.chatRepo.Create(ctx, nil, []*domain.ChatMessage{
			{
				UserID:   userID,
				Message:  question,
				Response: answer,
				Category: "general",
			},
		}); err != nil {
			return nil, fmt.Errorf("persist chat message: %w", err)
		}
	}

	return &AskResult{
		Message:   answer,
		Timestamp: time.Now().Format("3:04 PM"),
	}, nil
}

// answer races one model call against the deadline and always comes back
// with displayable text.
func (s *assistantService) answer(ctx context.Context, question string) string {
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		text string
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		text, err := s.client.GenerateText(callCtx, buildAssistantPrompt(question), assistantTemperature, assistantMaxTokens)
		ch <- outcome{text: text, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		if out.err != nil {
			s.log.Warn("Assistant call failed, using fallback", "error", out.err)
			return AssistantErrorFallback
		}
		if strings.TrimSpace(out.text) == "" {
			return AssistantErrorFallback
		}
		return out.text
	case <-timer.C:
		s.log.Warn("Assistant call timed out, using fallback", "timeout", s.timeout.String())
		return AssistantTimeoutFallback
	case <-ctx.Done():
		s.log.Warn("Assistant call canceled, using fallback", "error", ctx.Err())
		return AssistantTimeoutFallback
	}
}

func buildAssistantPrompt(question string) string {
	return fmt.Sprintf(`You are a helpful health AI assistant. Provide a concise, informative response to the user's health-related question.
The response should be professional but friendly, and limited to 3-4 sentences in most cases.
If you don't know the answer to a specific medical question, acknowledge that and recommend consulting a healthcare professional.
Do not include any disclaimers about not being a doctor in your response.

User's question: %s`, question)
}
