package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/clients/openai"
	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	"github.com/yungbote/healthtrack-backend/internal/pkg/ctxutil"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/vitals"
)

// FallbackSuggestion is the advisory text used whenever AI analysis is
// unavailable, whether the call failed fast or the guard timed out. Callers
// can rely on it to distinguish "analysis unavailable" from "request failed".
const FallbackSuggestion = "Analysis timed out. Please try again later."

const (
	analysisTemperature = 0.3
	analysisMaxTokens   = 300
)

// PressurePair is one prior systolic/diastolic reading passed as prompt
// context.
type PressurePair struct {
	Systolic  int
	Diastolic int
}

// AnalysisService produces the advisory annotation for a measurement. Every
// method returns a usable Analysis on every path: the AI result when the
// model answers in time with a well-formed payload, the deterministic
// fallback otherwise.
type AnalysisService interface {
	AnalyzeBloodSugar(ctx context.Context, userID *uuid.UUID, value int, prior []int) domain.Analysis
	AnalyzeBloodPressure(ctx context.Context, userID *uuid.UUID, systolic, diastolic int, prior []PressurePair) domain.Analysis
}

type analysisService struct {
	db          *gorm.DB
	log         *logger.Logger
	client      openai.Client
	callLogRepo repos.AICallLogRepo
	timeout     time.Duration
}

func NewAnalysisService(db *gorm.DB, log *logger.Logger, client openai.Client, callLogRepo repos.AICallLogRepo, timeout time.Duration) AnalysisService {
	if timeout <= 0 {
		timeout = 50 * time.Second
	}
	return &analysisService{
		db:          db,
		log:         log.With("service", "AnalysisService"),
		client:      client,
		callLogRepo: callLogRepo,
		timeout:     timeout,
	}
}

func (s *analysisService) AnalyzeBloodSugar(ctx context.Context, userID *uuid.UUID, value int, prior []int) domain.Analysis {
	fallback := domain.Analysis{
		Status:     vitals.ClassifyBloodSugar(value).Status,
		Suggestion: FallbackSuggestion,
		RiskLevel:  vitals.SugarFallbackRisk(value),
	}
	prompt := buildSugarPrompt(value, prior)
	return s.guarded(ctx, "analyze_blood_sugar", userID, prompt, fallback)
}

func (s *analysisService) AnalyzeBloodPressure(ctx context.Context, userID *uuid.UUID, systolic, diastolic int, prior []PressurePair) domain.Analysis {
	fallback := domain.Analysis{
		Status:     vitals.ClassifyBloodPressure(systolic, diastolic).Status,
		Suggestion: FallbackSuggestion,
		RiskLevel:  vitals.PressureFallbackRisk(systolic, diastolic),
	}
	prompt := buildPressurePrompt(systolic, diastolic, prior)
	return s.guarded(ctx, "analyze_blood_pressure", userID, prompt, fallback)
}

// guarded races one enrichment attempt against the configured deadline. The
// attempt's error, the deadline, and caller cancellation all resolve to the
// fallback; no path returns an error.
func (s *analysisService) guarded(ctx context.Context, callType string, userID *uuid.UUID, prompt string, fallback domain.Analysis) domain.Analysis {
	ctx = ctxutil.Default(ctx)
	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		analysis domain.Analysis
		err      error
	}
	ch := make(chan outcome, 1)
	go func() {
		a, err := s.enrich(callCtx, callType, userID, prompt)
		ch <- outcome{analysis: a, err: err}
	}()

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case out := <-ch:
		if out.err != nil {
			s.log.Warn("AI analysis failed, using fallback", "call_type", callType, "error", out.err)
			return fallback
		}
		return out.analysis
	case <-timer.C:
		s.log.Warn("AI analysis timed out, using fallback", "call_type", callType, "timeout", s.timeout.String())
		return fallback
	case <-ctx.Done():
		s.log.Warn("AI analysis canceled, using fallback", "call_type", callType, "error", ctx.Err())
		return fallback
	}
}

// enrich performs one model call and strictly validates the payload. Any
// transport failure or malformed JSON is a hard ErrEnrichment; a partially
// populated Analysis is never returned.
func (s *analysisService) enrich(ctx context.Context, callType string, userID *uuid.UUID, prompt string) (domain.Analysis, error) {
	start := time.Now()
	raw, err := s.client.GenerateJSON(ctx, prompt, analysisTemperature, analysisMaxTokens)
	s.recordCall(ctx, callType, userID, prompt, raw, time.Since(start), err)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %v", pkgerrors.ErrEnrichment, err)
	}

	analysis, err := parseAnalysis(raw)
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("%w: %v", pkgerrors.ErrEnrichment, err)
	}
	return analysis, nil
}

func (s *analysisService) recordCall(ctx context.Context, callType string, userID *uuid.UUID, prompt, response string, elapsed time.Duration, callErr error) {
	if s.callLogRepo == nil {
		return
	}
	entry := &domain.AICallLog{
		UserID:     userID,
		CallType:   callType,
		Model:      s.client.Model(),
		Prompt:     prompt,
		Response:   response,
		Success:    callErr == nil,
		DurationMS: elapsed.Milliseconds(),
	}
	if callErr != nil {
		entry.Error = callErr.Error()
	}
	// Detached context: the request may already be past its deadline when
	// the model finally answers, and the log row is still wanted.
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := s.callLogRepo.Create(logCtx, nil, []*domain.AICallLog{entry}); err != nil {
		s.log.Warn("AI call log write failed", "call_type", callType, "error", err)
	}
}

// parseAnalysis treats the model output as untrusted text: every field must
// be present and correctly typed or the whole payload is rejected.
func parseAnalysis(raw string) (domain.Analysis, error) {
	var payload struct {
		Status     *string      `json:"status"`
		Suggestion *string      `json:"suggestion"`
		RiskLevel  *json.Number `json:"riskLevel"`
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return domain.Analysis{}, fmt.Errorf("unparsable analysis payload: %v", err)
	}

	if payload.Status == nil || strings.TrimSpace(*payload.Status) == "" {
		return domain.Analysis{}, fmt.Errorf("analysis payload missing status")
	}
	if payload.Suggestion == nil || strings.TrimSpace(*payload.Suggestion) == "" {
		return domain.Analysis{}, fmt.Errorf("analysis payload missing suggestion")
	}
	if payload.RiskLevel == nil {
		return domain.Analysis{}, fmt.Errorf("analysis payload missing riskLevel")
	}
	riskFloat, err := payload.RiskLevel.Float64()
	if err != nil {
		return domain.Analysis{}, fmt.Errorf("analysis riskLevel not numeric: %v", err)
	}
	risk := int(riskFloat)
	if risk < 0 {
		risk = 0
	}
	if risk > 100 {
		risk = 100
	}

	return domain.Analysis{
		Status:     strings.TrimSpace(*payload.Status),
		Suggestion: strings.TrimSpace(*payload.Suggestion),
		RiskLevel:  risk,
	}, nil
}

func buildSugarPrompt(value int, prior []int) string {
	previous := "None"
	if len(prior) > 0 {
		parts := make([]string, len(prior))
		for i, v := range prior {
			parts[i] = strconv.Itoa(v)
		}
		previous = strings.Join(parts, ", ")
	}
	return fmt.Sprintf(`You are a medical AI assistant helping analyze a blood sugar reading.
Value: %d mg/dL
Previous readings: %s

Based on this information, provide a brief analysis with the following in JSON format:
1. "status": One of ["Normal", "Elevated", "High", "Very High", "Low", "Very Low"]
2. "suggestion": A brief medical suggestion (1-2 sentences)
3. "riskLevel": A number from 0-100 representing health risk (0 is lowest risk, 100 is highest)

Response must be valid JSON.`, value, previous)
}

func buildPressurePrompt(systolic, diastolic int, prior []PressurePair) string {
	previous := "None"
	if len(prior) > 0 {
		parts := make([]string, len(prior))
		for i, p := range prior {
			parts[i] = fmt.Sprintf("%d/%d", p.Systolic, p.Diastolic)
		}
		previous = strings.Join(parts, ", ")
	}
	return fmt.Sprintf(`You are a medical AI assistant helping analyze a blood pressure reading.
Systolic: %d mmHg
Diastolic: %d mmHg
Previous readings: %s

Based on this information, provide a brief analysis with the following in JSON format:
1. "status": One of ["Normal", "Elevated", "Hypertension Stage 1", "Hypertension Stage 2", "Hypertensive Crisis", "Low"]
2. "suggestion": A brief medical suggestion (1-2 sentences)
3. "riskLevel": A number from 0-100 representing health risk (0 is lowest risk, 100 is highest)

Response must be valid JSON.`, systolic, diastolic, previous)
}
