package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/vitals"
)

type fakeAIClient struct {
	generateJSON func(ctx context.Context, prompt string) (string, error)
	generateText func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return f.generateJSON(ctx, prompt)
}

func (f *fakeAIClient) GenerateText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return f.generateText(ctx, prompt)
}

func (f *fakeAIClient) Model() string { return "fake-model" }

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

func TestAnalyzeBloodSugarUsesModelResult(t *testing.T) {
	client := &fakeAIClient{
		generateJSON: func(ctx context.Context, prompt string) (string, error) {
			require.Contains(t, prompt, "Value: 150 mg/dL")
			require.Contains(t, prompt, "Previous readings: 120, 135")
			return `{"status":"Elevated","suggestion":"Take a walk after meals.","riskLevel":35}`, nil
		},
	}
	svc := NewAnalysisService(nil, testLogger(t), client, nil, 5*time.Second)

	got := svc.AnalyzeBloodSugar(context.Background(), nil, 150, []int{120, 135})
	require.Equal(t, "Elevated", got.Status)
	require.Equal(t, "Take a walk after meals.", got.Suggestion)
	require.Equal(t, 35, got.RiskLevel)
}

func TestAnalyzeBloodSugarTimeoutFallback(t *testing.T) {
	client := &fakeAIClient{
		generateJSON: func(ctx context.Context, prompt string) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	}
	svc := NewAnalysisService(nil, testLogger(t), client, nil, 50*time.Millisecond)

	start := time.Now()
	got := svc.AnalyzeBloodSugar(context.Background(), nil, 65, nil)
	elapsed := time.Since(start)

	require.Less(t, elapsed, 2*time.Second, "guard must resolve near its deadline")
	require.Equal(t, vitals.ClassifyBloodSugar(65).Status, got.Status)
	require.Equal(t, FallbackSuggestion, got.Suggestion)
	require.Equal(t, 70, got.RiskLevel)
}

func TestAnalyzeBloodSugarImmediateErrorFallback(t *testing.T) {
	client := &fakeAIClient{
		generateJSON: func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	// Generous deadline: an immediate failure must not wait it out.
	svc := NewAnalysisService(nil, testLogger(t), client, nil, 30*time.Second)

	start := time.Now()
	got := svc.AnalyzeBloodSugar(context.Background(), nil, 100, nil)
	elapsed := time.Since(start)

	require.Less(t, elapsed, 2*time.Second, "immediate failure must resolve without waiting for the deadline")
	require.Equal(t, "Normal", got.Status)
	require.Equal(t, FallbackSuggestion, got.Suggestion)
	require.Equal(t, 10, got.RiskLevel)
}

func TestAnalyzeBloodSugarMalformedPayloadFallback(t *testing.T) {
	payloads := []string{
		`not json at all`,
		`{"status":"Normal","suggestion":"ok"}`,
		`{"status":"Normal","riskLevel":10}`,
		`{"suggestion":"ok","riskLevel":10}`,
		`{"status":42,"suggestion":"ok","riskLevel":10}`,
		`{"status":"Normal","suggestion":"ok","riskLevel":"high"}`,
		`{"status":"","suggestion":"ok","riskLevel":10}`,
	}
	for _, payload := range payloads {
		client := &fakeAIClient{
			generateJSON: func(ctx context.Context, prompt string) (string, error) {
				return payload, nil
			},
		}
		svc := NewAnalysisService(nil, testLogger(t), client, nil, 5*time.Second)

		got := svc.AnalyzeBloodSugar(context.Background(), nil, 190, nil)
		require.Equal(t, vitals.StatusHigh, got.Status, "payload %q", payload)
		require.Equal(t, FallbackSuggestion, got.Suggestion, "payload %q", payload)
		require.Equal(t, 70, got.RiskLevel, "payload %q", payload)
	}
}

func TestAnalyzeBloodPressureFallbackRule(t *testing.T) {
	client := &fakeAIClient{
		generateJSON: func(ctx context.Context, prompt string) (string, error) {
			require.Contains(t, prompt, "Systolic: 125 mmHg")
			require.Contains(t, prompt, "Previous readings: 118/76, 122/80")
			return "", errors.New("unreachable")
		},
	}
	svc := NewAnalysisService(nil, testLogger(t), client, nil, 5*time.Second)

	got := svc.AnalyzeBloodPressure(context.Background(), nil, 125, 78, []PressurePair{
		{Systolic: 118, Diastolic: 76},
		{Systolic: 122, Diastolic: 80},
	})
	require.Equal(t, vitals.StatusElevated, got.Status)
	require.Equal(t, FallbackSuggestion, got.Suggestion)
	require.Equal(t, 40, got.RiskLevel)
}

func TestParseAnalysisClampsRisk(t *testing.T) {
	got, err := parseAnalysis(`{"status":"High","suggestion":"See a doctor.","riskLevel":240}`)
	require.NoError(t, err)
	require.Equal(t, 100, got.RiskLevel)

	got, err = parseAnalysis(`{"status":"Low","suggestion":"Eat something.","riskLevel":-3}`)
	require.NoError(t, err)
	require.Equal(t, 0, got.RiskLevel)
}

func TestParseAnalysisAcceptsFractionalRisk(t *testing.T) {
	got, err := parseAnalysis(`{"status":"Normal","suggestion":"Keep it up.","riskLevel":12.7}`)
	require.NoError(t, err)
	require.Equal(t, 12, got.RiskLevel)
}
