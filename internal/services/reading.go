package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/healthtrack-backend/internal/clients/rediscache"
	"github.com/yungbote/healthtrack-backend/internal/data/repos"
	"github.com/yungbote/healthtrack-backend/internal/domain"
	pkgerrors "github.com/yungbote/healthtrack-backend/internal/pkg/errors"
	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
	"github.com/yungbote/healthtrack-backend/internal/vitals"
)

// priorReadingsLimit bounds how much history rides along as prompt context.
const priorReadingsLimit = 5

const summaryCacheTTL = 2 * time.Minute

const (
	KindBloodSugar    = "blood_sugar"
	KindBloodPressure = "blood_pressure"
)

type BloodSugarInput struct {
	Value     int
	Timestamp time.Time
	Notes     string
}

type BloodPressureInput struct {
	Systolic  int
	Diastolic int
	Timestamp time.Time
	Notes     string
}

// BloodSugarView is the stored-reading view returned to callers after
// ingestion.
type BloodSugarView struct {
	ID         uuid.UUID       `json:"id"`
	Value      int             `json:"value"`
	Timestamp  time.Time       `json:"timestamp"`
	Notes      string          `json:"notes"`
	Status     string          `json:"status"`
	StatusType string          `json:"statusType"`
	Analysis   domain.Analysis `json:"aiAnalysis"`
}

type BloodPressureView struct {
	ID         uuid.UUID       `json:"id"`
	Systolic   int             `json:"systolic"`
	Diastolic  int             `json:"diastolic"`
	Value      string          `json:"value"`
	Timestamp  time.Time       `json:"timestamp"`
	Notes      string          `json:"notes"`
	Status     string          `json:"status"`
	StatusType string          `json:"statusType"`
	Analysis   domain.Analysis `json:"aiAnalysis"`
}

type SugarChartPoint struct {
	Day       string    `json:"day"`
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

type PressureChartPoint struct {
	Day       string    `json:"day"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	Timestamp time.Time `json:"timestamp"`
}

type SummaryCard struct {
	Latest struct {
		Value string `json:"value"`
		Time  string `json:"time"`
	} `json:"latest"`
	Status     string `json:"status"`
	StatusType string `json:"statusType"`
}

type SummaryView struct {
	BloodSugar    *SummaryCard `json:"bloodSugar"`
	BloodPressure *SummaryCard `json:"bloodPressure"`
}

type RecentReadingView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	Time       string    `json:"time"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
	Status     string    `json:"status"`
	StatusType string    `json:"statusType"`
}

type HistoryView struct {
	Readings   []RecentReadingView `json:"readings"`
	Pagination struct {
		Total       int `json:"total"`
		Pages       int `json:"pages"`
		CurrentPage int `json:"currentPage"`
		PageSize    int `json:"pageSize"`
	} `json:"pagination"`
}

// ReadingService owns the reading ingestion pipeline and the read-side
// surfaces built on stored readings.
type ReadingService interface {
	IngestBloodSugar(ctx context.Context, userID uuid.UUID, in BloodSugarInput) (*BloodSugarView, error)
	IngestBloodPressure(ctx context.Context, userID uuid.UUID, in BloodPressureInput) (*BloodPressureView, error)

	SugarChart(ctx context.Context, userID uuid.UUID, period string) ([]SugarChartPoint, error)
	PressureChart(ctx context.Context, userID uuid.UUID, period string) ([]PressureChartPoint, error)
	Summary(ctx context.Context, userID uuid.UUID) (*SummaryView, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]RecentReadingView, error)
	History(ctx context.Context, userID uuid.UUID, page, pageSize int, kind string) (*HistoryView, error)
}

type readingService struct {
	db           *gorm.DB
	log          *logger.Logger
	sugarRepo    repos.BloodSugarRepo
	pressureRepo repos.BloodPressureRepo
	analysis     AnalysisService
	cache        rediscache.Cache
}

func NewReadingService(db *gorm.DB, log *logger.Logger, sugarRepo repos.BloodSugarRepo, pressureRepo repos.BloodPressureRepo, analysis AnalysisService, cache rediscache.Cache) ReadingService {
	return &readingService{
		db:           db,
		log:          log.With("service", "ReadingService"),
		sugarRepo:    sugarRepo,
		pressureRepo: pressureRepo,
		analysis:     analysis,
		cache:        cache,
	}
}

func validateBloodSugar(in BloodSugarInput) error {
	var violations []string
	if in.Value < vitals.SugarMin || in.Value > vitals.SugarMax {
		violations = append(violations, fmt.Sprintf("value must be between %d and %d", vitals.SugarMin, vitals.SugarMax))
	}
	if in.Timestamp.IsZero() {
		violations = append(violations, "timestamp is required")
	}
	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, strings.Join(violations, "; "))
	}
	return nil
}

func validateBloodPressure(in BloodPressureInput) error {
	var violations []string
	if in.Systolic < vitals.SystolicMin || in.Systolic > vitals.SystolicMax {
		violations = append(violations, fmt.Sprintf("systolic must be between %d and %d", vitals.SystolicMin, vitals.SystolicMax))
	}
	if in.Diastolic < vitals.DiastolicMin || in.Diastolic > vitals.DiastolicMax {
		violations = append(violations, fmt.Sprintf("diastolic must be between %d and %d", vitals.DiastolicMin, vitals.DiastolicMax))
	}
	if in.Timestamp.IsZero() {
		violations = append(violations, "timestamp is required")
	}
	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, strings.Join(violations, "; "))
	}
	return nil
}

func (s *readingService) IngestBloodSugar(ctx context.Context, userID uuid.UUID, in BloodSugarInput) (*BloodSugarView, error) {
	if err := validateBloodSugar(in); err != nil {
		return nil, err
	}

	prior, err := s.sugarRepo.ListRecent(ctx, nil, userID, priorReadingsLimit)
	if err != nil {
		return nil, fmt.Errorf("load prior readings: %w", err)
	}
	priorValues := make([]int, len(prior))
	for i, r := range prior {
		priorValues[i] = r.Value
	}

	status := vitals.ClassifyBloodSugar(in.Value)

	// Never fails; degraded analysis comes back as the deterministic
	// fallback instead.
	analysis := s.analysis.AnalyzeBloodSugar(ctx, &userID, in.Value, priorValues)

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	created, err := s.sugarRepo.Create(ctx, nil, []*domain.BloodSugarReading{
		{
			UserID:     userID,
			Value:      in.Value,
			Timestamp:  in.Timestamp,
			Notes:      in.Notes,
			Status:     status.Status,
			StatusType: status.StatusType,
			Analysis:   datatypes.JSON(analysisJSON),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("persist reading: %w", err)
	}
	reading := created[0]

	s.invalidateSummary(ctx, userID)

	return &BloodSugarView{
		ID:         reading.ID,
		Value:      reading.Value,
		Timestamp:  reading.Timestamp,
		Notes:      reading.Notes,
		Status:     status.Status,
		StatusType: status.StatusType,
		Analysis:   analysis,
	}, nil
}

func (s *readingService) IngestBloodPressure(ctx context.Context, userID uuid.UUID, in BloodPressureInput) (*BloodPressureView, error) {
	if err := validateBloodPressure(in); err != nil {
		return nil, err
	}

	prior, err := s.pressureRepo.ListRecent(ctx, nil, userID, priorReadingsLimit)
	if err != nil {
		return nil, fmt.Errorf("load prior readings: %w", err)
	}
	priorPairs := make([]PressurePair, len(prior))
	for i, r := range prior {
		priorPairs[i] = PressurePair{Systolic: r.Systolic, Diastolic: r.Diastolic}
	}

	status := vitals.ClassifyBloodPressure(in.Systolic, in.Diastolic)

	analysis := s.analysis.AnalyzeBloodPressure(ctx, &userID, in.Systolic, in.Diastolic, priorPairs)

	analysisJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	created, err := s.pressureRepo.Create(ctx, nil, []*domain.BloodPressureReading{
		{
			UserID:     userID,
			Systolic:   in.Systolic,
			Diastolic:  in.Diastolic,
			Timestamp:  in.Timestamp,
			Notes:      in.Notes,
			Status:     status.Status,
			StatusType: status.StatusType,
			Analysis:   datatypes.JSON(analysisJSON),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("persist reading: %w", err)
	}
	reading := created[0]

	s.invalidateSummary(ctx, userID)

	return &BloodPressureView{
		ID:         reading.ID,
		Systolic:   reading.Systolic,
		Diastolic:  reading.Diastolic,
		Value:      fmt.Sprintf("%d/%d", reading.Systolic, reading.Diastolic),
		Timestamp:  reading.Timestamp,
		Notes:      reading.Notes,
		Status:     status.Status,
		StatusType: status.StatusType,
		Analysis:   analysis,
	}, nil
}

func periodCutoff(period string, now time.Time) (time.Time, bool) {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), true
	case "month":
		return now.AddDate(0, -1, 0), true
	case "year":
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func (s *readingService) SugarChart(ctx context.Context, userID uuid.UUID, period string) ([]SugarChartPoint, error) {
	readings, err := s.sugarRepo.ListRecent(ctx, nil, userID, 100)
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}
	cutoff, ok := periodCutoff(period, time.Now())

	points := make([]SugarChartPoint, 0, len(readings))
	for _, r := range readings {
		if ok && r.Timestamp.Before(cutoff) {
			continue
		}
		points = append(points, SugarChartPoint{
			Day:       r.Timestamp.Format("Mon"),
			Value:     r.Value,
			Timestamp: r.Timestamp,
		})
	}
	return points, nil
}

func (s *readingService) PressureChart(ctx context.Context, userID uuid.UUID, period string) ([]PressureChartPoint, error) {
	readings, err := s.pressureRepo.ListRecent(ctx, nil, userID, 100)
	if err != nil {
		return nil, fmt.Errorf("load readings: %w", err)
	}
	cutoff, ok := periodCutoff(period, time.Now())

	points := make([]PressureChartPoint, 0, len(readings))
	for _, r := range readings {
		if ok && r.Timestamp.Before(cutoff) {
			continue
		}
		points = append(points, PressureChartPoint{
			Day:       r.Timestamp.Format("Mon"),
			Systolic:  r.Systolic,
			Diastolic: r.Diastolic,
			Timestamp: r.Timestamp,
		})
	}
	return points, nil
}

func (s *readingService) summaryCacheKey(userID uuid.UUID) string {
	return "summary:" + userID.String()
}

func (s *readingService) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	s.cache.Invalidate(ctx, s.summaryCacheKey(userID))
}

func (s *readingService) Summary(ctx context.Context, userID uuid.UUID) (*SummaryView, error) {
	if s.cache != nil {
		var cached SummaryView
		if s.cache.GetJSON(ctx, s.summaryCacheKey(userID), &cached) {
			return &cached, nil
		}
	}

	var (
		latestSugar    *domain.BloodSugarReading
		latestPressure *domain.BloodPressureReading
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.sugarRepo.Latest(gctx, nil, userID)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrNotFound) {
				return nil
			}
			return err
		}
		latestSugar = r
		return nil
	})
	g.Go(func() error {
		r, err := s.pressureRepo.Latest(gctx, nil, userID)
		if err != nil {
			if errors.Is(err, pkgerrors.ErrNotFound) {
				return nil
			}
			return err
		}
		latestPressure = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load latest readings: %w", err)
	}

	now := time.Now()
	view := &SummaryView{}
	if latestSugar != nil {
		card := &SummaryCard{}
		card.Latest.Value = fmt.Sprintf("%d", latestSugar.Value)
		card.Latest.Time = FormatTimestamp(latestSugar.Timestamp, now)
		status := vitals.ClassifyBloodSugar(latestSugar.Value)
		card.Status = firstNonEmpty(latestSugar.Status, status.Status)
		card.StatusType = status.StatusType
		view.BloodSugar = card
	}
	if latestPressure != nil {
		card := &SummaryCard{}
		card.Latest.Value = fmt.Sprintf("%d/%d", latestPressure.Systolic, latestPressure.Diastolic)
		card.Latest.Time = FormatTimestamp(latestPressure.Timestamp, now)
		status := vitals.ClassifyBloodPressure(latestPressure.Systolic, latestPressure.Diastolic)
		card.Status = firstNonEmpty(latestPressure.Status, status.Status)
		card.StatusType = status.StatusType
		view.BloodPressure = card
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, s.summaryCacheKey(userID), view, summaryCacheTTL)
	}
	return view, nil
}

func (s *readingService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]RecentReadingView, error) {
	if limit <= 0 {
		limit = 4
	}

	merged, err := s.mergedReadings(ctx, userID, limit, "all", false)
	if err != nil {
		return nil, err
	}
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (s *readingService) History(ctx context.Context, userID uuid.UUID, page, pageSize int, kind string) (*HistoryView, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if kind == "" {
		kind = "all"
	}
	if kind != "all" && kind != KindBloodSugar && kind != KindBloodPressure {
		return nil, fmt.Errorf("%w: unknown reading type %q", pkgerrors.ErrInvalidArgument, kind)
	}

	merged, err := s.mergedReadings(ctx, userID, 100, kind, true)
	if err != nil {
		return nil, err
	}

	total := len(merged)
	pages := (total + pageSize - 1) / pageSize

	offset := (page - 1) * pageSize
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	view := &HistoryView{Readings: merged[offset:end]}
	view.Pagination.Total = total
	view.Pagination.Pages = pages
	view.Pagination.CurrentPage = page
	view.Pagination.PageSize = pageSize
	return view, nil
}

// mergedReadings loads both reading kinds (or one, per kind), formats them
// into the shared list view, and sorts newest first.
func (s *readingService) mergedReadings(ctx context.Context, userID uuid.UUID, perKind int, kind string, includeNotes bool) ([]RecentReadingView, error) {
	now := time.Now()
	var merged []RecentReadingView

	if kind == "all" || kind == KindBloodSugar {
		readings, err := s.sugarRepo.ListRecent(ctx, nil, userID, perKind)
		if err != nil {
			return nil, fmt.Errorf("load blood sugar readings: %w", err)
		}
		for _, r := range readings {
			status := vitals.ClassifyBloodSugar(r.Value)
			view := RecentReadingView{
				ID:         r.ID,
				Type:       "Blood Sugar",
				Value:      fmt.Sprintf("%d mg/dL", r.Value),
				Time:       FormatTimestamp(r.Timestamp, now),
				Timestamp:  r.Timestamp,
				Status:     firstNonEmpty(r.Status, status.Status),
				StatusType: status.StatusType,
			}
			if includeNotes {
				view.Notes = r.Notes
			}
			merged = append(merged, view)
		}
	}

	if kind == "all" || kind == KindBloodPressure {
		readings, err := s.pressureRepo.ListRecent(ctx, nil, userID, perKind)
		if err != nil {
			return nil, fmt.Errorf("load blood pressure readings: %w", err)
		}
		for _, r := range readings {
			status := vitals.ClassifyBloodPressure(r.Systolic, r.Diastolic)
			view := RecentReadingView{
				ID:         r.ID,
				Type:       "Blood Pressure",
				Value:      fmt.Sprintf("%d/%d mmHg", r.Systolic, r.Diastolic),
				Time:       FormatTimestamp(r.Timestamp, now),
				Timestamp:  r.Timestamp,
				Status:     firstNonEmpty(r.Status, status.Status),
				StatusType: status.StatusType,
			}
			if includeNotes {
				view.Notes = r.Notes
			}
			merged = append(merged, view)
		}
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged, nil
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}
