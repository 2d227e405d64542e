package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/services"
)

type ReadingHandler struct {
	readingService services.ReadingService
}

func NewReadingHandler(readingService services.ReadingService) *ReadingHandler {
	return &ReadingHandler{readingService: readingService}
}

type bloodSugarRequest struct {
	Value     int        `json:"value" binding:"required,min=20,max=600"`
	Timestamp *time.Time `json:"timestamp" binding:"required"`
	Notes     string     `json:"notes"`
}

type bloodPressureRequest struct {
	Systolic  int        `json:"systolic" binding:"required,min=70,max=250"`
	Diastolic int        `json:"diastolic" binding:"required,min=40,max=150"`
	Timestamp *time.Time `json:"timestamp" binding:"required"`
	Notes     string     `json:"notes"`
}

func (rh *ReadingHandler) CreateBloodSugar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bloodSugarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	view, err := rh.readingService.IngestBloodSugar(c.Request.Context(), userID, services.BloodSugarInput{
		Value:     req.Value,
		Timestamp: *req.Timestamp,
		Notes:     req.Notes,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (rh *ReadingHandler) CreateBloodPressure(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req bloodPressureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	view, err := rh.readingService.IngestBloodPressure(c.Request.Context(), userID, services.BloodPressureInput{
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		Timestamp: *req.Timestamp,
		Notes:     req.Notes,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (rh *ReadingHandler) BloodSugarChart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	points, err := rh.readingService.SugarChart(c.Request.Context(), userID, c.DefaultQuery("period", "week"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, points)
}

func (rh *ReadingHandler) BloodPressureChart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	points, err := rh.readingService.PressureChart(c.Request.Context(), userID, c.DefaultQuery("period", "week"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, points)
}

func (rh *ReadingHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := rh.readingService.Summary(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, summary)
}

func (rh *ReadingHandler) Recent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit := intQuery(c, "limit", 4)
	readings, err := rh.readingService.Recent(c.Request.Context(), userID, limit)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, readings)
}

func (rh *ReadingHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)
	kind := c.DefaultQuery("type", "all")

	history, err := rh.readingService.History(c.Request.Context(), userID, page, pageSize, kind)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, history)
}
