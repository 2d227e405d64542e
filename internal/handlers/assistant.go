package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/services"
)

type AssistantHandler struct {
	assistantService services.AssistantService
	analysisService  services.AnalysisService
}

func NewAssistantHandler(assistantService services.AssistantService, analysisService services.AnalysisService) *AssistantHandler {
	return &AssistantHandler{assistantService: assistantService, analysisService: analysisService}
}

type askRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

func (ah *AssistantHandler) Ask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	result, err := ah.assistantService.Ask(c.Request.Context(), userID, req.Question)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type analyzeBloodSugarRequest struct {
	Value            int   `json:"value" binding:"required,min=20,max=600"`
	PreviousReadings []int `json:"previousReadings"`
}

type analyzeBloodPressureRequest struct {
	Systolic         int `json:"systolic" binding:"required,min=70,max=250"`
	Diastolic        int `json:"diastolic" binding:"required,min=40,max=150"`
	PreviousReadings []struct {
		Systolic  int `json:"systolic"`
		Diastolic int `json:"diastolic"`
	} `json:"previousReadings"`
}

// AnalyzeBloodSugar runs the advisory analysis on an ad-hoc value without
// persisting a reading.
func (ah *AssistantHandler) AnalyzeBloodSugar(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req analyzeBloodSugarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	analysis := ah.analysisService.AnalyzeBloodSugar(c.Request.Context(), &userID, req.Value, req.PreviousReadings)
	RespondOK(c, analysis)
}

func (ah *AssistantHandler) AnalyzeBloodPressure(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req analyzeBloodPressureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	prior := make([]services.PressurePair, len(req.PreviousReadings))
	for i, p := range req.PreviousReadings {
		prior[i] = services.PressurePair{Systolic: p.Systolic, Diastolic: p.Diastolic}
	}
	analysis := ah.analysisService.AnalyzeBloodPressure(c.Request.Context(), &userID, req.Systolic, req.Diastolic, prior)
	RespondOK(c, analysis)
}
