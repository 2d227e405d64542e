package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/services"
)

type DeviceHandler struct {
	deviceService services.DeviceService
}

func NewDeviceHandler(deviceService services.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

func (dh *DeviceHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	devices, err := dh.deviceService.List(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, devices)
}

type registerDeviceRequest struct {
	Name              string          `json:"name" binding:"required"`
	Type              string          `json:"type" binding:"required"`
	ConnectionDetails json.RawMessage `json:"connectionDetails"`
}

func (dh *DeviceHandler) Register(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req registerDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	device, err := dh.deviceService.Register(c.Request.Context(), userID, services.DeviceInput{
		Name:              req.Name,
		Type:              req.Type,
		ConnectionDetails: req.ConnectionDetails,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}
