package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/healthtrack-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	profile, err := uh.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}

type updateProfileRequest struct {
	Name        *string  `json:"name"`
	Email       *string  `json:"email"`
	Age         *int     `json:"age"`
	Gender      *string  `json:"gender"`
	Height      *int     `json:"height"`
	Weight      *int     `json:"weight"`
	Conditions  []string `json:"conditions"`
	Medications []string `json:"medications"`
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
		return
	}
	profile, err := uh.userService.UpdateProfile(c.Request.Context(), userID, services.ProfileUpdate{
		Name:        req.Name,
		Email:       req.Email,
		Age:         req.Age,
		Gender:      req.Gender,
		Height:      req.Height,
		Weight:      req.Weight,
		Conditions:  req.Conditions,
		Medications: req.Medications,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, profile)
}
