package auth

import (
	"net/http"
	"os"

	"go-groomops/internal/shared/apperror"
	"go-groomops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", accessToken, 15*60, "/", "", isProd, true)
	c.SetCookie("refresh_token", refreshToken, 3600*24*7, "/", "", isProd, true)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	accessToken, refreshToken, userResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookies(c, accessToken, refreshToken)

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Unauthorized", nil)
		return
	}

	userResp, err := h.service.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	isProd := os.Getenv("APP_ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", "", -1, "/", "", isProd, true)
	c.SetCookie("refresh_token", "", -1, "/", "", isProd, true)

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil || refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refresh_token" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing refresh token", nil)
			return
		}
		refreshToken = req.RefreshToken
	}

	newAccess, newRefresh, userResp, err := h.service.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookies(c, newAccess, newRefresh)

	response.Success(c, http.StatusOK, gin.H{
		"user":          userResp,
		"access_token":  newAccess,
		"refresh_token": newRefresh,
	}, nil)
}
