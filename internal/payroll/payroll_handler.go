package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"go-groomops/internal/shared/apperror"
	"go-groomops/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Preview(c *gin.Context) {
	var filter PreviewFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.PreviewStaffPayroll(c.Request.Context(), c.Param("staffId"), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ClosePeriod(c *gin.Context) {
	if h.rdb != nil {
		if lk := c.GetString("idempotency_lock_key"); lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	actorID := c.GetString("user_id")

	var req ClosePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.ClosePeriod(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck := c.GetString("idempotency_cache_key"); ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	resp, err := h.service.GetPayStatementHistory(c.Request.Context(), c.Param("staffId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
