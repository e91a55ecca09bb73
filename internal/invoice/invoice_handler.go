package invoice

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

// releaseIdempotencyLock frees the in-flight lock set by the middleware;
// cacheIdempotentResponse stores the outcome so retries replay it.
func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	if h.rdb == nil {
		return
	}
	if lk := c.GetString("idempotency_lock_key"); lk != "" {
		h.rdb.Del(c.Request.Context(), lk)
	}
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp any) {
	if h.rdb == nil {
		return
	}
	if ck := c.GetString("idempotency_cache_key"); ck != "" {
		if payload, err := json.Marshal(resp); err == nil {
			_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
		}
	}
}

func (h *Handler) CreateDraft(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	actorID := c.GetString("user_id")

	var req CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.CreateDraft(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filter ListFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Issue(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	actorID := c.GetString("user_id")

	resp, err := h.service.Issue(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Void(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	actorID := c.GetString("user_id")

	resp, err := h.service.Void(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CreateCreditNote(c *gin.Context) {
	defer h.releaseIdempotencyLock(c)

	actorID := c.GetString("user_id")

	var req CreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.CreateCreditNote(c.Request.Context(), actorID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}
