package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lead-intake/internal/entity"
	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
	"github.com/xavierca1/lead-intake/internal/usecase"
)

type LeadHandler struct {
	SubmitUC    *usecase.SubmitLeadUseCase
	ListUC      *usecase.ListLeadsUseCase
	UpdateUC    *usecase.UpdateLeadStatusUseCase
	rateLimiter *RateLimiter
}

func NewLeadHandler(submitUC *usecase.SubmitLeadUseCase, listUC *usecase.ListLeadsUseCase, updateUC *usecase.UpdateLeadStatusUseCase) *LeadHandler {
	return &LeadHandler{
		SubmitUC:    submitUC,
		ListUC:      listUC,
		UpdateUC:    updateUC,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP on the public form
	}
}

// HandleCreate is the public submission endpoint (POST /leads).
func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.SubmitUC.Execute(r.Context(), input)
	if err != nil {
		var verrs *usecase.ValidationErrors
		if errors.As(err, &verrs) {
			for _, f := range verrs.Fields {
				middleware.RecordValidationFailure(f.Field)
			}
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "validation_failed",
				"fields": verrs.Fields,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create lead")
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, lead)
}

// HandleList serves the internal listing (GET /leads?status=&search=),
// behind the session gate.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	criteria := usecase.FilterCriteria{
		Status: entity.StatusAll,
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("status"); raw != "" && raw != string(entity.StatusAll) {
		status, err := entity.ParseStatus(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown status filter: "+raw)
			return
		}
		criteria.Status = status
	}

	leads, err := h.ListUC.Execute(r.Context(), criteria)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leads")
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus advances a lead (PATCH /leads/{id}), behind the gate.
func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id is required")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	status, err := entity.ParseStatus(req.Status)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "unknown status: "+req.Status)
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, status)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrLeadNotFound):
			writeError(w, http.StatusNotFound, "Lead not found")
		case errors.Is(err, entity.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "status transition not allowed")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}

	// Forward-only workflow: the prior status is the unique predecessor of
	// the one just written.
	from := entity.StatusPending
	if lead.Status == entity.StatusClosed {
		from = entity.StatusReachedOut
	}
	middleware.RecordStatusTransition(string(from), string(lead.Status))
	writeJSON(w, http.StatusOK, lead)
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

type visitor struct {
	count     int
	lastReset time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}

	go rl.cleanup()
	return rl
}

func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := time.Now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastReset) > rl.window*2 {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}
