package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/worklens/worklens-backend-go/internal/domain/idle"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
)

type IdleHandler interface {
	// Pending and resolved queues for the authenticated employee
	GetMyItems(w http.ResponseWriter, r *http.Request)

	// Reason submission for one item
	SubmitReason(w http.ResponseWriter, r *http.Request)

	// External escalation webhook attaching a ticket
	AttachTicket(w http.ResponseWriter, r *http.Request)
}

type idleHandlerImpl struct {
	idleService idle.Service
}

func NewIdleHandler(idleService idle.Service) IdleHandler {
	return &idleHandlerImpl{
		idleService: idleService,
	}
}

// GetMyItems handles GET /idle/my
func (h *idleHandlerImpl) GetMyItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := idle.MyItemsRequest{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}

	result, err := h.idleService.GetMyItems(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SubmitReason handles POST /idle/{itemID}/reason
func (h *idleHandlerImpl) SubmitReason(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		response.BadRequest(w, "missing item id", nil)
		return
	}

	var req idle.SubmitReasonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	result, err := h.idleService.SubmitReason(ctx, itemID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reason submitted", result)
}

// AttachTicket handles POST /idle/{itemID}/ticket
func (h *idleHandlerImpl) AttachTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		response.BadRequest(w, "missing item id", nil)
		return
	}

	var req struct {
		TicketID string `json:"ticket_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TicketID == "" {
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	item, err := h.idleService.AttachTicket(ctx, itemID, req.TicketID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ticket attached", item.ID)
}
