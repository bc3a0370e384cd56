package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklens/worklens-backend-go/internal/domain/reference"
	"github.com/worklens/worklens-backend-go/internal/handler/http/response"
)

type ReferenceHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
}

type referenceHandlerImpl struct {
	refRepo reference.Repository
}

func NewReferenceHandler(refRepo reference.Repository) ReferenceHandler {
	return &referenceHandlerImpl{
		refRepo: refRepo,
	}
}

func orgIDFromRequest(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	orgID, ok := claims["org_id"].(string)
	if !ok || orgID == "" {
		return "", fmt.Errorf("org_id claim is missing or invalid")
	}
	return orgID, nil
}

// ListDepartments handles GET /reference/departments
func (h *referenceHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	orgID, err := orgIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	departments, err := h.refRepo.ListDepartments(r.Context(), orgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

// ListCategories handles GET /reference/categories
func (h *referenceHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	orgID, err := orgIDFromRequest(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	taxonomy, err := h.refRepo.GetTaxonomy(r.Context(), orgID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, taxonomy)
}
