// Package handler exposes the kitchen pantry over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"larder/internal/pantry/models"
	"larder/internal/pantry/service"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/httputil"
	"larder/pkg/requestcontext"
)

// Service is the pantry operations surface the handler depends on.
type Service interface {
	Add(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, ingredientID id.IngredientID, quantity float64, unit string, expiresAt *time.Time) (*models.PantryItem, error)
	Update(ctx context.Context, actor id.PrincipalID, itemID id.PantryItemID, patch service.ItemPatch) (*models.PantryItem, error)
	Remove(ctx context.Context, actor id.PrincipalID, itemID id.PantryItemID) (*models.PantryItem, error)
	List(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.PantryItem, error)
}

// Handler wires pantry endpoints to the pantry service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts pantry endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kitchens/{kitchenID}/pantry", h.HandleAdd)
	r.Get("/kitchens/{kitchenID}/pantry", h.HandleList)
	r.Patch("/pantry-items/{itemID}", h.HandleUpdate)
	r.Delete("/pantry-items/{itemID}", h.HandleRemove)
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	kitchenID, err := id.ParseKitchenID(chi.URLParam(r, "kitchenID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[AddItemRequest](w, r)
	if !ok {
		return
	}
	if req.IngredientID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "ingredient id is required"))
		return
	}
	ingredientID, err := id.ParseIngredientID(req.IngredientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	item, err := h.service.Add(ctx, actor, kitchenID, ingredientID, req.Quantity, req.Unit, req.ExpiresAt)
	if err != nil {
		h.logError(ctx, "add pantry item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	kitchenID, err := id.ParseKitchenID(chi.URLParam(r, "kitchenID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := h.service.List(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if items == nil {
		items = []*models.PantryItem{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParsePantryItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateItemRequest](w, r)
	if !ok {
		return
	}
	patch := service.ItemPatch{Quantity: req.Quantity, Unit: req.Unit}
	if req.ClearExpiry {
		var cleared *time.Time
		patch.ExpiresAt = &cleared
	} else if req.ExpiresAt != nil {
		expiresAt := req.ExpiresAt
		patch.ExpiresAt = &expiresAt
	}
	item, err := h.service.Update(ctx, actor, itemID, patch)
	if err != nil {
		h.logError(ctx, "update pantry item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParsePantryItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	item, err := h.service.Remove(ctx, actor, itemID)
	if err != nil {
		h.logError(ctx, "remove pantry item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) requirePrincipal(w http.ResponseWriter, ctx context.Context) (id.PrincipalID, bool) {
	actor := requestcontext.PrincipalID(ctx)
	if actor.IsZero() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return id.PrincipalID{}, false
	}
	return actor, true
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}
