// Package handler exposes shopping lists and their items over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"larder/internal/shopping/models"
	"larder/internal/shopping/service"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/httputil"
	"larder/pkg/requestcontext"
)

// Service is the shopping operations surface the handler depends on.
type Service interface {
	CreateList(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, name string) (*models.ShoppingList, error)
	GetList(ctx context.Context, actor id.PrincipalID, listID id.ListID) (*models.ShoppingList, error)
	ListLists(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.ShoppingList, error)
	UpdateList(ctx context.Context, actor id.PrincipalID, listID id.ListID, patch service.ListPatch) (*models.ShoppingList, error)
	DeleteList(ctx context.Context, actor id.PrincipalID, listID id.ListID) error

	AddItem(ctx context.Context, actor id.PrincipalID, listID id.ListID, ingredientID id.IngredientID, quantity float64, unit, note string, requestedSort int) (*models.ListItem, error)
	UpdateItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID, patch service.ListItemPatch) (*models.ListItem, error)
	CheckItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error)
	UncheckItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error)
	RemoveItem(ctx context.Context, actor id.PrincipalID, itemID id.ListItemID) (*models.ListItem, error)
	ListItems(ctx context.Context, actor id.PrincipalID, listID id.ListID) ([]*models.ListItem, error)
}

// Handler wires shopping endpoints to the shopping service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts shopping endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kitchens/{kitchenID}/lists", h.HandleCreateList)
	r.Get("/kitchens/{kitchenID}/lists", h.HandleListLists)
	r.Get("/lists/{listID}", h.HandleGetList)
	r.Patch("/lists/{listID}", h.HandleUpdateList)
	r.Delete("/lists/{listID}", h.HandleDeleteList)

	r.Post("/lists/{listID}/items", h.HandleAddItem)
	r.Get("/lists/{listID}/items", h.HandleListItems)
	r.Patch("/list-items/{itemID}", h.HandleUpdateItem)
	r.Post("/list-items/{itemID}/check", h.HandleCheckItem)
	r.Post("/list-items/{itemID}/uncheck", h.HandleUncheckItem)
	r.Delete("/list-items/{itemID}", h.HandleRemoveItem)
}

func (h *Handler) HandleCreateList(w http.ResponseWriter, r *http.Request) {
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
	req, ok := httputil.Decode[CreateListRequest](w, r)
	if !ok {
		return
	}
	list, err := h.service.CreateList(ctx, actor, kitchenID, req.Name)
	if err != nil {
		h.logError(ctx, "create list failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, list)
}

func (h *Handler) HandleListLists(w http.ResponseWriter, r *http.Request) {
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
	lists, err := h.service.ListLists(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lists)
}

func (h *Handler) HandleGetList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	listID, err := id.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	list, err := h.service.GetList(ctx, actor, listID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleUpdateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	listID, err := id.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateListRequest](w, r)
	if !ok {
		return
	}
	list, err := h.service.UpdateList(ctx, actor, listID, service.ListPatch{Name: req.Name})
	if err != nil {
		h.logError(ctx, "update list failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) HandleDeleteList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	listID, err := id.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteList(ctx, actor, listID); err != nil {
		h.logError(ctx, "delete list failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	listID, err := id.ParseListID(chi.URLParam(r, "listID"))
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
	item, err := h.service.AddItem(ctx, actor, listID, ingredientID, req.Quantity, req.Unit, req.Note, req.SortOrder)
	if err != nil {
		h.logError(ctx, "add list item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) HandleListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	listID, err := id.ParseListID(chi.URLParam(r, "listID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := h.service.ListItems(ctx, actor, listID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if items == nil {
		items = []*models.ListItem{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) HandleUpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParseListItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateItemRequest](w, r)
	if !ok {
		return
	}
	item, err := h.service.UpdateItem(ctx, actor, itemID, service.ListItemPatch{
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Note:      req.Note,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logError(ctx, "update list item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleCheckItem(w http.ResponseWriter, r *http.Request) {
	h.handleCheckState(w, r, true)
}

func (h *Handler) HandleUncheckItem(w http.ResponseWriter, r *http.Request) {
	h.handleCheckState(w, r, false)
}

func (h *Handler) handleCheckState(w http.ResponseWriter, r *http.Request, checked bool) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParseListItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var item *models.ListItem
	if checked {
		item, err = h.service.CheckItem(ctx, actor, itemID)
	} else {
		item, err = h.service.UncheckItem(ctx, actor, itemID)
	}
	if err != nil {
		h.logError(ctx, "toggle list item failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleRemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParseListItemID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	item, err := h.service.RemoveItem(ctx, actor, itemID)
	if err != nil {
		h.logError(ctx, "remove list item failed", err)
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
