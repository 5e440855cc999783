// Package handler exposes the ingredient catalog and search over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"larder/internal/ingredient/models"
	"larder/internal/ingredient/service"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/httputil"
	"larder/pkg/requestcontext"
)

// Service is the ingredient operations surface the handler depends on.
type Service interface {
	CreateIngredient(ctx context.Context, actor id.PrincipalID, name string, public bool, kitchenID *id.KitchenID, categoryID *id.CategoryID) (*models.Ingredient, error)
	GetIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID) (*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID, patch service.IngredientPatch) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, actor id.PrincipalID, ingredientID id.IngredientID) error
	ListByKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Ingredient, error)

	SearchByName(ctx context.Context, actor id.PrincipalID, scope models.Scope, query string) ([]*models.Ingredient, error)
	SearchByNameAndCategory(ctx context.Context, actor id.PrincipalID, scope models.Scope, query string, categoryID id.CategoryID) ([]*models.Ingredient, error)

	CreateCategory(ctx context.Context, actor id.PrincipalID, name string, kitchenID *id.KitchenID) (*models.Category, error)
	ListCategories(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Category, error)
}

// Handler wires ingredient endpoints to the ingredient service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts ingredient endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/ingredients", h.HandleCreate)
	r.Get("/ingredients/search", h.HandleSearch)
	r.Get("/ingredients/{ingredientID}", h.HandleGet)
	r.Patch("/ingredients/{ingredientID}", h.HandleUpdate)
	r.Delete("/ingredients/{ingredientID}", h.HandleDelete)
	r.Get("/kitchens/{kitchenID}/ingredients", h.HandleListByKitchen)
	r.Post("/categories", h.HandleCreateCategory)
	r.Get("/kitchens/{kitchenID}/categories", h.HandleListCategories)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.Decode[CreateIngredientRequest](w, r)
	if !ok {
		return
	}
	kitchenID, err := parseOptionalKitchenID(req.KitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	categoryID, err := parseOptionalCategoryID(req.CategoryID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ingredient, err := h.service.CreateIngredient(ctx, actor, req.Name, req.Public, kitchenID, categoryID)
	if err != nil {
		h.logError(ctx, "create ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, ingredient)
}

// HandleSearch handles GET /ingredients/search?q=...&kitchen_id=...&category_id=...
// Without kitchen_id the search runs against the global public set.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}

	scope := models.PublicScope()
	if raw := r.URL.Query().Get("kitchen_id"); raw != "" {
		kitchenID, err := id.ParseKitchenID(raw)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		scope = models.KitchenScope(kitchenID)
	}

	query := r.URL.Query().Get("q")
	var (
		results []*models.Ingredient
		err     error
	)
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, parseErr := id.ParseCategoryID(raw)
		if parseErr != nil {
			httputil.WriteError(w, parseErr)
			return
		}
		results, err = h.service.SearchByNameAndCategory(ctx, actor, scope, query, categoryID)
	} else {
		results, err = h.service.SearchByName(ctx, actor, scope, query)
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if results == nil {
		results = []*models.Ingredient{}
	}
	httputil.WriteJSON(w, http.StatusOK, results)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	ingredientID, err := id.ParseIngredientID(chi.URLParam(r, "ingredientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	ingredient, err := h.service.GetIngredient(ctx, actor, ingredientID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ingredient)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	ingredientID, err := id.ParseIngredientID(chi.URLParam(r, "ingredientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateIngredientRequest](w, r)
	if !ok {
		return
	}
	categoryID, err := parseOptionalCategoryID(req.CategoryID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ingredient, err := h.service.UpdateIngredient(ctx, actor, ingredientID, service.IngredientPatch{
		Name:       req.Name,
		Public:     req.Public,
		CategoryID: categoryID,
	})
	if err != nil {
		h.logError(ctx, "update ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ingredient)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	ingredientID, err := id.ParseIngredientID(chi.URLParam(r, "ingredientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteIngredient(ctx, actor, ingredientID); err != nil {
		h.logError(ctx, "delete ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleListByKitchen(w http.ResponseWriter, r *http.Request) {
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
	ingredients, err := h.service.ListByKitchen(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ingredients)
}

func (h *Handler) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.Decode[CreateCategoryRequest](w, r)
	if !ok {
		return
	}
	kitchenID, err := parseOptionalKitchenID(req.KitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	category, err := h.service.CreateCategory(ctx, actor, req.Name, kitchenID)
	if err != nil {
		h.logError(ctx, "create category failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, category)
}

func (h *Handler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
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
	categories, err := h.service.ListCategories(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, categories)
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
