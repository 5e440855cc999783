// Package handler exposes recipes and their ordered collections over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"larder/internal/recipe/models"
	"larder/internal/recipe/service"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/httputil"
	"larder/pkg/requestcontext"
)

// Service is the recipe operations surface the handler depends on.
type Service interface {
	CreateRecipe(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, name, description string, servings int) (*models.Recipe, error)
	GetRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) (*models.Recipe, error)
	ListRecipes(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Recipe, error)
	UpdateRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, patch service.RecipePatch) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) error

	AddIngredient(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, ingredientID id.IngredientID, quantity float64, unit, note string, requestedSort int) (*models.RecipeIngredient, error)
	UpdateIngredientItem(ctx context.Context, actor id.PrincipalID, itemID id.RecipeIngredientID, patch service.RecipeIngredientPatch) (*models.RecipeIngredient, error)
	RemoveIngredient(ctx context.Context, actor id.PrincipalID, itemID id.RecipeIngredientID) (*models.RecipeIngredient, error)
	ListIngredients(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) ([]*models.RecipeIngredient, error)

	AddStep(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID, body string, requestedSort int) (*models.RecipeStep, error)
	UpdateStep(ctx context.Context, actor id.PrincipalID, stepID id.RecipeStepID, patch service.RecipeStepPatch) (*models.RecipeStep, error)
	RemoveStep(ctx context.Context, actor id.PrincipalID, stepID id.RecipeStepID) (*models.RecipeStep, error)
	ListSteps(ctx context.Context, actor id.PrincipalID, recipeID id.RecipeID) ([]*models.RecipeStep, error)
}

// Handler wires recipe endpoints to the recipe service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts recipe endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kitchens/{kitchenID}/recipes", h.HandleCreate)
	r.Get("/kitchens/{kitchenID}/recipes", h.HandleList)
	r.Get("/recipes/{recipeID}", h.HandleGet)
	r.Patch("/recipes/{recipeID}", h.HandleUpdate)
	r.Delete("/recipes/{recipeID}", h.HandleDelete)

	r.Post("/recipes/{recipeID}/ingredients", h.HandleAddIngredient)
	r.Get("/recipes/{recipeID}/ingredients", h.HandleListIngredients)
	r.Patch("/recipe-ingredients/{itemID}", h.HandleUpdateIngredientItem)
	r.Delete("/recipe-ingredients/{itemID}", h.HandleRemoveIngredient)

	r.Post("/recipes/{recipeID}/steps", h.HandleAddStep)
	r.Get("/recipes/{recipeID}/steps", h.HandleListSteps)
	r.Patch("/recipe-steps/{stepID}", h.HandleUpdateStep)
	r.Delete("/recipe-steps/{stepID}", h.HandleRemoveStep)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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
	req, ok := httputil.Decode[CreateRecipeRequest](w, r)
	if !ok {
		return
	}
	recipe, err := h.service.CreateRecipe(ctx, actor, kitchenID, req.Name, req.Description, req.Servings)
	if err != nil {
		h.logError(ctx, "create recipe failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, recipe)
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
	recipes, err := h.service.ListRecipes(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, recipes)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	recipe, err := h.service.GetRecipe(ctx, actor, recipeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, recipe)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateRecipeRequest](w, r)
	if !ok {
		return
	}
	recipe, err := h.service.UpdateRecipe(ctx, actor, recipeID, service.RecipePatch{
		Name:        req.Name,
		Description: req.Description,
		Servings:    req.Servings,
	})
	if err != nil {
		h.logError(ctx, "update recipe failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, recipe)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := h.service.DeleteRecipe(ctx, actor, recipeID); err != nil {
		h.logError(ctx, "delete recipe failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleAddIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[AddIngredientRequest](w, r)
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
	item, err := h.service.AddIngredient(ctx, actor, recipeID, ingredientID, req.Quantity, req.Unit, req.Note, req.SortOrder)
	if err != nil {
		h.logError(ctx, "add recipe ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	items, err := h.service.ListIngredients(ctx, actor, recipeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if items == nil {
		items = []*models.RecipeIngredient{}
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) HandleUpdateIngredientItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParseRecipeIngredientID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateIngredientItemRequest](w, r)
	if !ok {
		return
	}
	item, err := h.service.UpdateIngredientItem(ctx, actor, itemID, service.RecipeIngredientPatch{
		Quantity:  req.Quantity,
		Unit:      req.Unit,
		Note:      req.Note,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logError(ctx, "update recipe ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleRemoveIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	itemID, err := id.ParseRecipeIngredientID(chi.URLParam(r, "itemID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	item, err := h.service.RemoveIngredient(ctx, actor, itemID)
	if err != nil {
		h.logError(ctx, "remove recipe ingredient failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) HandleAddStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[AddStepRequest](w, r)
	if !ok {
		return
	}
	step, err := h.service.AddStep(ctx, actor, recipeID, req.Body, req.SortOrder)
	if err != nil {
		h.logError(ctx, "add recipe step failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, step)
}

func (h *Handler) HandleListSteps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	recipeID, err := id.ParseRecipeID(chi.URLParam(r, "recipeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	steps, err := h.service.ListSteps(ctx, actor, recipeID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if steps == nil {
		steps = []*models.RecipeStep{}
	}
	httputil.WriteJSON(w, http.StatusOK, steps)
}

func (h *Handler) HandleUpdateStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	stepID, err := id.ParseRecipeStepID(chi.URLParam(r, "stepID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	req, ok := httputil.Decode[UpdateStepRequest](w, r)
	if !ok {
		return
	}
	step, err := h.service.UpdateStep(ctx, actor, stepID, service.RecipeStepPatch{
		Body:      req.Body,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.logError(ctx, "update recipe step failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, step)
}

func (h *Handler) HandleRemoveStep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	stepID, err := id.ParseRecipeStepID(chi.URLParam(r, "stepID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	step, err := h.service.RemoveStep(ctx, actor, stepID)
	if err != nil {
		h.logError(ctx, "remove recipe step failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, step)
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
