// Package handler exposes kitchen and membership management over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"larder/internal/kitchen/models"
	"larder/internal/kitchen/service"
	id "larder/pkg/domain"
	dErrors "larder/pkg/domain-errors"
	"larder/pkg/platform/httputil"
	"larder/pkg/requestcontext"
)

// Service is the kitchen operations surface the handler depends on.
type Service interface {
	CreateKitchen(ctx context.Context, actor id.PrincipalID, name, description string) (*models.Kitchen, error)
	GetKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) (*models.Kitchen, error)
	ListKitchens(ctx context.Context, actor id.PrincipalID) ([]*models.Kitchen, error)
	UpdateKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, patch service.KitchenPatch) (*models.Kitchen, error)
	DeleteKitchen(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error
	ResolveByShareToken(ctx context.Context, token uuid.UUID) (*models.Kitchen, error)
	ListMembers(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) ([]*models.Membership, error)

	Invite(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID, inviteeEmail string) (*models.Membership, error)
	Accept(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error
	Deny(ctx context.Context, actor id.PrincipalID, kitchenID id.KitchenID) error
	Remove(ctx context.Context, actor id.PrincipalID, membershipID id.MembershipID) (*models.Membership, error)
	ListInvites(ctx context.Context, actor id.PrincipalID) ([]*models.Membership, error)
}

// Handler wires kitchen endpoints to the kitchen service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts kitchen endpoints on the router. Everything except the
// share-token resolver requires an authenticated principal.
func (h *Handler) Register(r chi.Router) {
	r.Post("/kitchens", h.HandleCreate)
	r.Get("/kitchens", h.HandleList)
	r.Get("/kitchens/{kitchenID}", h.HandleGet)
	r.Patch("/kitchens/{kitchenID}", h.HandleUpdate)
	r.Delete("/kitchens/{kitchenID}", h.HandleDelete)
	r.Get("/kitchens/{kitchenID}/members", h.HandleListMembers)
	r.Post("/kitchens/{kitchenID}/invites", h.HandleInvite)
	r.Post("/kitchens/{kitchenID}/invites/accept", h.HandleAccept)
	r.Post("/kitchens/{kitchenID}/invites/deny", h.HandleDeny)
	r.Get("/invites", h.HandleListInvites)
	r.Delete("/memberships/{membershipID}", h.HandleRemoveMember)
}

// RegisterPublic mounts the routes that take no bearer principal. The share
// token in the URL is the capability.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/shared/{shareToken}", h.HandleResolveShareToken)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	req, ok := httputil.Decode[CreateKitchenRequest](w, r)
	if !ok {
		return
	}

	kitchen, err := h.service.CreateKitchen(ctx, actor, req.Name, req.Description)
	if err != nil {
		h.logError(ctx, "create kitchen failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, kitchen)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	kitchens, err := h.service.ListKitchens(ctx, actor)
	if err != nil {
		h.logError(ctx, "list kitchens failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, kitchens)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
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
	kitchen, err := h.service.GetKitchen(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, kitchen)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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
	req, ok := httputil.Decode[UpdateKitchenRequest](w, r)
	if !ok {
		return
	}

	kitchen, err := h.service.UpdateKitchen(ctx, actor, kitchenID, service.KitchenPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logError(ctx, "update kitchen failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, kitchen)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.service.DeleteKitchen(ctx, actor, kitchenID); err != nil {
		h.logError(ctx, "delete kitchen failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
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
	members, err := h.service.ListMembers(ctx, actor, kitchenID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, members)
}

func (h *Handler) HandleInvite(w http.ResponseWriter, r *http.Request) {
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
	req, ok := httputil.Decode[InviteRequest](w, r)
	if !ok {
		return
	}

	invitation, err := h.service.Invite(ctx, actor, kitchenID, req.Email)
	if err != nil {
		h.logError(ctx, "invite failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, invitation)
}

func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
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
	if err := h.service.Accept(ctx, actor, kitchenID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleDeny(w http.ResponseWriter, r *http.Request) {
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
	if err := h.service.Deny(ctx, actor, kitchenID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteNoContent(w)
}

func (h *Handler) HandleListInvites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	invites, err := h.service.ListInvites(ctx, actor)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, invites)
}

func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := h.requirePrincipal(w, ctx)
	if !ok {
		return
	}
	membershipID, err := id.ParseMembershipID(chi.URLParam(r, "membershipID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	removed, err := h.service.Remove(ctx, actor, membershipID)
	if err != nil {
		h.logError(ctx, "remove member failed", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, removed)
}

// HandleResolveShareToken is the one public endpoint: the token in the URL is
// the capability, no principal required.
func (h *Handler) HandleResolveShareToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, err := uuid.Parse(chi.URLParam(r, "shareToken"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid share token"))
		return
	}
	kitchen, err := h.service.ResolveByShareToken(ctx, token)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, kitchen)
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
