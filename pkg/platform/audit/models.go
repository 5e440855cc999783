// Package audit defines the audit event model shared by services, sinks,
// and the publisher.
package audit

import (
	"context"
	"time"

	id "larder/pkg/domain"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time      `json:"timestamp"`
	KitchenID   id.KitchenID   `json:"kitchen_id"`
	PrincipalID id.PrincipalID `json:"principal_id"`
	// SubjectID identifies the principal acted upon when different from the
	// actor (invites, removals).
	SubjectID id.PrincipalID `json:"subject_id,omitempty"`
	Action    string         `json:"action"`
	Reason    string         `json:"reason,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	ClientIP  string         `json:"client_ip,omitempty"`
	// Platform is the parsed client platform ("browser/os") from the
	// metadata middleware, for operational forensics.
	Platform string `json:"platform,omitempty"`
}

type AuditEvent string

const (
	// Kitchen lifecycle
	EventKitchenCreated AuditEvent = "kitchen_created"
	EventKitchenUpdated AuditEvent = "kitchen_updated"
	EventKitchenDeleted AuditEvent = "kitchen_deleted"

	// Membership lifecycle
	EventMemberInvited  AuditEvent = "member_invited"
	EventInviteAccepted AuditEvent = "invite_accepted"
	EventInviteDenied   AuditEvent = "invite_denied"
	EventMemberRemoved  AuditEvent = "member_removed"

	// Shared collections
	EventRecipeCreated     AuditEvent = "recipe_created"
	EventRecipeDeleted     AuditEvent = "recipe_deleted"
	EventIngredientCreated AuditEvent = "ingredient_created"
	EventIngredientDeleted AuditEvent = "ingredient_deleted"
	EventListCreated       AuditEvent = "list_created"
	EventListDeleted       AuditEvent = "list_deleted"
)

// Sink receives emitted events. Implementations: in-memory store (tests,
// dev), Kafka producer (production).
type Sink interface {
	Append(ctx context.Context, event Event) error
}
