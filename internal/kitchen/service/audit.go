package service

import (
	"context"

	id "larder/pkg/domain"
	audit "larder/pkg/platform/audit"
	"larder/pkg/requestcontext"
)

// emitAudit logs the action and forwards it to the audit publisher when one
// is configured. Audit failures never fail the domain operation.
func (s *Service) emitAudit(ctx context.Context, action audit.AuditEvent, kitchenID id.KitchenID, actor, subject id.PrincipalID, reason string) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(action),
			"event", string(action),
			"log_type", "audit",
			"kitchen_id", kitchenID.String(),
			"principal_id", actor.String(),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	if s.auditPublisher == nil {
		return
	}
	_ = s.auditPublisher.Emit(ctx, audit.Event{
		KitchenID:   kitchenID,
		PrincipalID: actor,
		SubjectID:   subject,
		Action:      string(action),
		Reason:      reason,
	})
}

func (s *Service) incrementKitchensCreated() {
	if s.metrics != nil {
		s.metrics.KitchensCreated.Inc()
	}
}

func (s *Service) incrementInvitesSent() {
	if s.metrics != nil {
		s.metrics.InvitesSent.Inc()
	}
}

func (s *Service) incrementInvitesAccepted() {
	if s.metrics != nil {
		s.metrics.InvitesAccepted.Inc()
	}
}

func (s *Service) incrementMembersRemoved() {
	if s.metrics != nil {
		s.metrics.MembersRemoved.Inc()
	}
}
