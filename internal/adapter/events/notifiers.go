package events

import (
	"context"

	"mass_oss/internal/domain/entities"
	"mass_oss/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// LogNotifier writes every mutation result to the structured log.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) Notify(_ context.Context, r entities.MutationResult) {
	entry := log.WithFields(log.Fields{
		"result_id": r.ID,
		"operation": r.Operation,
		"org_id":    r.OrgID,
		"id":        r.WorkOrderID,
		"from":      r.FromStatus,
		"status":    r.Status,
		"actor":     r.Actor,
		"role":      r.ActorRole,
	})
	if !r.OK {
		entry.WithField("reason", r.Reason).Warn("[events] mutation failed")
		return
	}
	entry.Info("[events] mutation applied")
}

// Fanout delivers each result to every notifier in order.
type Fanout []interfaces.INotifier

var _ interfaces.INotifier = Fanout(nil)

func (f Fanout) Notify(ctx context.Context, r entities.MutationResult) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, r)
		}
	}
}
