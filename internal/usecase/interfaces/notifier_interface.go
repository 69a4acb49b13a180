package interfaces

import (
	"context"
	"mass_oss/internal/domain/entities"
)

// INotifier is the one channel every mutation outcome goes through.
//
// Implementations must not fail the mutation: delivery problems are logged by
// the implementation and swallowed.
//
//go:generate mockgen -source=notifier_interface.go -destination=mocks/mock_notifier.go -package=mock_interfaces

type INotifier interface {
	Notify(ctx context.Context, result entities.MutationResult)
}
