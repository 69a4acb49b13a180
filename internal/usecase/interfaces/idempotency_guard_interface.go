package interfaces

import "context"

// IIdempotencyGuard remembers request keys so a double submit runs once.
//
// Acquire returns true the first time a key is seen within its TTL. Release
// drops a key whose request failed, so the client can retry it.
//
//go:generate mockgen -source=idempotency_guard_interface.go -destination=mocks/mock_idempotency_guard.go -package=mock_interfaces

type IIdempotencyGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
