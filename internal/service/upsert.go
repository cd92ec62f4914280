package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/hoard/internal/models"
)

// putSteps are the store operations a PUT resolves to for one entity kind.
type putSteps[T any] struct {
	kind string

	// exists is the existence check for an identity.
	exists func(ctx context.Context, id int64) (bool, error)

	// create validates the payload and inserts it as a new row.
	create func(ctx context.Context) (*T, error)

	// update applies the payload as a coalescing update to id. A nil result
	// means no row matched.
	update func(ctx context.Context, id int64) (*T, error)
}

// resolvePut decides between create and update for a PUT whose identity,
// if any, comes from the body.
//
// The existence check and the write are separate statements, so two
// concurrent PUTs for the same missing id can both create, and a delete
// between the check and the update yields a nil result.
func resolvePut[T any](ctx context.Context, id models.ID, steps putSteps[T]) (*T, Outcome, error) {
	target, ok := id.Get()
	if !ok {
		slog.Info("No "+steps.kind+" id supplied, saving as new "+steps.kind)
		return createNew(ctx, steps)
	}

	found, err := steps.exists(ctx, target)
	if err != nil {
		return nil, 0, err
	}
	if !found {
		slog.Info(steps.kind+" id not found, saving as new "+steps.kind, "id", target)
		return createNew(ctx, steps)
	}

	updated, err := steps.update(ctx, target)
	if err != nil {
		return nil, 0, err
	}
	return updated, Updated, nil
}

// resolvePutAt handles a PUT whose identity comes from the route. The body
// must not carry its own id, and must be a complete record. When no row has
// routeID the payload is saved as a new row with a store-assigned id.
func resolvePutAt[T any](ctx context.Context, bodyID models.ID, routeID int64, validate func() error, steps putSteps[T]) (*T, Outcome, error) {
	if bodyID.Present() {
		slog.Warn(steps.kind+" id must only be in URL for this operation", "route_id", routeID, "body_id", bodyID)
		return nil, 0, ErrConflictingIdentity
	}
	if err := validate(); err != nil {
		slog.Warn("Invalid "+steps.kind+" data", "error", err)
		return nil, 0, err
	}

	updated, err := steps.update(ctx, routeID)
	if err != nil {
		return nil, 0, err
	}
	if updated != nil {
		return updated, Updated, nil
	}

	slog.Info(steps.kind+" not found, saving as new "+steps.kind, "id", routeID)
	return createNew(ctx, steps)
}

func createNew[T any](ctx context.Context, steps putSteps[T]) (*T, Outcome, error) {
	created, err := steps.create(ctx)
	if err != nil {
		return nil, 0, err
	}
	return created, Created, nil
}
