package repository

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/infra"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
	"restaurant-reservation/internal/pkg/pgconv"
	"restaurant-reservation/internal/usecase/shared"
)

type OutboxQueries interface {
	CreateReservationEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationEventParams) (int64, error)
	FetchPendingReservationEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ReservationEvents, error)
	MarkReservationEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationEventsPublishedParams) error
}

// OutboxRepository stores lifecycle events in the transaction that produced them.
type OutboxRepository struct {
	queries OutboxQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, event reservation.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reservation event", err, infra.KindDBFailure)
	}

	params := sqlc.CreateReservationEventParams{
		ReservationID: event.ReservationID,
		EventType:     event.Type.String(),
		Payload:       payload,
		CreatedAt:     event.OccurredAt,
	}
	if _, err := r.queries.CreateReservationEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue reservation event", err)
	}
	return nil
}

// FetchPending skips rows locked by a concurrent relay.
func (r *OutboxRepository) FetchPending(ctx context.Context, limit int32) ([]shared.OutboxMessage, error) {
	rows, err := r.queries.FetchPendingReservationEvents(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch pending reservation events", err)
	}

	messages := make([]shared.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, shared.OutboxMessage{
			ID:            row.ID,
			ReservationID: row.ReservationID,
			EventType:     row.EventType,
			Payload:       row.Payload,
			CreatedAt:     row.CreatedAt,
		})
	}
	return messages, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	params := sqlc.MarkReservationEventsPublishedParams{
		PublishedAt: pgconv.TimeToPgtype(at),
		Ids:         ids,
	}
	if err := r.queries.MarkReservationEventsPublished(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark reservation events published", err)
	}
	return nil
}
