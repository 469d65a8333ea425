package jobs

import (
	"context"
	"log/slog"
	"strconv"

	"restaurant-reservation/internal/infra/events"
	"restaurant-reservation/internal/pkg/clock"
	"restaurant-reservation/internal/pkg/errs"
	"restaurant-reservation/internal/usecase/shared"
)

// OutboxRelay forwards queued lifecycle events to the broker. Delivery is at least once:
// a batch that fails to publish stays pending and is retried on the next run.
type OutboxRelay struct {
	uow       shared.UnitOfWork
	publisher events.Publisher
	clock     clock.Clock
	logger    *slog.Logger
	batch     int32
}

func NewOutboxRelay(uow shared.UnitOfWork, publisher events.Publisher, clk clock.Clock, logger *slog.Logger, batch int32) *OutboxRelay {
	if batch <= 0 {
		batch = 100
	}
	return &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		batch:     batch,
	}
}

// Relay publishes one batch and returns how many events left the outbox.
func (r *OutboxRelay) Relay(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pending, err := tx.Outbox().FetchPending(ctx, r.batch)
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			return nil
		}

		msgs := make([]events.Message, 0, len(pending))
		ids := make([]int64, 0, len(pending))
		for _, p := range pending {
			msgs = append(msgs, events.Message{
				Key:        strconv.FormatInt(p.ReservationID, 10),
				Type:       p.EventType,
				Payload:    p.Payload,
				OccurredAt: p.CreatedAt,
			})
			ids = append(ids, p.ID)
		}

		if err := r.publisher.Publish(ctx, msgs); err != nil {
			return err
		}
		if err := tx.Outbox().MarkPublished(ctx, ids, r.clock.Now()); err != nil {
			return err
		}
		published = len(ids)
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to relay reservation events")
	}
	return published, nil
}
