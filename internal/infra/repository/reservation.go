package repository

import (
	"context"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/internal/infra"
	"restaurant-reservation/internal/infra/repository/converter"
	sqlc "restaurant-reservation/internal/infra/sqlc/generated"
)

type ReservationWriteQueries interface {
	CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (int64, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservations, error)
	GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reservations, error)
	UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error)
	ListAcceptedReservationsUntil(ctx context.Context, db sqlc.DBTX, reservationTime time.Time) ([]sqlc.Reservations, error)
}

type ReservationRepository struct {
	queries ReservationWriteQueries
	db      sqlc.DBTX
}

func NewReservationRepository(queries ReservationWriteQueries, db sqlc.DBTX) *ReservationRepository {
	return &ReservationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationRepository) Save(ctx context.Context, res *reservation.Reservation) error {
	if res.IsNew() {
		id, err := r.queries.CreateReservation(ctx, r.db, converter.ReservationToCreateParams(res))
		if err != nil {
			return infra.WrapRepoErr("failed to create reservation", err)
		}
		res.MarkPersisted(id)
		return nil
	}

	affected, err := r.queries.UpdateReservationStatus(ctx, r.db, converter.ReservationToStatusParams(res))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reservation status changed since it was read", nil, infra.KindConflict)
	}
	res.MarkPersisted(res.ID())
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}
	return toReservation(row)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error) {
	row, err := r.queries.GetReservationByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return toReservation(row)
}

func (r *ReservationRepository) FindAccepted(ctx context.Context, until time.Time) ([]*reservation.Reservation, error) {
	rows, err := r.queries.ListAcceptedReservationsUntil(ctx, r.db, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted reservations", err)
	}

	result := make([]*reservation.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := toReservation(row)
		if err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	return result, nil
}

func toReservation(row sqlc.Reservations) (*reservation.Reservation, error) {
	res, err := converter.ReservationFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation is corrupt", err, infra.KindDBFailure)
	}
	return res, nil
}
