//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"restaurant-reservation/internal/domain/reservation"
	"restaurant-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)

func TestNewReservation(t *testing.T) {
	ref := reservation.RestaurantRef{ID: 10, ManagerID: 2}
	four, err := reservation.NewPeopleCount(4)
	require.NoError(t, err)

	t.Run("starts pending and unvisited", func(t *testing.T) {
		at := now.Add(48 * time.Hour)
		r, err := reservation.NewReservation(1, ref, four, at, now)
		require.NoError(t, err)

		assert.True(t, r.IsNew())
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.False(t, r.Visited())
		assert.Equal(t, int64(2), r.ManagerID())
		assert.Equal(t, at, r.ReservationTime())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("time must be strictly in the future", func(t *testing.T) {
		_, err := reservation.NewReservation(1, ref, four, now, now)
		require.ErrorIs(t, err, reservation.ErrReservationTimeNotFuture)

		_, err = reservation.NewReservation(1, ref, four, now.Add(-time.Minute), now)
		require.ErrorIs(t, err, reservation.ErrReservationTimeNotFuture)
	})

	t.Run("zero value people count is rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(1, ref, reservation.PeopleCount{}, now.Add(time.Hour), now)
		require.ErrorIs(t, err, reservation.ErrInvalidPeopleCount)
	})
}

func TestNewPeopleCount(t *testing.T) {
	tests := []struct {
		in    int
		valid bool
	}{
		{0, false},
		{1, true},
		{100, true},
		{101, false},
		{-3, false},
	}
	for _, tt := range tests {
		pc, err := reservation.NewPeopleCount(tt.in)
		if tt.valid {
			require.NoError(t, err)
			assert.Equal(t, tt.in, pc.Value())
		} else {
			require.ErrorIs(t, err, reservation.ErrInvalidPeopleCount)
		}
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		from     reservation.Status
		decision reservation.Decision
		want     reservation.Status
		errIs    error
	}{
		{name: "accept pending", from: reservation.StatusPending, decision: reservation.DecisionAccept, want: reservation.StatusAccepted},
		{name: "refuse pending", from: reservation.StatusPending, decision: reservation.DecisionRefuse, want: reservation.StatusCancelled},
		{name: "accept cancelled", from: reservation.StatusCancelled, decision: reservation.DecisionAccept, errIs: reservation.ErrAlreadyCancelled},
		{name: "refuse accepted", from: reservation.StatusAccepted, decision: reservation.DecisionRefuse, errIs: reservation.ErrAlreadyProcessed},
		{name: "accept completed", from: reservation.StatusCompleted, decision: reservation.DecisionAccept, errIs: reservation.ErrAlreadyProcessed},
		{name: "unknown decision", from: reservation.StatusPending, decision: reservation.Decision("MAYBE"), errIs: reservation.ErrInvalidDecision},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().WithStatus(tt.from).BuildDomain()

			err := r.Decide(tt.decision, now)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Equal(t, tt.from, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Status())
			assert.Equal(t, now, r.UpdatedAt())
			assert.Equal(t, tt.from, r.PersistedStatus())
		})
	}
}

func TestConfirmVisit(t *testing.T) {
	t.Run("accepted becomes completed and visited", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusAccepted).BuildDomain()

		require.NoError(t, r.ConfirmVisit(now))
		assert.Equal(t, reservation.StatusCompleted, r.Status())
		assert.True(t, r.Visited())
	})

	for from, errIs := range map[reservation.Status]error{
		reservation.StatusPending:   reservation.ErrNotYetProcessed,
		reservation.StatusCancelled: reservation.ErrAlreadyCancelled,
		reservation.StatusCompleted: reservation.ErrAlreadyVisited,
	} {
		t.Run("from "+from.String(), func(t *testing.T) {
			r := builder.NewReservationBuilder().WithStatus(from).BuildDomain()
			require.ErrorIs(t, r.ConfirmVisit(now), errIs)
			assert.Equal(t, from, r.Status())
		})
	}
}

func TestExpire(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		status  reservation.Status
		at      time.Time
		overdue bool
	}{
		{name: "accepted and past", status: reservation.StatusAccepted, at: past, overdue: true},
		{name: "accepted but upcoming", status: reservation.StatusAccepted, at: future},
		{name: "accepted exactly now", status: reservation.StatusAccepted, at: now},
		{name: "pending and past", status: reservation.StatusPending, at: past},
		{name: "completed and past", status: reservation.StatusCompleted, at: past},
		{name: "cancelled and past", status: reservation.StatusCancelled, at: past},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := builder.NewReservationBuilder().
				WithStatus(tt.status).
				With(func(b *builder.ReservationBuilder) { b.ReservationTime = tt.at }).
				BuildDomain()

			assert.Equal(t, tt.overdue, r.IsOverdue(now))

			err := r.Expire(now)
			if !tt.overdue {
				require.ErrorIs(t, err, reservation.ErrNotExpirable)
				assert.Equal(t, tt.status, r.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, reservation.StatusCancelled, r.Status())
			assert.False(t, r.Visited())
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	all := []reservation.Status{
		reservation.StatusPending, reservation.StatusAccepted,
		reservation.StatusCancelled, reservation.StatusCompleted,
	}
	allowed := map[[2]reservation.Status]bool{
		{reservation.StatusPending, reservation.StatusAccepted}:   true,
		{reservation.StatusPending, reservation.StatusCancelled}:  true,
		{reservation.StatusAccepted, reservation.StatusCompleted}: true,
		{reservation.StatusAccepted, reservation.StatusCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]reservation.Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
		if from.IsTerminal() {
			for _, to := range all {
				assert.False(t, from.CanTransitionTo(to))
			}
		}
	}

	_, err := reservation.NewStatus("DONE")
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}

func TestMarkPersisted(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, r.Decide(reservation.DecisionAccept, now))
	require.Equal(t, reservation.StatusPending, r.PersistedStatus())

	r.MarkPersisted(r.ID())
	assert.Equal(t, reservation.StatusAccepted, r.PersistedStatus())
}

func TestNewEvent(t *testing.T) {
	r := builder.NewReservationBuilder().WithStatus(reservation.StatusAccepted).BuildDomain()

	e := reservation.NewEvent(reservation.DecisionEvent(reservation.DecisionAccept), r, now)

	assert.Equal(t, reservation.Event{
		Type:            reservation.EventAccepted,
		ReservationID:   100,
		CustomerID:      1,
		RestaurantID:    10,
		Status:          reservation.StatusAccepted,
		PeopleCount:     4,
		ReservationTime: r.ReservationTime(),
		OccurredAt:      now,
	}, e)
	assert.Equal(t, reservation.EventRefused, reservation.DecisionEvent(reservation.DecisionRefuse))
}

func TestNewVisitForm(t *testing.T) {
	f, err := reservation.NewVisitForm(" Guest Kim", "010-1234-5678")
	require.NoError(t, err)
	assert.Equal(t, " Guest Kim", f.Name())

	_, err = reservation.NewVisitForm("  ", "010-1234-5678")
	require.ErrorIs(t, err, reservation.ErrInvalidVisitForm)
}
