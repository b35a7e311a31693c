package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dcastilloq/reservation-service/internal/errs"
	"github.com/dcastilloq/reservation-service/internal/model"
	"github.com/dcastilloq/reservation-service/internal/repository"
	"github.com/dcastilloq/reservation-service/internal/service"
)

func newTestService() *service.Service {
	return service.NewService(repository.NewInMemory(), zap.NewExample().Named("test"))
}

func mustDate(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestService_CreateTwiceSameDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	rsv := model.Reservation{TableNumber: 5, HolderName: "Ana", Date: mustDate(t, "2024-06-01"), PartySize: 4}
	saved, err := svc.CreateReservation(ctx, rsv)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	_, err = svc.CreateReservation(ctx, rsv)
	require.ErrorIs(t, err, errs.ErrDateAlreadyReserved)
}

func TestService_CreateThenList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	rsv := model.Reservation{
		TableNumber: 5,
		HolderName:  "Ana",
		IsActive:    true,
		Date:        mustDate(t, "2024-06-01"),
		PartySize:   4,
		Services:    "catering",
	}
	saved, err := svc.CreateReservation(ctx, rsv)
	require.NoError(t, err)

	all, err := svc.GetReservations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, saved, all[0])

	want := rsv
	want.ID = saved.ID
	require.Equal(t, want, all[0])
}

func TestService_GetReservationsByName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateReservation(ctx, model.Reservation{HolderName: "Ana", Date: mustDate(t, "2024-06-01")})
	require.NoError(t, err)
	_, err = svc.CreateReservation(ctx, model.Reservation{HolderName: "Luis", Date: mustDate(t, "2024-06-02")})
	require.NoError(t, err)

	byName, err := svc.GetReservationsByName(ctx, "Ana")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Ana", byName[0].HolderName)

	// exact match, not case-insensitive
	byName, err = svc.GetReservationsByName(ctx, "ana")
	require.NoError(t, err)
	require.Empty(t, byName)

	byName, err = svc.GetReservationsByName(ctx, "Pedro")
	require.NoError(t, err)
	require.Empty(t, byName)
}

func TestService_ExistsByDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	exists, err := svc.ExistsByDate(ctx, mustDate(t, "2024-06-01"))
	require.NoError(t, err)
	require.False(t, exists)

	_, err = svc.CreateReservation(ctx, model.Reservation{HolderName: "Ana", Date: mustDate(t, "2024-06-01")})
	require.NoError(t, err)

	exists, err = svc.ExistsByDate(ctx, mustDate(t, "2024-06-01"))
	require.NoError(t, err)
	require.True(t, exists)
}

func TestService_UpdateNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateReservation(ctx, model.Reservation{HolderName: "Ana", Date: mustDate(t, "2024-06-01")})
	require.NoError(t, err)

	_, err = svc.UpdateReservation(ctx, 42, model.Reservation{HolderName: "Luis", Date: mustDate(t, "2024-06-02")})
	require.ErrorIs(t, err, errs.ErrReservationNotFound)

	// store untouched
	all, err := svc.GetReservations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "Ana", all[0].HolderName)
}

func TestService_UpdateSameDateConflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	saved, err := svc.CreateReservation(ctx, model.Reservation{TableNumber: 5, HolderName: "Ana", Date: mustDate(t, "2024-06-01"), PartySize: 4})
	require.NoError(t, err)

	// re-submitting the record's own date trips the conflict check: the
	// check runs against the new date without excluding the current row
	upd := model.Reservation{TableNumber: 7, HolderName: "Ana", Date: mustDate(t, "2024-06-01"), PartySize: 6}
	_, err = svc.UpdateReservation(ctx, saved.ID, upd)
	require.ErrorIs(t, err, errs.ErrDateAlreadyReserved)

	// failed update must not persist the partial mutation
	all, err := svc.GetReservations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, saved, all[0])
}

func TestService_UpdateToFreeDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	saved, err := svc.CreateReservation(ctx, model.Reservation{
		TableNumber: 5,
		HolderName:  "Ana",
		IsActive:    true,
		Date:        mustDate(t, "2024-06-01"),
		PartySize:   4,
		Services:    "catering",
	})
	require.NoError(t, err)

	upd := model.Reservation{
		TableNumber: 2,
		HolderName:  "Luis",
		IsActive:    false,
		Date:        mustDate(t, "2024-06-02"),
		PartySize:   2,
		Services:    "decoration",
	}
	got, err := svc.UpdateReservation(ctx, saved.ID, upd)
	require.NoError(t, err)
	require.Equal(t, saved.ID, got.ID)
	require.Equal(t, int64(2), got.TableNumber)
	require.Equal(t, "Luis", got.HolderName)
	require.False(t, got.IsActive)
	require.Equal(t, mustDate(t, "2024-06-02"), got.Date)
	require.Equal(t, int64(2), got.PartySize)
	// Services stays as stored, whatever the replacement carried
	require.Equal(t, "catering", got.Services)

	stored, err := svc.GetReservations(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "catering", stored[0].Services)
}

func TestService_DeleteByDateNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	err := svc.DeleteReservationByDate(ctx, mustDate(t, "2024-06-01"))
	require.ErrorIs(t, err, errs.ErrReservationNotFound)
}

func TestService_CreateConflictDeleteRecreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestService()

	ana := model.Reservation{TableNumber: 5, HolderName: "Ana", Date: mustDate(t, "2024-06-01"), PartySize: 4}
	luis := model.Reservation{TableNumber: 2, HolderName: "Luis", Date: mustDate(t, "2024-06-01"), PartySize: 2}

	_, err := svc.CreateReservation(ctx, ana)
	require.NoError(t, err)

	_, err = svc.CreateReservation(ctx, luis)
	require.ErrorIs(t, err, errs.ErrDateAlreadyReserved)

	require.NoError(t, svc.DeleteReservationByDate(ctx, mustDate(t, "2024-06-01")))

	saved, err := svc.CreateReservation(ctx, luis)
	require.NoError(t, err)
	require.Equal(t, "Luis", saved.HolderName)

	all, err := svc.GetReservations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
