package handler

import (
	"context"

	"github.com/dcastilloq/reservation-service/internal/model"
	"github.com/dcastilloq/reservation-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	GetReservations(ctx context.Context) ([]model.Reservation, error)
	GetReservationsByName(ctx context.Context, name string) ([]model.Reservation, error)
	CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, rsv model.Reservation) (model.Reservation, error)
	DeleteReservationByDate(ctx context.Context, date model.Date) error
}

var _ ReservationService = (*service.Service)(nil)
