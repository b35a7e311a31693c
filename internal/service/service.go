package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dcastilloq/reservation-service/internal/errs"
	"github.com/dcastilloq/reservation-service/internal/metrics"
	"github.com/dcastilloq/reservation-service/internal/model"
	"github.com/dcastilloq/reservation-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

func (s *Service) GetReservations(ctx context.Context) ([]model.Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) GetReservationsByName(ctx context.Context, name string) ([]model.Reservation, error) {
	return s.repo.FindByHolderName(ctx, name)
}

func (s *Service) ExistsByDate(ctx context.Context, date model.Date) (bool, error) {
	return s.repo.ExistsByDate(ctx, date)
}

// CreateReservation rejects the candidate when its date is already taken.
// The date check lives here as a domain invariant; the unique index on the
// store is only a backstop.
func (s *Service) CreateReservation(ctx context.Context, rsv model.Reservation) (model.Reservation, error) {
	exists, err := s.repo.ExistsByDate(ctx, rsv.Date)
	if err != nil {
		return model.Reservation{}, err
	}
	if exists {
		metrics.IncDateConflict("create")
		return model.Reservation{}, errs.ErrDateAlreadyReserved
	}
	rsv.ID = 0
	saved, err := s.repo.Save(ctx, rsv)
	if err != nil {
		return model.Reservation{}, err
	}
	metrics.IncReservationCreated()
	s.log.Info("reservation created",
		zap.Int64("id", saved.ID),
		zap.String("date", saved.Date.String()))
	return saved, nil
}

// UpdateReservation replaces every mutable field of the stored record except
// Services, which stays as stored. The date check runs against the new date
// without excluding the record's own row, so re-submitting an unchanged date
// is rejected with ErrDateAlreadyReserved. The store is only written after
// the check passes; the fetched record is a detached copy.
func (s *Service) UpdateReservation(ctx context.Context, id int64, upd model.Reservation) (model.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Reservation{}, errs.ErrReservationNotFound
		}
		return model.Reservation{}, err
	}

	existing.TableNumber = upd.TableNumber
	existing.HolderName = upd.HolderName
	existing.IsActive = upd.IsActive
	existing.Date = upd.Date
	existing.PartySize = upd.PartySize

	exists, err := s.repo.ExistsByDate(ctx, upd.Date)
	if err != nil {
		return model.Reservation{}, err
	}
	if exists {
		metrics.IncDateConflict("update")
		return model.Reservation{}, errs.ErrDateAlreadyReserved
	}

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return model.Reservation{}, err
	}
	metrics.IncReservationUpdated()
	s.log.Info("reservation updated", zap.Int64("id", saved.ID))
	return saved, nil
}

func (s *Service) DeleteReservationByDate(ctx context.Context, date model.Date) error {
	found, err := s.repo.FindByDate(ctx, date)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrReservationNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, found); err != nil {
		return err
	}
	metrics.IncReservationDeleted()
	s.log.Info("reservation deleted",
		zap.Int64("id", found.ID),
		zap.String("date", date.String()))
	return nil
}
