package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

// Tables returns the availability of every table in the room.
func (s *Service) Tables(ctx context.Context) (map[string]string, error) {
	tables := make(map[string]string, domain.TableCount)
	for i := 1; i <= domain.TableCount; i++ {
		tables[strconv.Itoa(i)] = domain.TableAvailable
	}

	reservations, err := s.repo.ListReservations(ctx)
	if err != nil {
		s.logger.Error("list reservations", zap.Error(err))
		return nil, domain.ErrInternal
	}
	for _, r := range reservations {
		tables[strconv.Itoa(r.TableNumber)] = domain.TableReserved
	}

	return tables, nil
}

// Reserve holds a table. The table-number unique index decides
// races between concurrent reservations.
func (s *Service) Reserve(ctx context.Context, res *domain.Reservation) error {
	if res.TableNumber < 1 || res.TableNumber > domain.TableCount {
		return domain.ErrBadTableNumber
	}
	if !validPhone(res.PhoneNumber) {
		return domain.ErrInvalidPhoneNumber
	}

	if err := s.repo.CreateReservation(ctx, res); err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return domain.ErrTableReserved
		}
		s.logger.Error("create reservation", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

// Unreserve frees a table.
func (s *Service) Unreserve(ctx context.Context, tableNumber int) error {
	if tableNumber < 1 || tableNumber > domain.TableCount {
		return domain.ErrBadTableNumber
	}

	n, err := s.repo.DeleteReservation(ctx, tableNumber)
	if err != nil {
		s.logger.Error("delete reservation", zap.Error(err))
		return domain.ErrInternal
	}
	if n == 0 {
		return domain.ErrTableNotReserved
	}

	return nil
}

// ListReservations returns every reservation, for privileged callers.
func (s *Service) ListReservations(ctx context.Context) ([]*domain.Reservation, error) {
	reservations, err := s.repo.ListReservations(ctx)
	if err != nil {
		s.logger.Error("list reservations", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return reservations, nil
}
