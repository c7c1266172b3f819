package cafe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type ServiceAPI interface {
	ListCafes(ctx context.Context) ([]Cafe, error)
	GetCafe(ctx context.Context, id int64) (Cafe, error)
	CreateCafe(ctx context.Context, in CafeInput) (Cafe, error)
	UpdateCafe(ctx context.Context, id int64, in CafeInput) (Cafe, error)
	DeleteCafe(ctx context.Context, id int64) (Cafe, error)
}

type Repository interface {
	ListCafes(ctx context.Context) ([]Cafe, error)
	GetCafeByID(ctx context.Context, id int64) (Cafe, error)
	CreateCafe(ctx context.Context, c Cafe) (Cafe, error)
	UpdateCafe(ctx context.Context, c Cafe) (Cafe, error)
	DeleteCafe(ctx context.Context, id int64) error
}

type Notifier interface {
	CafeCreated(ctx context.Context, name, location string) error
}

type Service struct {
	repo                 Repository
	ntfy                 Notifier
	notificationsTimeout time.Duration
}

func NewService(repo Repository, ntfy Notifier, notificationsTimeout time.Duration) *Service {
	return &Service{
		repo:                 repo,
		ntfy:                 ntfy,
		notificationsTimeout: notificationsTimeout,
	}
}

func (s *Service) ListCafes(ctx context.Context) ([]Cafe, error) {
	cafes, err := s.repo.ListCafes(ctx)
	if err != nil {
		return nil, repoError(err)
	}
	return cafes, nil
}

func (s *Service) GetCafe(ctx context.Context, id int64) (Cafe, error) {
	c, err := s.repo.GetCafeByID(ctx, id)
	if err != nil {
		return Cafe{}, repoError(err)
	}
	return c, nil
}

/* Formats the price, stores the new cafe and announces it. */
func (s *Service) CreateCafe(ctx context.Context, in CafeInput) (Cafe, error) {
	created, err := s.repo.CreateCafe(ctx, in.toCafe(0))
	if err != nil {
		return Cafe{}, repoError(err)
	}

	if s.ntfy != nil {
		ntfyCtx, cancel := context.WithTimeout(ctx, s.notificationsTimeout)
		defer cancel()
		if err := s.ntfy.CafeCreated(ntfyCtx, created.Name, created.Location); err != nil {
			log.Warn().Err(err).Int64("cafe_id", created.ID).Msg("notifying cafe creation")
		}
	}

	return created, nil
}

/* Overwrites every field of the stored cafe with the validated input. */
func (s *Service) UpdateCafe(ctx context.Context, id int64, in CafeInput) (Cafe, error) {
	updated, err := s.repo.UpdateCafe(ctx, in.toCafe(id))
	if err != nil {
		return Cafe{}, repoError(err)
	}
	return updated, nil
}

func (s *Service) DeleteCafe(ctx context.Context, id int64) (Cafe, error) {
	c, err := s.repo.GetCafeByID(ctx, id)
	if err != nil {
		return Cafe{}, repoError(err)
	}

	err = s.repo.DeleteCafe(ctx, id)
	if err != nil {
		return Cafe{}, repoError(err)
	}
	return c, nil
}

// repoError keeps the errors callers branch on and tags every other
// storage failure as a repository fault.
func repoError(err error) error {
	switch {
	case errors.Is(err, ErrResponseCafeNotFound),
		errors.Is(err, ErrResponseCafeNameConflict),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w%v", ErrResponseFromRepository, err)
	}
}
