package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/deppfellow/barbershop-api/internal/lib/utils"
	"github.com/deppfellow/barbershop-api/internal/metrics"
	"github.com/deppfellow/barbershop-api/internal/model/user"
)

type UserRepository interface {
	GetByID(ctx context.Context, userID int) (*user.User, error)
	GetByPhone(ctx context.Context, phone string) (*user.User, error)
	ListBonusHistory(ctx context.Context, userID, limit int) ([]user.BonusHistory, error)
	Upsert(ctx context.Context, phone, name string, email *string) (*user.User, error)
	AdjustBonusPoints(ctx context.Context, userID, delta int) (*user.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func userNotFound() error {
	return notFound("User not found", "USER_NOT_FOUND")
}

// GetUser looks the user up by id, including the newest bonus history, or
// by phone when no id is given.
func (s *UserService) GetUser(ctx context.Context, q *user.GetUserQuery) (any, error) {
	if q.UserID != 0 {
		return s.GetByID(ctx, q.UserID)
	}
	return s.GetByPhone(ctx, q.Phone)
}

func (s *UserService) GetByID(ctx context.Context, userID int) (*user.WithHistoryResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, userNotFound()
	}
	if err != nil {
		return nil, err
	}

	history, err := s.repo.ListBonusHistory(ctx, userID, user.BonusHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &user.WithHistoryResponse{User: u, BonusHistory: history}, nil
}

func (s *UserService) GetByPhone(ctx context.Context, phone string) (*user.Response, error) {
	u, err := s.repo.GetByPhone(ctx, phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, userNotFound()
	}
	if err != nil {
		return nil, err
	}

	return &user.Response{User: u}, nil
}

// Upsert registers the phone or refreshes name and email of its owner.
// A blank email is stored as NULL.
func (s *UserService) Upsert(ctx context.Context, payload *user.UpsertUserPayload) (*user.Response, error) {
	u, err := s.repo.Upsert(ctx, payload.Phone, payload.Name, utils.NilIfBlank(payload.Email))
	if err != nil {
		return nil, dbError(err)
	}

	zerolog.Ctx(ctx).Info().Int("user_id", u.ID).Msg("user upserted")

	return &user.Response{User: u}, nil
}

// AdjustBonusPoints applies a signed delta and records it in the ledger.
func (s *UserService) AdjustBonusPoints(ctx context.Context, payload *user.AdjustBonusPayload) (*user.Response, error) {
	delta := utils.Deref(payload.BonusPoints)

	u, err := s.repo.AdjustBonusPoints(ctx, payload.UserID, delta)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, userNotFound()
	}
	if err != nil {
		return nil, dbError(err)
	}

	metrics.RecordBonusAdjustment(delta)

	zerolog.Ctx(ctx).Info().
		Int("user_id", u.ID).
		Int("delta", delta).
		Int("bonus_points", u.BonusPoints).
		Msg("bonus points adjusted")

	return &user.Response{User: u}, nil
}
