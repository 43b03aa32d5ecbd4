package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/cinelog/review-server-go/internal/audit"
	"github.com/cinelog/review-server-go/internal/auth"
	apperrors "github.com/cinelog/review-server-go/internal/errors"
	"github.com/cinelog/review-server-go/internal/model"
	"github.com/cinelog/review-server-go/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
}

func NewUserService(userRepo repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return users, nil
}

type UpdateUserParams struct {
	Name     *string
	Nickname *string
	Password *string
}

// Update applies a partial profile update. A new password is rehashed before
// it touches the store; the raw value goes no further than this method.
func (s *UserService) Update(ctx context.Context, id int64, params UpdateUserParams) (*model.User, error) {
	repoParams := model.UpdateUserParams{
		Name:     params.Name,
		Nickname: params.Nickname,
	}

	if params.Password != nil {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeValidation, "Erro ao atualizar o usuário.", err)
		}
		repoParams.PasswordHash = &hash
	}

	user, err := s.userRepo.Update(ctx, id, repoParams)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("Usuário não encontrado.")
	}

	audit.Log(audit.Event{Type: audit.EventAccountUpdate, UserID: user.ID, Email: user.Email})

	return user, nil
}

// Deactivate soft-deletes the account. The flip is irreversible through this
// API, and outstanding tokens stay valid until their encoded expiry.
func (s *UserService) Deactivate(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.Deactivate(ctx, id)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("Usuário não encontrado.")
	}

	audit.Log(audit.Event{Type: audit.EventAccountDeactivate, UserID: user.ID, Email: user.Email})
	log.Info().Int64("userId", user.ID).Msg("user deactivated")

	return user, nil
}
