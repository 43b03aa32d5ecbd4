package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cinelog/review-server-go/internal/audit"
	"github.com/cinelog/review-server-go/internal/auth"
	apperrors "github.com/cinelog/review-server-go/internal/errors"
	"github.com/cinelog/review-server-go/internal/model"
	"github.com/cinelog/review-server-go/internal/repository"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password. The identical body keeps the endpoint from leaking which emails
// are registered.
func invalidCredentials() *apperrors.AppError {
	return apperrors.Unauthorized("Credenciais inválidas.")
}

type AuthService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenService
}

func NewAuthService(
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// AuthResult is the payload of a successful login or registration: a session
// token plus the account with its password hash already stripped by the
// model's json tags.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"usuario"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperrors.MissingRequired("Informe email e senha.")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if user == nil {
		audit.Log(audit.Event{Type: audit.EventLoginFailure, Email: email})
		return nil, invalidCredentials()
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		audit.Log(audit.Event{Type: audit.EventLoginFailure, UserID: user.ID, Email: email})
		return nil, invalidCredentials()
	}

	// Deactivated accounts are not filtered here: a correct password still
	// yields a token. Clients rely on this.
	token, err := s.tokens.Issue(user, s.tokens.LoginTTL())
	if err != nil {
		return nil, apperrors.Internal("Erro ao realizar login.").WithCause(err)
	}

	audit.Log(audit.Event{Type: audit.EventLoginSuccess, UserID: user.ID, Email: email})
	log.Debug().Int64("userId", user.ID).Msg("login succeeded")

	return &AuthResult{Token: token, User: user}, nil
}

type RegisterParams struct {
	Name      string
	Email     string
	Password  string
	BirthDate time.Time
	Nickname  *string
	Role      string
}

func (s *AuthService) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	if params.Name == "" || params.Email == "" || params.Password == "" || params.BirthDate.IsZero() {
		return nil, apperrors.MissingRequired("Campos obrigatórios: nome, email, senha, data_nascimento.")
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, "Erro ao criar usuário.", err)
	}

	user, err := s.userRepo.Create(ctx, model.CreateUserParams{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: hash,
		BirthDate:    params.BirthDate,
		Nickname:     params.Nickname,
		Role:         model.NormalizeRole(params.Role),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.AlreadyExists("E-mail já cadastrado.")
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeValidation, "Erro ao criar usuário.", err)
	}

	// Registration hands out the long-lived token; login hands out the short
	// one. The two windows are intentionally different.
	token, err := s.tokens.Issue(user, s.tokens.SignupTTL())
	if err != nil {
		return nil, apperrors.Internal("Erro ao criar usuário.").WithCause(err)
	}

	audit.Log(audit.Event{Type: audit.EventAccountCreate, UserID: user.ID, Email: user.Email})
	log.Info().Int64("userId", user.ID).Str("role", string(user.Role)).Msg("user registered")

	return &AuthResult{Token: token, User: user}, nil
}
