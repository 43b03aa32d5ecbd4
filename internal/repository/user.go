package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cinelog/review-server-go/internal/model"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (*model.User, error)
	Update(ctx context.Context, id int64, params model.UpdateUserParams) (*model.User, error)
	Deactivate(ctx context.Context, id int64) (*model.User, error)
}

type userRepo struct {
	db sqlxDB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM usuarios WHERE id = $1
	`, id)
	return HandleNotFound(&user, err)
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		SELECT * FROM usuarios WHERE email = $1
	`, email)
	return HandleNotFound(&user, err)
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.SelectContext(ctx, &users, `
		SELECT * FROM usuarios
		ORDER BY criado_em DESC
	`)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) Create(ctx context.Context, params model.CreateUserParams) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		INSERT INTO usuarios (nome, email, senha, data_nascimento, apelido, tipo_usuario)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING *
	`, params.Name, params.Email, params.PasswordHash, params.BirthDate, params.Nickname, params.Role)
	if err != nil {
		return nil, translateConstraint(err)
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, params model.UpdateUserParams) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		UPDATE usuarios SET
			nome = COALESCE($2, nome),
			apelido = COALESCE($3, apelido),
			senha = COALESCE($4, senha),
			atualizado_em = $5
		WHERE id = $1
		RETURNING *
	`, id, params.Name, params.Nickname, params.PasswordHash, time.Now())
	return HandleNotFound(&user, err)
}

// Deactivate soft-deletes: the row stays, status flips to false. There is no
// reactivation path.
func (r *userRepo) Deactivate(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, `
		UPDATE usuarios SET
			status = FALSE,
			atualizado_em = $2
		WHERE id = $1
		RETURNING *
	`, id, time.Now())
	return HandleNotFound(&user, err)
}
