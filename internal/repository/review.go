package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/cinelog/review-server-go/internal/model"
)

type ReviewRepository interface {
	FindAllWithRefs(ctx context.Context) ([]model.ReviewWithRefs, error)
	Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error)
	Update(ctx context.Context, userID, movieID int64, params model.UpdateReviewParams) (*model.Review, error)
	Delete(ctx context.Context, userID, movieID int64) (bool, error)
}

type reviewRepo struct {
	db sqlxDB
}

func NewReviewRepository(db *sqlx.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

// FindAllWithRefs returns every review joined with user and movie summaries.
// No pagination: clients consume the full listing.
func (r *reviewRepo) FindAllWithRefs(ctx context.Context) ([]model.ReviewWithRefs, error) {
	var reviews []model.ReviewWithRefs
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT
			a.usuario_id, a.filme_id, a.nota, a.comentario, a.criado_em, a.atualizado_em,
			u.id AS "usuario.id", u.nome AS "usuario.nome", u.apelido AS "usuario.apelido",
			f.id AS "filme.id", f.nome AS "filme.nome", f.ano_lancamento AS "filme.ano_lancamento"
		FROM avaliacoes a
		JOIN usuarios u ON u.id = a.usuario_id
		JOIN filmes f ON f.id = a.filme_id
		ORDER BY a.criado_em DESC
	`)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// Create inserts the first review for a (usuario, filme) pair. A second
// insert for the same pair hits the composite primary key and comes back as
// ErrDuplicate; an unknown user or movie comes back as ErrMissingReference.
func (r *reviewRepo) Create(ctx context.Context, params model.CreateReviewParams) (*model.Review, error) {
	var review model.Review
	err := r.db.GetContext(ctx, &review, `
		INSERT INTO avaliacoes (usuario_id, filme_id, nota, comentario)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`, params.UserID, params.MovieID, params.Rating, params.Comment)
	if err != nil {
		return nil, translateConstraint(err)
	}
	return &review, nil
}

// Update mutates in place, conditionally on the pair existing. Matching zero
// rows means not-found; there is no check-then-act window.
func (r *reviewRepo) Update(ctx context.Context, userID, movieID int64, params model.UpdateReviewParams) (*model.Review, error) {
	var review model.Review
	err := r.db.GetContext(ctx, &review, `
		UPDATE avaliacoes SET
			nota = COALESCE($3, nota),
			comentario = COALESCE($4, comentario),
			atualizado_em = $5
		WHERE usuario_id = $1 AND filme_id = $2
		RETURNING *
	`, userID, movieID, params.Rating, params.Comment, time.Now())
	return HandleNotFound(&review, err)
}

// Delete removes the row for the pair, reporting whether anything was there.
func (r *reviewRepo) Delete(ctx context.Context, userID, movieID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM avaliacoes WHERE usuario_id = $1 AND filme_id = $2
	`, userID, movieID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
