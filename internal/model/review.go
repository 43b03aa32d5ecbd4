package model

import (
	"time"
)

// Review is keyed by the (usuario, filme) pair: at most one review per user
// per movie, enforced by the composite primary key.
type Review struct {
	UserID    int64     `db:"usuario_id" json:"idUsuario"`
	MovieID   int64     `db:"filme_id" json:"idFilme"`
	Rating    float64   `db:"nota" json:"nota"`
	Comment   *string   `db:"comentario" json:"comentario,omitempty"`
	CreatedAt time.Time `db:"criado_em" json:"criado_em"`
	UpdatedAt time.Time `db:"atualizado_em" json:"atualizado_em"`
}

type CreateReviewParams struct {
	UserID  int64
	MovieID int64
	Rating  float64
	Comment *string
}

type UpdateReviewParams struct {
	Rating  *float64
	Comment *string
}

// ReviewWithRefs is the read-side join returned by listings: the review plus
// summaries of the user and movie it points at.
type ReviewWithRefs struct {
	Review
	User  UserSummary  `db:"usuario" json:"usuario"`
	Movie MovieSummary `db:"filme" json:"filme"`
}
