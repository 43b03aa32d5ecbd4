package model

import (
	"time"
)

// Movie is a read-side entity here: reviews reference it, but its catalog
// management lives outside this service.
type Movie struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"nome" json:"nome"`
	Director       *string   `db:"diretor" json:"diretor,omitempty"`
	ReleaseYear    *int      `db:"ano_lancamento" json:"anoLancamento,omitempty"`
	GenreID        *int64    `db:"genero_id" json:"generoId,omitempty"`
	DurationMin    *int      `db:"duracao" json:"duracao,omitempty"`
	Studio         *string   `db:"produtora" json:"produtora,omitempty"`
	Classification *string   `db:"classificacao" json:"classificacao,omitempty"`
	Poster         *string   `db:"poster" json:"poster,omitempty"`
	CreatedAt      time.Time `db:"criado_em" json:"criado_em"`
}

type Genre struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"nome" json:"nome"`
}

type MovieSummary struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"nome" json:"nome"`
	ReleaseYear *int   `db:"ano_lancamento" json:"anoLancamento,omitempty"`
}
