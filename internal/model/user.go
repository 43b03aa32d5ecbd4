package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleClient Role = "CLIENTE"
	RoleAdmin  Role = "ADMIN"
)

// NormalizeRole maps arbitrary client input to a valid role. Only an explicit
// "ADMIN" escalates; everything else becomes CLIENTE.
func NormalizeRole(s string) Role {
	if strings.EqualFold(s, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleClient
}

type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"nome" json:"nome"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"senha" json:"-"`
	BirthDate    time.Time `db:"data_nascimento" json:"data_nascimento"`
	Nickname     *string   `db:"apelido" json:"apelido,omitempty"`
	Role         Role      `db:"tipo_usuario" json:"tipoUsuario"`
	Active       bool      `db:"status" json:"status"`
	CreatedAt    time.Time `db:"criado_em" json:"criado_em"`
	UpdatedAt    time.Time `db:"atualizado_em" json:"atualizado_em"`
}

type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	BirthDate    time.Time
	Nickname     *string
	Role         Role
}

type UpdateUserParams struct {
	Name         *string
	Nickname     *string
	PasswordHash *string
}

// UserSummary is the slice of a user embedded in review listings.
type UserSummary struct {
	ID       int64   `db:"id" json:"id"`
	Name     string  `db:"nome" json:"nome"`
	Nickname *string `db:"apelido" json:"apelido,omitempty"`
}
