package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/cinelog/review-server-go/internal/errors"
	"github.com/cinelog/review-server-go/internal/httputil"
	"github.com/cinelog/review-server-go/internal/service"
)

const birthDateLayout = "2006-01-02"

type UserHandler struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewUserHandler(authService *service.AuthService, userService *service.UserService) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
	}
}

type createUserRequest struct {
	Name      string  `json:"nome"`
	Email     string  `json:"email"`
	Password  string  `json:"senha"`
	BirthDate string  `json:"data_nascimento"`
	Nickname  *string `json:"apelido"`
	Role      string  `json:"tipoUsuario"`
}

// POST /usuarios
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Corpo da requisição inválido."))
		return
	}

	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := parseBirthDate(req.BirthDate)
		if err != nil {
			httputil.WriteError(w, apperrors.InvalidInput("data_nascimento", "use o formato AAAA-MM-DD"))
			return
		}
		birthDate = parsed
	}

	result, err := h.authService.Register(r.Context(), service.RegisterParams{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		BirthDate: birthDate,
		Nickname:  req.Nickname,
		Role:      req.Role,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, result)
}

// GET /usuarios
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, users)
}

type updateUserRequest struct {
	Name     *string `json:"nome"`
	Nickname *string `json:"apelido"`
	Password *string `json:"senha"`
}

// PATCH /usuarios/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("id", "deve ser um inteiro"))
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Corpo da requisição inválido."))
		return
	}

	user, err := h.userService.Update(r.Context(), id, service.UpdateUserParams{
		Name:     req.Name,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, user)
}

// PATCH /usuarios/{id}/desativar
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, apperrors.InvalidInput("id", "deve ser um inteiro"))
		return
	}

	user, err := h.userService.Deactivate(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"mensagem": "Usuário desativado com sucesso.",
		"usuario":  user,
	})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func parseBirthDate(raw string) (time.Time, error) {
	if t, err := time.Parse(birthDateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
