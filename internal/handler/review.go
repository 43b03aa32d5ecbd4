package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/cinelog/review-server-go/internal/errors"
	"github.com/cinelog/review-server-go/internal/httputil"
	"github.com/cinelog/review-server-go/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type createReviewRequest struct {
	UserID  int64    `json:"idUsuario"`
	MovieID int64    `json:"idFilme"`
	Rating  *float64 `json:"nota"`
	Comment *string  `json:"comentario"`
}

// POST /avaliacoes
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Corpo da requisição inválido."))
		return
	}

	review, err := h.reviewService.Create(r.Context(), service.CreateReviewParams{
		UserID:  req.UserID,
		MovieID: req.MovieID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, review)
}

// GET /avaliacoes
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, reviews)
}

type updateReviewRequest struct {
	Rating  *float64 `json:"nota"`
	Comment *string  `json:"comentario"`
}

// PUT|PATCH /avaliacoes/{idUsuario}/{idFilme}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, movieID, err := reviewKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	var req updateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, apperrors.ValidationError("Corpo da requisição inválido."))
		return
	}

	review, err := h.reviewService.Update(r.Context(), userID, movieID, service.UpdateReviewParams{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, review)
}

// DELETE /avaliacoes/{idUsuario}/{idFilme}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, movieID, err := reviewKey(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.reviewService.Delete(r.Context(), userID, movieID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func reviewKey(r *http.Request) (userID, movieID int64, err error) {
	userID, err = parseID(chi.URLParam(r, "idUsuario"))
	if err != nil {
		return 0, 0, apperrors.InvalidInput("idUsuario", "deve ser um inteiro")
	}
	movieID, err = parseID(chi.URLParam(r, "idFilme"))
	if err != nil {
		return 0, 0, apperrors.InvalidInput("idFilme", "deve ser um inteiro")
	}
	return userID, movieID, nil
}
