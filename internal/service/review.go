package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	apperrors "github.com/cinelog/review-server-go/internal/errors"
	"github.com/cinelog/review-server-go/internal/model"
	"github.com/cinelog/review-server-go/internal/repository"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	movieRepo  repository.MovieRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	movieRepo repository.MovieRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		movieRepo:  movieRepo,
	}
}

type CreateReviewParams struct {
	UserID  int64
	MovieID int64
	Rating  *float64
	Comment *string
}

func (s *ReviewService) Create(ctx context.Context, params CreateReviewParams) (*model.Review, error) {
	if params.UserID <= 0 || params.MovieID <= 0 || params.Rating == nil {
		return nil, apperrors.MissingRequired("Campos obrigatórios: idUsuario, idFilme, nota.")
	}

	review, err := s.reviewRepo.Create(ctx, model.CreateReviewParams{
		UserID:  params.UserID,
		MovieID: params.MovieID,
		Rating:  *params.Rating,
		Comment: params.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperrors.AlreadyExists("Avaliação já existe para este usuário e filme.")
		case errors.Is(err, repository.ErrMissingReference):
			s.logMissingReference(ctx, params.UserID, params.MovieID)
			return nil, apperrors.ValidationError("Erro ao criar avaliação.")
		default:
			return nil, apperrors.Database(err)
		}
	}

	log.Info().Int64("userId", review.UserID).Int64("movieId", review.MovieID).Msg("review created")

	return review, nil
}

// logMissingReference resolves which side of the foreign key was absent. The
// client gets the same generic error either way; the detail is for operators.
func (s *ReviewService) logMissingReference(ctx context.Context, userID, movieID int64) {
	userMissing := false
	if user, err := s.userRepo.FindByID(ctx, userID); err == nil && user == nil {
		userMissing = true
	}
	movieMissing := false
	if movie, err := s.movieRepo.FindByID(ctx, movieID); err == nil && movie == nil {
		movieMissing = true
	}
	log.Warn().
		Int64("userId", userID).
		Int64("movieId", movieID).
		Bool("userMissing", userMissing).
		Bool("movieMissing", movieMissing).
		Msg("review rejected: unknown reference")
}

func (s *ReviewService) List(ctx context.Context) ([]model.ReviewWithRefs, error) {
	reviews, err := s.reviewRepo.FindAllWithRefs(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}
	return reviews, nil
}

type UpdateReviewParams struct {
	Rating  *float64
	Comment *string
}

// Update requires the (usuario, filme) pair to already exist. The repository
// does the existence check and the mutation in one statement.
func (s *ReviewService) Update(ctx context.Context, userID, movieID int64, params UpdateReviewParams) (*model.Review, error) {
	review, err := s.reviewRepo.Update(ctx, userID, movieID, model.UpdateReviewParams{
		Rating:  params.Rating,
		Comment: params.Comment,
	})
	if err != nil {
		return nil, apperrors.Database(err)
	}
	if review == nil {
		return nil, apperrors.NotFound("Avaliação não encontrada.")
	}

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, userID, movieID int64) error {
	deleted, err := s.reviewRepo.Delete(ctx, userID, movieID)
	if err != nil {
		return apperrors.Database(err)
	}
	if !deleted {
		return apperrors.NotFound("Avaliação não encontrada.")
	}

	log.Info().Int64("userId", userID).Int64("movieId", movieID).Msg("review deleted")

	return nil
}
