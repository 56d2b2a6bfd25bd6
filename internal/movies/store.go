package movies

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no movie has the requested id.
	ErrNotFound = errors.New("movie not found")
	// ErrDuplicateTitle is returned when a create collides with an
	// existing title.
	ErrDuplicateTitle = errors.New("movie title already exists")
)

// Store owns the movies table. Every method is a single auto-committed
// statement; the store holds no state beyond the connection.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// ListAll returns every movie ordered by rating ascending, unrated
// records first. Ties fall back to id order so the listing is stable.
func (s *Store) ListAll() ([]Movie, error) {
	var all []Movie
	if err := s.db.Order("rating ASC NULLS FIRST, id ASC").Find(&all).Error; err != nil {
		s.logger.Error("failed to list movies", slog.Any("error", err))
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return all, nil
}

func (s *Store) GetByID(id uint) (*Movie, error) {
	var movie Movie
	if err := s.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to get movie", slog.Uint64("id", uint64(id)), slog.Any("error", err))
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &movie, nil
}

// Create inserts the movie and fills in its assigned id.
func (s *Store) Create(movie *Movie) error {
	if err := s.db.Create(movie).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Warn("duplicate movie title", slog.String("title", movie.Title))
			return ErrDuplicateTitle
		}
		s.logger.Error("failed to create movie", slog.String("title", movie.Title), slog.Any("error", err))
		return fmt.Errorf("create movie: %w", err)
	}
	s.logger.Info("movie created", slog.Uint64("id", uint64(movie.ID)), slog.String("title", movie.Title))
	return nil
}

// UpdateRatingAndReview sets both fields together; partial updates are
// not supported.
func (s *Store) UpdateRatingAndReview(id uint, rating float64, review string) (*Movie, error) {
	movie, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	movie.Rating = &rating
	movie.Review = &review
	if err := s.db.Model(movie).Updates(map[string]interface{}{
		"rating": rating,
		"review": review,
	}).Error; err != nil {
		s.logger.Error("failed to update movie", slog.Uint64("id", uint64(id)), slog.Any("error", err))
		return nil, fmt.Errorf("update movie %d: %w", id, err)
	}
	s.logger.Info("movie rated", slog.Uint64("id", uint64(id)), slog.Float64("rating", rating))
	return movie, nil
}

func (s *Store) Delete(id uint) error {
	res := s.db.Delete(&Movie{}, id)
	if res.Error != nil {
		s.logger.Error("failed to delete movie", slog.Uint64("id", uint64(id)), slog.Any("error", res.Error))
		return fmt.Errorf("delete movie %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	s.logger.Info("movie deleted", slog.Uint64("id", uint64(id)))
	return nil
}
