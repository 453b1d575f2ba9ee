package repositories

import (
	"errors"

	"devconnector_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	Create(post *models.Post) error
	FindAll() ([]models.Post, error)
	FindByID(id string) (*models.Post, error)
	Delete(id string) error

	// Mutate loads the post under a row lock, applies fn and writes it back
	// inside one transaction. Used for the like toggle so two concurrent
	// toggles cannot silently drop one another.
	Mutate(id string, fn func(*models.Post) error) (*models.Post, error)
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindAll returns posts newest first. The id tiebreak keeps the order stable
// when two posts share a creation timestamp.
func (r *PostRepositoryImpl) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) Delete(id string) error {
	return r.db.Delete(&models.Post{}, "id = ?", id).Error
}

func (r *PostRepositoryImpl) Mutate(id string, fn func(*models.Post) error) (*models.Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&post, "id = ?", id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPostNotFound
			}
			return err
		}

		if err := fn(&post); err != nil {
			return err
		}
		return tx.Save(&post).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
