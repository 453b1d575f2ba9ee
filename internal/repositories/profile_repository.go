package repositories

import (
	"errors"

	"devconnector_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByUserID(userID string) (*models.Profile, error)
	FindAll() ([]models.Profile, error)
	Create(profile *models.Profile) error
	Save(profile *models.Profile) error
	DeleteByUserID(userID string) error

	// MutateByUserID loads the profile under a row lock, applies fn and
	// writes the result back inside one transaction. Concurrent sub-list
	// mutations serialize instead of last-write-wins.
	MutateByUserID(userID string, fn func(*models.Profile) error) (*models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrInvalidID
	}

	var profile models.Profile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAll() ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("User").Order("created_at ASC, id ASC").Find(&profiles).Error
	return profiles, err
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) DeleteByUserID(userID string) error {
	return r.db.Delete(&models.Profile{}, "user_id = ?", userID).Error
}

func (r *ProfileRepositoryImpl) MutateByUserID(userID string, fn func(*models.Profile) error) (*models.Profile, error) {
	var profile models.Profile

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&profile, "user_id = ?", userID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}

		if err := fn(&profile); err != nil {
			return err
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	// Reload with the user relation for response rendering.
	return r.FindByUserID(userID)
}
