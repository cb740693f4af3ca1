package storage

import (
	"errors"

	"github.com/BelkinSergey/shareit-server/models"
	"github.com/BelkinSergey/shareit-server/services"
	"gorm.io/gorm"
)

// Users is the gorm-backed user store.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(user *models.User) error {
	return translateUserError(s.db.Create(user).Error)
}

func (s *Users) Save(user *models.User) error {
	return translateUserError(s.db.Save(user).Error)
}

// translateUserError turns the unique-index violation on email into the
// same Conflict the service raises, so a concurrent create that slips
// past the pre-check still answers 409 rather than 500.
func translateUserError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return services.Conflict("email is already in use")
	}
	return err
}

func (s *Users) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) Exists(id uint) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Users) All() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	q := s.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Users) Delete(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}
