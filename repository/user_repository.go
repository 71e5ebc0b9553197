package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// login matches username + role together, same credentials under a
// different role do not authenticate
func (r *UserRepository) FindByUsernameAndRole(username string, role entity.Role) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ? AND role = ?", username, role).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) ListByRole(role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", role).Find(&users).Error
	return users, err
}
