package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles login/registration for every role of both systems.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates an author account. Staff and admin accounts are seeded,
// never registered.
func (s *AuthService) Register(username, password, confirm, name string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	name = strings.TrimSpace(name)
	if username == "" || password == "" || name == "" {
		return nil, errors.New("all fields are required")
	}
	if password != confirm {
		return nil, errors.New("passwords do not match")
	}

	count, err := s.userRepo.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Name:     name,
		Role:     entity.RoleAuthor,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks username+password under the claimed role and issues a JWT.
func (s *AuthService) Login(username, password string, role entity.Role) (string, *entity.User, error) {
	username = strings.TrimSpace(username)
	if !role.Valid() {
		return "", nil, errors.New("invalid role")
	}

	user, err := s.userRepo.FindByUsernameAndRole(username, role)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile touches only the contact fields; role and username stay put.
func (s *AuthService) UpdateProfile(userID uint, name, phone, email string) (*entity.User, error) {
	updates := map[string]any{
		"name":  strings.TrimSpace(name),
		"phone": strings.TrimSpace(phone),
		"email": strings.TrimSpace(email),
	}
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

func (s *AuthService) ChangePassword(userID uint, oldPwd, newPwd, confirm string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPwd)); err != nil {
		return errors.New("old password is incorrect")
	}
	if newPwd == "" || newPwd != confirm {
		return errors.New("passwords do not match")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPwd), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.userRepo.Update(userID, map[string]any{"password": string(hashed)})
}
