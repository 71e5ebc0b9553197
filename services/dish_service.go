package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
)

var (
	ErrDishNameTaken   = errors.New("dish name already exists")
	ErrInvalidPrice    = errors.New("price must be greater than 0")
	ErrInvalidDiscount = errors.New("discount must be in (0, 1]")
)

type DishService struct {
	Repo *repository.DishRepository
}

func NewDishService(repo *repository.DishRepository) *DishService {
	return &DishService{Repo: repo}
}

func validDiscount(d decimal.Decimal) bool {
	one := decimal.NewFromInt(1)
	return d.IsPositive() && d.LessThanOrEqual(one)
}

func (s *DishService) Create(name string, price, discount decimal.Decimal, image string) (*entity.Dish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("dish name is required")
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if !validDiscount(discount) {
		return nil, ErrInvalidDiscount
	}

	count, err := s.Repo.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDishNameTaken
	}

	dish := &entity.Dish{Name: name, Price: price, Discount: discount, Image: image}
	if err := s.Repo.Create(dish); err != nil {
		return nil, err
	}
	return dish, nil
}

func (s *DishService) List() ([]entity.Dish, error) {
	return s.Repo.FindAll()
}

func (s *DishService) Get(id uint) (*entity.Dish, error) {
	return s.Repo.FindByID(s.Repo.DB, id)
}

// Update applies only the provided fields. Changing price or discount does
// not touch unit prices already frozen on order items.
func (s *DishService) Update(id uint, name *string, price, discount *decimal.Decimal, image *string) error {
	if _, err := s.Repo.FindByID(s.Repo.DB, id); err != nil {
		return ErrDishNotFound
	}

	updates := map[string]any{}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return errors.New("dish name is required")
		}
		count, err := s.Repo.CountByNameExcept(n, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDishNameTaken
		}
		updates["name"] = n
	}
	if price != nil {
		if !price.IsPositive() {
			return ErrInvalidPrice
		}
		updates["price"] = *price
	}
	if discount != nil {
		if !validDiscount(*discount) {
			return ErrInvalidDiscount
		}
		updates["discount"] = *discount
	}
	if image != nil {
		updates["image"] = *image
	}
	if len(updates) == 0 {
		return nil
	}
	return s.Repo.Update(id, updates)
}

func (s *DishService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
