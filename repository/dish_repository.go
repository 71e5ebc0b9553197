package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

// FindByID runs on the given handle so price snapshots taken inside a
// transaction stay on that transaction; callers outside one pass the root DB.
func (r *DishRepository) FindByID(tx *gorm.DB, id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := tx.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) FindAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Order("id").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Dish{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

// CountByNameExcept is the duplicate check for renames.
func (r *DishRepository) CountByNameExcept(name string, id uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Dish{}).Where("name = ? AND id <> ?", name, id).Count(&count).Error
	return count, err
}

func (r *DishRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Dish{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the dish and its order item rows.
func (r *DishRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("dish_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Dish{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
