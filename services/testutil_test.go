package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

func openDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Dish{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Manuscript{}, &entity.Review{}, &entity.SubmissionDraft{},
	))
	return db
}

// setupDB opens a fresh named in-memory database. cache=shared makes every
// pooled connection see the same database; a bare :memory: DSN gives each
// connection its own empty one.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openDB(t, fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1)))
}

func newOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewDishRepository(db),
		NewClock("", 0))
}

func newManuscriptService(t *testing.T, db *gorm.DB) *ManuscriptService {
	t.Helper()
	return NewManuscriptService(db,
		repository.NewManuscriptRepository(db),
		repository.NewUserRepository(db))
}

func mustDish(t *testing.T, db *gorm.DB, name, price, discount string) *entity.Dish {
	t.Helper()
	d := &entity.Dish{
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Discount: decimal.RequireFromString(discount),
	}
	require.NoError(t, db.Create(d).Error)
	return d
}

func mustUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x", Name: username, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}
