package configs

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedStaff(t *testing.T) {
	ConnectionDB("file::memory:")
	SetupDatabase()

	require.NoError(t, SeedStaff())
	// seeding again must not duplicate
	require.NoError(t, SeedStaff())

	var staff []entity.User
	require.NoError(t, DB().Where("role IN ?", []entity.Role{
		entity.RoleEditor, entity.RoleExpert, entity.RoleChief,
	}).Find(&staff).Error)
	require.Len(t, staff, 3)

	for _, u := range staff {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("123456")),
			"default password for %s", u.Username)
	}
}

func TestSeedAdmin(t *testing.T) {
	ConnectionDB("file::memory:")
	SetupDatabase()

	t.Run("skipped without credentials", func(t *testing.T) {
		require.NoError(t, SeedAdmin(&Config{AdminUsername: "admin"}))
		var count int64
		DB().Model(&entity.User{}).Where("role = ?", entity.RoleAdmin).Count(&count)
		assert.Zero(t, count)
	})

	t.Run("created once", func(t *testing.T) {
		cfg := &Config{AdminUsername: "admin", AdminPassword: "sesame"}
		require.NoError(t, SeedAdmin(cfg))
		require.NoError(t, SeedAdmin(cfg))

		var admins []entity.User
		require.NoError(t, DB().Where("role = ?", entity.RoleAdmin).Find(&admins).Error)
		require.Len(t, admins, 1)
		assert.Equal(t, "admin", admins[0].Username)
	})
}
