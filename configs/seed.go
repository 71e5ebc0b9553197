package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the restaurant back-office account on first run.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Name:     "Administrator",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedStaff creates the fixed editorial accounts. Authors register
// themselves; editor/expert/chief accounts only exist through seeding.
func SeedStaff() error {
	db := DB()

	staff := []struct {
		username string
		name     string
		role     entity.Role
	}{
		{"editor", "Managing Editor", entity.RoleEditor},
		{"expert", "Review Expert", entity.RoleExpert},
		{"chief", "Editor in Chief", entity.RoleChief},
	}

	for _, s := range staff {
		var count int64
		db.Model(&entity.User{}).Where("username = ?", s.username).Count(&count)
		if count > 0 {
			continue
		}
		hash, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
		u := entity.User{Username: s.username, Password: string(hash), Name: s.name, Role: s.role}
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}

	log.Println("staff accounts seeded")
	return nil
}
