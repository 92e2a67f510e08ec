package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"travel_backend/internal/auth"
	"travel_backend/internal/config"
	"travel_backend/internal/logger"
	"travel_backend/internal/models"

	"gorm.io/gorm"
)

// SeedFirstAdmin creates the configured admin account when it does not exist.
// Missing credentials skip seeding instead of failing startup.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := models.NormalizeEmail(cfg.Admin.Email)
	adminPassword := cfg.Admin.Password

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", adminEmail).First(&existing).Error
		if err == nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check for admin user: %w", err)
		}

		if err := auth.ValidatePassword(adminPassword); err != nil {
			return fmt.Errorf("first admin password: %w", err)
		}

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		admin := &models.User{
			Email:        adminEmail,
			PasswordHash: hash,
			Name:         cfg.Admin.Name,
			Role:         models.UserRoleAdmin,
			Active:       true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("create admin user: %w", err)
		}

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}

// SeedData is the layout of the JSON seed file used by cmd/dbtool.
type SeedData struct {
	Destinations []models.Destination `json:"destinations"`
	Packages     []SeedPackage        `json:"packages"`
	BlogPosts    []models.BlogPost    `json:"blogPosts"`
}

// SeedPackage links to its destination by slug, since ids are generated on insert.
type SeedPackage struct {
	models.Package
	DestinationSlug string `json:"destinationSlug"`
}

// SeedFromJSON loads catalogue content from path in one transaction.
// Rows whose slug already exists are left untouched.
func SeedFromJSON(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var data SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		destIDs := make(map[string]string, len(data.Destinations))

		for i := range data.Destinations {
			d := data.Destinations[i]
			d.Packages = nil
			d.ID, d.Rating, d.Reviews = "", 0, 0
			id, err := upsertBySlug(tx, &models.Destination{}, d.Slug, &d, func() string { return d.ID })
			if err != nil {
				return fmt.Errorf("seed destination %s: %w", d.Slug, err)
			}
			destIDs[d.Slug] = id
		}

		for i := range data.Packages {
			p := data.Packages[i].Package
			p.ID, p.Rating, p.Reviews = "", 0, 0
			if slug := data.Packages[i].DestinationSlug; slug != "" {
				id, ok := destIDs[slug]
				if !ok {
					return fmt.Errorf("package %s references unknown destination %s", p.Slug, slug)
				}
				p.DestinationID = &id
			}
			if _, err := upsertBySlug(tx, &models.Package{}, p.Slug, &p, func() string { return p.ID }); err != nil {
				return fmt.Errorf("seed package %s: %w", p.Slug, err)
			}
		}

		for i := range data.BlogPosts {
			post := data.BlogPosts[i]
			post.ID = ""
			if _, err := upsertBySlug(tx, &models.BlogPost{}, post.Slug, &post, func() string { return post.ID }); err != nil {
				return fmt.Errorf("seed post %s: %w", post.Slug, err)
			}
		}

		logger.Info("Seed data loaded",
			"destinations", len(data.Destinations),
			"packages", len(data.Packages),
			"posts", len(data.BlogPosts),
		)
		return nil
	})
}

// upsertBySlug inserts row unless a row with slug exists, and returns the id in use.
func upsertBySlug(tx *gorm.DB, model interface{}, slug string, row interface{}, newID func() string) (string, error) {
	var existing struct{ ID string }
	err := tx.Model(model).Select("id").Where("slug = ?", slug).Take(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if err := tx.Create(row).Error; err != nil {
		return "", err
	}
	return newID(), nil
}
