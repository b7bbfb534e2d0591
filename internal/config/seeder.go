package config

import (
	"log"

	"hrdesk/internal/adapters/persistence/models"
	"hrdesk/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("Running database seeders...")

	if err := s.seedPositions(); err != nil {
		return err
	}
	if err := s.seedAdminUser(); err != nil {
		log.Printf("Admin seeder skipped: %v", err)
	}

	log.Println("Database seeding completed")
	return nil
}

// seedPositions seeds the default positions
func (s *Seeder) seedPositions() error {
	defaults := []models.Position{
		{Name: "Admin", Active: true},
		{Name: "Supervisor", Active: true},
		{Name: "Employee", Active: true},
	}

	for _, position := range defaults {
		var count int64
		if err := s.db.Model(&models.Position{}).
			Where("name = ?", position.Name).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := s.db.Create(&position).Error; err != nil {
			return err
		}
		log.Printf("Seeded position: %s", position.Name)
	}

	return nil
}

// seedAdminUser seeds the default admin user.
// This is for development/testing only. In production, create the admin
// through a secure process.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.User{}).
		Joins("JOIN positions ON positions.id = users.position_id").
		Where("positions.name = ?", "Admin").
		Count(&count)
	if count > 0 {
		return nil // Admin already exists
	}

	var adminPosition models.Position
	if err := s.db.Where("name = ?", "Admin").First(&adminPosition).Error; err != nil {
		return err
	}

	hashedPassword, err := password.Hash("admin123456")
	if err != nil {
		return err
	}

	admin := &models.User{
		FirstName:  "Default",
		LastName:   "Admin",
		Email:      "admin@hrdesk.local",
		Age:        30,
		PositionID: adminPosition.ID,
		Password:   hashedPassword,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded admin user: %s", admin.Email)
	return nil
}
