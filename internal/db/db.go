package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/config"
	"github.com/barberflow/api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.BarberOffDay{},
		&models.Service{},
		&models.Booking{},
		&models.Notification{},
		&models.GalleryImage{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seed(db)

	return db
}

// seed fills an empty database with the default shop: one owner, one
// walk-in customer account, the starting barber roster, the service
// catalog, and the gallery.
func seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return
	}

	users := []models.User{
		{
			Name:   "Salon Owner",
			Email:  "admin@barberflow.com",
			Role:   models.RoleAdmin,
			Avatar: "https://picsum.photos/seed/admin/200",
		},
		{
			Name:   "Alex Customer",
			Email:  "alex@example.com",
			Role:   models.RoleCustomer,
			Avatar: "https://picsum.photos/seed/customer/200",
		},
		{
			Name:        "James Wilson",
			Email:       "james@barberflow.com",
			Role:        models.RoleBarber,
			Avatar:      "https://picsum.photos/seed/james/200",
			Specialties: "fade,beard trim",
			Rating:      4.9,
		},
		{
			Name:        "Marcus Lee",
			Email:       "marcus@barberflow.com",
			Role:        models.RoleBarber,
			Avatar:      "https://picsum.photos/seed/marcus/200",
			Specialties: "classic cut,hot towel shave",
			Rating:      4.7,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("seed users failed: %v", err)
		return
	}

	services := []models.Service{
		{Name: "Classic Haircut", Description: "Scissor cut with styling", Price: 35, DurationMin: 30, Icon: "scissors", Active: true},
		{Name: "Beard Trim", Description: "Shape and line-up", Price: 20, DurationMin: 20, Icon: "razor", Active: true},
		{Name: "Hot Towel Shave", Description: "Traditional straight razor shave", Price: 40, DurationMin: 45, Icon: "towel", Active: true},
	}
	if err := db.Create(&services).Error; err != nil {
		log.Printf("seed services failed: %v", err)
	}

	gallery := []models.GalleryImage{
		{URL: "https://images.unsplash.com/photo-1503951914875-452162b0f3f1?auto=format&fit=crop&q=80&w=1000", Position: 0},
		{URL: "https://images.unsplash.com/photo-1621605815971-fbc98d665033?auto=format&fit=crop&q=80&w=1000", Position: 1},
		{URL: "https://images.unsplash.com/photo-1599351431202-1e0f0137899a?auto=format&fit=crop&q=80&w=1000", Position: 2},
	}
	if err := db.Create(&gallery).Error; err != nil {
		log.Printf("seed gallery failed: %v", err)
	}
}
