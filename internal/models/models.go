package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"      json:"id"`
	Username       string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email          string    `gorm:"size:256;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"not null"                      json:"-"`
	IsAdmin        bool      `gorm:"not null;default:false"        json:"is_admin"`
	AvatarFileName *string   `gorm:"size:260"                      json:"avatar_file_name"`
	CreatedAt      time.Time `json:"created_at"`
}

type Product struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"      json:"id"`
	Name          string     `gorm:"size:120;not null"             json:"name"`
	Slug          string     `gorm:"size:160;uniqueIndex;not null" json:"slug"`
	Description   *string    `gorm:"size:1000"                     json:"description"`
	Price         float64    `gorm:"type:decimal(18,2);not null"   json:"price"`
	DiscountPrice *float64   `gorm:"type:decimal(18,2)"            json:"discount_price"`
	Sku           string     `gorm:"size:50;not null"              json:"sku"`
	Stock         int        `gorm:"not null;default:0"            json:"stock"`
	IsActive      bool       `gorm:"not null;default:true"         json:"is_active"`
	ImageFileName *string    `gorm:"size:260"                      json:"image_file_name"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"          json:"updated_at"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&User{}, &Product{})
}
