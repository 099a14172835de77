package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DealerStatusPending  = "pending"
	DealerStatusApproved = "approved"
	DealerStatusRejected = "rejected"
)

type Dealer struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	BusinessName string `gorm:"size:255;not null" json:"business_name"`
	ContactName  string `gorm:"size:255;not null" json:"contact_name"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone        string `gorm:"size:20;not null" json:"phone"`
	City         string `gorm:"size:100;not null" json:"city"`
	Address      string `gorm:"type:text" json:"address"`
	TaxNumber    string `gorm:"size:50" json:"tax_number"`
	Password     string `gorm:"size:255;not null" json:"-"`
	Status       string `gorm:"size:20;not null;default:pending" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *Dealer) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return
}
