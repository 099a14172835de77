package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ServiceRequestStatusOpen       = "open"
	ServiceRequestStatusScheduled  = "scheduled"
	ServiceRequestStatusInProgress = "in_progress"
	ServiceRequestStatusResolved   = "resolved"
	ServiceRequestStatusClosed     = "closed"
)

// ServiceRequest is an appliance service/repair ticket raised by a
// customer, tracked by its reference code.
type ServiceRequest struct {
	ID            string   `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ReferenceCode string   `gorm:"size:50;not null;uniqueIndex" json:"reference_code"`
	ProductID     *string  `gorm:"size:36;index" json:"product_id,omitempty"`
	Product       *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductName   string   `gorm:"size:255" json:"product_name"`
	SerialNumber  string   `gorm:"size:100" json:"serial_number"`
	IssueSummary  string   `gorm:"size:255;not null" json:"issue_summary"`
	IssueDetail   string   `gorm:"type:text" json:"issue_detail"`
	CustomerName  string   `gorm:"size:255;not null" json:"customer_name"`
	Email         string   `gorm:"size:255;not null" json:"email"`
	Phone         string   `gorm:"size:20;not null" json:"phone"`
	City          string   `gorm:"size:100" json:"city"`
	Address       string   `gorm:"type:text" json:"address"`
	Status        string   `gorm:"size:20;not null;default:open" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (sr *ServiceRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if sr.ID == "" {
		sr.ID = uuid.New().String()
	}
	return
}
