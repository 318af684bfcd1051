package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/mailtriage/mailtriage/internal/utils"
)

// RequestType is one (category, sub request type) taxonomy entry.
// The taxonomy is append-only; Position preserves insertion order.
type RequestType struct {
	ID             string    `gorm:"column:id;type:varchar(50);primaryKey"`
	Category       string    `gorm:"column:category;type:varchar(255);not null"`
	SubRequestType string    `gorm:"column:sub_request_type;type:varchar(255);not null"`
	Position       int       `gorm:"column:position;autoIncrement;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp"`
}

func (RequestType) TableName() string {
	return "request_types"
}

func (r *RequestType) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = utils.GenerateNanoIDWithPrefix("reqtype", 24)
	}
	r.CreatedAt = utils.Now()
	return nil
}

// SeedRequestTypes is the fixed taxonomy every fresh deployment starts from.
func SeedRequestTypes() []RequestType {
	return []RequestType{
		{Category: "Account Management", SubRequestType: "Update Contact Details"},
		{Category: "Account Management", SubRequestType: "Close Account"},
		{Category: "Transaction Issues", SubRequestType: "Failed Transaction"},
		{Category: "Transaction Issues", SubRequestType: "Disputed Transaction"},
		{Category: "Loan Services", SubRequestType: "Apply for Loan"},
		{Category: "Loan Services", SubRequestType: "Loan Repayment Issues"},
		{Category: "Credit Card Services", SubRequestType: "Lost or Stolen Card"},
		{Category: "Credit Card Services", SubRequestType: "Request Credit Limit Increase"},
	}
}
