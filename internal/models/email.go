package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mailtriage/mailtriage/internal/utils"
)

// ProcessedEmail is one ingested email with its classification outcome.
// A row is created at most once per content fingerprint and is never
// updated or deleted by the pipeline.
type ProcessedEmail struct {
	ID          string `gorm:"column:id;type:varchar(50);primaryKey"`
	Sender      string `gorm:"column:sender;type:varchar(500);index"`
	Subject     string `gorm:"column:subject;type:varchar(1000)"`
	BodyText    string `gorm:"column:body_text;type:text"`
	CleanSubject string `gorm:"column:clean_subject;type:varchar(1000)"`

	// Storage keys of the uploaded attachments, in original attachment order
	AttachmentPaths pq.StringArray `gorm:"column:attachment_paths;type:text[]"`

	// SHA-256 hex digest of the canonical document; the deduplication key
	Fingerprint string `gorm:"column:fingerprint;type:char(64);uniqueIndex;not null"`

	// Classification
	RequestType    string `gorm:"column:request_type;type:varchar(255);index"`
	SubRequestType string `gorm:"column:sub_request_type;type:varchar(255)"`
	Summary        string `gorm:"column:summary;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:current_timestamp"`
}

func (ProcessedEmail) TableName() string {
	return "processed_emails"
}

func (e *ProcessedEmail) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = utils.GenerateNanoIDWithPrefix("email", 24)
	}
	e.CreatedAt = utils.Now()
	return nil
}
