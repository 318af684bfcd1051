package repository

import (
	"context"
	"errors"

	"github.com/opentracing/opentracing-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/internal/tracing"
	"github.com/mailtriage/mailtriage/internal/utils"
)

type emailRepository struct {
	db *gorm.DB
}

func NewEmailRepository(db *gorm.DB) interfaces.EmailRepository {
	return &emailRepository{
		db: db,
	}
}

func (r *emailRepository) GetByFingerprint(ctx context.Context, fingerprint string) (*models.ProcessedEmail, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "emailRepository.GetByFingerprint")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var email models.ProcessedEmail
	if err := r.db.WithContext(ctx).Where("fingerprint = ?", fingerprint).First(&email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &email, nil
}

func (r *emailRepository) InsertIfAbsent(ctx context.Context, email *models.ProcessedEmail) (bool, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "emailRepository.InsertIfAbsent")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if email == nil {
		return false, nil
	}

	if email.Subject != "" {
		email.CleanSubject = utils.NormalizeEmailSubject(email.Subject)
	}

	// ON CONFLICT DO NOTHING on the fingerprint unique index guards the race
	// where two identical emails are processed concurrently
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fingerprint"}},
			DoNothing: true,
		}).
		Create(email)
	if result.Error != nil {
		tracing.TraceErr(span, result.Error)
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		span.SetTag("duplicate", true)
		return false, nil
	}
	return true, nil
}
