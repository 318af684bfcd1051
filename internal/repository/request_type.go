package repository

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

type requestTypeRepository struct {
	db *gorm.DB
}

func NewRequestTypeRepository(db *gorm.DB) interfaces.RequestTypeRepository {
	return &requestTypeRepository{
		db: db,
	}
}

func (r *requestTypeRepository) List(ctx context.Context) ([]models.RequestType, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "requestTypeRepository.List")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var entries []models.RequestType
	if err := r.db.WithContext(ctx).Order("position asc").Find(&entries).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return entries, nil
}

func (r *requestTypeRepository) Append(ctx context.Context, category, subRequestType string) (*models.RequestType, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "requestTypeRepository.Append")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	if category == "" || subRequestType == "" {
		return nil, errors.Wrap(mailtriage_errors.ErrInvalidInput, "category and request_type are required")
	}

	entry := models.RequestType{
		Category:       category,
		SubRequestType: subRequestType,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return &entry, nil
}

func (r *requestTypeRepository) EnsureSeed(ctx context.Context) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "requestTypeRepository.EnsureSeed")
	defer span.Finish()
	tracing.TagComponentPostgresRepository(span)

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RequestType{}).Count(&count).Error; err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	if count > 0 {
		return nil
	}

	seed := models.SeedRequestTypes()
	for i := range seed {
		if err := r.db.WithContext(ctx).Create(&seed[i]).Error; err != nil {
			tracing.TraceErr(span, err)
			return err
		}
	}
	return nil
}
