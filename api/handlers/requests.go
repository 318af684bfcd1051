package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/mailtriage/mailtriage/dto"
	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/models"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

// ListRequestTypes returns the taxonomy in insertion order.
func ListRequestTypes(repo interfaces.RequestTypeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span, ctx := opentracing.StartSpanFromContext(ctx, "ListRequestTypes")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		entries, err := repo.List(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list request types"})
			return
		}

		c.JSON(http.StatusOK, toEntries(entries))
	}
}

// AddRequestType appends one (category, sub request type) pair.
func AddRequestType(repo interfaces.RequestTypeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span, ctx := opentracing.StartSpanFromContext(ctx, "AddRequestType")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		var request dto.AddRequestTypeRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input. Provide 'category' and 'request_type'."})
			return
		}
		if request.Category == "" || request.RequestType == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input. Provide 'category' and 'request_type'."})
			return
		}

		if _, err := repo.Append(ctx, request.Category, request.RequestType); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add request type"})
			return
		}

		entries, err := repo.List(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list request types"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Request added successfully",
			"updated_data": toEntries(entries),
		})
	}
}

func toEntries(entries []models.RequestType) []dto.RequestTypeEntry {
	out := make([]dto.RequestTypeEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, dto.RequestTypeEntry{
			Category:       entry.Category,
			SubRequestType: entry.SubRequestType,
		})
	}
	return out
}
