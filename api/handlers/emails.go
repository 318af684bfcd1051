package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/dto"
	mailtriage_errors "github.com/mailtriage/mailtriage/errors"
	"github.com/mailtriage/mailtriage/internal/tracing"
	"github.com/mailtriage/mailtriage/services/ingestion"
)

// ProcessEmail ingests one uploaded .eml file through the full pipeline and
// returns either the fresh classification or the stored one for a duplicate.
func ProcessEmail(ingestionService *ingestion.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		span, ctx := opentracing.StartSpanFromContext(ctx, "ProcessEmail")
		defer span.Finish()
		tracing.SetDefaultRestSpanTags(ctx, span)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'file' upload"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
			return
		}
		defer file.Close()

		raw, err := io.ReadAll(file)
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read uploaded file"})
			return
		}

		result, err := ingestionService.ProcessEmail(ctx, fileHeader.Filename, raw)
		if err != nil {
			respondPipelineError(c, span, err)
			return
		}

		if result.Duplicate {
			c.JSON(http.StatusOK, dto.DuplicateEmailResponse{
				Message:       dto.DuplicateEmailMessage,
				PreviousEmail: result.Email,
			})
			return
		}

		c.JSON(http.StatusOK, result.Email)
	}
}

func respondPipelineError(c *gin.Context, span opentracing.Span, err error) {
	tracing.TraceErr(span, err)

	switch {
	case mailtriage_errors.IsInvalidInput(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mailtriage_errors.ErrNoJSONFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No JSON found in classification response"})
	case errors.Is(err, mailtriage_errors.ErrClassificationUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Classification service unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process email"})
	}
}
