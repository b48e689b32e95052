package handler

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"taxengine/internal/ingest"
	"taxengine/internal/service"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

// uploadField is the multipart form field carrying CSV uploads
const uploadField = "file"

// respondUploadError maps ingest and service errors onto HTTP responses
func respondUploadError(c *gin.Context, err error) {
	var formatErr *ingest.InputFormatError
	var convErr *ingest.RowConversionError

	switch {
	case errors.As(err, &formatErr):
		c.JSON(http.StatusBadRequest, response.ErrorWithDetails(http.StatusBadRequest, formatErr.Error(), gin.H{
			"missing_columns":  formatErr.Missing,
			"required_columns": formatErr.Required,
		}))
	case errors.As(err, &convErr):
		c.JSON(http.StatusUnprocessableEntity, response.ErrorWithDetails(http.StatusUnprocessableEntity, convErr.Error(), gin.H{
			"line":   convErr.Line,
			"column": convErr.Column,
			"value":  convErr.Value,
		}))
	case errors.Is(err, service.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
	default:
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Error reading CSV: "+err.Error()))
	}
}

// multipartOverhead allows for boundaries and part headers around the file
const multipartOverhead = 64 << 10

// openUpload returns the uploaded CSV, or writes an error response and returns nil.
// The request body is capped before parsing, so oversized uploads are cut off early.
func openUpload(c *gin.Context, maxBytes int64) (multipart.File, bool) {
	if maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)
	}

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondTooLarge(c, maxBytes)
			return nil, false
		}
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, fmt.Sprintf("CSV file is required in form field '%s'", uploadField)))
		return nil, false
	}
	if maxBytes > 0 && fileHeader.Size > maxBytes {
		respondTooLarge(c, maxBytes)
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Failed to open uploaded file: "+err.Error()))
		return nil, false
	}
	return f, true
}

func respondTooLarge(c *gin.Context, maxBytes int64) {
	c.JSON(http.StatusRequestEntityTooLarge, response.Error(http.StatusRequestEntityTooLarge, fmt.Sprintf("CSV file exceeds %d bytes", maxBytes)))
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
