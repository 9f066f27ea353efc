package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "moneymap/internal/errors"
	"moneymap/internal/logger"
	"moneymap/internal/middleware"
)

// dateLayouts are the accepted formats for date query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDate parses a date query parameter, accepting RFC3339 timestamps and
// plain calendar dates.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.ErrInvalidDateFormat
}

// checkOwnership rejects the request when identity verification is enabled
// and the verified subject does not match the userId being accessed. In
// trust mode it always passes.
func checkOwnership(c *gin.Context, userID string) error {
	subject, ok := middleware.Subject(c)
	if !ok {
		return nil
	}
	if subject != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code and message. Otherwise it logs the
// unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"message": appErr.Message})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"message": apperrors.ErrInternalServer.Message,
		"error":   apperrors.ErrInternalServer.Code,
	})
}

// respondWithDetail writes an error response carrying a handler-specific
// message alongside the underlying failure detail, mirroring the
// {message, error} body shape of mutation failures.
func respondWithDetail(c *gin.Context, status int, message string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(status, gin.H{"message": message, "error": err.Error()})
}
