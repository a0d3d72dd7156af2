package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog/internal/etag"
	apperrors "catalog/internal/errors"
	"catalog/internal/logger"
	"catalog/internal/uuid"
)

// ErrorBody is the error object of an ErrorResponse.
type ErrorBody struct {
	Code    string `json:"code" example:"INVALID_INPUT"`
	Message string `json:"message" example:"Invalid input"`
}

// ErrorResponse is the envelope of every error response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseSessionID validates the :id path parameter as a UUID.
func parseSessionID(c *gin.Context) (string, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid session id")
	}
	return id, nil
}

// parseIDList accepts repeated and comma-separated positive integers,
// e.g. ?category_id=1&category_id=2,3.
func parseIDList(values []string, name string) ([]uint, error) {
	var ids []uint
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 32)
			if err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name)
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	appErr, known := apperrors.From(err)
	switch {
	case !known:
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
	case appErr.Internal != nil:
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
		)
	}
	c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorBody{Code: appErr.Code, Message: appErr.Message}})
}

// respondWithETag writes body as JSON tagged with a weak ETag, answering
// 304 Not Modified when the client already holds the same representation.
func respondWithETag(c *gin.Context, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	tag := etag.Generate(data)
	c.Header("ETag", tag)
	c.Header("Cache-Control", "no-cache")
	if !etag.NoneMatch(c.GetHeader("If-None-Match"), tag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
