// Package response is the boundary translator: it maps classified service
// errors to the stable wire error shape and writes success payloads as the
// API documents them (bare entities, not envelopes).
package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/apperror"
	"bookcatalog-backend/internal/shared/messages"
)

// Type URIs tagging the two error classes on the wire.
const (
	TypeFunctional = "/problem/functional-exception"
	TypeTechnical  = "/problem/technical-exception"
)

// ResponseError is the wire error shape. Status is the numeric HTTP status
// serialized as a string.
type ResponseError struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Detail  string `json:"detail"`
	Status  string `json:"status"`
	TraceID string `json:"traceId"`
}

// OK writes a 200 with the given body.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Created writes a 201 with the created entity.
func Created(c *gin.Context, body any) {
	c.JSON(http.StatusCreated, body)
}

// NoContent writes a 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Problem translates any error raised by the service layer. Functional
// errors map to 400 with their formatted detail message; everything else
// is reported as a technical failure: 500, generic detail, the kind name
// as title. The originating message is never echoed for technical errors.
func Problem(c *gin.Context, err error) {
	translated := Translate(err, c.GetString("request_id"))

	status, convErr := strconv.Atoi(translated.Status)
	if convErr != nil {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, translated)
}

// Translate builds the wire error for err without writing it.
func Translate(err error, traceID string) ResponseError {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind == apperror.KindFunctional {
		return ResponseError{
			Type:    TypeFunctional,
			Title:   appErr.Kind.Name(),
			Detail:  messages.Format(messages.DefaultLocale, appErr.Reason, appErr.Params...),
			Status:  strconv.Itoa(http.StatusBadRequest),
			TraceID: traceID,
		}
	}

	return ResponseError{
		Type:    TypeTechnical,
		Title:   apperror.KindTechnical.Name(),
		Detail:  messages.Format(messages.DefaultLocale, apperror.ReasonTechnical),
		Status:  strconv.Itoa(http.StatusInternalServerError),
		TraceID: traceID,
	}
}
