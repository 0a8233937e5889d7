// Package validation applies per-field rules to incoming payloads before any
// business logic runs. Rules never mutate state; invalid input produces a
// structured list of field failures rather than an error.
package validation

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-service/internal/domain"
)

const (
	MaxNameLength      = 255
	MinComplaintLength = 10
	MaxComplaintLength = 10000
	MinCommentLength   = 1
	MaxCommentLength   = 5000
	DefaultPage        = 1
	DefaultLimit       = 20
	MaxLimit           = 100
)

// FieldError describes a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors collects field failures for one payload.
type Errors []FieldError

// Details flattens failures into a field->message map for error responses.
func (e Errors) Details() map[string]any {
	if len(e) == 0 {
		return nil
	}
	details := make(map[string]any, len(e))
	for _, fe := range e {
		details[fe.Field] = fe.Message
	}
	return details
}

func (e *Errors) add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// NormalizeEmail lowercases and trims an email before comparison or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name checks submitter/author display names.
func Name(errs *Errors, field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add(field, "is required")
		return
	}
	if utf8.RuneCountInString(value) > MaxNameLength {
		errs.add(field, "must be at most 255 characters")
	}
}

// Email checks syntactic validity of a normalized address.
func Email(errs *Errors, field, value string) {
	value = NormalizeEmail(value)
	if value == "" {
		errs.add(field, "is required")
		return
	}
	if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
		errs.add(field, "must be a valid email address")
	}
}

// Body enforces length bounds on free-text bodies.
func Body(errs *Errors, field, value string, min, max int) {
	length := utf8.RuneCountInString(strings.TrimSpace(value))
	if length < min {
		errs.add(field, "must be at least "+strconv.Itoa(min)+" characters")
		return
	}
	if length > max {
		errs.add(field, "must be at most "+strconv.Itoa(max)+" characters")
	}
}

// AdminStatus checks the target of a staff status update. Withdrawn is only
// reachable through the public withdraw endpoint.
func AdminStatus(errs *Errors, field string, value domain.ComplaintStatus) {
	switch value {
	case domain.ComplaintStatusPending, domain.ComplaintStatusResolved:
	default:
		errs.add(field, "must be one of Pending, Resolved")
	}
}

// FilterStatus checks a status used to filter listings.
func FilterStatus(errs *Errors, field string, value domain.ComplaintStatus) {
	switch value {
	case domain.ComplaintStatusPending, domain.ComplaintStatusResolved, domain.ComplaintStatusWithdrawn:
	default:
		errs.add(field, "must be one of Pending, Resolved, Withdrawn")
	}
}

// ID checks that a path parameter is a well-formed opaque identifier.
func ID(errs *Errors, field, value string) {
	if _, err := uuid.Parse(value); err != nil {
		errs.add(field, "must be a valid id")
	}
}

// Pagination parses page/limit query values, applying defaults and bounds.
func Pagination(pageStr, limitStr string) (page, limit int, errs Errors) {
	page = DefaultPage
	limit = DefaultLimit

	if pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			errs.add("page", "must be an integer greater than or equal to 1")
		} else {
			page = parsed
		}
	}
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > MaxLimit {
			errs.add("limit", "must be an integer between 1 and 100")
		} else {
			limit = parsed
		}
	}
	return page, limit, errs
}
