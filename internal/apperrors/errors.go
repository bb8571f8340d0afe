// internal/apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"
)

// NotFoundError reports a missing Campaign or Content row. Message is the
// client-facing sentence, Kind the short label used in the error field of
// the response envelope.
type NotFoundError struct {
	Message string
	Kind    string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewCampaignNotFound(id int) error {
	return &NotFoundError{
		Message: fmt.Sprintf("Campaign with the ID '%d' not found", id),
		Kind:    "Campaign not found",
	}
}

func NewContentNotFound(id int) error {
	return &NotFoundError{
		Message: fmt.Sprintf("Content with the ID '%d' not found", id),
		Kind:    "Content not found",
	}
}

func NewActiveCampaignNotFound() error {
	return &NotFoundError{
		Message: "Active Campaign not found",
		Kind:    "Active Campaign not found",
	}
}

// ConflictError reports a uniqueness-invariant violation, either from the
// service pre-check or translated from a database constraint.
type ConflictError struct {
	Message string
	Kind    string
}

func (e *ConflictError) Error() string { return e.Message }

func NewDuplicateCampaignName() error {
	return &ConflictError{
		Message: "Campaign name must be unique",
		Kind:    "Campaign name already exists",
	}
}

func NewDuplicateContentOrder(order int) error {
	return &ConflictError{
		Message: fmt.Sprintf("Content order must be unique within a campaign. Use a different content order apart from '%d'.", order),
		Kind:    "Content order already exists",
	}
}

// ValidationError collects per-field validation messages for a request body.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// OrNil lets Validate methods build up an error and return it directly.
func (e *ValidationError) OrNil() error {
	if e.Empty() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on: %s", strings.Join(fields, ", "))
}

// MalformedError reports a request body that could not be parsed at all.
type MalformedError struct {
	Detail string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("Invalid request: %s.", e.Detail)
}

func NewMalformedBody(detail string) error {
	return &MalformedError{Detail: detail}
}

// Constraint names from migrations/schema.sql.
const (
	ConstraintCampaignName = "campaign_name_key"
	ConstraintContentOrder = "content_campaign_order_key"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation on the named constraint. An empty constraint matches any.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && (constraint == "" || pqErr.Constraint == constraint)
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// violation. Seen when a referenced campaign disappears between the service
// pre-check and the insert.
func IsForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23503"
}
