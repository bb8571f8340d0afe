// internal/schema/decode.go
package schema

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/spocklabs/spock-admin/internal/apperrors"
)

// Validation messages, matching the wire contract the admin frontend was
// built against.
const (
	MsgRequired    = "Missing data for required field."
	MsgUnknown     = "Unknown field."
	MsgNotString   = "Not a valid string."
	MsgNotInteger  = "Not a valid integer."
	MsgNotBoolean  = "Not a valid boolean."
	MsgNotDateTime = "Not a valid datetime."
)

// Decode parses a JSON request body into dst. Unknown fields and type
// mismatches come back as a ValidationError with per-field messages;
// anything unparseable comes back as a MalformedError.
func Decode(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		ve := apperrors.NewValidationError()
		ve.Add(typeErr.Field, typeMessage(typeErr.Type))
		return ve
	}

	if field, ok := unknownField(err); ok {
		ve := apperrors.NewValidationError()
		ve.Add(field, MsgUnknown)
		return ve
	}

	if errors.Is(err, io.EOF) {
		return apperrors.NewMalformedBody("request body is empty")
	}
	return apperrors.NewMalformedBody(err.Error())
}

func typeMessage(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return MsgNotString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return MsgNotInteger
	case reflect.Bool:
		return MsgNotBoolean
	default:
		return "Invalid value."
	}
}

// unknownField pulls the field name out of encoding/json's unknown-field
// error, which is only exposed as a formatted string.
func unknownField(err error) (string, bool) {
	const prefix = `json: unknown field "`
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.TrimSuffix(strings.TrimPrefix(msg, prefix), `"`), true
}

// datetimeLayouts are the accepted timestamp formats, RFC3339 first.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// checkDateTime parses an optional timestamp field, recording a per-field
// message on failure. Returns nil when the field is absent.
func checkDateTime(ve *apperrors.ValidationError, field string, value *string) *time.Time {
	if value == nil {
		return nil
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, *value); err == nil {
			return &t
		}
	}
	ve.Add(field, MsgNotDateTime)
	return nil
}
