package service

import (
	"errors"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrPermissionDenied   = errors.New("permission_denied")
	ErrClientNotFound     = errors.New("client not found")
	ErrProjectNotFound    = errors.New("project not found")
)

// Field error messages shared by the services.
const (
	msgUsernameTaken  = "a user with that username already exists"
	msgClientMissing  = "client does not exist"
	msgUsersMissing   = "some users do not exist"
	msgUsersRequired  = "at least one user is required"
	nameMaxLength     = 250
	usernameMaxLength = 150
)

// ValidationError reports invalid input keyed by request field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func fieldError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// validate runs the per-field ozzo results and converts any failures into a
// *ValidationError. Internal rule errors are returned unchanged.
func validate(fields validation.Errors) error {
	err := fields.Filter()
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	out := &ValidationError{Fields: make(map[string]string, len(errs))}
	for field, ferr := range errs {
		var internal validation.InternalError
		if errors.As(ferr, &internal) {
			return internal.InternalError()
		}
		out.Fields[field] = ferr.Error()
	}
	return out
}

// nameRules are applied to client and project names.
var nameRules = []validation.Rule{validation.Required, validation.RuneLength(1, nameMaxLength)}
