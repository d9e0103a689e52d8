// Package validation schema-checks inbound request payloads before they reach
// business logic. Failures are reported as a field-addressable list, never a
// single opaque message, so clients can render per-field errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dayoon-choi/todolist/internal/model"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TodoCreateRequest struct {
	Title string `json:"title" validate:"required,max=100"`
	// Pointer to distinguish an absent description from an empty one:
	// the field must be present, but may be empty.
	Description *string `json:"description" validate:"required"`
	Status      string  `json:"status" validate:"omitempty,todostatus"`
}

// StatusOrDefault returns the requested status, defaulting to PENDING when absent.
func (r TodoCreateRequest) StatusOrDefault() model.TodoStatus {
	if r.Status == "" {
		return model.TodoStatusPending
	}
	return model.TodoStatus(r.Status)
}

type TodoUpdateRequest struct {
	Title       *string `json:"title" validate:"omitnil,min=1,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
	Status      *string `json:"status" validate:"omitnil,todostatus"`
	Comment     *string `json:"comment" validate:"omitnil,max=200"`
}

type IdParam struct {
	ID string `json:"id" validate:"required,uuid"`
}

type AuthHeader struct {
	Token string `json:"token" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("todostatus", func(fl validator.FieldLevel) bool {
		return model.TodoStatus(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}

	return v
}

// Check validates req against its struct tags and returns the list of field
// failures, or nil if the value is valid.
func Check(req any) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "email":
		return "Invalid email format"
	case "password":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters"
		}
		return "Password is required"
	case "name":
		return "Name is required"
	case "title":
		if fe.Tag() == "max" {
			return "Title must be at most 100 characters"
		}
		return "Title is required"
	case "description":
		if fe.Tag() == "max" {
			return "Description must be at most 500 characters"
		}
		return "Description is required"
	case "comment":
		return "Comment must be at most 200 characters"
	case "status":
		return "Status must be one of PENDING, COMPLETED, CANCELLED"
	case "id":
		return "Invalid ID format"
	case "token":
		return "Token is required, unauthorized"
	}

	switch fe.Tag() {
	case "required":
		return "Required"
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}
