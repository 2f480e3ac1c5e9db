// Package validator implements request schemas for the validation gate on
// top of go-playground/validator.
//
// A schema part is a prototype struct. Field names come from the `param`,
// `query` or `json` tag and rules from the `validate` tag. Pointer fields
// are optional and accept null; every other field is required.
package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"budget/internal/domain/entity"
	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the project-specific rules registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("userref", func(fl validator.FieldLevel) bool {
		_, err := entity.ParseUserRef(fl.Field().String())

		return err == nil
	})

	return &CustomValidator{validate: validate}
}

// Validate runs the struct rules of i and reports failures as a body
// ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	details := domainerrors.ValidationDetails{}
	cv.validateStruct(i, domainerrors.LocationBody, details)
	if details.Empty() {
		return nil
	}

	return errors.WithStack(domainerrors.NewValidationError(details))
}

func (cv *CustomValidator) validateStruct(ptr any, location string, details domainerrors.ValidationDetails) {
	err := cv.validate.Struct(ptr)
	if err == nil {
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		details.Add(location, "value", Issue("object.base", "value", ""))

		return
	}

	for _, fe := range fieldErrs {
		details.Add(location, fe.Field(), ruleIssue(fe))
	}
}

// fieldName resolves the external name of a struct field.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"param", "query", "json"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}

	return field.Name
}

func ruleIssue(fe validator.FieldError) domainerrors.Issue {
	key := fe.Field()
	prefix := kindPrefix(fe.Kind(), fe.Type())

	switch fe.Tag() {
	case "userref":
		return Issue("alternatives.match", key, "")
	case "email":
		return Issue("string.email", key, "")
	case "oneof":
		return Issue("any.only", key, strings.Join(strings.Fields(fe.Param()), ", "))
	case "ne":
		return Issue("any.invalid", key, fe.Param())
	case "min", "gte":
		if prefix == "string" {
			return Issue("string.min", key, fe.Param())
		}
		if prefix == "date" {
			return Issue("date.min", key, "now")
		}

		return Issue("number.min", key, fe.Param())
	case "max", "lte":
		if prefix == "string" {
			return Issue("string.max", key, fe.Param())
		}
		if prefix == "date" {
			return Issue("date.max", key, "now")
		}

		return Issue("number.max", key, fe.Param())
	case "gt":
		return Issue("number.greater", key, fe.Param())
	case "lt":
		return Issue("number.less", key, fe.Param())
	case "required":
		return Issue("any.required", key, "")
	default:
		return Issue(prefix+"."+fe.Tag(), key, fe.Param())
	}
}

func kindPrefix(kind reflect.Kind, typ reflect.Type) string {
	if typ == timeType {
		return "date"
	}

	switch kind {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	default:
		return "any"
	}
}

// Issue builds a validation issue with a human readable message for key.
func Issue(issueType, key, param string) domainerrors.Issue {
	quoted := strconv.Quote(key)

	var message string
	switch issueType {
	case "object.unknown":
		message = quoted + " is not allowed"
	case "object.base":
		message = quoted + " must be of type object"
	case "any.required":
		message = quoted + " is required"
	case "any.invalid":
		message = quoted + " contains an invalid value"
	case "any.only":
		message = quoted + " must be one of [" + param + "]"
	case "alternatives.match":
		message = quoted + " must be a positive integer or " + strconv.Quote(entity.SelfSentinel)
	case "string.base":
		message = quoted + " must be a string"
	case "string.empty":
		message = quoted + " is not allowed to be empty"
	case "string.email":
		message = quoted + " must be a valid email"
	case "string.min":
		message = quoted + " length must be at least " + param + " characters long"
	case "string.max":
		message = quoted + " length must be less than or equal to " + param + " characters long"
	case "number.base":
		message = quoted + " must be a number"
	case "number.integer":
		message = quoted + " must be an integer"
	case "number.min":
		message = quoted + " must be greater than or equal to " + param
	case "number.max":
		message = quoted + " must be less than or equal to " + param
	case "number.greater":
		message = quoted + " must be greater than " + param
	case "number.unsafe":
		message = quoted + " must be a safe number"
	case "number.less":
		message = quoted + " must be less than " + param
	case "boolean.base":
		message = quoted + " must be a boolean"
	case "date.base":
		message = quoted + " must be a valid date"
	case "date.min":
		message = quoted + " must be greater than or equal to " + strconv.Quote(param)
	case "date.max":
		message = quoted + " must be less than or equal to " + strconv.Quote(param)
	default:
		message = quoted + " failed rule " + issueType
	}

	return domainerrors.Issue{Type: issueType, Message: message}
}
