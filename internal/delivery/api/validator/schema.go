package validator

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

var timeType = reflect.TypeOf(time.Time{})

// Schema describes the accepted shape of a request. Each non-nil part is a
// prototype struct value; a nil part accepts no keys at all at that location.
type Schema struct {
	Params any
	Query  any
	Body   any
}

const (
	paramsKey = "validated.params"
	queryKey  = "validated.query"
	bodyKey   = "validated.body"
)

// Check validates the request against schema. On success the decoded parts
// are stored on the echo context, readable through Params, Query and Body.
func (cv *CustomValidator) Check(c echo.Context, schema *Schema) error {
	details := domainerrors.ValidationDetails{}

	params := make(map[string]any, len(c.ParamNames()))
	for i, name := range c.ParamNames() {
		if i < len(c.ParamValues()) {
			params[name] = c.ParamValues()[i]
		}
	}
	if v := cv.checkLocation(params, schema.Params, domainerrors.LocationParams, true, details); v != nil {
		c.Set(paramsKey, v)
	}

	query := make(map[string]any)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	if v := cv.checkLocation(query, schema.Query, domainerrors.LocationQuery, true, details); v != nil {
		c.Set(queryKey, v)
	}

	body, err := readBody(c.Request())
	if err != nil {
		details.Add(domainerrors.LocationBody, "value", Issue("object.base", "value", ""))
	} else if v := cv.checkLocation(body, schema.Body, domainerrors.LocationBody, false, details); v != nil {
		c.Set(bodyKey, v)
	}

	if !details.Empty() {
		return errors.WithStack(domainerrors.NewValidationError(details))
	}

	return nil
}

// readBody decodes the JSON object body and puts the raw bytes back on the
// request. An empty body decodes to an empty object.
func readBody(req *http.Request) (map[string]any, error) {
	if req.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}
	req.Body = io.NopCloser(bytes.NewReader(raw))

	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var body map[string]any
	if err := decoder.Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode request body")
	}
	if body == nil {
		return map[string]any{}, nil
	}

	return body, nil
}

// checkLocation validates raw against the prototype and returns a pointer to
// the decoded struct, or nil when the location failed or has no prototype.
func (cv *CustomValidator) checkLocation(
	raw map[string]any,
	proto any,
	location string,
	fromText bool,
	details domainerrors.ValidationDetails,
) any {
	known := make(map[string]bool)
	var target reflect.Value

	failed := false
	report := func(key string, issue domainerrors.Issue) {
		failed = true
		details.Add(location, key, issue)
	}

	if proto != nil {
		typ := reflect.TypeOf(proto)
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		target = reflect.New(typ)

		for i := range typ.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			key := fieldName(field)
			if key == "" {
				continue
			}
			known[key] = true

			if issue, ok := cv.assign(target.Elem().Field(i), field, key, raw, fromText); !ok {
				report(key, issue)
			}
		}
	}

	unknown := make([]string, 0)
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		report(key, Issue("object.unknown", key, ""))
	}

	if failed || proto == nil {
		return nil
	}

	return target.Interface()
}

// assign converts the raw value for key into dst and runs the field's rules.
func (cv *CustomValidator) assign(
	dst reflect.Value,
	field reflect.StructField,
	key string,
	raw map[string]any,
	fromText bool,
) (domainerrors.Issue, bool) {
	optional := field.Type.Kind() == reflect.Pointer
	rules := field.Tag.Get("validate")

	value, present := raw[key]
	if !present {
		if optional {
			return domainerrors.Issue{}, true
		}

		return Issue("any.required", key, ""), false
	}

	typ := field.Type
	if optional {
		if value == nil {
			return domainerrors.Issue{}, true
		}
		typ = typ.Elem()
	}

	converted, issue, ok := convert(value, typ, key, fromText, strings.Contains(rules, "omitempty"))
	if !ok {
		return issue, false
	}

	if rules != "" {
		if err := cv.validate.Var(converted.Interface(), rules); err != nil {
			var fieldErrs validator.ValidationErrors
			if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
				return ruleIssue(namedError{FieldError: fieldErrs[0], name: key}), false
			}

			return Issue("any.invalid", key, ""), false
		}
	}

	if optional {
		ptr := reflect.New(typ)
		ptr.Elem().Set(converted)
		dst.Set(ptr)
	} else {
		dst.Set(converted)
	}

	return domainerrors.Issue{}, true
}

// convert checks the base type of value. Text locations (path and query)
// carry strings only, so numbers and booleans are parsed from their text form.
func convert(value any, typ reflect.Type, key string, fromText, allowEmpty bool) (reflect.Value, domainerrors.Issue, bool) {
	if typ == timeType {
		text, ok := value.(string)
		if !ok {
			return reflect.Value{}, Issue("date.base", key, ""), false
		}
		parsed, err := parseDate(text)
		if err != nil {
			return reflect.Value{}, Issue("date.base", key, ""), false
		}

		return reflect.ValueOf(parsed), domainerrors.Issue{}, true
	}

	switch typ.Kind() {
	case reflect.String:
		text, ok := value.(string)
		if !ok {
			return reflect.Value{}, Issue("string.base", key, ""), false
		}
		if text == "" && !allowEmpty {
			return reflect.Value{}, Issue("string.empty", key, ""), false
		}

		return reflect.ValueOf(text).Convert(typ), domainerrors.Issue{}, true

	case reflect.Int, reflect.Int64, reflect.Int32:
		number, ok := numberText(value, fromText)
		if !ok {
			return reflect.Value{}, Issue("number.base", key, ""), false
		}
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return reflect.Value{}, Issue("number.base", key, ""), false
		}
		n, err := strconv.ParseInt(number, 10, 64)
		if err != nil {
			if f == float64(int64(f)) {
				n = int64(f)
			} else {
				return reflect.Value{}, Issue("number.integer", key, ""), false
			}
		}
		out := reflect.New(typ).Elem()
		if out.OverflowInt(n) {
			return reflect.Value{}, Issue("number.unsafe", key, ""), false
		}
		out.SetInt(n)

		return out, domainerrors.Issue{}, true

	case reflect.Float64, reflect.Float32:
		number, ok := numberText(value, fromText)
		if !ok {
			return reflect.Value{}, Issue("number.base", key, ""), false
		}
		f, err := strconv.ParseFloat(number, 64)
		if err != nil {
			return reflect.Value{}, Issue("number.base", key, ""), false
		}
		out := reflect.New(typ).Elem()
		out.SetFloat(f)

		return out, domainerrors.Issue{}, true

	case reflect.Bool:
		if b, ok := value.(bool); ok {
			return reflect.ValueOf(b), domainerrors.Issue{}, true
		}
		if text, ok := value.(string); ok && fromText {
			if b, err := strconv.ParseBool(text); err == nil {
				return reflect.ValueOf(b), domainerrors.Issue{}, true
			}
		}

		return reflect.Value{}, Issue("boolean.base", key, ""), false

	default:
		return reflect.Value{}, Issue("any.invalid", key, ""), false
	}
}

func numberText(value any, fromText bool) (string, bool) {
	switch v := value.(type) {
	case json.Number:
		return v.String(), true
	case string:
		if !fromText || strings.TrimSpace(v) != v || v == "" {
			return "", false
		}

		return v, true
	default:
		return "", false
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(text string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q", text)
}

// namedError reports a Var failure under the schema key.
type namedError struct {
	validator.FieldError
	name string
}

func (e namedError) Field() string {
	return e.name
}

// Params returns the validated path parameters stored by Check.
func Params[T any](c echo.Context) (T, bool) {
	return stored[T](c, paramsKey)
}

// Query returns the validated query string stored by Check.
func Query[T any](c echo.Context) (T, bool) {
	return stored[T](c, queryKey)
}

// Body returns the validated body stored by Check.
func Body[T any](c echo.Context) (T, bool) {
	return stored[T](c, bodyKey)
}

func stored[T any](c echo.Context, key string) (T, bool) {
	var zero T
	ptr, ok := c.Get(key).(*T)
	if !ok || ptr == nil {
		return zero, false
	}

	return *ptr, true
}
