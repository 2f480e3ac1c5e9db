package validator

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "budget/internal/domain/errors"
	"budget/internal/errors"
)

type idParams struct {
	ID int `param:"id" validate:"gt=0"`
}

type userRefParams struct {
	ID string `param:"id" validate:"userref"`
}

type placeBody struct {
	Name   string `json:"name" validate:"max=255"`
	Rating *int   `json:"rating" validate:"gte=1,lte=5"`
}

type transactionBody struct {
	Amount  float64   `json:"amount" validate:"ne=0"`
	Date    time.Time `json:"date" validate:"lte"`
	PlaceID int       `json:"placeId" validate:"gt=0"`
}

func newContext(method, target, body string, params map[string]string) echo.Context {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	return c
}

func issuesOf(t *testing.T, err error) domainerrors.ValidationDetails {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr), "expected validation error, got %v", err)

	return validationErr.Issues()
}

func TestCheck_Params(t *testing.T) {
	cv := New()

	tests := []struct {
		name      string
		schema    *Schema
		params    map[string]string
		wantType  string
		wantValue any
	}{
		{
			name:      "numeric id",
			schema:    &Schema{Params: idParams{}},
			params:    map[string]string{"id": "7"},
			wantValue: idParams{ID: 7},
		},
		{
			name:     "non numeric id",
			schema:   &Schema{Params: idParams{}},
			params:   map[string]string{"id": "abc"},
			wantType: "number.base",
		},
		{
			name:     "zero id",
			schema:   &Schema{Params: idParams{}},
			params:   map[string]string{"id": "0"},
			wantType: "number.greater",
		},
		{
			name:      "self sentinel",
			schema:    &Schema{Params: userRefParams{}},
			params:    map[string]string{"id": "me"},
			wantValue: userRefParams{ID: "me"},
		},
		{
			name:      "user ref numeric",
			schema:    &Schema{Params: userRefParams{}},
			params:    map[string]string{"id": "12"},
			wantValue: userRefParams{ID: "12"},
		},
		{
			name:     "user ref other word",
			schema:   &Schema{Params: userRefParams{}},
			params:   map[string]string{"id": "you"},
			wantType: "alternatives.match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodGet, "/", "", tt.params)
			err := cv.Check(c, tt.schema)

			if tt.wantType != "" {
				details := issuesOf(t, err)
				require.Len(t, details[domainerrors.LocationParams]["id"], 1)
				assert.Equal(t, tt.wantType, details[domainerrors.LocationParams]["id"][0].Type)

				return
			}

			require.NoError(t, err)
			switch want := tt.wantValue.(type) {
			case idParams:
				got, ok := Params[idParams](c)
				require.True(t, ok)
				assert.Equal(t, want, got)
			case userRefParams:
				got, ok := Params[userRefParams](c)
				require.True(t, ok)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestCheck_Body(t *testing.T) {
	cv := New()
	future := time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)

	tests := []struct {
		name    string
		schema  *Schema
		body    string
		wantKey string
		want    string
	}{
		{
			name:    "unknown field",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":"Loon","rating":3,"extra":true}`,
			wantKey: "extra",
			want:    "object.unknown",
		},
		{
			name:    "missing required field",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"rating":3}`,
			wantKey: "name",
			want:    "any.required",
		},
		{
			name:    "empty name",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":""}`,
			wantKey: "name",
			want:    "string.empty",
		},
		{
			name:    "rating out of range",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":"Loon","rating":6}`,
			wantKey: "rating",
			want:    "number.max",
		},
		{
			name:    "rating below range",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":"Loon","rating":0}`,
			wantKey: "rating",
			want:    "number.min",
		},
		{
			name:    "rating not an integer",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":"Loon","rating":4.5}`,
			wantKey: "rating",
			want:    "number.integer",
		},
		{
			name:    "rating as text in body",
			schema:  &Schema{Body: placeBody{}},
			body:    `{"name":"Loon","rating":"4"}`,
			wantKey: "rating",
			want:    "number.base",
		},
		{
			name:    "future date",
			schema:  &Schema{Body: transactionBody{}},
			body:    `{"amount":-20,"date":"` + future + `","placeId":1}`,
			wantKey: "date",
			want:    "date.max",
		},
		{
			name:    "invalid date",
			schema:  &Schema{Body: transactionBody{}},
			body:    `{"amount":-20,"date":"yesterday","placeId":1}`,
			wantKey: "date",
			want:    "date.base",
		},
		{
			name:    "zero amount",
			schema:  &Schema{Body: transactionBody{}},
			body:    `{"amount":0,"date":"2021-05-25T19:40:00Z","placeId":1}`,
			wantKey: "amount",
			want:    "any.invalid",
		},
		{
			name:    "body not an object",
			schema:  &Schema{Body: placeBody{}},
			body:    `[1,2]`,
			wantKey: "value",
			want:    "object.base",
		},
		{
			name:    "nil body schema rejects keys",
			schema:  &Schema{},
			body:    `{"name":"Loon"}`,
			wantKey: "name",
			want:    "object.unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newContext(http.MethodPost, "/", tt.body, nil)
			details := issuesOf(t, cv.Check(c, tt.schema))

			issues := details[domainerrors.LocationBody][tt.wantKey]
			require.NotEmpty(t, issues, "details: %v", details)
			assert.Equal(t, tt.want, issues[0].Type)
			assert.NotEmpty(t, issues[0].Message)
			assert.NotContains(t, details, domainerrors.LocationParams)
		})
	}
}

func TestCheck_BodyDecoded(t *testing.T) {
	cv := New()
	c := newContext(http.MethodPost, "/", `{"amount":-74.5,"date":"2021-05-25T19:40:00.000Z","placeId":3}`, nil)

	require.NoError(t, cv.Check(c, &Schema{Body: transactionBody{}}))

	got, ok := Body[transactionBody](c)
	require.True(t, ok)
	assert.InDelta(t, -74.5, got.Amount, 0.0001)
	assert.Equal(t, 3, got.PlaceID)
	assert.True(t, got.Date.Equal(time.Date(2021, 5, 25, 19, 40, 0, 0, time.UTC)))

	// The body stays readable for later handlers.
	var again map[string]any
	require.NoError(t, (&echo.DefaultBinder{}).BindBody(c, &again))
	assert.Equal(t, float64(3), again["placeId"])
}

func TestCheck_OptionalPointer(t *testing.T) {
	cv := New()

	c := newContext(http.MethodPost, "/", `{"name":"Irish Pub","rating":null}`, nil)
	require.NoError(t, cv.Check(c, &Schema{Body: placeBody{}}))
	got, ok := Body[placeBody](c)
	require.True(t, ok)
	assert.Nil(t, got.Rating)

	c = newContext(http.MethodPost, "/", `{"name":"Irish Pub","rating":4}`, nil)
	require.NoError(t, cv.Check(c, &Schema{Body: placeBody{}}))
	got, ok = Body[placeBody](c)
	require.True(t, ok)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4, *got.Rating)
}

func TestCheck_StrictQuery(t *testing.T) {
	cv := New()

	c := newContext(http.MethodGet, "/?page=2", "", nil)
	details := issuesOf(t, cv.Check(c, &Schema{}))

	require.Contains(t, details, domainerrors.LocationQuery)
	assert.Equal(t, `"page" is not allowed`, details[domainerrors.LocationQuery]["page"][0].Message)
}

func TestCheck_ReportsEveryLocation(t *testing.T) {
	cv := New()

	c := newContext(http.MethodPut, "/?x=1", `{"name":"Loon","bogus":1}`, map[string]string{"id": "abc"})
	details := issuesOf(t, cv.Check(c, &Schema{Params: idParams{}, Body: placeBody{}}))

	assert.Contains(t, details, domainerrors.LocationParams)
	assert.Contains(t, details, domainerrors.LocationQuery)
	assert.Contains(t, details, domainerrors.LocationBody)
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	type login struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	require.NoError(t, cv.Validate(&login{Email: "thomas.aelbrecht@hogent.be", Password: "12345678"}))

	details := issuesOf(t, cv.Validate(&login{Email: "nope"}))
	body := details[domainerrors.LocationBody]
	assert.Equal(t, "string.email", body["email"][0].Type)
	assert.Equal(t, "any.required", body["password"][0].Type)
	assert.Equal(t, `"password" is required`, body["password"][0].Message)
}
