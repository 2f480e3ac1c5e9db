package handler

import (
	"time"

	"budget/internal/domain/entity"
)

// Request shapes. Field names and rules double as the route schemas of the
// validation gate; pointer fields are optional.

// IDParams addresses a place or transaction.
type IDParams struct {
	ID int `param:"id" validate:"gt=0"`
}

// UserParams addresses a user by id or by the "me" sentinel.
type UserParams struct {
	ID string `param:"id" validate:"userref"`
}

// LoginRequest is the body of POST /sessions.
type LoginRequest struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"min=12,max=128"`
}

// UpdateUserRequest is the body of PUT /users/:id.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"max=255"`
	Email string `json:"email" validate:"email"`
}

// PlaceRequest is the body of POST /places. Rating may be omitted or null.
type PlaceRequest struct {
	Name   string `json:"name" validate:"max=255"`
	Rating *int   `json:"rating" validate:"gte=1,lte=5"`
}

// UpdatePlaceRequest is the body of PUT /places/:id. Rating is required.
type UpdatePlaceRequest struct {
	Name   string `json:"name" validate:"max=255"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

// TransactionRequest is the body of POST and PUT /transactions. Dates in
// the future are rejected.
type TransactionRequest struct {
	Amount  float64   `json:"amount" validate:"ne=0"`
	Date    time.Time `json:"date" validate:"lte"`
	PlaceID int       `json:"placeId" validate:"gt=0"`
}

// Response shapes.

// AuthResponse carries a freshly issued token.
type AuthResponse struct {
	Token string `json:"token"`
}

// UserResponse is a user without its password hash.
type UserResponse struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// UserSummaryResponse is the user embedded in a transaction.
type UserSummaryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// PlaceResponse is a place. Rating is null when unrated.
type PlaceResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Rating *int   `json:"rating"`
}

// PlaceDetailResponse is a place with the caller's transactions there.
type PlaceDetailResponse struct {
	PlaceResponse
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionResponse is a transaction with its user and place.
type TransactionResponse struct {
	ID     int                 `json:"id"`
	Amount float64             `json:"amount"`
	Date   time.Time           `json:"date"`
	User   UserSummaryResponse `json:"user"`
	Place  PlaceResponse       `json:"place"`
}

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Roles: user.Roles.ToStrings(),
	}
}

func toUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, toUserResponse(user))
	}

	return out
}

func toPlaceResponse(place *entity.Place) PlaceResponse {
	return PlaceResponse{
		ID:     place.ID,
		Name:   place.Name,
		Rating: place.Rating,
	}
}

func toPlaceResponses(places []*entity.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		out = append(out, toPlaceResponse(place))
	}

	return out
}

func toTransactionResponse(tx *entity.Transaction) TransactionResponse {
	out := TransactionResponse{
		ID:     tx.ID,
		Amount: tx.Amount,
		Date:   tx.Date.UTC(),
		User:   UserSummaryResponse{ID: tx.UserID},
		Place:  PlaceResponse{ID: tx.PlaceID},
	}
	if tx.User != nil {
		out.User.Name = tx.User.Name
	}
	if tx.Place != nil {
		out.Place = toPlaceResponse(tx.Place)
	}

	return out
}

func toTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}

	return out
}
