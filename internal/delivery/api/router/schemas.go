package router

import (
	"budget/internal/delivery/api/router/handler"
	"budget/internal/delivery/api/validator"
)

// Route identifiers used to look up schemas.
const (
	routeHealthPing        = "health.ping"
	routeHealthVersion     = "health.version"
	routeSessionLogin      = "session.login"
	routeUserRegister      = "user.register"
	routeUserList          = "user.list"
	routeUserGet           = "user.get"
	routeUserUpdate        = "user.update"
	routeUserDelete        = "user.delete"
	routeUserTransactions  = "user.transactions"
	routePlaceList         = "place.list"
	routePlaceGet          = "place.get"
	routePlaceCreate       = "place.create"
	routePlaceUpdate       = "place.update"
	routePlaceDelete       = "place.delete"
	routePlaceTransactions = "place.transactions"
	routeTransactionList   = "transaction.list"
	routeTransactionGet    = "transaction.get"
	routeTransactionCreate = "transaction.create"
	routeTransactionUpdate = "transaction.update"
	routeTransactionDelete = "transaction.delete"
)

// schemas maps every route to the request shape it accepts. A nil entry
// accepts any request; an empty Schema accepts no params, query or body.
var schemas = map[string]*validator.Schema{
	routeHealthPing:    nil,
	routeHealthVersion: nil,

	routeSessionLogin: {Body: handler.LoginRequest{}},

	routeUserRegister:     {Body: handler.RegisterRequest{}},
	routeUserList:         {},
	routeUserGet:          {Params: handler.UserParams{}},
	routeUserUpdate:       {Params: handler.UserParams{}, Body: handler.UpdateUserRequest{}},
	routeUserDelete:       {Params: handler.UserParams{}},
	routeUserTransactions: {Params: handler.UserParams{}},

	routePlaceList:         {},
	routePlaceGet:          {Params: handler.IDParams{}},
	routePlaceCreate:       {Body: handler.PlaceRequest{}},
	routePlaceUpdate:       {Params: handler.IDParams{}, Body: handler.UpdatePlaceRequest{}},
	routePlaceDelete:       {Params: handler.IDParams{}},
	routePlaceTransactions: {Params: handler.IDParams{}},

	routeTransactionList:   {},
	routeTransactionGet:    {Params: handler.IDParams{}},
	routeTransactionCreate: {Body: handler.TransactionRequest{}},
	routeTransactionUpdate: {Params: handler.IDParams{}, Body: handler.TransactionRequest{}},
	routeTransactionDelete: {Params: handler.IDParams{}},
}
