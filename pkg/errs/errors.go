package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrWrongPassword           = errors.New("Password is incorrect")
	ErrExpiredToken            = errors.New("Token has expired")
	ErrEmptyCart               = errors.New("Cart is empty")
	ErrItemNotInCart           = errors.New("Item not in cart")
	ErrInsufficientStock       = errors.New("Insufficient stock")
	ErrInvalidOrderStatus      = errors.New("Invalid order status")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusUnauthorized,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrEmailAlreadyUsed:        ErrStatusConflict,
	ErrWrongPassword:           ErrStatusUnauthorized,
	ErrExpiredToken:            ErrStatusUnauthorized,
	ErrEmptyCart:               ErrStatusClient,
	ErrItemNotInCart:           ErrStatusNotFound,
	ErrInsufficientStock:       ErrStatusClient,
	ErrInvalidOrderStatus:      ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	// wrapped sentinels still map to their status
	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}

	return errorMap[ErrInternalServer]
}
