package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Bet Validation (BET) ----

func ErrInvalidBet(reason string) *AppError {
	return New("BET_001", fmt.Sprintf("Invalid bet: %s", reason), http.StatusBadRequest)
}

func ErrBetNotFound() *AppError {
	return New("BET_002", "Bet not found", http.StatusNotFound)
}

// ---- Wallet & Funds (FUND) ----

func ErrInsufficientFunds() *AppError {
	return New("FUND_001", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrConcurrentModification() *AppError {
	return New("FUND_002", "Wallet was modified concurrently, retry the bet", http.StatusConflict)
}

func ErrWalletNotFound() *AppError {
	return New("FUND_003", "Wallet not found", http.StatusNotFound)
}

// ---- Fairness Seeds (SEED) ----

func ErrSeedRetired() *AppError {
	return New("SEED_001", "Seed pair has been revealed and retired", http.StatusConflict)
}

func ErrUnknownSeed() *AppError {
	return New("SEED_002", "Seed pair not found", http.StatusNotFound)
}

func ErrInvalidClientSeed() *AppError {
	return New("SEED_003", "Client seed must be 1-64 characters", http.StatusBadRequest)
}

// ---- Outcome Resolution (RNG) ----

func ErrResolverFault(err error) *AppError {
	return Wrap("RNG_001", "Outcome resolution failed, stake refunded", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

func ErrStorage(err error) *AppError {
	return Wrap("SYS_001", "Internal storage error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a BET_001-style validation error.
func Validation(message string) *AppError {
	return New("BET_001", message, http.StatusBadRequest)
}
