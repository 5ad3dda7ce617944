package errors

import (
	"net/http"

	"pricefield/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrPhoneAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"PHONE_ALREADY_REGISTERED",
		"此電話號碼已被註冊",
		"",
	)

	ErrInvalidPhone = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE",
		"電話號碼格式錯誤",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"無效的帳號角色",
		"",
	)

	// Shop-related errors
	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"找不到該商店",
		"",
	)

	ErrShopAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SHOP_ALREADY_EXISTS",
		"此帳號已擁有一間商店",
		"",
	)

	ErrNotShopOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_SHOP_OWNER",
		"此帳號不是商店擁有者",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		"評分必須介於 1 到 5 之間",
		"",
	)

	// Product-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"找不到該商品",
		"",
	)

	ErrInvalidProductCategory = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRODUCT_CATEGORY",
		"無效的商品分類",
		"",
	)

	// Price-related errors
	ErrShopProductNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_PRODUCT_NOT_FOUND",
		"該商店尚未販售此商品",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"價格必須大於零",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"找不到該訂閱",
		"",
	)

	ErrInvalidSubscriptionAmount = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SUBSCRIPTION_AMOUNT",
		"訂閱金額必須大於零",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"找不到該交易紀錄",
		"",
	)

	// Favorite-related errors
	ErrInvalidFavoriteType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FAVORITE_TYPE",
		"無效的收藏類型",
		"",
	)

	// QR-related errors
	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"無效的 QR Code",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// StorageWriteError represents a storage write failure, implementing the
// AppError interface. Read failures never surface here; the storage layer
// degrades reads to "no data present".
type StorageWriteError struct {
	err     error
	details string
}

// NewStorageWriteError creates a storage-related error
func NewStorageWriteError(err error, details string) AppError {
	return &StorageWriteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageWriteError) Error() string {
	return errors.Wrap(e.err, "storage write failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StorageWriteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageWriteError) ErrorCode() string {
	return "STORAGE_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageWriteError) Message() string {
	return "儲存空間寫入失敗"
}

// Details returns detailed error information
func (e *StorageWriteError) Details() string {
	return e.details
}
