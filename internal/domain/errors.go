package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("kayıt bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrProductNotFound    = errors.New("ürün bulunamadı")
	ErrOrderNotFound      = errors.New("sipariş bulunamadı")
	ErrDuplicateUsername  = errors.New("bu kullanıcı adı zaten kullanılıyor")
	ErrInvalidCredentials = errors.New("geçersiz kullanıcı adı veya şifre")
	ErrInvalidPrice       = errors.New("geçersiz fiyat veya stok")
	ErrInsufficientStock  = errors.New("yetersiz stok")
	ErrInvalidRating      = errors.New("geçersiz puan")
	ErrEmptyOrder         = errors.New("sipariş kalemi olmadan sipariş oluşturulamaz")
	ErrInvalidPayment     = errors.New("geçersiz ödeme")
	ErrOrderAlreadyPaid   = errors.New("sipariş zaten ödenmiş")
	ErrInvalidTransition  = errors.New("geçersiz sipariş durumu geçişi")
	ErrGatewayDeclined    = errors.New("ödeme sağlayıcısı işlemi reddetti")
	ErrUnauthorized       = errors.New("bu işlem için yetkiniz yok")
	ErrUnknownField       = errors.New("bilinmeyen alan")
)

type ErrorKind string

const (
	KindNotFound    ErrorKind = "not_found"
	KindValidation  ErrorKind = "validation"
	KindConflict    ErrorKind = "conflict"
	KindAuthFailure ErrorKind = "auth_failure"
	KindInternal    ErrorKind = "internal"
)

// KindOf beklenen hataları çağıranın kurtarabileceği sınıflara ayırır.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrRecordNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrProductNotFound),
		errors.Is(err, ErrOrderNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidPrice),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrInvalidPayment),
		errors.Is(err, ErrEmptyOrder),
		errors.Is(err, ErrUnknownField):
		return KindValidation
	case errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrOrderAlreadyPaid),
		errors.Is(err, ErrInsufficientStock):
		return KindConflict
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized):
		return KindAuthFailure
	default:
		return KindInternal
	}
}
