package domain

// Result tüm servis operasyonlarının döndürdüğü tekdüze zarf. Beklenen
// hatalar hiçbir zaman panic ile değil bu değer üzerinden raporlanır.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`

	cause error
}

func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func OKMessage[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

func Fail[T any](err error) Result[T] {
	var zero T
	return Result[T]{Success: false, Data: zero, Error: err.Error(), cause: err}
}

// FailWith başarısız ama veri taşıyan sonuçlar içindir; reddedilen ödemede
// kaydedilmiş işlem buradan döner.
func FailWith[T any](data T, err error) Result[T] {
	return Result[T]{Success: false, Data: data, Error: err.Error(), cause: err}
}

// Err zarfın altındaki hatayı döner; errors.Is ile sınıflandırma yapılabilir.
func (r Result[T]) Err() error {
	return r.cause
}

// Kind hatanın taksonomideki sınıfını döner.
func (r Result[T]) Kind() ErrorKind {
	return KindOf(r.cause)
}
