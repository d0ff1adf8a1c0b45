package domain

import "time"

// BaseEntity tüm kalıcı varlıkların ortak alanlarını taşır.
type BaseEntity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key depo anahtarını döner. Alan adı yerine ayrı bir isim taşır ki
// varlıklar kendi kimlik alanlarını (EntityID gibi) gölgeleme olmadan
// tanımlayabilsin.
func (e *BaseEntity) Key() string {
	return e.ID
}

// Stamp kayıt oluşturulurken kimlik ve zaman damgalarını atar.
func (e *BaseEntity) Stamp(id string, now time.Time) {
	e.ID = id
	e.CreatedAt = now
	e.UpdatedAt = now
}

// Touch her mutasyonda güncellenme zamanını tazeler.
func (e *BaseEntity) Touch(now time.Time) {
	e.UpdatedAt = now
}

// Entity, repository tarafından saklanabilen her tipin sağladığı sözleşme.
type Entity interface {
	Key() string
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}
