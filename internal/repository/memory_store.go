package repository

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"shopflow/internal/domain"
)

// EntityPtr, T'nin pointer'ı olup domain.Entity sözleşmesini sağlayan tip.
type EntityPtr[T any] interface {
	*T
	domain.Entity
}

// Store kimlikle anahtarlanan, süreç belleğinde yaşayan jenerik kayıt
// deposu. Tüm mutasyonlar tek kilit altında serileşir; Get/All çağrıları
// kopya döner, depodaki kayıt dışarıdan değiştirilemez.
type Store[T any, P EntityPtr[T]] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

func NewStore[T any, P EntityPtr[T]]() *Store[T, P] {
	return &Store[T, P]{
		records: make(map[string]T),
	}
}

// Add kimliği ve zaman damgalarını atayıp kaydı saklar. uuid sayesinde aynı
// kimlik bu depo tarafından bir daha asla üretilmez.
func (s *Store[T, P]) Add(record P) P {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.Stamp(uuid.NewString(), time.Now())
	s.records[record.Key()] = *record
	s.order = append(s.order, record.Key())

	return record
}

// Get kaydın bir kopyasını döner; yokluk hata değil geçerli bir sonuçtur.
func (s *Store[T, P]) Get(id string) (P, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		var zero P
		return zero, false
	}

	return P(&rec), true
}

// All ekleme sırasına göre anlık bir kopya dizisi döner.
func (s *Store[T, P]) All() []P {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]P, 0, len(s.order))
	for _, id := range s.order {
		rec, ok := s.records[id]
		if !ok {
			continue
		}
		out = append(out, P(&rec))
	}

	return out
}

// Update verilen alanları mevcut kayda işler; yalnızca gönderilen alanlar
// değişir, id ve created_at korunur, updated_at tazelenir.
func (s *Store[T, P]) Update(id string, fields map[string]interface{}) (P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		var zero P
		return zero, domain.ErrRecordNotFound
	}

	ptr := P(&rec)
	if err := applyFields(ptr, fields); err != nil {
		var zero P
		return zero, err
	}

	ptr.Touch(time.Now())
	s.records[id] = rec

	return ptr, nil
}

// Mutate kaydı tek kilit altında oku-değiştir-yaz döngüsüyle günceller;
// eşzamanlı çağrılar kayıt bazında serileşir.
func (s *Store[T, P]) Mutate(id string, fn func(record P) error) (P, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		var zero P
		return zero, domain.ErrRecordNotFound
	}

	ptr := P(&rec)
	if err := fn(ptr); err != nil {
		var zero P
		return zero, err
	}

	ptr.Touch(time.Now())
	s.records[id] = rec

	return ptr, nil
}

// Delete kaydı siler; bir kayıt gerçekten silindiyse true döner.
func (s *Store[T, P]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return false
	}

	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return true
}

// FindBy verilen alanı (json etiketi) değere eşit olan tüm kayıtları döner.
func (s *Store[T, P]) FindBy(field string, value interface{}) []P {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []P
	for _, id := range s.order {
		rec, ok := s.records[id]
		if !ok {
			continue
		}

		fv, ok := fieldByTag(reflect.ValueOf(&rec).Elem(), field)
		if !ok {
			return nil
		}

		if equalsField(fv, value) {
			out = append(out, P(&rec))
		}
	}

	return out
}

func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

var immutableFields = map[string]struct{}{
	"id":         {},
	"created_at": {},
	"updated_at": {},
}

func applyFields(target interface{}, fields map[string]interface{}) error {
	v := reflect.ValueOf(target).Elem()

	for name, value := range fields {
		if _, ok := immutableFields[name]; ok {
			return fmt.Errorf("%w: %s alanı değiştirilemez", domain.ErrUnknownField, name)
		}

		fv, ok := fieldByTag(v, name)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownField, name)
		}

		if err := setField(fv, value); err != nil {
			return fmt.Errorf("%w: %s", err, name)
		}
	}

	return nil
}

func setField(fv reflect.Value, value interface{}) error {
	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return nil
	}

	vv := reflect.ValueOf(value)
	switch {
	case vv.Type().AssignableTo(fv.Type()):
		fv.Set(vv)
	case vv.Type().ConvertibleTo(fv.Type()) && convertibleKinds(vv.Kind(), fv.Kind()):
		fv.Set(vv.Convert(fv.Type()))
	default:
		return domain.ErrUnknownField
	}

	return nil
}

// convertibleKinds yalnızca sayısal ve string türdeşliği için dönüşüme izin
// verir; float64 -> string gibi sessiz bozulmaları engeller.
func convertibleKinds(from, to reflect.Kind) bool {
	return (isNumericKind(from) && isNumericKind(to)) ||
		(from == reflect.String && to == reflect.String)
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous {
			if nested, ok := fieldByTag(v.Field(i), name); ok {
				return nested, true
			}
			continue
		}

		tag := strings.Split(sf.Tag.Get("json"), ",")[0]
		if tag == "" || tag == "-" {
			tag = strings.ToLower(sf.Name)
		}

		if tag == name {
			return v.Field(i), true
		}
	}

	return reflect.Value{}, false
}

func equalsField(fv reflect.Value, value interface{}) bool {
	if value == nil {
		return fv.IsZero()
	}

	vv := reflect.ValueOf(value)
	if vv.Type() != fv.Type() && vv.Type().ConvertibleTo(fv.Type()) && convertibleKinds(vv.Kind(), fv.Kind()) {
		vv = vv.Convert(fv.Type())
	}

	return reflect.DeepEqual(fv.Interface(), vv.Interface())
}
