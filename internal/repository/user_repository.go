package repository

import (
	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type UserRepository struct {
	store  *Store[domain.User, *domain.User]
	logger logger.Logger
}

func NewUserRepository(logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		store:  NewStore[domain.User, *domain.User](),
		logger: logger,
	}
}

func (r *UserRepository) Create(user *domain.User) *domain.User {
	return r.store.Add(user)
}

func (r *UserRepository) FindByID(id string) (*domain.User, bool) {
	return r.store.Get(id)
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, bool) {
	matches := r.store.FindBy("username", username)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

func (r *UserRepository) UpdateFields(id string, fields map[string]interface{}) (*domain.User, error) {
	user, err := r.store.Update(id, fields)
	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) All() []*domain.User {
	return r.store.All()
}
