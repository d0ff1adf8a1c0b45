package service

import (
	"errors"
	"fmt"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
)

type UserService struct {
	repo     domain.UserRepository
	hasher   domain.PasswordHasher
	auditSvc domain.AuditLogService
	logger   logger.Logger
}

func NewUserService(
	repo domain.UserRepository,
	hasher domain.PasswordHasher,
	auditSvc domain.AuditLogService,
	logger logger.Logger,
) domain.UserService {
	return &UserService{
		repo:     repo,
		hasher:   hasher,
		auditSvc: auditSvc,
		logger:   logger,
	}
}

func (s *UserService) Register(user *domain.User, password string) domain.Result[*domain.User] {
	if _, exists := s.repo.FindByUsername(user.Username); exists {
		return domain.Fail[*domain.User](fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, user.Username))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Parola özetlenemedi", map[string]interface{}{"username": user.Username, "error": err.Error()})
		return domain.Fail[*domain.User](fmt.Errorf("kullanıcı oluşturulamadı: %w", err))
	}

	user.PasswordHash = hash
	if user.Role == "" {
		user.Role = domain.UserRoleCustomer
	}

	created := s.repo.Create(user)

	s.auditSvc.LogAction(domain.EntityTypeUser, created.ID, domain.ActionTypeCreate,
		fmt.Sprintf("Kullanıcı oluşturuldu: %s", created.Username))

	return domain.OK(created.WithoutHash())
}

func (s *UserService) Authenticate(username, password string) domain.Result[*domain.User] {
	user, exists := s.repo.FindByUsername(username)
	if !exists {
		return domain.Fail[*domain.User](fmt.Errorf("%w: %s", domain.ErrUserNotFound, username))
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		s.logger.Warn("Şifre eşleşmiyor", map[string]interface{}{"username": username})
		return domain.Fail[*domain.User](domain.ErrInvalidCredentials)
	}

	return domain.OK(user.WithoutHash())
}

func (s *UserService) GetProfile(id string) domain.Result[*domain.User] {
	user, exists := s.repo.FindByID(id)
	if !exists {
		return domain.Fail[*domain.User](fmt.Errorf("%w: %s", domain.ErrUserNotFound, id))
	}

	return domain.OK(user.WithoutHash())
}

// parola özeti dışarıdan verilen alanlarla asla değiştirilemez
var protectedProfileFields = map[string]struct{}{
	"passwordhash": {},
	"username":     {},
}

func (s *UserService) UpdateProfile(id string, fields map[string]interface{}) domain.Result[*domain.User] {
	for name := range fields {
		if _, ok := protectedProfileFields[name]; ok {
			return domain.Fail[*domain.User](fmt.Errorf("%w: %s alanı değiştirilemez", domain.ErrUnknownField, name))
		}
	}

	user, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Fail[*domain.User](fmt.Errorf("%w: %s", domain.ErrUserNotFound, id))
		}
		return domain.Fail[*domain.User](fmt.Errorf("kullanıcı güncellenemedi: %w", err))
	}

	s.auditSvc.LogAction(domain.EntityTypeUser, id, domain.ActionTypeUpdate,
		fmt.Sprintf("Kullanıcı güncellendi: %s", user.Username))

	return domain.OK(user.WithoutHash())
}
