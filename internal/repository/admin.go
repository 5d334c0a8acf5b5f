package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/mely/internal/models"
)

// AdminStore implements AdminRepository with gorm.
type AdminStore struct {
	db *gorm.DB
}

// NewAdminStore constructs AdminStore.
func NewAdminStore(db *gorm.DB) *AdminStore {
	return &AdminStore{db: db}
}

func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	return s.db.WithContext(ctx).Create(admin).Error
}

func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&admin).Error; err != nil {
		return nil, translate(err)
	}
	return &admin, nil
}

func (s *AdminStore) CreateSession(ctx context.Context, session *models.AdminSession) error {
	return s.db.WithContext(ctx).Omit("Admin").Create(session).Error
}

func (s *AdminStore) FindSession(ctx context.Context, id uuid.UUID) (*models.AdminSession, error) {
	var session models.AdminSession
	if err := s.db.WithContext(ctx).Preload("Admin").First(&session, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (s *AdminStore) RevokeSession(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := s.db.WithContext(ctx).Model(&models.AdminSession{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
