package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/juvelir/workshop/internal/adapters/store/errstore"
	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (s *Store) CreateRole(ctx context.Context, role *model.Role) error {
	if err := s.db.WithContext(ctx).Create(role).Error; err != nil {
		if serr := asStoreError(err); errors.Is(serr, errstore.ErrNotUniqueData) {
			return serr
		}
		return fmt.Errorf("failed create role: %w", err)
	}

	return nil
}

func (s *Store) DeleteRole(ctx context.Context, roleID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.User{}).Where("role_id = ?", roleID).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed count role usages: %w", err)
		}
		if refs > 0 {
			return errstore.ErrRoleInUse
		}
		result := tx.Delete(&model.Role{}, roleID)
		if err := result.Error; err != nil {
			return fmt.Errorf("failed delete role: %w", err)
		}
		if result.RowsAffected == 0 {
			return errstore.ErrNotFoundData
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed delete role id=`%d`: %w", roleID, err)
	}

	return nil
}

func (s *Store) ListRoles(ctx context.Context) ([]model.Role, error) {
	roles := []model.Role{}
	if err := s.db.WithContext(ctx).Order("role_id").Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed list roles: %w", err)
	}

	return roles, nil
}

func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	if err := s.db.WithContext(ctx).Omit("Role").Create(user).Error; err != nil {
		serr := asStoreError(err)
		if errors.Is(serr, errstore.ErrNotUniqueData) {
			return errstore.ErrUsernameNotUnique
		}
		if errors.Is(serr, errstore.ErrReferenceViolation) {
			return serr
		}
		return fmt.Errorf("failed create user: %w", err)
	}

	return nil
}

func (s *Store) UpdateUser(ctx context.Context, user *model.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := model.User{}
		if err := tx.First(&existing, user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errstore.ErrNotFoundData
			}
			return fmt.Errorf("failed select user: %w", err)
		}
		// Blank password hash means the password is unchanged.
		if user.PasswordHash == "" {
			user.PasswordHash = existing.PasswordHash
		}
		user.CreatedAt = existing.CreatedAt
		if err := tx.Omit("Role").Save(user).Error; err != nil {
			serr := asStoreError(err)
			if errors.Is(serr, errstore.ErrNotUniqueData) {
				return errstore.ErrUsernameNotUnique
			}
			return fmt.Errorf("failed save user: %w", serr)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed update user id=`%d`: %w", user.ID, err)
	}

	return nil
}

func (s *Store) DeleteUser(ctx context.Context, userID uint) error {
	result := s.db.WithContext(ctx).Delete(&model.User{}, userID)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed delete user: %w", err)
	}
	if result.RowsAffected == 0 {
		return errstore.ErrNotFoundData
	}

	return nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	user := model.User{}
	err := s.db.WithContext(ctx).Preload("Role").
		Where(&model.User{Username: username}).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.Join(errstore.ErrNotFoundData, err)
		}
		return user, fmt.Errorf("error found user: %w", err)
	}

	return user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := s.db.WithContext(ctx).Preload("Role").Order("user_id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed list users: %w", err)
	}

	return users, nil
}
