package workshop

import (
	"context"
	"fmt"

	"github.com/juvelir/workshop/internal/adapters/store/model"
)

func (w *Workshop) Register(ctx context.Context, username, password string, roleID uint) (model.User, error) {
	user := model.User{}
	if err := validateLogin(username); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}
	if roleID == 0 {
		return user, ErrRoleRequired
	}

	hashPass, err := HashPassword(password)
	if err != nil {
		return user, fmt.Errorf("failed hash password: %w", err)
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	user = model.User{
		Username:     username,
		PasswordHash: hashPass,
		RoleID:       roleID,
	}
	if err := w.store.CreateUser(ctx, &user); err != nil {
		return user, fmt.Errorf("failed register user: %w", err)
	}
	// The store does not load the association on insert.
	if role, ok := w.cache.Role(user.RoleID); ok {
		user.Role = role
	}
	w.cache.PutUser(user)

	return user, nil
}

func (w *Workshop) Authorization(ctx context.Context, username, password string) (model.User, error) {
	var user model.User
	if err := validateLogin(username); err != nil {
		return user, fmt.Errorf("login invalidate: %w", err)
	}
	if err := validatePassword(password); err != nil {
		return user, fmt.Errorf("password invalidate: %w", err)
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	user, err := w.store.GetUserByUsername(ctx, username)
	if err != nil {
		return user, fmt.Errorf("failed getting user `%s`: %w", username, err)
	}

	if ok := checkPasswordHash(password, user.PasswordHash); !ok {
		return user, ErrPasswordNotEqual
	}

	return user, nil
}

func (w *Workshop) UpdateUser(ctx context.Context, user *model.User, password string) error {
	if err := validateLogin(user.Username); err != nil {
		return fmt.Errorf("login invalidate: %w", err)
	}
	if user.RoleID == 0 {
		return ErrRoleRequired
	}

	// An empty password keeps the stored hash.
	user.PasswordHash = ""
	if password != "" {
		hashPass, err := HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed hash password: %w", err)
		}
		user.PasswordHash = hashPass
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed update user: %w", err)
	}
	if role, ok := w.cache.Role(user.RoleID); ok {
		user.Role = role
	}
	w.cache.PutUser(*user)

	return nil
}

func (w *Workshop) DeleteUser(ctx context.Context, userID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed delete user: %w", err)
	}
	w.cache.RemoveUser(userID)

	return nil
}

func (w *Workshop) Users() []model.User {
	return w.cache.Users()
}

func (w *Workshop) AddRole(ctx context.Context, role *model.Role) error {
	if role.Name == "" {
		return ErrNameNotValid
	}

	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.CreateRole(ctx, role); err != nil {
		return fmt.Errorf("failed create role: %w", err)
	}
	w.cache.PutRole(*role)

	return nil
}

func (w *Workshop) DeleteRole(ctx context.Context, roleID uint) error {
	ctx, cancel := w.opCtx(ctx)
	defer cancel()

	if err := w.store.DeleteRole(ctx, roleID); err != nil {
		return fmt.Errorf("failed delete role: %w", err)
	}
	w.cache.RemoveRole(roleID)

	return nil
}

func (w *Workshop) Roles() []model.Role {
	return w.cache.Roles()
}
