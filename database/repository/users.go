package repository

import (
	"fmt"
	"strings"

	"github.com/DCSlucifer/quickblog-backend/database"
	"github.com/DCSlucifer/quickblog-backend/pkg/gorm"
	"github.com/google/uuid"
)

type Users struct {
	DB *database.Connection
}

func (r Users) FindByEmail(email string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	if strings.TrimSpace(user.UUID) != "" {
		return user
	}

	return nil
}

func (r Users) FindByUUID(userUUID string) *database.User {
	user := &database.User{}

	result := r.DB.Sql().
		Where("uuid = ?", strings.TrimSpace(userUUID)).
		First(&user)

	if gorm.HasDbIssues(result.Error) {
		return nil
	}

	return user
}

func (r Users) Count() (int64, error) {
	var total int64

	if result := r.DB.Sql().Model(&database.User{}).Count(&total); gorm.HasDbIssues(result.Error) {
		return 0, result.Error
	}

	return total, nil
}

func (r Users) Create(attrs database.UserAttrs) (*database.User, error) {
	user := database.User{
		UUID:         uuid.NewString(),
		Name:         attrs.Name,
		Email:        strings.ToLower(strings.TrimSpace(attrs.Email)),
		PasswordHash: attrs.PasswordHash,
		Role:         attrs.Role,
	}

	if result := r.DB.Sql().Create(&user); gorm.HasDbIssues(result.Error) {
		return nil, fmt.Errorf("issue creating user [%s]: %s", attrs.Email, result.Error)
	}

	return &user, nil
}
