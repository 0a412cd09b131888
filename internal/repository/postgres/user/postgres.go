package user

import (
	"context"
	"errors"

	userdomain "expense-tracker-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*userdomain.User, error) {
	var account userdomain.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, username, password string) (*userdomain.User, error) {
	var account userdomain.User
	if err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *userdomain.User) error {
	return r.db.WithContext(ctx).Create(account).Error
}
