package db

import (
	"time"

	"github.com/lufarias/vetor/internal/models"
	"gorm.io/gorm"
)

type AccountRepository struct {
	database *gorm.DB
}

func NewAccountRepository(database *gorm.DB) *AccountRepository {
	return &AccountRepository{database: database}
}

func (repo *AccountRepository) CountAccounts() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Account{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *AccountRepository) FindByID(accountID uint) (models.Account, error) {
	var account models.Account
	if err := repo.database.First(&account, accountID).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) FindByNormalizedEmail(email string) (models.Account, error) {
	var account models.Account
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&account).Error; err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (repo *AccountRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Account{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AccountRepository) Create(account *models.Account) error {
	return repo.database.Create(account).Error
}

func (repo *AccountRepository) UpdateResetCode(accountID uint, resetCodeHash string, expiresAt *time.Time) error {
	return repo.database.Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]any{
		"reset_code_hash":       resetCodeHash,
		"reset_code_expires_at": expiresAt,
	}).Error
}

func (repo *AccountRepository) UpdatePassword(accountID uint, passwordHash string) error {
	return repo.database.Model(&models.Account{}).Where("id = ?", accountID).Updates(map[string]any{
		"password_hash":         passwordHash,
		"reset_code_hash":       "",
		"reset_code_expires_at": nil,
	}).Error
}
