package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lufarias/vetor/internal/models"
	"github.com/lufarias/vetor/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so a
	// caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrResetCodeInvalid   = errors.New("reset code invalid")
)

const resetCodeTTL = 30 * time.Minute
const resetCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type AuthAccountRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.Account, error)
	FindByID(accountID uint) (models.Account, error)
	Create(account *models.Account) error
	UpdateResetCode(accountID uint, resetCodeHash string, expiresAt *time.Time) error
	UpdatePassword(accountID uint, passwordHash string) error
}

type AuthService struct {
	accounts  AuthAccountRepository
	orgDomain string
}

func NewAuthService(accounts AuthAccountRepository, orgDomain string) *AuthService {
	return &AuthService{accounts: accounts, orgDomain: orgDomain}
}

func (service *AuthService) FindByID(accountID uint) (models.Account, error) {
	return service.accounts.FindByID(accountID)
}

// Authenticate resolves the (email, password) pair against the registry.
// Every failure mode collapses into ErrInvalidCredentials.
func (service *AuthService) Authenticate(emailRaw string, passwordRaw string) (models.Account, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.Account{}, ErrInvalidCredentials
	}

	account, err := service.accounts.FindByNormalizedEmail(email)
	if err != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return models.Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// Register validates the form, derives the role from the normalized email and
// appends the account to the registry.
func (service *AuthService) Register(input RegistrationInput) (models.Account, error) {
	input, err := ValidateRegistrationInput(input)
	if err != nil {
		return models.Account{}, err
	}

	exists, err := service.accounts.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return models.Account{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		Name:         input.Name,
		Email:        input.Email,
		Cargo:        input.Cargo,
		Role:         ResolveRole(service.orgDomain, input.Email),
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}
	if err := service.accounts.Create(&account); err != nil {
		// Unique index race: a concurrent registration won.
		return models.Account{}, ErrEmailTaken
	}
	return account, nil
}

// IssueResetCode generates a one-time recovery code for the account, storing
// only its bcrypt hash. The plain code is returned once for delivery.
func (service *AuthService) IssueResetCode(emailRaw string) (models.Account, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.Account{}, "", ErrAccountNotFound
	}

	account, err := service.accounts.FindByNormalizedEmail(email)
	if err != nil {
		return models.Account{}, "", ErrAccountNotFound
	}

	code, err := generateResetCode()
	if err != nil {
		return models.Account{}, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, "", err
	}

	expiresAt := time.Now().Add(resetCodeTTL)
	if err := service.accounts.UpdateResetCode(account.ID, string(hash), &expiresAt); err != nil {
		return models.Account{}, "", err
	}
	return account, code, nil
}

// ResetPassword verifies the one-time code and replaces the password hash,
// clearing the code on success.
func (service *AuthService) ResetPassword(emailRaw string, codeRaw string, password string, confirmPassword string) error {
	if err := ValidateNewPassword(password, confirmPassword); err != nil {
		return err
	}

	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return ErrResetCodeInvalid
	}
	account, err := service.accounts.FindByNormalizedEmail(email)
	if err != nil {
		return ErrResetCodeInvalid
	}

	hash := strings.TrimSpace(account.ResetCodeHash)
	if hash == "" || account.ResetCodeExpiresAt == nil || account.ResetCodeExpiresAt.Before(time.Now()) {
		return ErrResetCodeInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(NormalizeResetCode(codeRaw))) != nil {
		return ErrResetCodeInvalid
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.accounts.UpdatePassword(account.ID, string(passwordHash))
}

// NormalizeResetCode is lenient about spacing, dashes and case so a code can
// be retyped from the delivery message.
func NormalizeResetCode(raw string) string {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.TrimPrefix(normalized, "VETOR")
	if len(normalized) != 8 {
		return strings.ToUpper(strings.TrimSpace(raw))
	}
	return fmt.Sprintf("VETOR-%s-%s", normalized[:4], normalized[4:8])
}

func generateResetCode() (string, error) {
	value, err := security.RandomString(8, resetCodeAlphabet)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("VETOR-%s-%s", value[:4], value[4:8]), nil
}
