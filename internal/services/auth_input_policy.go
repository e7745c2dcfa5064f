package services

import (
	"errors"
	"net/mail"
	"strings"
)

const MinPasswordLength = 6

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrEmailFormatInvalid     = errors.New("email format invalid")
	ErrNameRequired           = errors.New("name required")
	ErrCargoRequired          = errors.New("cargo required")
	ErrPasswordTooShort       = errors.New("password too short")
	ErrPasswordMismatch       = errors.New("password confirmation mismatch")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

type RegistrationInput struct {
	Name            string
	Cargo           string
	Email           string
	Password        string
	ConfirmPassword string
}

// ValidateRegistrationInput normalizes and checks a registration form.
// The returned input carries the normalized email.
func ValidateRegistrationInput(input RegistrationInput) (RegistrationInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Cargo = strings.TrimSpace(input.Cargo)

	if input.Name == "" {
		return input, ErrNameRequired
	}
	if input.Cargo == "" {
		return input, ErrCargoRequired
	}

	input.Email = NormalizeAuthEmail(input.Email)
	if input.Email == "" {
		return input, ErrEmailFormatInvalid
	}
	if len([]rune(input.Password)) < MinPasswordLength {
		return input, ErrPasswordTooShort
	}
	if input.Password != input.ConfirmPassword {
		return input, ErrPasswordMismatch
	}
	return input, nil
}

// ValidateNewPassword covers the reset flow, where only the password pair is
// submitted.
func ValidateNewPassword(password string, confirmPassword string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}
