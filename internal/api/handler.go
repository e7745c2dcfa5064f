package api

import (
	"errors"
	"log"
	"time"

	"github.com/lufarias/vetor/internal/db"
	"github.com/lufarias/vetor/internal/i18n"
	"github.com/lufarias/vetor/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	cookieSecure bool
	i18n         *i18n.Manager

	repositories   *db.Repositories
	authService    *services.AuthService
	contentService *services.ContentService
	memberService  *services.MemberService
	setupService   *services.SetupService

	resetLimiter *attemptLimiter

	// deliverResetCode stands in for a mailer; the default writes the code to
	// the process log.
	deliverResetCode func(email string, code string)
}

func NewHandler(database *gorm.DB, secret string, orgDomain string, i18nManager *i18n.Manager, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if i18nManager == nil {
		return nil, errors.New("i18n manager is required")
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:      []byte(secret),
		cookieSecure:   cookieSecure,
		i18n:           i18nManager,
		repositories:   repositories,
		authService:    services.NewAuthService(repositories.Accounts, orgDomain),
		contentService: services.NewContentService(repositories.Contents),
		memberService:  services.NewMemberService(repositories.Members, repositories.Trainees),
		setupService: services.NewSetupService(
			repositories.Accounts,
			repositories.Contents,
			repositories.Members,
			repositories.Trainees,
			orgDomain,
		),
		resetLimiter: newAttemptLimiter(),
		deliverResetCode: func(email string, code string) {
			log.Printf("password reset code for %s: %s", email, code)
		},
	}, nil
}

// EnsureSeedData exposes the setup service to main.
func (handler *Handler) EnsureSeedData(admin services.AdminBootstrap) error {
	return handler.setupService.EnsureSeedData(admin)
}
