package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lufarias/vetor/internal/models"
)

const (
	authCookieName     = "vetor_auth"
	languageCookieName = "vetor_lang"
	contextAccountKey  = "current_account"
	contextLanguageKey = "current_language"
	contextMessagesKey = "current_messages"
)

func currentAccount(c *fiber.Ctx) (*models.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(*models.Account)
	return account, ok
}
