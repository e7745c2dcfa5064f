package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LanguageMiddleware resolves the request language from the language cookie,
// falling back to Accept-Language, and caches the resolved message catalog in
// the request context.
func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := strings.TrimSpace(c.Cookies(languageCookieName))
	if language == "" {
		language = handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	}
	language = handler.i18n.NormalizeLanguage(language)

	c.Locals(contextLanguageKey, language)
	c.Locals(contextMessagesKey, handler.i18n.Messages(language))
	return c.Next()
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	language := handler.i18n.NormalizeLanguage(c.Params("lang"))
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    language,
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"language": language})
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, _ := c.Locals(contextMessagesKey).(map[string]string)
	return messages
}

// message translates a catalog key for the current request, tolerating a
// missing LanguageMiddleware by falling back to the default language.
func (handler *Handler) message(c *fiber.Ctx, key string) string {
	if messages := currentMessages(c); messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return handler.i18n.Translate(handler.i18n.DefaultLanguage(), key)
}
