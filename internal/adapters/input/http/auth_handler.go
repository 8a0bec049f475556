package http

import (
	"fmt"

	"github.com/anjishnu/ask-alexa-twitter/internal/ports/input"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AuthHandler struct - Primary/Driving adapter for the browser-based
// account linking flow
type AuthHandler struct {
	service input.AccountLinkService
}

// NewAuthHandler func - Creates new account linking handler
func NewAuthHandler(service input.AccountLinkService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login func - Starts the linking flow for a platform user
// @Summary Start account linking
// @Description Redirects the browser to the Twitter authorization page
// @Tags Auth
// @Produce html
// @Param user_id path string true "Platform user id"
// @Success 302
// @Router /login/{user_id} [get]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	callbackURL := fmt.Sprintf("%s/get_auth/%s", c.BaseURL(), userID)

	authURL, err := h.service.StartLogin(userID, callbackURL)
	if err != nil {
		logrus.Errorf("Failed to start account linking: externalUserID=%s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Could not start Twitter login, please try again.")
	}

	return c.Redirect(authURL, fiber.StatusFound)
}

// Callback func - Completes the linking flow after Twitter redirects back
// @Summary Finish account linking
// @Description Exchanges the OAuth verifier and stores the linked session
// @Tags Auth
// @Produce json
// @Param user_id path string true "Platform user id"
// @Param oauth_token query string true "Request token"
// @Param oauth_verifier query string true "Verifier"
// @Success 200 {object} map[string]interface{}
// @Router /get_auth/{user_id} [get]
func (h *AuthHandler) Callback(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	oauthToken := c.Query("oauth_token")
	oauthVerifier := c.Query("oauth_verifier")

	if oauthToken == "" || oauthVerifier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Missing oauth_token or oauth_verifier",
		})
	}

	screenName, err := h.service.CompleteLogin(userID, oauthToken, oauthVerifier)
	if err != nil {
		logrus.Errorf("Failed to complete account linking: externalUserID=%s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Could not finish Twitter login",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "Logged in successfully!",
		"account": screenName,
	})
}
