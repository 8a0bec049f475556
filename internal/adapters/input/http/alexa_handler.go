package http

import (
	"github.com/anjishnu/ask-alexa-twitter/internal/domain"
	"github.com/anjishnu/ask-alexa-twitter/internal/ports/input"
	"github.com/anjishnu/ask-alexa-twitter/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AlexaHandler struct - Primary/Driving adapter for the voice platform
// endpoint. Parses the platform's request envelope, hands the turn to the
// dialog service and renders the response envelope back into the platform
// schema. Request signature verification belongs to the platform gateway
// in front of this service and is not performed here.
type AlexaHandler struct {
	service   input.DialogService
	validator validator.Validator
}

// NewAlexaHandler func - Creates new voice request handler
func NewAlexaHandler(service input.DialogService) *AlexaHandler {
	return &AlexaHandler{
		service:   service,
		validator: validator.New(),
	}
}

// HandleRequest func - Handles one voice request
// @Summary Voice skill endpoint
// @Description Processes one turn of the voice dialog
// @Tags Skill
// @Accept application/json
// @Produce json
// @Success 200 {object} SkillResponseBody
// @Router /alexa [post]
func (h *AlexaHandler) HandleRequest(c *fiber.Ctx) error {
	var body SkillRequestBody
	if err := c.BodyParser(&body); err != nil {
		logrus.Errorf("Failed to parse skill request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Malformed request body",
		})
	}

	if err := h.validator.ValidateStruct(&body); err != nil {
		logrus.Errorf("Invalid skill request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request",
		})
	}

	request := h.convertToDomainRequest(body)

	requestID := body.Request.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logrus.Infof("Received voice request: id=%s, selector=%s, externalUserID=%s",
		requestID, request.Selector(), request.ExternalUserID)

	envelope := h.service.HandleRequest(request)

	return c.Status(fiber.StatusOK).JSON(newSkillResponseBody(envelope))
}

// convertToDomainRequest - Converts the platform DTO to the domain request
func (h *AlexaHandler) convertToDomainRequest(body SkillRequestBody) domain.SkillRequest {
	request := domain.SkillRequest{
		Type:           domain.RequestType(body.Request.Type),
		Identity:       body.Session.User.AccessToken,
		ExternalUserID: body.Session.User.UserID,
		Slots:          make(map[string]string),
	}

	if body.Request.Intent != nil {
		request.Intent = body.Request.Intent.Name
		for name, slot := range body.Request.Intent.Slots {
			if slot.Value != "" {
				request.Slots[name] = slot.Value
			}
		}
	}

	return request
}
