package forum

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// MessageController is plumbing around the Messages repository.
type MessageController struct {
	Logger Logger
	repo   RepositoryManager
}

func NewMessageController(repo RepositoryManager) *MessageController {
	return &MessageController{
		Logger: defLogger{},
		repo:   repo,
	}
}

func RegisterMessageRoutes(app fiber.Router, controller *MessageController, auth *RouteAuthenticator) {
	requireSignin := auth.RequireSignin()

	app.Post("/api/message/:threadId", requireSignin, controller.Create)
	app.Get("/api/message/:threadId", requireSignin, controller.List)
}

type MessagePayload struct {
	Text     string `form:"text" json:"text"`
	PostedBy string `form:"posted_by" json:"posted_by"`
}

func (r MessagePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, 5000)),
		validation.Field(&r.PostedBy, validation.Required, is.UUIDv4),
	)
}

func (m *MessageController) Create(c *fiber.Ctx) error {
	threadID, err := uuid.Parse(c.Params("threadId"))
	if err != nil {
		return RespondError(c, errors.New("thread not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound))
	}

	payload := new(MessagePayload)
	if err := c.BodyParser(payload); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryBadInput, "could not parse message payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest))
	}

	postedBy, err := uuid.Parse(payload.PostedBy)
	if err != nil {
		return RespondError(c, errors.New("posted_by must be a valid id", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest))
	}

	message, err := m.repo.Messages().Create(c.UserContext(), &Message{
		Text:     payload.Text,
		ThreadID: threadID,
		PostedBy: postedBy,
	})
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, message)
}

func (m *MessageController) List(c *fiber.Ctx) error {
	threadID, err := uuid.Parse(c.Params("threadId"))
	if err != nil {
		return RespondError(c, errors.New("thread not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound))
	}

	records, err := m.repo.Messages().ListByThread(c.UserContext(), threadID)
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, records)
}
