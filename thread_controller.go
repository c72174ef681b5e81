package forum

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

const threadLocalsKey = "thread"

// ThreadController is plumbing around the Threads repository. Ownership
// checks are not done here: the route composes LoadOwner + HasAuthorization
// in front of the mutating handlers.
type ThreadController struct {
	Logger Logger
	repo   RepositoryManager
}

func NewThreadController(repo RepositoryManager) *ThreadController {
	return &ThreadController{
		Logger: defLogger{},
		repo:   repo,
	}
}

// RegisterThreadRoutes mounts the thread endpoints. Listing requires a
// signed-in caller; updating or removing a thread additionally requires
// ownership.
func RegisterThreadRoutes(app fiber.Router, controller *ThreadController, auth *RouteAuthenticator) {
	requireSignin := auth.RequireSignin()

	app.Post("/api/thread", controller.Create)
	app.Get("/api/thread", requireSignin, controller.List)
	app.Get("/api/thread/:id", controller.Show)
	app.Put("/api/thread/:id", requireSignin, controller.LoadOwner, HasAuthorization(), controller.Update)
	app.Delete("/api/thread/:id", requireSignin, controller.LoadOwner, HasAuthorization(), controller.Remove)
}

type ThreadPayload struct {
	Title    string `form:"title" json:"title"`
	PostedBy string `form:"posted_by" json:"posted_by"`
}

func (r ThreadPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.PostedBy, validation.Required, is.UUIDv4),
	)
}

// LoadOwner resolves the requested thread and stores its owner under
// ProfileKey so the authorization gate can compare it against the principal.
// The loaded record is kept in locals to spare the handler a second lookup.
func (t *ThreadController) LoadOwner(c *fiber.Ctx) error {
	thread, err := t.repo.Threads().FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if IsRecordNotFound(err) {
			return RespondError(c, errors.New("thread not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound))
		}
		return RespondError(c, err)
	}

	SetProfileOwner(c, thread.PostedBy.String())
	c.Locals(threadLocalsKey, thread)

	return c.Next()
}

func (t *ThreadController) Create(c *fiber.Ctx) error {
	payload := new(ThreadPayload)

	if err := c.BodyParser(payload); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryBadInput, "could not parse thread payload").
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

	thread, err := t.repo.Threads().Create(c.UserContext(), &Thread{
		Title:    payload.Title,
		PostedBy: postedBy,
	})
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, thread)
}

func (t *ThreadController) List(c *fiber.Ctx) error {
	threads, err := t.repo.Threads().ListRecent(c.UserContext())
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, threads)
}

func (t *ThreadController) Show(c *fiber.Ctx) error {
	thread, err := t.repo.Threads().FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if IsRecordNotFound(err) {
			return RespondError(c, errors.New("thread not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound))
		}
		return RespondError(c, err)
	}

	return RespondSuccess(c, thread)
}

func (t *ThreadController) Update(c *fiber.Ctx) error {
	payload := new(ThreadPayload)

	if err := c.BodyParser(payload); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryBadInput, "could not parse thread payload").
			WithCode(errors.CodeBadRequest))
	}

	thread, ok := c.Locals(threadLocalsKey).(*Thread)
	if !ok {
		return RespondError(c, errors.New("thread not loaded", errors.CategoryInternal))
	}

	updated, err := t.repo.Threads().UpdateTitle(c.UserContext(), thread.ID, payload.Title)
	if err != nil {
		if IsRecordNotFound(err) {
			return RespondError(c, errors.New("thread not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound))
		}
		return RespondError(c, err)
	}

	return RespondSuccess(c, updated)
}

func (t *ThreadController) Remove(c *fiber.Ctx) error {
	thread, ok := c.Locals(threadLocalsKey).(*Thread)
	if !ok {
		return RespondError(c, errors.New("thread not loaded", errors.CategoryInternal))
	}

	if err := t.repo.Threads().Remove(c.UserContext(), thread.ID); err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, thread)
}
