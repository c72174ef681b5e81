package forum

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
)

// AuthController owns the identity endpoints: sign in, sign out, register,
// and the profile lookup for an authenticated principal.
type AuthController struct {
	Debug    bool
	Logger   Logger
	Auth     Authenticator
	Routes   *RouteAuthenticator
	Register *RegisterUserHandler
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auth == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Routes == nil {
		panic("Missing RouteAuthenticator in auth controller...")
	}

	return c
}

func WithAuthenticator(auth Authenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auth = auth
		return c
	}
}

func WithRouteAuthenticator(routes *RouteAuthenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Routes = routes
		return c
	}
}

func WithRegisterHandler(handler *RegisterUserHandler) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Register = handler
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

// RegisterAuthRoutes mounts the identity endpoints on the given router.
func RegisterAuthRoutes(app fiber.Router, controller *AuthController) {
	app.Post("/auth/signin", controller.Signin)
	app.Get("/auth/signout/:accessToken?", controller.Signout)
	app.Get("/api/users/:userId", controller.Routes.RequireSignin(), controller.GetUser)

	if controller.Register != nil {
		app.Post("/auth/register", controller.RegisterUser)
	}
}

// SigninRequest payload
type SigninRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r SigninRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// Signin verifies credentials, sets the session cookie, and answers with the
// token plus the public user projection. Both rejection paths answer 401.
func (a *AuthController) Signin(c *fiber.Ctx) error {
	payload := new(SigninRequest)

	if err := c.BodyParser(payload); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryBadInput, "could not parse sign in payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest))
	}

	if a.Debug {
		fmt.Println(print.MaybePrettyJSON(map[string]any{"email": payload.Email}))
	}

	token, user, err := a.Routes.SignIn(c, payload.Email, payload.Password)
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

// Signout clears the session cookie and, when the route names a third-party
// access token, revokes the stored copy. It answers 200 unconditionally:
// being signed out client side must not depend on the revocation write.
func (a *AuthController) Signout(c *fiber.Ctx) error {
	accessToken := c.Params("accessToken")

	user := a.Routes.SignOut(c, accessToken)
	if user != nil {
		return RespondSuccess(c, user.Public())
	}

	return RespondSuccess(c, "Signed out")
}

// GetUser resolves the authenticated principal into its public projection.
// Runs behind RequireSignin; a stale principal whose account is gone answers
// 404, not 401.
func (a *AuthController) GetUser(c *fiber.Ctx) error {
	principal, ok := PrincipalFromLocals(c)
	if !ok {
		return RespondError(c, ErrUnableToFindSession)
	}

	user, err := a.Auth.IdentityFromSession(c.UserContext(), principal)
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, fiber.Map{
		"token": c.Query("token"),
		"user":  user.Public(),
	})
}

// RegisterRequest payload
type RegisterRequest struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will validate the payload
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(0, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

// RegisterUser creates a new account.
func (a *AuthController) RegisterUser(c *fiber.Ctx) error {
	payload := new(RegisterRequest)

	if err := c.BodyParser(payload); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryBadInput, "could not parse registration payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return RespondError(c, errors.Wrap(err, errors.CategoryValidation, err.Error()).
			WithCode(errors.CodeBadRequest))
	}

	user, err := a.Register.Execute(c.UserContext(), RegisterUserMessage{
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		return RespondError(c, err)
	}

	return RespondSuccess(c, user.Public())
}
