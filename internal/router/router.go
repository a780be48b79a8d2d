package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"proplist/internal/auth"
	"proplist/internal/handler"
	"proplist/internal/middleware"
	"proplist/internal/model"
)

// Register wires routes and middleware. Protected routes run the token gate
// first; the admin group additionally runs the role gate.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	propertyHandler *handler.PropertyHandler,
	locationHandler *handler.LocationHandler,
	adminHandler *handler.AdminHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authenticated := middleware.Authenticate(jwtService)

	authGroup := e.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/forgot-password", authHandler.ForgotPassword)
	authGroup.POST("/verify-otp", authHandler.VerifyOTP)
	authGroup.POST("/reset-password", authHandler.ResetPassword)

	properties := e.Group("/properties")
	properties.GET("", propertyHandler.List)
	properties.GET("/:id", propertyHandler.Get)
	properties.POST("", propertyHandler.Create, authenticated)
	properties.PUT("/:id", propertyHandler.Update, authenticated)
	properties.DELETE("/:id", propertyHandler.Delete, authenticated)

	locations := e.Group("/locations")
	locations.POST("", locationHandler.Create)
	locations.GET("", locationHandler.List)
	locations.GET("/:id", locationHandler.Get)
	locations.PUT("/:id", locationHandler.Update)
	locations.DELETE("/:id", locationHandler.Delete)

	admin := e.Group("/admin",
		authenticated,
		middleware.RequireRoles(
			[]model.Role{model.RoleStaff},
			model.StaffRoleSuperUser, model.StaffRoleEditor,
		),
	)
	admin.GET("/users", adminHandler.ListUsers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator used by the server.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
