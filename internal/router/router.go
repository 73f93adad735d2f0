package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/saraccmululo/auction-platform-app/internal/config"
	"github.com/saraccmululo/auction-platform-app/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	listingHandler *handler.ListingHandler,
	bidHandler *handler.BidHandler,
	commentHandler *handler.CommentHandler,
	watchlistHandler *handler.WatchlistHandler,
	categoryHandler *handler.CategoryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/listings", listingHandler.ListActive)
	api.GET("/listings/:id", listingHandler.GetListing)
	api.GET("/listings/:id/price", bidHandler.CurrentPrice)
	api.GET("/listings/:id/bids", bidHandler.ListBids)
	api.GET("/listings/:id/comments", commentHandler.ListComments)
	api.GET("/categories", categoryHandler.List)
	api.GET("/categories/:id/listings", categoryHandler.ListListings)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.POST("/listings", listingHandler.CreateListing)
	secured.POST("/listings/:id/close", listingHandler.CloseListing)
	secured.DELETE("/listings/:id", listingHandler.DeleteListing)
	secured.POST("/listings/:id/bids", bidHandler.PlaceBid)
	secured.POST("/listings/:id/comments", commentHandler.AddComment)
	secured.POST("/listings/:id/watchlist", watchlistHandler.Toggle)
	secured.GET("/watchlist", watchlistHandler.List)
	secured.POST("/categories", categoryHandler.Create)
	secured.DELETE("/categories/:id", categoryHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
