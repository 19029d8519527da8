// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"photocard/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StatusHandler  *handler.StatusHandler
	CatalogHandler *handler.CatalogHandler
	SessionHandler *handler.SessionHandler
	MeHandler      *handler.MeHandler
	ImageHandler   *handler.ImageHandler
	EventHandler   *handler.EventHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	status  *handler.StatusHandler
	catalog *handler.CatalogHandler
	session *handler.SessionHandler
	me      *handler.MeHandler
	image   *handler.ImageHandler
	event   *handler.EventHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		status:  params.StatusHandler,
		catalog: params.CatalogHandler,
		session: params.SessionHandler,
		me:      params.MeHandler,
		image:   params.ImageHandler,
		event:   params.EventHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.status.Health)
	e.GET("/feeds", r.status.Feeds)
	e.GET("/events", r.event.Stream)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/anonymous", r.session.SignInAnonymous)
		sessionGroup.POST("/signin", r.session.SignIn)
		sessionGroup.POST("/signup", r.session.SignUp)
		sessionGroup.POST("/signout", r.session.SignOut)
	}

	// Catalogue
	e.GET("/idols", r.catalog.ListIdols)
	e.POST("/idols", r.catalog.AddIdol)
	e.DELETE("/idols/:id", r.catalog.DeleteIdol)
	e.GET("/artists", r.catalog.ListArtists)
	e.POST("/artists", r.catalog.AddArtist)
	e.GET("/albums", r.catalog.ListAlbums)
	e.POST("/albums", r.catalog.AddAlbum)
	e.GET("/photocards", r.catalog.ListPhotocards)
	e.GET("/search", r.me.Search)
	e.GET("/photocards/:id", r.catalog.GetPhotocard)
	e.POST("/photocards", r.catalog.AddPhotocard)

	// Marketplace
	e.GET("/listings", r.catalog.ListListings)
	e.POST("/listings", r.catalog.AddListing)
	e.POST("/listings/:id/sold", r.catalog.MarkListingSold)

	meGroup := e.Group("/me")
	{
		meGroup.GET("", r.me.Get)
		meGroup.PUT("/collection/:photocardId", r.me.AddToCollection)
		meGroup.DELETE("/collection/:photocardId", r.me.RemoveFromCollection)
		meGroup.PUT("/favourites/:photocardId", r.me.AddFavourite)
		meGroup.DELETE("/favourites/:photocardId", r.me.RemoveFavourite)
		meGroup.PUT("/wishlist/:photocardId", r.me.AddToWishlist)
		meGroup.DELETE("/wishlist/:photocardId", r.me.RemoveFromWishlist)
		meGroup.GET("/searches", r.me.ListSearches)
		meGroup.POST("/searches", r.me.RecordSearch)
		meGroup.DELETE("/searches/:text", r.me.ForgetSearch)
	}

	imageGroup := e.Group("/images")
	{
		imageGroup.GET("/:name", r.image.Get)
		imageGroup.POST("", r.image.Upload)
	}
}
