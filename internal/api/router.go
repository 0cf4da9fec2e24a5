package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beststore/beststore/internal/handler"
	"github.com/beststore/beststore/internal/middleware"
)

func SetupRouter(
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	listingHandler *handler.ListingHandler,
	questionHandler *handler.QuestionHandler,
	favoriteHandler *handler.FavoriteHandler,
	purchaseHandler *handler.PurchaseHandler,
	authMiddleware *middleware.AuthMiddleware,
	loginLimiter middleware.LoginRateLimiter,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	// Public routes
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", middleware.ThrottleLogin(loginLimiter, logger), authHandler.Authenticate)

	// Session-protected routes
	app := r.Group("/")
	app.Use(authMiddleware.RequireSession())
	{
		app.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/anuncio")
		})
		app.GET("/logout", authHandler.Logout)

		app.GET("/categoria", categoryHandler.List)
		app.POST("/categoria/criar", categoryHandler.Create)
		app.GET("/categoria/editar/:id", categoryHandler.EditForm)
		app.POST("/categoria/editar/:id", categoryHandler.Edit)
		app.GET("/categoria/deletar/:id", categoryHandler.Delete)

		app.GET("/usuario", userHandler.List)
		app.POST("/usuario/novo", userHandler.Create)
		app.GET("/usuario/detalhar/:id", userHandler.Detail)
		app.GET("/usuario/editar/:id", userHandler.EditForm)
		app.POST("/usuario/editar/:id", userHandler.Edit)
		app.GET("/usuario/deletar/:id", userHandler.Delete)
		app.GET("/minha-conta", userHandler.MyAccount)
		app.POST("/minha-conta", userHandler.UpdateMyAccount)

		app.GET("/anuncio", listingHandler.List)
		app.POST("/anuncio/criar", listingHandler.Create)

		app.GET("/pergunta", questionHandler.List)
		app.GET("/pergunta/:id_anuncio", questionHandler.List)
		app.POST("/pergunta/nova", questionHandler.Create)

		app.GET("/favoritar/:id_anuncio", favoriteHandler.Toggle)
		app.GET("/favoritos", favoriteHandler.List)

		app.GET("/comprar/:id_anuncio", purchaseHandler.Buy)

		app.GET("/relatorios/vendas", purchaseHandler.Sales)
		app.GET("/relatorios/compras", purchaseHandler.Purchases)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})

	return r
}
