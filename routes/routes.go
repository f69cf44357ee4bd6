package routes

import (
	"log"

	"crewcall-shop/config"
	"crewcall-shop/controllers"
	"crewcall-shop/middleware"
	"crewcall-shop/models"
	"crewcall-shop/repositories"
	"crewcall-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	var carts repositories.CartRepository
	var revoker services.SessionRevoker

	if config.RedisClient != nil {
		carts = repositories.NewRedisCartRepository(config.RedisClient, config.AppConfig.JWTExpiry)
		revoker = repositories.NewRedisSessionRevoker(config.RedisClient, config.AppConfig.JWTExpiry)
	} else {
		carts = repositories.NewMemoryCartRepository()
		revoker = repositories.NoopSessionRevoker{}
	}

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("SMTP not configured, lead emails run in simulation mode")
	}

	clientRepo := repositories.NewClientRepository()

	catalogSvc := services.NewCatalogService()
	cartSvc := services.NewCartService(carts)
	authSvc := services.NewAuthService(clientRepo, services.JWTIssuer{}, revoker)
	clientSvc := services.NewClientService(clientRepo, services.RegisteredClientPolicy{})

	var leadSvc *services.LeadService
	if mailer != nil {
		leadSvc = services.NewLeadService(mailer, cartSvc)
	} else {
		leadSvc = services.NewLeadService(nil, cartSvc)
	}

	authCtrl := controllers.NewAuthController(authSvc)
	cartCtrl := controllers.NewCartController(cartSvc, catalogSvc)
	productCtrl := controllers.NewProductController(catalogSvc)
	clientCtrl := controllers.NewClientController(clientSvc, authSvc)
	leadCtrl := controllers.NewLeadController(leadSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/guest", authCtrl.LoginAsGuest)
	router.GET("/auth/session", middleware.OptionalSessionMiddleware(revoker), authCtrl.GetSession)

	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/products/:id/price", productCtrl.GetProductPrice)
	router.GET("/textiles", productCtrl.GetTextiles)
	router.POST("/notebook/quote", productCtrl.QuoteNotebook)

	router.POST("/requests/personalization", leadCtrl.SubmitPersonalization)
	router.POST("/requests/contact", leadCtrl.SubmitContact)
	router.POST("/requests/textile-quote", middleware.OptionalSessionMiddleware(revoker), leadCtrl.SubmitTextileQuote)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware(revoker))
	{
		session.POST("/auth/logout", authCtrl.Logout)

		session.GET("/cart", cartCtrl.GetCart)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		session.POST("/cart/notebook", cartCtrl.AddNotebook)

		session.GET("/clients", clientCtrl.GetAllClients)
		session.GET("/clients/:id", clientCtrl.GetClientByID)
		session.POST("/clients", clientCtrl.CreateClient)
		session.PATCH("/clients/:id", clientCtrl.UpdateClient)
		session.DELETE("/clients/:id", clientCtrl.DeleteClient)
	}

	router.Static("/uploads", "./uploads")
}
