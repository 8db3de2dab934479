package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"servio/cmd/fx/accountfx"
	"servio/cmd/fx/configfx"
	"servio/cmd/fx/controllersfx"
	"servio/cmd/fx/dashboardfx"
	"servio/cmd/fx/dbfx"
	"servio/cmd/fx/memcachefx"
	"servio/cmd/fx/offerfx"
	"servio/cmd/fx/orderfx"
	"servio/cmd/fx/profilefx"
	"servio/cmd/fx/reviewfx"
	"servio/internal/api/controllers"
	"servio/internal/config"
	"servio/internal/infra"
	"servio/pkg/middleware"
	"servio/pkg/utils"
)

func main() {
	app := fx.New(
		configfx.Module,
		dbfx.Module,
		memcachefx.Module,
		accountfx.Module,
		profilefx.Module,
		offerfx.Module,
		orderfx.Module,
		reviewfx.Module,
		dashboardfx.Module,
		controllersfx.Module,
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *zap.Logger) {
	corsWrapper := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Trace-ID"},
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsWrapper.Handler(engine),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting http server", zap.String("port", cfg.Port))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping http server")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			return infra.ClosePostgresql(db)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	tokens *utils.TokenManager,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	offerController *controllers.OfferController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.RegisterJSONTagNames()

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tokens,
		accountController, profileController, offerController,
		orderController, reviewController, dashboardController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	tokens *utils.TokenManager,
	accountController *controllers.AccountController,
	profileController *controllers.ProfileController,
	offerController *controllers.OfferController,
	orderController *controllers.OrderController,
	reviewController *controllers.ReviewController,
	dashboardController *controllers.DashboardController,
) {
	authRequired := middleware.JWTAuthMiddleware(tokens)
	authOptional := middleware.JWTOptionalMiddleware(tokens)

	r.GET("/health", dashboardController.Health)

	api := r.Group("/api")
	{
		api.POST("/registration", accountController.Register)
		api.POST("/login", accountController.Login)

		api.GET("/profile/:pk", authRequired, profileController.GetProfile)
		api.PATCH("/profile/:pk", authRequired, profileController.UpdateProfile)
		api.GET("/profiles/business", authRequired, profileController.ListBusinessProfiles)
		api.GET("/profiles/customer", authRequired, profileController.ListCustomerProfiles)

		api.GET("/offers", offerController.ListOffers)
		api.POST("/offers", authRequired, offerController.CreateOffer)
		api.GET("/offers/:id", offerController.GetOffer)
		api.PATCH("/offers/:id", authRequired, offerController.UpdateOffer)
		api.DELETE("/offers/:id", authRequired, offerController.DeleteOffer)
		api.GET("/offerdetails/:id", offerController.GetOfferDetail)

		api.GET("/orders", authOptional, orderController.ListOrders)
		api.POST("/orders", authRequired, orderController.CreateOrder)
		api.GET("/orders/:id", authRequired, orderController.GetOrder)
		api.PATCH("/orders/:id", authRequired, orderController.UpdateOrder)
		api.DELETE("/orders/:id", authRequired, orderController.DeleteOrder)
		api.GET("/order-count/:business_user_id", authRequired, orderController.OrderCount)
		api.GET("/completed-order-count/:business_user_id", authRequired, orderController.CompletedOrderCount)

		api.GET("/reviews", authRequired, reviewController.ListReviews)
		api.POST("/reviews", authRequired, reviewController.CreateReview)
		api.GET("/reviews/:id", authRequired, reviewController.GetReview)
		api.PATCH("/reviews/:id", authRequired, reviewController.UpdateReview)
		api.DELETE("/reviews/:id", authRequired, reviewController.DeleteReview)

		api.GET("/base-info", dashboardController.BaseInfo)
	}
}
