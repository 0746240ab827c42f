package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/dealflow-backend/docs"
	"github.com/rafabene/dealflow-backend/internal/domain/ports"
	"github.com/rafabene/dealflow-backend/internal/handlers/dto"
	"github.com/rafabene/dealflow-backend/internal/handlers/middleware"
	"github.com/rafabene/dealflow-backend/internal/infrastructure/i18n"
)

// RouterConfig reúne as dependências do roteador
type RouterConfig struct {
	Logger         ports.Logger
	I18n           *i18n.Service
	Verifier       ports.TokenVerifier
	BaseURL        string
	AllowedOrigins []string

	Deals     *DealHandler
	Payments  *PaymentHandler
	Contracts *ContractHandler
	Reminders *ReminderHandler
}

// NewRouter monta o engine do Gin com middlewares e rotas da API
func NewRouter(cfg RouterConfig) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.BaseURL(cfg.BaseURL))
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/", Info)
	router.GET("/health", Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(RouteNotFound)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(cfg.Verifier, RespondUnauthorized))
	{
		deals := v1.Group("/deals")
		{
			deals.GET("", cfg.Deals.ListDeals)
			deals.POST("", cfg.Deals.CreateDeal)
			deals.GET("/:id", cfg.Deals.GetDeal)
			deals.PATCH("/:id", cfg.Deals.UpdateDeal)
			deals.DELETE("/:id", cfg.Deals.DeleteDeal)
			deals.GET("/:id/payments", cfg.Deals.ListDealPayments)
			deals.GET("/:id/contracts", cfg.Deals.ListDealContracts)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", cfg.Payments.ListPayments)
			payments.POST("", cfg.Payments.CreatePayment)
			payments.GET("/:id", cfg.Payments.GetPayment)
			payments.PATCH("/:id", cfg.Payments.UpdatePayment)
			payments.DELETE("/:id", cfg.Payments.DeletePayment)
		}

		contracts := v1.Group("/contracts")
		{
			contracts.GET("", cfg.Contracts.ListContracts)
			contracts.POST("", cfg.Contracts.CreateContract)
			contracts.GET("/:id", cfg.Contracts.GetContract)
			contracts.PATCH("/:id", cfg.Contracts.UpdateContract)
			contracts.DELETE("/:id", cfg.Contracts.DeleteContract)
		}

		reminders := v1.Group("/reminders")
		{
			reminders.GET("", cfg.Reminders.ListReminders)
			reminders.POST("", cfg.Reminders.CreateReminder)
			reminders.GET("/:id", cfg.Reminders.GetReminder)
			reminders.PATCH("/:id", cfg.Reminders.UpdateReminder)
			reminders.DELETE("/:id", cfg.Reminders.DeleteReminder)
		}
	}

	return router
}
