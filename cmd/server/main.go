package main

import (
	"context"
	"log"

	"theme-park-ticketing/config"
	"theme-park-ticketing/internal/handler"
	"theme-park-ticketing/internal/repository"
	"theme-park-ticketing/internal/service"
	"theme-park-ticketing/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	customerRepo := repository.NewCustomerRepository(cfg.Storage.Dir)
	adminRepo := repository.NewAdminRepository(cfg.Storage.Dir)
	ticketRepo := repository.NewTicketRepository(cfg.Storage.Dir)
	orderRepo := repository.NewOrderRepository(cfg.Storage.Dir)

	ds, err := service.LoadDataset(context.Background(), customerRepo, adminRepo, ticketRepo, orderRepo)
	if err != nil {
		log.Fatalf("Failed to load data files: %v", err)
	}

	sessions := session.NewManager()
	authService := service.NewAuthService(ds, sessions)
	catalogService := service.NewCatalogService(ds)
	orderService := service.NewOrderService(ds)
	reportService := service.NewReportService(ds)

	router := gin.Default()
	router.Use(cors.Default())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewAuthHandler(authService, sessions).RegisterRoutes(router)
	handler.NewTicketHandler(catalogService, sessions).RegisterRoutes(router)
	handler.NewCartHandler(orderService, sessions).RegisterRoutes(router)
	handler.NewOrderHandler(orderService, sessions).RegisterRoutes(router)
	handler.NewAdminHandler(catalogService, reportService, authService, sessions).RegisterRoutes(router)

	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
