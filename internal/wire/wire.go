package wire

import (
	"Rentora/internal/api"
	"Rentora/internal/api/config"
	"Rentora/internal/api/handler"
	"Rentora/internal/job"
	"Rentora/internal/pkg/cron"
	"Rentora/internal/pkg/genai"
	"Rentora/internal/pkg/kafka"
	"Rentora/internal/repository"
	"Rentora/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	propertyRepo := repository.NewPropertyRepository(db)
	listingRepo := repository.NewListingRepository(db)
	analyticsRepo := repository.NewListingAnalyticsRepository(db)

	orchestrator := genai.New(cfg.GenAI)

	listingService := service.NewListingService(propertyRepo, listingRepo, orchestrator)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	rollupService := service.NewRollupService(listingRepo, analyticsRepo)

	handlers := &api.HandlersGroup{
		ListingHandler:   handler.NewListingHandler(listingService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService, rollupService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, analyticsService)
	if err != nil {
		return nil, err
	}

	trendingJob := job.NewTrendingJob(analyticsRepo)
	cronMgr := cron.NewCronManager(cfg.Trending.Spec, trendingJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
