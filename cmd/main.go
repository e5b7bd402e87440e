package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/application/services"
	"github.com/toruasakawa/short-video-generator-clean/config"
	"github.com/toruasakawa/short-video-generator-clean/infrastructure/adapters"
	"github.com/toruasakawa/short-video-generator-clean/infrastructure/gin_interface/controllers"
	"github.com/toruasakawa/short-video-generator-clean/middleware"
	mockgenerator "github.com/toruasakawa/short-video-generator-clean/mock"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, relying on the environment")
	}

	mockConfig, err := config.GetMockConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get mock config")
	}

	voicevoxConfig, err := config.GetVoicevoxConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get voicevox config")
	}

	redisConfig, err := config.GetRedisConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get redis config")
	}

	databaseConfig, err := config.GetDatabaseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get database config")
	}

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(pipelineConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	redisOptions, err := redis.ParseURL(redisConfig.Url)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to parse redis url")
	}
	redisClient := redis.NewClient(redisOptions)
	defer redisClient.Close()

	jobStore, err := adapters.NewSqliteJobStore(databaseConfig.Path, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open job store")
	}
	defer jobStore.Close()

	progressCache := adapters.NewRedisProgressCache(redisClient, redisConfig.ProgressTtl, zeroLogger)

	contentFetcher := adapters.NewContentFetcher(zeroLogger, pipelineConfig.CallTimeout)
	cardRenderer := adapters.NewCardRenderer(zeroLogger)

	var (
		scriptGenerator outbound.ScriptGeneratorPort
		topicSuggester  outbound.TopicSuggesterPort
		imageGenerator  outbound.ImageGeneratorPort
		audioGenerator  outbound.AudioGeneratorPort
	)

	if mockConfig.Enabled {
		zeroLogger.Info("Mock mode enabled, using local fake generators")
		scriptGenerator = mockgenerator.NewScriptGenerator(mockConfig.ScriptFile, zeroLogger)
		imageGenerator = mockgenerator.NewImageGenerator(cardRenderer)
		audioGenerator = mockgenerator.NewAudioGenerator()
		topicSuggester = mockgenerator.NewTopicSuggester()
	} else {
		gptConfig, err := config.GetGptConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get gpt config")
		}
		dalleConfig, err := config.GetDaLLeConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to get dalle config")
		}

		chatClient := adapters.NewChatCompletionClient(gptConfig, zeroLogger)
		scriptGenerator = adapters.NewScriptGenerator(chatClient, zeroLogger)
		topicSuggester = adapters.NewTopicSuggester(chatClient, zeroLogger)
		imageGenerator = adapters.NewImageGenerator(contentFetcher, dalleConfig, zeroLogger)
		audioGenerator = adapters.NewAudioGenerator(contentFetcher, voicevoxConfig, zeroLogger)
	}

	videoEncoder := adapters.NewFfmpegVideoEncoder(zeroLogger)

	assetProducer := services.NewSceneAssetProducer(zeroLogger, workerPool, imageGenerator,
		audioGenerator, cardRenderer, pipelineConfig.CallTimeout)
	orchestrator := services.NewPipelineOrchestrator(zeroLogger, jobStore, progressCache,
		scriptGenerator, assetProducer, videoEncoder, pipelineConfig)
	jobDispatcher := services.NewJobDispatcher(zeroLogger, jobStore, orchestrator, workerPool)
	jobQuery := services.NewJobQuery(zeroLogger, jobStore, progressCache)

	videoJobsController := controllers.NewVideoJobsController(zeroLogger, jobDispatcher, jobQuery,
		pipelineConfig.EstimatedSeconds)
	contentController := controllers.NewContentController(zeroLogger, topicSuggester,
		scriptGenerator, audioGenerator, progressCache)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = serverConfig.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	if authConfig.Enabled {
		authHandler, err := middleware.NewAuthHandler(authConfig.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	videoJobsController.RegisterRoutes(router)
	contentController.RegisterRoutes(router)

	if err := router.Run(serverConfig.Addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
