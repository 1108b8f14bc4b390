package main

import (
	"context"
	"errors"
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"devlens_backend/internal/app/router"
	analysisadapters "devlens_backend/internal/feature/analysis/adapters"
	analysishandler "devlens_backend/internal/feature/analysis/transport/handler"
	analysisusecase "devlens_backend/internal/feature/analysis/usecase"
	authadapters "devlens_backend/internal/feature/auth/adapters"
	authhandler "devlens_backend/internal/feature/auth/transport/handler"
	authusecase "devlens_backend/internal/feature/auth/usecase"
	"devlens_backend/internal/feature/chat/adapters/gemini"
	chathandler "devlens_backend/internal/feature/chat/transport/handler"
	chatusecase "devlens_backend/internal/feature/chat/usecase"
	usershandler "devlens_backend/internal/feature/users/transport/handler"
	usersusecase "devlens_backend/internal/feature/users/usecase"
	"devlens_backend/internal/platform/cache"
	"devlens_backend/internal/platform/config"
	platformdb "devlens_backend/internal/platform/db"
	jwtmw "devlens_backend/internal/platform/jwt"
	platformredis "devlens_backend/internal/platform/redis"
)

// unavailableGenerator stands in when Gemini credentials are missing so the
// rest of the server still starts.
type unavailableGenerator struct{}

func (unavailableGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("gemini client is not configured")
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := platformdb.OpenDB(cfg)

	// Redis. Empty REDIS_HOST means no cache at all.
	var rdb *redisv9.Client
	if cfg.RedisHost != "" {
		if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	repoRepo := analysisadapters.NewRepoMySQL(db)
	reportRepo := analysisadapters.NewReportMySQL(db)
	comparisonRepo := analysisadapters.NewComparisonMySQL(db)

	// Report reads go through the Redis cache
	cachedReportRepo := cache.NewCachingReportRepository(rdb, 0, reportRepo, "reports")

	// Usecase
	tokenGen := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, tokenGen)
	usersUC := usersusecase.NewUsersUsecase(userRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(userRepo, repoRepo, cachedReportRepo, comparisonRepo)

	// The assistant is optional: without credentials the route reports 502.
	var chatUC chathandler.ChatUsecase
	if gen, err := gemini.NewGeminiGenerator(ctx); err != nil {
		log.Println("[WARN] Gemini unavailable. Chat responses will fail:", err)
		chatUC = chatusecase.NewChatUsecase(unavailableGenerator{})
	} else {
		chatUC = chatusecase.NewChatUsecase(gen)
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUsersHandler(usersUC)
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)
	chatH := chathandler.NewChatHandler(chatUC)

	r := router.NewRouter(cfg, authH, usersH, analysisH, chatH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
