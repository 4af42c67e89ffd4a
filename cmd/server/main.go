package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"tradetracker/internal/app/router"
	accountsadapters "tradetracker/internal/feature/accounts/adapters"
	accountshandler "tradetracker/internal/feature/accounts/transport/handler"
	accountsusecase "tradetracker/internal/feature/accounts/usecase"
	"tradetracker/internal/feature/advisor/adapters/gemini"
	"tradetracker/internal/feature/advisor/adapters/memory"
	advisorhandler "tradetracker/internal/feature/advisor/transport/handler"
	advisorusecase "tradetracker/internal/feature/advisor/usecase"
	authadapters "tradetracker/internal/feature/auth/adapters"
	authhandler "tradetracker/internal/feature/auth/transport/handler"
	authusecase "tradetracker/internal/feature/auth/usecase"
	"tradetracker/internal/feature/calendar/adapters/jblanked"
	calendarhandler "tradetracker/internal/feature/calendar/transport/handler"
	calendarusecase "tradetracker/internal/feature/calendar/usecase"
	statshandler "tradetracker/internal/feature/stats/transport/handler"
	statsusecase "tradetracker/internal/feature/stats/usecase"
	"tradetracker/internal/feature/trades/adapters/mtbridge"
	tradeshandler "tradetracker/internal/feature/trades/transport/handler"
	tradesusecase "tradetracker/internal/feature/trades/usecase"
	"tradetracker/internal/platform/cache"
	platformdb "tradetracker/internal/platform/db"
	platformhttp "tradetracker/internal/platform/http"
	jwtmw "tradetracker/internal/platform/jwt"
	platformredis "tradetracker/internal/platform/redis"
	"tradetracker/internal/shared/ratelimiter"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] no .env file, using process environment")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache and chat memory.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repositories
	userRepo := authadapters.NewUserStore(db)
	accountRepo := accountsadapters.NewAccountStore(db)

	bridge := mtbridge.NewTerminalBridge(mtbridge.LoadConfig(), platformhttp.NewHTTPClient(30*time.Second))

	// Usecases
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	accountsUC := accountsusecase.NewAccountsUsecase(accountRepo)
	tradesUC := tradesusecase.NewTradesUsecase(bridge, ratelimiter.NewRateLimiter(60, time.Minute))
	statsUC := statsusecase.NewStatsUsecase()

	// Advisor: Gemini model plus Redis-backed conversation memory.
	geminiModel, err := gemini.NewGeminiModel(ctx)
	if err != nil {
		log.Fatalf("failed to init gemini client: %v", err)
	}
	advisorUC := advisorusecase.NewAdvisorUsecase(geminiModel, memory.NewConversationRedis(rdb, "advisor"))

	// Calendar: upstream news feed behind a Redis TTL cache.
	newsCfg, err := jblanked.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load news config: %v", err)
	}
	newsClient := jblanked.NewNewsClient(newsCfg, platformhttp.NewHTTPClient(newsCfg.Timeout))
	calendarUC := calendarusecase.NewCalendarUsecase(
		cache.NewCachingEventRepository(rdb, 5*time.Minute, newsClient, "calendar"),
	)

	// Handlers
	h := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Trades:   tradeshandler.NewTradesHandler(tradesUC),
		Stats:    statshandler.NewStatsHandler(statsUC),
		Advisor:  advisorhandler.NewAdvisorHandler(advisorUC),
		Calendar: calendarhandler.NewCalendarHandler(calendarUC),
		Accounts: accountshandler.NewAccountsHandler(accountsUC),
	}

	r := router.NewRouter(h)

	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
