package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"tasktrack_backend/internal/app/di"
	"tasktrack_backend/internal/app/router"
	authhandler "tasktrack_backend/internal/feature/auth/transport/handler"
	authusecase "tasktrack_backend/internal/feature/auth/usecase"
	taskadapters "tasktrack_backend/internal/feature/tasks/adapters"
	taskhandler "tasktrack_backend/internal/feature/tasks/transport/handler"
	taskusecase "tasktrack_backend/internal/feature/tasks/usecase"
	"tasktrack_backend/internal/platform/db"
	platformredis "tasktrack_backend/internal/platform/redis"
	"tasktrack_backend/internal/platform/token"
	"tasktrack_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Every issued token becomes unverifiable without the secret, so
	// refuse to start rather than run with a guessable default.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set. Set a strong secret before starting.")
	}

	// db
	gormDB := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, gormDB)
	taskRepo := taskadapters.NewTaskMySQL(gormDB)

	// Usecase
	codec := token.NewCodec(secret, token.DefaultTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, codec)
	taskUC := taskusecase.NewTaskUsecase(taskRepo)

	// Handler
	loginLimiter := ratelimiter.New(10, time.Minute)
	authH := authhandler.NewAuthHandler(authUC, loginLimiter)
	taskH := taskhandler.NewTaskHandler(taskUC)

	r := router.NewRouter(authH, taskH, authUC)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
