package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"diner-service/internal/auth"
	"diner-service/internal/config"
	httpctrl "diner-service/internal/controllers/http"
	"diner-service/internal/infra"
	mmysql "diner-service/internal/infra/mysql"
	"diner-service/internal/infra/rabbitmq"
	mysqlrepo "diner-service/internal/repository/mysql"
	"diner-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := mmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	store := mysqlrepo.NewStore(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		DB:           0,
		PoolSize:     50,
		MinIdleConns: 5,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RABBITMQ_URL not set, event publishing disabled")
	}

	clock := services.SystemClock()

	tableService := services.NewTableService(store)
	salesService := services.NewSalesService(store, clock)
	orderService := services.NewOrderService(store, salesService, publisher, clock)
	reservationService := services.NewReservationService(store, publisher, clock)
	dishService := services.NewDishService(store)
	dishService.SetRedisClient(redisClient)
	adminService := services.NewAdminUserService(store)

	sessions := auth.NewSessionStore(redisClient, time.Duration(cfg.SessionTTLHours)*time.Hour)
	images := infra.NewImageStore(cfg.ImageDir, cfg.ImageServerURL)

	handler := httpctrl.NewHandler(
		tableService,
		reservationService,
		orderService,
		dishService,
		salesService,
		adminService,
		sessions,
		images,
		cfg.PublicBaseURL,
	)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Static("/images/dishes", cfg.ImageDir)

	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting diner service on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
