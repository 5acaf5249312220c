package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/controllers"
	"storefront/database"
	"storefront/events"
	"storefront/middleware"
	"storefront/notification"
	"storefront/repositories"
	"storefront/routes"
	"storefront/services"
	"storefront/storage"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal(err)
	}

	var store services.ObjectStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(ctx, storage.S3Options{
			Region:     cfg.AWSRegion,
			Bucket:     cfg.S3Bucket,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.AWSAccessKey,
			SecretKey:  cfg.AWSSecretKey,
			PresignTTL: cfg.S3PresignTTL,
		})
		if err != nil {
			log.Fatal(err)
		}
		store = s3Store
	} else {
		log.Println("S3_BUCKET not set, uploads disabled")
	}

	channels, producer, rdb := notificationChannels(ctx, cfg)
	opts := notification.Options{Workers: cfg.NotifyWorkers, QueueSize: cfg.NotifyQueue}
	if rdb != nil {
		opts.Dedup = notification.NewRedisDedup(rdb, notification.DefaultDedupTTL)
	}
	dispatcher := notification.NewDispatcher(opts, channels...)
	dispatcher.Start()

	users := repositories.NewUserRepository(db)
	categories := repositories.NewCategoryRepository(db)
	products := repositories.NewProductRepository(db)
	offers := repositories.NewOfferRepository(db)
	banners := repositories.NewBannerRepository(db)
	orders := repositories.NewOrderRepository(db)

	userSvc := services.NewUserService(users, store, cfg.JWTSecret, cfg.JWTTTL)
	handlers := routes.Handlers{
		Users:      controllers.NewUserController(userSvc, cfg.MaxUploadMB),
		Categories: controllers.NewCategoryController(services.NewCategoryService(categories)),
		Products:   controllers.NewProductController(services.NewProductService(products, categories, offers, store), cfg.MaxUploadMB),
		Offers:     controllers.NewOfferController(services.NewOfferService(offers, products, store)),
		Banners:    controllers.NewBannerController(services.NewBannerService(banners, offers, store)),
		Orders:     controllers.NewOrderController(services.NewOrderService(orders, users, products, dispatcher, store)),
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorHandler(), middleware.CustomRecovery())
	r.Use(cors.New(corsConfig(cfg.AllowOrigins)))
	r.MaxMultipartMemory = (cfg.MaxUploadMB + 1) << 20
	_ = r.SetTrustedProxies(nil)
	routes.RegisterRoutes(r, handlers, userSvc, routes.Options{DocsUser: cfg.DocsUser, DocsPassword: cfg.DocsPassword})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		log.Printf("HTTP listening at :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Printf("notification dispatcher: %v", err)
	}
	if producer != nil {
		producer.Close()
		producer.WaitClosed()
	}
	if rdb != nil {
		_ = rdb.Close()
	}
}

// notificationChannels enables each channel whose configuration is present.
func notificationChannels(ctx context.Context, cfg config.Config) ([]notification.Channel, *events.Producer, *redis.Client) {
	var channels []notification.Channel

	if cfg.FirebaseCredentialsFile != "" {
		push, err := notification.NewFirebasePush(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseProjectID)
		if err != nil {
			log.Printf("push notifications disabled: %v", err)
		} else {
			channels = append(channels, push)
		}
	}
	if cfg.SendGridAPIKey != "" {
		channels = append(channels, notification.NewSendGridEmail(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFrom))
	}

	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = events.NewProducer(cfg.KafkaBrokers, cfg.KafkaOrderTopic, cfg.NotifyQueue)
		producer.Start()
		channels = append(channels, notification.NewEventChannel(producer))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis unavailable, notification dedup disabled: %v", err)
			_ = rdb.Close()
			rdb = nil
		}
	}

	if len(channels) == 0 {
		log.Println("no notification channels configured")
	}
	return channels, producer, rdb
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
