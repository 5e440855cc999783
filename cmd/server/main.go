// Command server runs the larder HTTP API.
//
// With LARDER_POSTGRES_URL unset the process runs fully in memory, which is
// the dev mode: no external services required. Redis and Kafka are likewise
// optional and fall back to in-process equivalents.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"larder/internal/ingredient"
	ingredientmetrics "larder/internal/ingredient/metrics"
	ingredientservice "larder/internal/ingredient/service"
	"larder/internal/ingredient/store/cache"
	categorystore "larder/internal/ingredient/store/category"
	ingredientstore "larder/internal/ingredient/store/ingredient"
	"larder/internal/kitchen"
	kitchenmetrics "larder/internal/kitchen/metrics"
	kitchenservice "larder/internal/kitchen/service"
	kitchenstore "larder/internal/kitchen/store/kitchen"
	membershipstore "larder/internal/kitchen/store/membership"
	principalstore "larder/internal/kitchen/store/principal"
	"larder/internal/pantry"
	pantryservice "larder/internal/pantry/service"
	pantryitemstore "larder/internal/pantry/store/pantryitem"
	"larder/internal/platform/config"
	"larder/internal/platform/httpserver"
	"larder/internal/platform/logger"
	"larder/internal/platform/middleware"
	"larder/internal/platform/postgres"
	"larder/internal/platform/redis"
	"larder/internal/recipe"
	recipemetrics "larder/internal/recipe/metrics"
	recipeservice "larder/internal/recipe/service"
	recipestore "larder/internal/recipe/store/recipe"
	recipeingredientstore "larder/internal/recipe/store/recipeingredient"
	stepstore "larder/internal/recipe/store/step"
	"larder/internal/shopping"
	shoppingmetrics "larder/internal/shopping/metrics"
	shoppingservice "larder/internal/shopping/service"
	liststore "larder/internal/shopping/store/list"
	listitemstore "larder/internal/shopping/store/listitem"
	"larder/pkg/platform/audit"
	"larder/pkg/platform/audit/publisher"
	auditmemory "larder/pkg/platform/audit/store/memory"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

// stores bundles the per-aggregate persistence behind the service interfaces
// so the memory and postgres wirings stay symmetric.
type stores struct {
	kitchens    kitchenservice.KitchenStore
	memberships kitchenservice.MembershipStore
	principals  kitchenservice.PrincipalDirectory
	ingredients ingredientservice.IngredientStore
	categories  ingredientservice.CategoryStore
	recipes     recipeservice.RecipeStore
	recipeItems recipeservice.RecipeIngredientStore
	steps       recipeservice.StepStore
	lists       shoppingservice.ListStore
	listItems   shoppingservice.ListItemStore
	pantryItems pantryservice.ItemStore
}

func memoryStores() stores {
	return stores{
		kitchens:    kitchenstore.NewInMemoryStore(),
		memberships: membershipstore.NewInMemoryStore(),
		principals:  principalstore.NewInMemoryDirectory(),
		ingredients: ingredientstore.NewInMemoryStore(),
		categories:  categorystore.NewInMemoryStore(),
		recipes:     recipestore.NewInMemoryStore(),
		recipeItems: recipeingredientstore.NewInMemoryStore(),
		steps:       stepstore.NewInMemoryStore(),
		lists:       liststore.NewInMemoryStore(),
		listItems:   listitemstore.NewInMemoryStore(),
		pantryItems: pantryitemstore.NewInMemoryStore(),
	}
}

func postgresStores(pool *pgxpool.Pool) stores {
	return stores{
		kitchens:    kitchenstore.NewPostgres(pool),
		memberships: membershipstore.NewPostgres(pool),
		principals:  principalstore.NewPostgres(pool),
		ingredients: ingredientstore.NewPostgres(pool),
		categories:  categorystore.NewPostgres(pool),
		recipes:     recipestore.NewPostgres(pool),
		recipeItems: recipeingredientstore.NewPostgres(pool),
		steps:       stepstore.NewPostgres(pool),
		lists:       liststore.NewPostgres(pool),
		listItems:   listitemstore.NewPostgres(pool),
		pantryItems: pantryitemstore.NewPostgres(pool),
	}
}

// buildRouter assembles services and mounts every module behind the shared
// middleware chain. The kitchen evaluator is the single authorization source
// for all modules.
func buildRouter(cfg config.Server, log *slog.Logger, st stores, searchCache ingredientservice.SearchCache, auditPublisher *publisher.Publisher) chi.Router {
	kitchenSvc := kitchen.NewService(st.kitchens, st.memberships, st.principals,
		kitchenservice.WithLogger(log),
		kitchenservice.WithAuditPublisher(auditPublisher),
		kitchenservice.WithMetrics(kitchenmetrics.New()),
	)
	perms := kitchenSvc.Permissions()

	ingredientSvc := ingredient.NewService(st.ingredients, st.categories, perms,
		ingredientservice.WithLogger(log),
		ingredientservice.WithCache(searchCache),
		ingredientservice.WithMetrics(ingredientmetrics.New()),
	)
	recipeSvc := recipe.NewService(st.recipes, st.recipeItems, st.steps, st.ingredients, perms,
		recipeservice.WithLogger(log),
		recipeservice.WithAuditPublisher(auditPublisher),
		recipeservice.WithMetrics(recipemetrics.New()),
	)
	shoppingSvc := shopping.NewService(st.lists, st.listItems, st.ingredients, perms,
		shoppingservice.WithLogger(log),
		shoppingservice.WithAuditPublisher(auditPublisher),
		shoppingservice.WithMetrics(shoppingmetrics.New()),
	)
	pantrySvc := pantry.NewService(st.pantryItems, st.ingredients, perms,
		pantryservice.WithLogger(log),
	)

	kitchenHandler := kitchen.NewHandler(kitchenSvc, log)

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RequestTime, middleware.ClientMetadata)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())
	kitchenHandler.RegisterPublic(router)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(middleware.NewJWTResolver(cfg.JWTSigningKey), log))
		kitchenHandler.Register(r)
		ingredient.NewHandler(ingredientSvc, log).Register(r)
		recipe.NewHandler(recipeSvc, log).Register(r)
		shopping.NewHandler(shoppingSvc, log).Register(r)
		pantry.NewHandler(pantrySvc, log).Register(r)
	})
	return router
}

func run(log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	st := memoryStores()
	if cfg.PostgresURL != "" {
		pool, err := postgres.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		st = postgresStores(pool)
		log.Info("storage ready", "backend", "postgres")
	} else {
		log.Info("storage ready", "backend", "memory")
	}

	var searchCache ingredientservice.SearchCache
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		searchCache = cache.NewRedis(redisClient.Client, cfg.SearchCacheTTL)
		log.Info("search cache ready", "backend", "redis")
	} else {
		searchCache = cache.NewMemory(cfg.SearchCacheTTL)
		log.Info("search cache ready", "backend", "memory")
	}

	var sink audit.Sink
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink, err := publisher.NewKafkaSink(cfg.KafkaBrokers, cfg.AuditTopic)
		if err != nil {
			return fmt.Errorf("kafka sink: %w", err)
		}
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Info("audit sink ready", "backend", "kafka", "topic", cfg.AuditTopic)
	} else {
		sink = auditmemory.NewInMemoryStore()
		log.Info("audit sink ready", "backend", "memory")
	}
	auditPublisher := publisher.NewPublisher(sink,
		publisher.WithAsyncBuffer(256),
		publisher.WithLogger(log),
	)
	defer auditPublisher.Close()

	router := buildRouter(cfg, log, st, searchCache, auditPublisher)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
