package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	adminAPI "github.com/gkratosBR/Glitch-Arena/internal/api/admin"
	authAPI "github.com/gkratosBR/Glitch-Arena/internal/api/auth"
	betsAPI "github.com/gkratosBR/Glitch-Arena/internal/api/bets"
	oddsAPI "github.com/gkratosBR/Glitch-Arena/internal/api/odds"
	walletAPI "github.com/gkratosBR/Glitch-Arena/internal/api/wallet"
	riotclient "github.com/gkratosBR/Glitch-Arena/internal/client/riot"
	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/config/env"
	"github.com/gkratosBR/Glitch-Arena/internal/middleware"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/auth_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/bet_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/coupon_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/payment_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/platform_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/stats_cache_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/repository/user_repo"
	"github.com/gkratosBR/Glitch-Arena/internal/service"
	"github.com/gkratosBR/Glitch-Arena/internal/service/admin"
	"github.com/gkratosBR/Glitch-Arena/internal/service/auth"
	"github.com/gkratosBR/Glitch-Arena/internal/service/bets"
	"github.com/gkratosBR/Glitch-Arena/internal/service/odds"
	"github.com/gkratosBR/Glitch-Arena/internal/service/settlement"
	"github.com/gkratosBR/Glitch-Arena/internal/service/wallet"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis
	redisConfig config.RedisConfig
	redisClient *redis.Client

	// Riot API
	riotConfig config.RiotConfig
	riotClient *riotclient.Client

	// Операторский конфиг платформы (фолбэк для platform_repo)
	platformCfg *config.Platform

	// Repositories
	authRepo     repository.AuthRepository
	userRepo     repository.UserRepository
	betRepo      repository.BetRepository
	platformRepo repository.PlatformRepository
	couponRepo   repository.CouponRepository
	paymentRepo  repository.PaymentRepository
	statsCache   repository.StatsCacheRepository

	// Services
	jwtConfig      config.JWTConfig
	authServ       service.AuthService
	oddsServ       service.OddsService
	betServ        service.BetService
	settlementServ service.SettlementService
	walletServ     service.WalletService
	adminServ      service.AdminService

	// Handlers
	authHand   *authAPI.Handler
	oddsHand   *oddsAPI.Handler
	betsHand   *betsAPI.Handler
	walletHand *walletAPI.Handler
	adminHand  *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

func (sp *ServiceProvider) RedisClient() *redis.Client {
	if sp.redisClient == nil {
		sp.redisClient = redis.NewClient(&redis.Options{
			Addr:     sp.RedisConfig().Addr(),
			Password: sp.RedisConfig().Password(),
			DB:       sp.RedisConfig().DB(),
		})
	}
	return sp.redisClient
}

func (sp *ServiceProvider) RiotConfig() config.RiotConfig {
	if sp.riotConfig == nil {
		cfg, err := env.NewRiotConfig()
		if err != nil {
			panic("failed to get riot config: " + err.Error())
		}
		sp.riotConfig = cfg
	}
	return sp.riotConfig
}

func (sp *ServiceProvider) RiotClient() *riotclient.Client {
	if sp.riotClient == nil {
		sp.riotClient = riotclient.NewClient(sp.RiotConfig())
	}
	return sp.riotClient
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

// PlatformCfg - стартовый операторский конфиг из yaml.
// В БД он может быть переопределён через админку
func (sp *ServiceProvider) PlatformCfg() config.Platform {
	if sp.platformCfg == nil {
		cfg, err := env.NewPlatformConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get platform config: " + err.Error())
		}
		sp.platformCfg = &cfg
	}
	return *sp.platformCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.betRepo
}

func (sp *ServiceProvider) PlatformRepo(ctx context.Context) repository.PlatformRepository {
	if sp.platformRepo == nil {
		sp.platformRepo = platform_repo.NewPlatformRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter, sp.PlatformCfg())
	}
	return sp.platformRepo
}

func (sp *ServiceProvider) CouponRepo(ctx context.Context) repository.CouponRepository {
	if sp.couponRepo == nil {
		sp.couponRepo = coupon_repo.NewCouponRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.couponRepo
}

func (sp *ServiceProvider) PaymentRepo(ctx context.Context) repository.PaymentRepository {
	if sp.paymentRepo == nil {
		sp.paymentRepo = payment_repo.NewPaymentRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.paymentRepo
}

func (sp *ServiceProvider) StatsCache() repository.StatsCacheRepository {
	if sp.statsCache == nil {
		sp.statsCache = stats_cache_repo.NewStatsCacheRepository(sp.RedisClient())
	}
	return sp.statsCache
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTConfig())
	}
	return sp.authServ
}

func (sp *ServiceProvider) OddsService(ctx context.Context) service.OddsService {
	if sp.oddsServ == nil {
		sp.oddsServ = odds.NewService(sp.UserRepo(ctx), sp.PlatformRepo(ctx), sp.StatsCache(), sp.RiotClient())
	}
	return sp.oddsServ
}

func (sp *ServiceProvider) BetService(ctx context.Context) service.BetService {
	if sp.betServ == nil {
		sp.betServ = bets.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.BetRepo(ctx), sp.PlatformRepo(ctx), sp.RiotClient())
	}
	return sp.betServ
}

func (sp *ServiceProvider) SettlementService(ctx context.Context) service.SettlementService {
	if sp.settlementServ == nil {
		sp.settlementServ = settlement.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.BetRepo(ctx), sp.PlatformRepo(ctx), sp.RiotClient())
	}
	return sp.settlementServ
}

func (sp *ServiceProvider) WalletService(ctx context.Context) service.WalletService {
	if sp.walletServ == nil {
		sp.walletServ = wallet.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.PlatformRepo(ctx), sp.CouponRepo(ctx), sp.PaymentRepo(ctx))
	}
	return sp.walletServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = admin.NewService(sp.UserRepo(ctx), sp.PlatformRepo(ctx))
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) OddsHandler(ctx context.Context) *oddsAPI.Handler {
	if sp.oddsHand == nil {
		sp.oddsHand = oddsAPI.NewHandler(oddsAPI.HandlerDeps{Serv: sp.OddsService(ctx)})
	}
	return sp.oddsHand
}

func (sp *ServiceProvider) BetsHandler(ctx context.Context) *betsAPI.Handler {
	if sp.betsHand == nil {
		sp.betsHand = betsAPI.NewHandler(betsAPI.HandlerDeps{Serv: sp.BetService(ctx)})
	}
	return sp.betsHand
}

func (sp *ServiceProvider) WalletHandler(ctx context.Context) *walletAPI.Handler {
	if sp.walletHand == nil {
		sp.walletHand = walletAPI.NewHandler(walletAPI.HandlerDeps{Serv: sp.WalletService(ctx)})
	}
	return sp.walletHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			Serv:       sp.AdminService(ctx),
			Settlement: sp.SettlementService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		requireAuth := middleware.Auth(sp.JWTConfig().AccessTokenSecretKey())

		// Odds endpoints
		oddsHandler := sp.OddsHandler(ctx)
		r.Route("/odds", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Post("/connect", oddsHandler.Connect)
			rr.Post("/disconnect", oddsHandler.Disconnect)
			rr.Get("/challenges", oddsHandler.Challenges)
			rr.Post("/custom", oddsHandler.Custom)
		})

		// Bets endpoints
		betsHandler := sp.BetsHandler(ctx)
		r.Route("/bets", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Post("/place", betsHandler.Place)
			rr.Get("/active", betsHandler.Active)
			rr.Get("/history", betsHandler.History)
			rr.Get("/limit", betsHandler.Limit)
		})

		// Wallet endpoints
		walletHandler := sp.WalletHandler(ctx)
		r.Route("/wallet", func(rr chi.Router) {
			rr.Use(requireAuth)
			rr.Get("/balance", walletHandler.Balance)
			rr.Post("/deposit", walletHandler.Deposit)
			rr.Post("/withdraw", walletHandler.Withdraw)
			rr.Post("/convert-bonus", walletHandler.ConvertBonus)
			rr.Post("/redeem-coupon", walletHandler.RedeemCoupon)
		})

		// Admin endpoints
		adminHandler := sp.AdminHandler(ctx)
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(requireAuth, middleware.RequireAdmin)
			rr.Get("/config", adminHandler.GetConfig)
			rr.Post("/config", adminHandler.UpdateConfig)
			rr.Post("/resolve", adminHandler.Resolve)
			rr.Post("/kyc", adminHandler.SetKYC)
		})

		sp.router = r
	}

	return sp.router
}
