// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"gymflow-service/internal/config"
	"gymflow-service/internal/db"
	attendanceHandler "gymflow-service/internal/handlers/attendance"
	authHandler "gymflow-service/internal/handlers/auth"
	clientHandler "gymflow-service/internal/handlers/client"
	feeHandler "gymflow-service/internal/handlers/feecollection"
	membershipHandler "gymflow-service/internal/handlers/membership"
	refdataHandler "gymflow-service/internal/handlers/refdata"
	stateHandler "gymflow-service/internal/handlers/state"
	subscriptionHandler "gymflow-service/internal/handlers/subscription"
	wsHandler "gymflow-service/internal/handlers/ws"
	"gymflow-service/internal/middleware"
	"gymflow-service/internal/pkg/jwt"
	"gymflow-service/internal/pkg/session"
	"gymflow-service/internal/repository/postgres"
	attendanceService "gymflow-service/internal/service/attendance"
	authService "gymflow-service/internal/service/auth"
	clientService "gymflow-service/internal/service/client"
	feeService "gymflow-service/internal/service/feecollection"
	membershipService "gymflow-service/internal/service/membership"
	refdataService "gymflow-service/internal/service/refdata"
	stateService "gymflow-service/internal/service/state"
	subscriptionService "gymflow-service/internal/service/subscription"
	"gymflow-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(cfg config.AppConfig, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		engine: gin.New(),
		logger: logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	// ----- JWT Manager -----
	jwtManager, err := jwt.LoadAndBuild(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to load JWT manager: %w", err)
	}

	// ----- Session -----
	rateLimiter := session.NewRateLimiter(redisClient)
	revocation := session.NewRevocationList(redisClient)

	// ----- Repositories -----
	stateRepo := postgres.NewStateRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	feeRepo := postgres.NewFeeCollectionRepository(pool)
	refDataRepo := postgres.NewRefDataRepository(pool)
	observationRepo := postgres.NewClientObservationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(jwtManager.Verifier, revocation, s.logger)
	go hub.Run(ctx)

	// ----- Services -----
	stateSvc := stateService.NewStateService(stateRepo, s.logger)
	paymentChecker := feeService.NewPaymentChecker(feeRepo)
	subscriptionSvc := subscriptionService.NewSubscriptionService(
		subscriptionRepo,
		clientRepo,
		membershipRepo,
		stateSvc,
		paymentChecker,
		s.logger,
	)
	feeSvc := feeService.NewFeeService(feeRepo, subscriptionSvc, paymentChecker, s.logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, subscriptionSvc, hub, s.logger)
	clientSvc := clientService.NewClientService(clientRepo, subscriptionRepo, observationRepo, s.logger)
	membershipSvc := membershipService.NewMembershipService(membershipRepo, s.logger)
	refDataSvc := refdataService.NewRefDataService(refDataRepo, s.logger)
	authSvc := authService.NewAuthService(userRepo, jwtManager.Generator, rateLimiter, revocation, s.logger)

	if err := authSvc.EnsureAdminExists(ctx, s.cfg.AdminEmail, s.cfg.AdminPassword, s.cfg.AdminName); err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(jwtManager.Verifier, revocation)

	s.engine.Use(
		middleware.RecoveryMiddleware(s.logger),
		middleware.LoggingMiddleware(s.logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:         authHandler.NewAuthHandler(authSvc),
		ClientHandler:       clientHandler.NewClientHandler(clientSvc),
		MembershipHandler:   membershipHandler.NewMembershipHandler(membershipSvc),
		SubscriptionHandler: subscriptionHandler.NewSubscriptionHandler(subscriptionSvc),
		AttendanceHandler:   attendanceHandler.NewAttendanceHandler(attendanceSvc),
		FeeHandler:          feeHandler.NewFeeHandler(feeSvc),
		StateHandler:        stateHandler.NewStateHandler(stateSvc),
		RefDataHandler:      refdataHandler.NewRefDataHandler(refDataSvc),
		WSHandler:           wsHandler.NewWSHandler(hub, s.logger),
		AuthMiddleware:      authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	s.logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}
