package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lucks07/DAA-Game-Signpost/api"
	gameapi "github.com/lucks07/DAA-Game-Signpost/api/game"
	api_i "github.com/lucks07/DAA-Game-Signpost/api/i"
	"github.com/lucks07/DAA-Game-Signpost/api/identity"
	"github.com/lucks07/DAA-Game-Signpost/config"
	"github.com/lucks07/DAA-Game-Signpost/game/bot"
	"github.com/lucks07/DAA-Game-Signpost/game/signpost"
	lb "github.com/lucks07/DAA-Game-Signpost/infrastruture/leaderboard"
	"github.com/lucks07/DAA-Game-Signpost/infrastruture/repo"
	"github.com/lucks07/DAA-Game-Signpost/infrastruture/token"
	"github.com/lucks07/DAA-Game-Signpost/service"
	"github.com/lucks07/DAA-Game-Signpost/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	userRepo        i.UserRepo
	matchArchive    i.MatchArchive
	leaderboard     i.Leaderboard
	matchManager    i.MatchSessionManager
	jwtTokenizer    i.Tokenizer
	authService     i.Authenticator
	authController  api_i.Controller
	matchController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	matchArchive = repo.NewMatchArchive(client, config.Envs.DBName, "matches")
	appLogger.Printf("%s[INFO]%s Repositories initialized", config.LogInfoColor, config.LogColorReset)
}

func initLeaderboard() {
	var err error
	leaderboard, err = lb.NewRedisLeaderboard(redisClient, 0)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating leaderboard: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Leaderboard initialized", config.LogInfoColor, config.LogColorReset)
}

// strategyFactory builds the configured bot strategy, one instance per
// match so the random fallbacks stay independent.
func strategyFactory() func() bot.Strategy {
	if config.Envs.BotStrategy == "lookahead" {
		depth := config.Envs.BotDepth
		return func() bot.Strategy {
			return bot.NewLookahead(depth, time.Now().UnixNano())
		}
	}
	return func() bot.Strategy {
		return bot.NewGreedy(time.Now().UnixNano())
	}
}

func initMatchManager() {
	matchLogger := log.New(os.Stdout, fmt.Sprintf("%s[MATCH-MANAGER]%s ", config.ColorCyan, config.ColorReset), log.LstdFlags)

	var err error
	matchManager, err = service.NewMatchSessionManager(&service.Config{
		BoardFactory:    signpost.NewClassic,
		StrategyFactory: strategyFactory(),
		StrategyName:    config.Envs.BotStrategy,
		Users:           userRepo,
		Archive:         matchArchive,
		Leaderboard:     leaderboard,
		Logger:          matchLogger,
		BotDelay:        time.Duration(config.Envs.BotDelayMillis) * time.Millisecond,
		TurnTimeout:     time.Duration(config.Envs.TurnTimeoutSec) * time.Second,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating match session manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Match session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating auth service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Auth service initialized", config.LogInfoColor, config.LogColorReset)
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	matchController, err = gameapi.NewMatchController(matchManager, leaderboard)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating match controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Controllers initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, matchController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP]%s ", config.ColorGreen, config.ColorReset), log.LstdFlags)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initLeaderboard()
	initMatchManager()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s Starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
