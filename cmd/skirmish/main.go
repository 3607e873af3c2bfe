package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skirmish/internal/config"
	"github.com/KirkDiggler/skirmish/internal/entities"
	"github.com/KirkDiggler/skirmish/internal/repositories/matches"
	"github.com/KirkDiggler/skirmish/internal/services"
	"github.com/KirkDiggler/skirmish/internal/services/match"
	"github.com/KirkDiggler/skirmish/internal/uuid"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	input := demoTeams()
	if len(os.Args) > 1 {
		input, err = loadTeams(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load teams: %v", err)
		}
		log.Printf("Loaded teams from %s", os.Args[1])
	} else {
		log.Println("No teams file given, using demo teams")
	}

	providerConfig := &services.ProviderConfig{
		Seed:           cfg.Match.Seed,
		MaxTurns:       cfg.Match.MaxTurns,
		MaxRerolls:     cfg.Match.MaxRerolls,
		DiceTimeout:    cfg.Match.DiceTimeout,
		AlternateRoles: cfg.Match.AlternateRoles,
		LogEvents:      true,
	}
	if cfg.Match.Seed != 0 {
		log.Printf("Using seed %d", cfg.Match.Seed)
		providerConfig.UUIDGenerator = uuid.NewSequenceGenerator(fmt.Sprintf("match-%d", cfg.Match.Seed))
	}

	redisClient := connectRedis(cfg.Redis)
	if redisClient != nil {
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Error closing Redis connection: %v", closeErr)
			}
		}()
		providerConfig.MatchRepository = matches.NewRedisRepository(&matches.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Redis.MatchTTL,
		})
		log.Println("Using Redis for match checkpoints")
	}

	provider := services.NewProvider(providerConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	state, err := provider.MatchService.Create(ctx, input)
	if err != nil {
		if state != nil {
			log.Printf("Match %s stopped after %d turns", state.ID, len(state.Turns))
		}
		log.Printf("Match failed: %v", err)
		stop()
		os.Exit(1)
	}

	log.Printf("Match %s: defender down after %d turns", state.ID, len(state.Turns))
}

// connectRedis returns nil when Redis is not configured or unreachable
func connectRedis(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		log.Println("No REDIS_URL or REDIS_ADDR found, using in-memory repositories")
		return nil
	}

	var opts *redis.Options
	if cfg.URL != "" {
		log.Printf("Connecting to Redis at: %s", cfg.URL)
		parsed, parseErr := redis.ParseURL(cfg.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
			return nil
		}
		opts = parsed
	} else {
		log.Printf("Connecting to Redis at: %s", cfg.Addr)
		opts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}

// loadTeams reads a JSON file holding exactly two arrays of raw fighters
func loadTeams(path string) (*match.BuildInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var teams [2][]*entities.RawFighter
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &match.BuildInput{Teams: teams}, nil
}

// demoTeams is one Arcane fighter with every attribute at 10 on each side
func demoTeams() *match.BuildInput {
	fighter := func(name string) *entities.RawFighter {
		return &entities.RawFighter{Name: name, Stance: "Arcane", Str: 10, Int: 10, Ref: 10, Acc: 10, Con: 10, Kno: 10}
	}

	return &match.BuildInput{Teams: [2][]*entities.RawFighter{
		{fighter("Vex")},
		{fighter("Orrin")},
	}}
}
