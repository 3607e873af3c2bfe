package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/skirmish/internal/repositories/matches"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	// Set up Redis
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	repo := matches.NewRedis(client)
	list, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list matches: %v", err)
	}

	fmt.Printf("Found %d matches:\n", len(list))
	for _, m := range list {
		status := "running"
		if m.Finished() {
			status = "finished " + m.FinishedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("  %s: started %s, %d turns, hp %d vs %d, %s\n",
			m.ID,
			m.StartedAt.Format("2006-01-02 15:04:05"),
			len(m.Turns),
			m.Attacker().Overall.HitPoints,
			m.Defender().Overall.HitPoints,
			status,
		)
	}
}
