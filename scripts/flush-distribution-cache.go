package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// One-off utility to clear cached distributions, e.g. after changing
// the display rounding rules. Cached rows carry rounded percentages,
// so stale entries would keep serving the old presentation.
func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	var deleted int
	iter := client.Scan(ctx, 0, "distribution:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("Failed to delete %s: %v", iter.Val(), err)
			continue
		}
		deleted++
	}
	if err := iter.Err(); err != nil {
		log.Fatal("Scan failed:", err)
	}

	fmt.Printf("Deleted %d cached distributions\n", deleted)
}
