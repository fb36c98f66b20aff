package utils

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		setHealth(mongoClient.Ping(ctx, nil) == nil)
		for range ticker.C {
			setHealth(mongoClient.Ping(ctx, nil) == nil)
		}
	}()
}

func setHealth(mongoHealthy bool) {
	mu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
