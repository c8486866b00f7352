package common

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const COOLDOWN_BURST = 2

// Every command a user runs calls out to the game API, so each user gets
// their own limiter on top of the client's global one.
var userLimiters = make(map[string]*rate.Limiter)
var mu sync.Mutex

func getUserLimiter(userID string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	limiter, exists := userLimiters[userID]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(3*time.Second), COOLDOWN_BURST)
		userLimiters[userID] = limiter
	}

	return limiter
}

// Reports whether the user may run a command right now. A false result
// consumes nothing, the user just has to wait out their cooldown.
func AllowCommand(userID string) bool {
	return getUserLimiter(userID).Allow()
}
