// Package health reports liveness and readiness for the hub. Readiness tracks
// the live intake channel, which the pipeline cannot run without; Redis only
// backs the optional cross-restart dedup marks, so a Redis outage is reported
// as degraded rather than failing readiness.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status classifies the hub or one of its dependencies.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

// IntakeProbe reports whether an intake transport currently holds a live
// connection to the sentinel backend.
type IntakeProbe interface {
	Connected() bool
}

// CheckResult is the outcome for a single dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HubStatus is the overall readiness report.
type HubStatus struct {
	Status  Status                 `json:"status"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]CheckResult `json:"checks,omitempty"`
}

// Checker runs the dependency checks behind the probe endpoints. Both the
// intake probe and the Redis client are optional; a nil dependency is simply
// not checked.
type Checker struct {
	intake      IntakeProbe
	redisClient *redis.Client
	version     string
}

func NewChecker(intake IntakeProbe, redisClient *redis.Client, version string) *Checker {
	return &Checker{
		intake:      intake,
		redisClient: redisClient,
		version:     version,
	}
}

// Check runs all dependency checks and rolls them up. A dropped intake
// channel makes the hub unhealthy; an unreachable Redis only degrades it.
func (c *Checker) Check(ctx context.Context) *HubStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HubStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.intake != nil {
		if c.intake.Connected() {
			status.Checks["intake"] = CheckResult{Status: StatusHealthy}
		} else {
			status.Status = StatusUnhealthy
			status.Checks["intake"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  "live channel disconnected",
			}
		}
	}

	if c.redisClient != nil {
		start := time.Now()
		if err := c.redisClient.Ping(checkCtx).Err(); err != nil {
			if status.Status == StatusHealthy {
				status.Status = StatusDegraded
			}
			status.Checks["redis"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["redis"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	return status
}

// LiveHandler answers liveness probes. The process serving the request is the
// whole signal.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler answers readiness probes. Degraded still serves traffic; only
// unhealthy returns 503.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status == StatusUnhealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
