// Package keepalive serves the tiny HTTP surface that keeps the bot's host
// awake. Replit parks a repl unless something answers HTTP, so external
// monitors (UptimeRobot and friends) ping this server on a schedule.
package keepalive

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"botlauncher/bootstrap"
	"botlauncher/middleware"
	"botlauncher/utils"
)

const aliveMessage = "AI えびすや Bot is alive!"

type Server struct {
	srv       *http.Server
	startedAt time.Time
}

// New builds the keep-alive server. Validation results are served on
// /status with values redacted: names, presence, and lengths only.
func New(port string, results []bootstrap.Result) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{startedAt: time.Now()}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimit(2, 5))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, aliveMessage)
	})

	r.GET("/health", func(c *gin.Context) {
		uptime := time.Since(s.startedAt)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "healthy",
			"launcher": gin.H{
				"goVersion": runtime.Version(),
				"uptime":    formatUptime(uptime),
				"startedAt": s.startedAt.Format(time.RFC3339),
			},
		})
	})

	r.GET("/status", middleware.APIKeyAuth(), func(c *gin.Context) {
		type varStatus struct {
			Name    string `json:"name"`
			Present bool   `json:"present"`
			Length  int    `json:"length,omitempty"`
		}
		statuses := make([]varStatus, 0, len(results))
		for _, res := range results {
			statuses = append(statuses, varStatus{
				Name:    res.Var.Name,
				Present: res.Present,
				Length:  res.Length,
			})
		}
		utils.RespondSuccess(c, http.StatusOK, "", gin.H{"variables": statuses})
	})

	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	return s
}

// Start serves in a tracked background goroutine so shutdown can drain it.
func (s *Server) Start() {
	utils.SafeGo(func() {
		utils.Logger.Info("Keep-alive server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Error("Keep-alive server failed", zap.Error(err))
		}
	})
}

// Shutdown stops accepting pings and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.srv.Shutdown(ctx); err != nil {
		utils.Logger.Warn("Keep-alive server forced to shut down", zap.Error(err))
	}
}

func formatUptime(d time.Duration) string {
	return fmt.Sprintf("%dd %dh %dm %ds",
		int(d.Hours())/24, int(d.Hours())%24, int(d.Minutes())%60, int(d.Seconds())%60)
}
