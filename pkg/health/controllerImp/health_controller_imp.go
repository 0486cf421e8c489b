package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const Version = "1.0.0"

var appStart = time.Now()

type HealthCtrl struct {
	db     *gorm.DB
	prefix string
}

func NewHealthCtrl(db *gorm.DB, prefix string) *HealthCtrl {
	return &HealthCtrl{db: db, prefix: prefix}
}

// Root describes the API.
func (h *HealthCtrl) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Dalu farm API",
		"version": Version,
		"api":     h.prefix,
	})
}

// Health pings the database; 503 when it is unreachable.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbErr := ""
	if h.db == nil {
		dbErr = "gorm db is nil"
	} else if sqlDB, err := h.db.DB(); err != nil {
		dbErr = "db.DB(): " + err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbErr = "ping: " + err.Error()
	}

	status, word := http.StatusOK, "ok"
	if dbErr != "" {
		status, word = http.StatusServiceUnavailable, "degraded"
	}

	type check struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}
	return c.JSON(status, map[string]any{
		"status":     word,
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": check{OK: dbErr == "", Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}
