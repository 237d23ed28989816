package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tidelog/tidelog/internal/config"
	"github.com/tidelog/tidelog/internal/identity"
	"github.com/tidelog/tidelog/internal/ledger/service"
	"github.com/tidelog/tidelog/internal/units"
)

// RegisterLedgerRoutes wires the intake API onto the engine.
func RegisterLedgerRoutes(r *gin.Engine, svc *service.Service, cfg *config.Config) {
	r.GET("/api/meta", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"dailyGoalMl": cfg.Goal.DailyGoalMl,
			"dailyGoalOz": units.MlToOz(cfg.Goal.DailyGoalMl),
			"goalMlPerKg": cfg.Goal.GoalMlPerKg,
			"minWeightKg": cfg.Goal.MinWeightKg,
			"maxWeightKg": cfg.Goal.MaxWeightKg,
		})
	})

	r.GET("/api/users", func(c *gin.Context) {
		users, err := svc.Users()
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	})

	r.GET("/api/entries", func(c *gin.Context) {
		uid, date, entries, err := svc.ListEntries(c.Query("userId"), c.Query("date"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": uid, "date": date, "entries": entries})
	})

	r.POST("/api/entries", func(c *gin.Context) {
		var req struct {
			Amount     float64 `json:"amount"`
			Unit       string  `json:"unit"`
			ConsumedAt string  `json:"consumedAt"`
			Note       string  `json:"note"`
			UserID     string  `json:"userId"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number."})
			return
		}
		entry, err := svc.CreateEntry(service.CreateEntryInput{
			Amount:     req.Amount,
			Unit:       req.Unit,
			ConsumedAt: req.ConsumedAt,
			Note:       req.Note,
			UserID:     req.UserID,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, entry)
	})

	r.DELETE("/api/entries/:id", func(c *gin.Context) {
		if err := svc.DeleteEntry(c.Param("id"), c.Query("userId")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.GET("/api/stats/today", func(c *gin.Context) {
		st, err := svc.StatsToday(c.Query("userId"))
		if err != nil {
			fail(c, err)
			return
		}
		out := gin.H{
			"userId":      st.UserID,
			"date":        st.Date,
			"consumedMl":  st.Stats.ConsumedMl,
			"consumedOz":  units.MlToOz(st.Stats.ConsumedMl),
			"dailyGoalMl": st.DailyGoalMl,
			"dailyGoalOz": units.MlToOz(st.DailyGoalMl),
			"remainingMl": st.Stats.RemainingMl,
			"remainingOz": units.MlToOz(st.Stats.RemainingMl),
			"progress":    st.Stats.Progress,
		}
		if st.WeightKg > 0 {
			out["weightKg"] = st.WeightKg
		}
		c.JSON(http.StatusOK, out)
	})

	r.GET("/api/profile", func(c *gin.Context) {
		uid, prof, goal, err := svc.GetProfile(c.Query("userId"))
		if err != nil {
			fail(c, err)
			return
		}
		out := gin.H{"userId": uid, "dailyGoalMl": goal}
		if prof != nil {
			out["weightKg"] = prof.WeightKg
			out["updatedAt"] = prof.UpdatedAt
		}
		c.JSON(http.StatusOK, out)
	})

	r.PUT("/api/profile", func(c *gin.Context) {
		var req struct {
			UserID   string  `json:"userId"`
			WeightKg float64 `json:"weightKg"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "weightKg must be a number."})
			return
		}
		uid, prof, goal, err := svc.PutProfile(req.UserID, req.WeightKg)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"userId":      uid,
			"weightKg":    prof.WeightKg,
			"updatedAt":   prof.UpdatedAt,
			"dailyGoalMl": goal,
		})
	})
}

// fail maps service errors onto HTTP statuses: validation failures are client
// errors with their message, a missing entry is 404, the rest is 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, units.ErrInvalidAmount),
		errors.Is(err, identity.ErrInvalidIdentifier),
		errors.Is(err, service.ErrInvalidTimestamp),
		errors.Is(err, service.ErrInvalidWeight):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
