package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vatsala281203/food-logger/models"
	"github.com/vatsala281203/food-logger/services"

	"github.com/gin-gonic/gin"
)

// LogController serves the meal log endpoints. Dependencies are injected
// so tests can run it against the in-memory store with a fixed clock.
type LogController struct {
	Logs    *services.LogService
	Summary *services.SummaryService
}

type logMealRequest struct {
	Label     string            `json:"label" binding:"required"`
	ServingG  float64           `json:"serving_g"`
	Nutrition *models.Nutrition `json:"nutrition"`
}

// POST /api/logs
func (ct *LogController) LogMeal(c *gin.Context) {
	var body logMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ct.Logs.Log(body.Label, body.ServingG, body.Nutrition)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidEntry) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/logs
func (ct *LogController) ListLogs(c *gin.Context) {
	entries, err := ct.Logs.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /api/logs/today
func (ct *LogController) TodaySummary(c *gin.Context) {
	summary, err := ct.Summary.Today()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/logs/summary?date=2025-02-20
func (ct *LogController) SummaryByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}
	summary, err := ct.Summary.ByDate(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/logs/history?days=7
func (ct *LogController) History(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))
	history, err := ct.Summary.History(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}

// DELETE /api/logs?confirm=true
//
// Clearing is irreversible, so a bare DELETE is refused; the client asks
// the user and then sends confirm=true.
func (ct *LogController) ClearLogs(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clearing the log requires confirm=true"})
		return
	}
	if err := ct.Logs.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
