package controllers

import (
	"net/http"

	"github.com/vatsala281203/food-logger/models"
	"github.com/vatsala281203/food-logger/services"

	"github.com/gin-gonic/gin"
)

// PredictController proxies capture frames to the prediction service.
type PredictController struct {
	Predictor *services.PredictionService
}

type predictRequest struct {
	ImageBase64 string  `json:"image_base64" binding:"required"`
	ServingG    float64 `json:"serving_g"`
}

// POST /api/predict
func (ct *PredictController) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ServingG <= 0 {
		req.ServingG = services.DefaultServingG
	}

	predictions, err := ct.Predictor.Predict(req.ImageBase64, req.ServingG)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.PredictResponse{Predictions: predictions})
}
