package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vatsala281203/food-logger/models"
)

// PredictionService calls the external food prediction endpoint. The
// service classifies an image and, when it knows the label, returns
// nutrition facts scaled to the requested serving. One shot per call:
// no retries, failures go straight back to the caller.
type PredictionService struct {
	endpoint string
	client   *http.Client
}

func NewPredictionService(endpoint string) *PredictionService {
	return &PredictionService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Predict sends one base64 image plus a serving hint and returns the
// ranked predictions, highest confidence first. A service-reported error
// field is surfaced verbatim in the returned error.
func (s *PredictionService) Predict(imageBase64 string, servingG float64) ([]models.Prediction, error) {
	payload := models.PredictRequest{ImageBase64: imageBase64, ServingG: servingG}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call prediction service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read prediction response: %w", err)
	}

	// The service reports failures in-band; prefer its message over a
	// bare status code when both are present.
	var pr models.PredictResponse
	if jsonErr := json.Unmarshal(body, &pr); jsonErr == nil && pr.Error != "" {
		return nil, fmt.Errorf("prediction service error: %s", pr.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("prediction service error %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse prediction JSON: %w", err)
	}

	return pr.Predictions, nil
}
