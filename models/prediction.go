package models

// PredictRequest is the outbound payload for the prediction service.
type PredictRequest struct {
	ImageBase64 string  `json:"image_base64"`
	ServingG    float64 `json:"serving_g"`
}

// PredictionNutrition carries nutrition facts scaled to a stated serving.
type PredictionNutrition struct {
	ServingG   float64   `json:"serving_g"`
	PerServing Nutrition `json:"per_serving"`
}

// Prediction is one ranked classification from the prediction service.
// Nutrition is nil when the service has no data for the label.
type Prediction struct {
	Label      string               `json:"label"`
	Confidence float64              `json:"confidence"`
	Nutrition  *PredictionNutrition `json:"nutrition"`
}

// PredictResponse is the prediction service's reply. A non-empty Error
// means the request failed service-side regardless of HTTP status.
type PredictResponse struct {
	Predictions []Prediction `json:"predictions"`
	Error       string       `json:"error,omitempty"`
}
