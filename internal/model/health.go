package model

// HealthResponse is the body returned by GET /health.
type HealthResponse struct {
	Status           string `json:"status"`
	ModelsLoaded     bool   `json:"models_loaded"`
	WhisperAvailable bool   `json:"whisper_available"`
	OllamaAvailable  bool   `json:"ollama_available"`
}

// ModelsResponse is the body returned by GET /models.
type ModelsResponse struct {
	AvailableModels []string `json:"available_models"`
}
