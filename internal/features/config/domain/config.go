package domain

// AppConfig is the public view of the running configuration. It never
// carries credentials.
type AppConfig struct {
	Service     string      `json:"service"`
	Environment string      `json:"environment"`
	Provider    string      `json:"provider"`
	Models      ModelRoute  `json:"models"`
	ModelParams ModelParams `json:"model_params"`
}

// ModelRoute names the model used by each routing tier.
type ModelRoute struct {
	Default  string `json:"default"`
	Primary  string `json:"primary"`
	Fallback string `json:"fallback"`
}

// ModelParams defines the generation parameters sent to the model.
type ModelParams struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
