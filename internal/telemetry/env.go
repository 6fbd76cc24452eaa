package telemetry

import (
	"fmt"
	"os"
)

// ConfigureEnv maps the DUNGEONLAYOUT_OTLP_* variables onto the standard
// OTEL_* ones read by Setup. Variables already set are left alone.
//
//   - DUNGEONLAYOUT_OTLP_ENDPOINT: collector endpoint
//   - DUNGEONLAYOUT_OTLP_API_KEY: Honeycomb team key
//   - DUNGEONLAYOUT_OTLP_DATASET: Honeycomb dataset, "dungeonlayout" by default
func ConfigureEnv() {
	if endpoint := os.Getenv("DUNGEONLAYOUT_OTLP_ENDPOINT"); endpoint != "" && os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", endpoint)
	}

	// The .env file may carry an unexpanded reference, so the header is
	// built here from the key itself.
	apiKey := os.Getenv("DUNGEONLAYOUT_OTLP_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") != "" {
		return
	}
	dataset := os.Getenv("DUNGEONLAYOUT_OTLP_DATASET")
	if dataset == "" {
		dataset = serviceName
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
