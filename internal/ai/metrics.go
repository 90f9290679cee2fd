package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	llmRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "continuum_llm_requests_total",
			Help: "Total number of requests to the LLM API.",
		},
		[]string{"provider", "model", "status"}, // Labels: provider, model used, success/error
	)
	llmRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "continuum_llm_request_duration_seconds",
			Help:    "Histogram of LLM API request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "model"},
	)
	llmPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "continuum_llm_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(250, 250, 20), // 250, 500, ..., 5000
		},
		[]string{"provider", "model"},
	)
	llmCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "continuum_llm_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 20), // 100, 200, ..., 2000
		},
		[]string{"provider", "model"},
	)
)
