package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for PasswordsGenerated.
const (
	ResultOK                   = "ok"
	ResultInvalidSpec          = "invalid_spec"
	ResultInsufficientAlphabet = "insufficient_alphabet"
	ResultError                = "error"
)

var (
	// PasswordsGenerated counts generation attempts by result.
	PasswordsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mkpass_passwords_generated_total",
		Help: "Password generation attempts by result",
	}, []string{"result"})

	// PasswordLength tracks the length of generated passwords.
	PasswordLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mkpass_password_length",
		Help:    "Length of generated passwords",
		Buckets: []float64{8, 12, 16, 24, 32, 64, 128, 256, 1024},
	})

	// RequirementsClamped counts requirements whose counts were reduced by validation.
	RequirementsClamped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mkpass_requirements_clamped_total",
		Help: "Requirements whose numeric or special counts were reduced during validation",
	})
)
