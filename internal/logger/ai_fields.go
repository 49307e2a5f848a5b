package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	FieldProvider   = "ai_provider"
	FieldModel      = "ai_model"
	FieldCapability = "capability"
	// FieldPath tells whether the assisted or the deterministic path served a call.
	FieldPath = "path"
)

// OrNop returns log, or a no-op logger when log is nil.
func OrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// WithCommonFields attaches the model provider and name to log. Blank values are left out.
func WithCommonFields(log *zap.Logger, provider, model string) *zap.Logger {
	fields := stringFields(FieldProvider, provider, FieldModel, model)
	if len(fields) == 0 {
		return OrNop(log)
	}
	return OrNop(log).With(fields...)
}

// CapabilityFields describes which assistant capability ran and which path answered it.
func CapabilityFields(capability, path string) []zap.Field {
	return stringFields(FieldCapability, capability, FieldPath, path)
}

// stringFields turns key, value pairs into zap fields, skipping blank values.
func stringFields(pairs ...string) []zap.Field {
	fields := make([]zap.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		if value := strings.TrimSpace(pairs[i+1]); value != "" {
			fields = append(fields, zap.String(pairs[i], value))
		}
	}
	return fields
}
