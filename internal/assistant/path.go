package assistant

// Path tells which implementation served a call.
type Path string

const (
	PathAssisted      Path = "assisted"
	PathDeterministic Path = "deterministic"
)

// choosePath falls back to the deterministic path when no model is configured
// or the assisted attempt failed for any reason.
func choosePath(credentialPresent bool, assistedErr error) Path {
	if !credentialPresent || assistedErr != nil {
		return PathDeterministic
	}
	return PathAssisted
}
