package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Sampler provides uniform random numbers in [0, 1) to the tracer.
// Implementations are not safe for concurrent use; every render task owns one.
type Sampler interface {
	Get1D() float64
	Get2D() (float64, float64)
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(format string, args ...interface{}) {}

// NopLogger returns a Logger that drops all messages
func NopLogger() Logger {
	return nopLogger{}
}
