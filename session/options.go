package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Options configures a Session.
//
// Logger     – structured log sink; defaults to the logrus standard logger.
// Registerer – target of the session collectors; defaults to a private registry.
type Options struct {
	Logger     *logrus.Entry
	Registerer prometheus.Registerer
}

// Option represents a functional option for configuring a Session.
type Option func(*Options)

// WithLogger sets the log entry. A nil entry keeps the default.
func WithLogger(l *logrus.Entry) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRegisterer sets the Prometheus registerer. A nil one keeps the default.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *Options) {
		if r != nil {
			o.Registerer = r
		}
	}
}

// DefaultOptions returns the standard logger and a fresh registry.
func DefaultOptions() Options {
	return Options{
		Logger:     logrus.NewEntry(logrus.StandardLogger()),
		Registerer: prometheus.NewRegistry(),
	}
}
