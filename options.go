package slugger

import "log/slog"

// Option configures a Slugger.
type Option func(*Slugger)

// WithDefaults sets the process-wide defaults merged under every per-record Config.
// Defaults to DefaultDefaults().
func WithDefaults(d Defaults) Option {
	return func(s *Slugger) {
		s.defaults = d
	}
}

// WithNormalizer replaces the text normalizer.
// If nil, the option is ignored.
func WithNormalizer(n Normalizer) Option {
	return func(s *Slugger) {
		if n != nil {
			s.normalize = n
		}
	}
}

// WithLogger sets the logger used for debug output.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(s *Slugger) {
		if l != nil {
			s.logger = l
		}
	}
}
