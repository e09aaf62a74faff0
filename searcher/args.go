package searcher

type Option func(s *settings)

type settings struct {
	metrics    Collector
	collecting bool // false while metrics is the dummy collector
}

// WithMetrics records node, evaluation and pruning counts of the search into collector.
func WithMetrics(collector Collector) Option {
	return func(s *settings) {
		if collector != nil {
			s.metrics = collector
			s.collecting = true
		}
	}
}

func newSettings(options []Option) *settings {
	s := &settings{ // Default values
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}
