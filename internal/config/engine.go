package config

// EngineConfig configures the labelling engine.
type EngineConfig struct {
	// DefaultLabeler is one of "four_bool", "justification", "fqas", "naive".
	DefaultLabeler string `yaml:"default_labeler"`
	// MaxNaiveTheories bounds the naive oracle's future-theory search.
	MaxNaiveTheories int `yaml:"max_naive_theories"`
	// BatchConcurrency is a concurrency bound for batch labelling. Nothing
	// in this module reads it; LabelBatch takes its bound as a parameter.
	BatchConcurrency int `yaml:"batch_concurrency"`
}

// DefaultMaxNaiveTheories mirrors labeler.DefaultMaxNaiveTheories without
// importing the labeler package, which would create an import cycle
// (config is meant to sit below every domain package).
const DefaultMaxNaiveTheories = 4096
