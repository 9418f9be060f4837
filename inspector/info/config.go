package info

// Config controls what the inspector collects
type Config struct {
	IncludePrivate bool // include private fields and methods
}

func DefaultConfig() *Config {
	return &Config{
		IncludePrivate: true,
	}
}
