package llm

const (
	// DefaultTemperature keeps generated tests close to deterministic
	DefaultTemperature = 0.2
	// DefaultTopP is the nucleus sampling parameter
	DefaultTopP = 0.95
	// DefaultRepetitionPenalty is only honored by text-generation endpoints
	DefaultRepetitionPenalty = 1.03
	// MethodMaxTokens is the output budget for a single test method
	MethodMaxTokens = 300
	// ClassMaxTokens is the output budget for a full test class
	ClassMaxTokens = 500
)

// Options controls a single generation call
type Options struct {
	Model             string  `yaml:"model,omitempty"` // empty uses the client's default model
	MaxTokens         int     `yaml:"maxTokens,omitempty"`
	Temperature       float64 `yaml:"temperature,omitempty"`
	TopP              float64 `yaml:"topP,omitempty"`
	RepetitionPenalty float64 `yaml:"repetitionPenalty,omitempty"`
}

// MethodOptions returns defaults for single method generation
func MethodOptions() Options {
	return Options{
		MaxTokens:         MethodMaxTokens,
		Temperature:       DefaultTemperature,
		TopP:              DefaultTopP,
		RepetitionPenalty: DefaultRepetitionPenalty,
	}
}

// ClassOptions returns defaults for test class generation
func ClassOptions() Options {
	options := MethodOptions()
	options.MaxTokens = ClassMaxTokens
	return options
}

// WithModel returns a copy of the options using model when it is not empty
func (o Options) WithModel(model string) Options {
	if model != "" {
		o.Model = model
	}
	return o
}

// WithDefaults returns a copy of the options where every unset field takes its value from defaults
func (o Options) WithDefaults(defaults Options) Options {
	if o.MaxTokens == 0 {
		o.MaxTokens = defaults.MaxTokens
	}
	if o.Temperature == 0 {
		o.Temperature = defaults.Temperature
	}
	if o.TopP == 0 {
		o.TopP = defaults.TopP
	}
	if o.RepetitionPenalty == 0 {
		o.RepetitionPenalty = defaults.RepetitionPenalty
	}
	return o.WithModel(defaults.Model)
}

func (o Options) model(fallback string) string {
	if o.Model != "" {
		return o.Model
	}
	return fallback
}
