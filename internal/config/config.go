package config

// Config is the root application configuration.
type Config struct {
	Language  string   `yaml:"language"  env:"VOCAB_LANGUAGE"  env-default:"de"`
	Separator string   `yaml:"separator" env:"VOCAB_SEPARATOR" env-default:"tab"`
	Sources   []string `yaml:"sources"   env:"VOCAB_SOURCES"   env-separator:","`

	Load    LoadConfig    `yaml:"load"`
	Output  OutputConfig  `yaml:"output"`
	Harvest HarvestConfig `yaml:"harvest"`
	Log     LogConfig     `yaml:"log"`
}

// LoadConfig holds vocabulary file loading settings.
type LoadConfig struct {
	Workers int  `yaml:"workers" env:"VOCAB_LOAD_WORKERS" env-default:"4"`
	Strict  bool `yaml:"strict"  env:"VOCAB_LOAD_STRICT"  env-default:"false"`
}

// OutputConfig holds settings for written dictionaries.
//
// Booleans default to false: cleanenv applies env-default to zero values,
// so a default of true could not be switched off in YAML.
type OutputConfig struct {
	Path string `yaml:"path"  env:"VOCAB_OUTPUT_PATH"  env-default:"dictionary.txt"`
	// Plain omits the "# X" group headings.
	Plain bool `yaml:"plain" env:"VOCAB_OUTPUT_PLAIN"`
}

// HarvestConfig holds example harvesting settings.
type HarvestConfig struct {
	// MaxExamples caps the examples per entry. 0 in the file means the default.
	MaxExamples int `yaml:"max_examples" env:"VOCAB_HARVEST_MAX_EXAMPLES" env-default:"3"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VOCAB_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"VOCAB_LOG_FORMAT" env-default:"text"`
}

// separatorNames are the spellings accepted for separators that are hard
// to write in YAML or on a command line.
var separatorNames = map[string]string{
	"tab":       "\t",
	"comma":     ",",
	"semicolon": ";",
	"pipe":      "|",
}

// ResolveSeparator turns a configured separator into the literal string.
// Names such as "tab" map to their character, anything else is literal.
func ResolveSeparator(s string) string {
	if sep, ok := separatorNames[s]; ok {
		return sep
	}
	return s
}

// FieldSeparator returns the resolved field separator.
func (c *Config) FieldSeparator() string { return ResolveSeparator(c.Separator) }
