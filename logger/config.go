package logger

// DefaultDir is the log directory used when Config.Dir is empty.
const DefaultDir = "logs"

// Config holds logger configuration.
type Config struct {
	// Dir is joined to the working directory to form the log directory.
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}
