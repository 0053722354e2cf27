package config

type Config struct {
	Scrape ScrapeConfig `mapstructure:"scrape"`
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
	Logger LoggerConfig `mapstructure:"logger"`
}

type ScrapeConfig struct {
	StartPage    int     `mapstructure:"start_page"`
	EndPage      int     `mapstructure:"end_page"`
	DelaySeconds float64 `mapstructure:"delay_seconds"`
	Concurrency  int     `mapstructure:"concurrency"`
}

type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

// Default returns the built-in configuration: pages 1-16 of the catalog,
// one request at a time with a one second base delay.
func Default() *Config {
	return &Config{
		Scrape: ScrapeConfig{
			StartPage:    1,
			EndPage:      16,
			DelaySeconds: 1.0,
			Concurrency:  1,
		},
		Output: OutputConfig{
			Dir:     ".",
			Pattern: "metacritic_must_play_*.csv",
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
	}
}

// Normalize replaces invalid scrape parameters with their defaults. Bad
// values are ignored silently instead of failing the run.
func (c *Config) Normalize() {
	defaults := Default()
	if c.Scrape.StartPage < 1 {
		c.Scrape.StartPage = defaults.Scrape.StartPage
	}
	if c.Scrape.EndPage < c.Scrape.StartPage {
		c.Scrape.EndPage = defaults.Scrape.EndPage
		if c.Scrape.EndPage < c.Scrape.StartPage {
			c.Scrape.EndPage = c.Scrape.StartPage
		}
	}
	if c.Scrape.DelaySeconds < 0 {
		c.Scrape.DelaySeconds = defaults.Scrape.DelaySeconds
	}
	if c.Scrape.Concurrency < 1 {
		c.Scrape.Concurrency = defaults.Scrape.Concurrency
	}
	if c.Output.Dir == "" {
		c.Output.Dir = defaults.Output.Dir
	}
	if c.Output.Pattern == "" {
		c.Output.Pattern = defaults.Output.Pattern
	}
}

type Manager interface {
	Load(configPath string) (*Config, error)
	GetConfig() *Config
}
