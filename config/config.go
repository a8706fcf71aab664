package config

// Config contains all application settings
type Config struct {
	BindPort      int    `mapstructure:"PORT" yaml:"port"`
	BindHost      string `mapstructure:"HOST" yaml:"host"`
	DataFile      string `mapstructure:"DATA_FILE" yaml:"data_file"`
	NATSServerURL string `mapstructure:"NATS_URL" yaml:"nats_url"`
	GraphiQL      bool   `mapstructure:"GRAPHIQL" yaml:"graphiql"`
	LogLevel      string `mapstructure:"LOG_LEVEL" yaml:"log_level"`

	// Version
	BuildVersion string `yaml:"-"`
	BuildHash    string `yaml:"-"`
	BuildTime    string `yaml:"-"`
}
