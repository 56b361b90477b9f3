package configs

// Config holds all configuration for the application.
type Config struct {
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch" validate:"required"`
	Report        ReportConfig        `mapstructure:"report" validate:"required"`
	Email         EmailConfig         `mapstructure:"email"`
	Archive       ArchiveConfig       `mapstructure:"archive"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	Server        ServerConfig        `mapstructure:"server"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level     string `mapstructure:"level" validate:"required"`
	Format    string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	ErrorFile string `mapstructure:"error_file"` // error-level entries are appended here
}

// ElasticsearchConfig holds the search cluster connection.
type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses" validate:"required,min=1,dive,url"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	MaxRetries int      `mapstructure:"max_retries" validate:"min=0"`
	Timeout    int      `mapstructure:"timeout" validate:"required,min=1"` // seconds
}

// ReportConfig holds the flocking report parameters.
type ReportConfig struct {
	IndexPattern string `mapstructure:"index_pattern" validate:"required"`
	ProbeList    string `mapstructure:"probe_list"` // comma-delimited; empty matches nothing
	TemplateFile string `mapstructure:"template_file"`
	SortRecords  bool   `mapstructure:"sort_records"`
}

// EmailConfig holds report delivery settings.
type EmailConfig struct {
	SMTPHost string   `mapstructure:"smtp_host"`
	SMTPPort int      `mapstructure:"smtp_port" validate:"min=1,max=65535"`
	Username string   `mapstructure:"username"`
	Password string   `mapstructure:"password"`
	From     string   `mapstructure:"from" validate:"omitempty,email"`
	To       []string `mapstructure:"to" validate:"omitempty,dive,email"`
	TestTo   []string `mapstructure:"test_to" validate:"omitempty,dive,email"`
	AdminTo  []string `mapstructure:"admin_to" validate:"omitempty,dive,email"`
}

// ArchiveConfig holds the optional sent-report archive.
type ArchiveConfig struct {
	RootDir string `mapstructure:"root_dir"`
}

// MetricsConfig holds metric export settings for one-shot runs.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"min=1"`        // seconds (keep-alive)
}
