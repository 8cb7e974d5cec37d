package settings

type Config struct {
	Logger    Logger    `mapstructure:"logger" yaml:"logger"`
	Server    Server    `mapstructure:"server" yaml:"server"`
	Bench     Bench     `mapstructure:"bench" yaml:"bench"`
	Generator Generator `mapstructure:"generator" yaml:"generator"`
}

// Server is the configuration for the HTTP queue service
type Server struct {
	Mode     string `mapstructure:"mode" yaml:"mode" validate:"omitempty,oneof=debug release test"`
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port" validate:"gte=0,lte=65535"`
	Backend  string `mapstructure:"backend" yaml:"backend" validate:"oneof=heap array"`
	Capacity int    `mapstructure:"capacity" yaml:"capacity" validate:"gte=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name" yaml:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`   // Days
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// Bench is the configuration for the benchmarking harness
type Bench struct {
	Sizes        []int  `mapstructure:"sizes" yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	Repetitions  int    `mapstructure:"repetitions" yaml:"repetitions" validate:"gt=0"`
	Seed         uint64 `mapstructure:"seed" yaml:"seed"`
	MaxPriority  int    `mapstructure:"max_priority" yaml:"max_priority" validate:"gt=0"`    // Exclusive upper bound
	Parallelism  int    `mapstructure:"parallelism" yaml:"parallelism" validate:"gte=0"`     // Engines timed at once, 0 means 1
	ModifySample int    `mapstructure:"modify_sample" yaml:"modify_sample" validate:"gte=0"` // Number of ModifyKey targets, 0 means max(size)/10
}

// Generator is the configuration for random queue data
type Generator struct {
	Size        int    `mapstructure:"size" yaml:"size" validate:"gte=0"`
	MinPriority int    `mapstructure:"min_priority" yaml:"min_priority"`
	MaxPriority int    `mapstructure:"max_priority" yaml:"max_priority" validate:"gtefield=MinPriority"`
	Seed        uint64 `mapstructure:"seed" yaml:"seed"`
}
