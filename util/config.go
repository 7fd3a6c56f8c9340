package util

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment       string   `mapstructure:"ENVIRONMENT"`
	AllowedOrigins    []string `mapstructure:"ALLOWED_ORIGINS"`
	DBSource          string   `mapstructure:"DB_SOURCE"`
	MigrationURL      string   `mapstructure:"MIGRATION_URL"`
	RedisAddress      string   `mapstructure:"REDIS_ADDRESS"`
	RedisPassword     string   `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress string   `mapstructure:"HTTP_SERVER_ADDRESS"`

	// 调度参数
	AllocMaxDistanceKm   float64       `mapstructure:"ALLOC_MAX_DISTANCE_KM"`  // 派单最大搜索半径（公里）
	AllocMinRating       float64       `mapstructure:"ALLOC_MIN_RATING"`       // 派单最低骑手评分
	BatchAllocateDelay   time.Duration `mapstructure:"BATCH_ALLOCATE_DELAY"`   // 批量派单的单间隔
	StaleAssignmentAfter time.Duration `mapstructure:"STALE_ASSIGNMENT_AFTER"` // 超过该时长未取货视为滞留
	EnableReassignCron   bool          `mapstructure:"ENABLE_REASSIGN_CRON"`   // 是否启用滞留单巡检
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	// 未配置时的兜底值，保持与算法默认一致
	if config.AllocMaxDistanceKm == 0 {
		config.AllocMaxDistanceKm = 10
	}
	if config.AllocMinRating == 0 {
		config.AllocMinRating = 3.0
	}
	if config.BatchAllocateDelay == 0 {
		config.BatchAllocateDelay = 200 * time.Millisecond
	}
	if config.StaleAssignmentAfter == 0 {
		config.StaleAssignmentAfter = 10 * time.Minute
	}
	return
}
