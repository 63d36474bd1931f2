package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string `mapstructure:"SERVER_PORT"`
	MongoUri        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	RedisUrl        string `mapstructure:"REDIS_URL"`
	WordsFile       string `mapstructure:"WORDS_FILE"`
	WordLength      int    `mapstructure:"WORD_LENGTH"`
	MaxAttempts     int    `mapstructure:"MAX_ATTEMPTS"`
	IsLocalCors     bool   `mapstructure:"LOCAL_CORS"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	viper.SetDefault("MONGO_DATABASE", "wordle")
	viper.SetDefault("WORDS_FILE", "assets/words.txt")
	viper.SetDefault("WORD_LENGTH", 5)
	viper.SetDefault("MAX_ATTEMPTS", 6)
	viper.SetDefault("SESSION_TTL_HOURS", 11)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
