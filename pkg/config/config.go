package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Mysql   MysqlConfig   `mapstructure:"mysql"`
	Jwt     JwtConfig     `mapstructure:"jwt"`
	Login   LoginConfig   `mapstructure:"login"`
	Trace   TraceConfig   `mapstructure:"trace"`
}

type ServiceConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
}

type MysqlConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"dbname"`
}

type JwtConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// LoginConfig 登录接口限流配置
type LoginConfig struct {
	Qps float64 `mapstructure:"qps"`
}

// TraceConfig OTLP 上报地址，留空则不开启链路追踪
type TraceConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

// LoadConfig 读取配置文件
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("jwt.expire_hours", 24)
	viper.SetDefault("login.qps", 5)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	log.Printf("Config loaded successfully from %s", path)
	return &config, nil
}
