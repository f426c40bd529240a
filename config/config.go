package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Port            int      `yaml:"port"`
	MongoURI        string   `yaml:"mongo_uri"`
	MongoDB         string   `yaml:"mongo_db"`
	JWTKey          string   `yaml:"jwt_key"`
	PortfolioAPIURL string   `yaml:"portfolio_api_url"`
	AllowOrigins    []string `yaml:"allow_origins"`
	Debug           bool     `yaml:"-"`
}

// LoadConfig 加载配置：先读可选的YAML文件，再用环境变量覆盖
func LoadConfig() *Config {
	cfg := &Config{
		Port:            8080,
		MongoURI:        "mongodb://127.0.0.1:27017",
		MongoDB:         "portfolio",
		JWTKey:          "your-secret-key", // 实际环境应替换为安全密钥
		PortfolioAPIURL: "http://localhost:5000",
		AllowOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
	}

	// 可选配置文件
	path := getEnv("CONFIG_FILE", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		// 解析失败时保留默认值
		_ = yaml.Unmarshal(data, cfg)
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.MongoDB = getEnv("MONGO_DB", cfg.MongoDB)
	cfg.JWTKey = getEnv("JWT_KEY", cfg.JWTKey)
	cfg.PortfolioAPIURL = getEnv("PORTFOLIO_API_URL", cfg.PortfolioAPIURL)
	cfg.Debug = getEnv("GIN_MODE", "debug") == "debug"

	return cfg
}

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
