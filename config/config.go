package config

import (
	"log"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config 应用配置
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Database struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Hostname string `yaml:"hostname"`
		Name     string `yaml:"name"`
	} `yaml:"database"`
	Weather struct {
		// APIKey OpenWeatherMap的密钥，为空时走模拟数据
		APIKey string `yaml:"api_key"`
	} `yaml:"weather"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	Voice struct {
		// Enabled 开启后用本机TTS播报建议
		Enabled bool `yaml:"enabled"`
	} `yaml:"voice"`
}

var (
	cfg      *Config
	loadOnce sync.Once
)

// defaultConfig 返回默认配置
func defaultConfig() *Config {
	c := &Config{}
	c.Server.Addr = ":8080"
	c.Database.Username = "root"
	c.Database.Password = "root"
	c.Database.Hostname = "127.0.0.1:3306"
	c.Database.Name = "agrisathi"
	c.JWT.Secret = "agrisathi_secret_key"
	return c
}

// Load 加载配置文件。路径取AGRISATHI_CONFIG环境变量，默认config.yaml；
// 文件不存在时使用默认配置
func Load() *Config {
	loadOnce.Do(func() {
		cfg = defaultConfig()

		path := os.Getenv("AGRISATHI_CONFIG")
		if path == "" {
			path = "config.yaml"
		}

		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Fatalf("Failed to read config file %s: %v", path, err)
			}
			log.Printf("Config file %s not found, using defaults", path)
			return
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Failed to parse config file %s: %v", path, err)
		}
		log.Printf("Config loaded from %s", path)
	})
	return cfg
}

// Get 返回已加载的配置
func Get() *Config {
	return Load()
}
