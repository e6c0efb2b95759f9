package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/dexbot/godydx/dydx/types"
	"github.com/dexbot/godydx/pkg/logger"
)

// Config 客户端配置
// 敏感字段（API secret、STARK 私钥）建议放在 .env 或环境变量里，
// 不要写进 yaml 文件
type Config struct {
	Host            string        `yaml:"host"`
	NetworkID       int           `yaml:"network_id"`
	EthereumAddress string        `yaml:"ethereum_address"`
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	APIKey          APIKeyConfig  `yaml:"api_key"`
	Log             logger.Config `yaml:"log"`

	// StarkPrivateKey 只从环境变量读取
	StarkPrivateKey string `yaml:"-"`
}

// APIKeyConfig API 密钥配置
type APIKeyConfig struct {
	Key        string `yaml:"key"`
	Secret     string `yaml:"secret"`
	Passphrase string `yaml:"passphrase"`
}

// Load 加载配置：先读 yaml 文件（可选），再用环境变量覆盖
// .env 文件存在时先加载进环境
func Load(path string) (*Config, error) {
	// .env 不存在不算错误
	_ = godotenv.Load()

	cfg := &Config{
		Host:           "https://api.dydx.exchange",
		NetworkID:      int(types.NetworkIDMainnet),
		TimeoutSeconds: 10,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "读取配置文件失败: %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "解析配置文件失败: %s", path)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv 用 DYDX_* 环境变量覆盖配置
func applyEnv(cfg *Config) {
	if v := getenv("DYDX_HOST"); v != "" {
		cfg.Host = v
	}
	if v := getenv("DYDX_NETWORK_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			cfg.NetworkID = id
		}
	}
	if v := getenv("DYDX_ETHEREUM_ADDRESS"); v != "" {
		cfg.EthereumAddress = v
	}
	if v := getenv("DYDX_API_KEY"); v != "" {
		cfg.APIKey.Key = v
	}
	if v := getenv("DYDX_API_SECRET"); v != "" {
		cfg.APIKey.Secret = v
	}
	if v := getenv("DYDX_API_PASSPHRASE"); v != "" {
		cfg.APIKey.Passphrase = v
	}
	if v := getenv("DYDX_STARK_PRIVATE_KEY"); v != "" {
		cfg.StarkPrivateKey = v
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host 不能为空")
	}
	if c.NetworkID <= 0 {
		return errors.New("network_id 无效")
	}
	return nil
}

// Credentials 转换为客户端使用的凭证结构
func (c *Config) Credentials() *types.APIKeyCredentials {
	return &types.APIKeyCredentials{
		Key:        c.APIKey.Key,
		Secret:     c.APIKey.Secret,
		Passphrase: c.APIKey.Passphrase,
	}
}
