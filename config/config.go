package config

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"github.com/treeforest/bitcoinutils/base58"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// 对外服务配置
	HttpServerPort  int           `yaml:"http_server_port"` // web监听端口
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // 优雅退出等待时间

	// 日志
	Debug bool `yaml:"debug"` // 是否输出 debug 日志

	// 编解码配置
	Alphabet  string `yaml:"alphabet"`   // 字母表，为空时使用比特币字母表
	HexOutput bool   `yaml:"hex_output"` // 命令行解码结果以 hex 输出
}

func DefaultConfig() *Config {
	return &Config{
		HttpServerPort:  8080,
		ShutdownTimeout: 5 * time.Second,
		Debug:           false,
		Alphabet:        base58.BitcoinAlphabetString,
		HexOutput:       true,
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// LoadAlphabet 解析配置中的字母表
func (c *Config) LoadAlphabet() (*base58.Alphabet, error) {
	if c.Alphabet == "" || c.Alphabet == base58.BitcoinAlphabetString {
		return base58.BitcoinAlphabet, nil
	}
	return base58.NewAlphabet(c.Alphabet)
}

// Validate 检查配置是否可用
func (c *Config) Validate() error {
	if c.HttpServerPort <= 0 || c.HttpServerPort > 65535 {
		return errors.Errorf("invalid http_server_port %d", c.HttpServerPort)
	}
	if c.ShutdownTimeout < 0 {
		return errors.Errorf("invalid shutdown_timeout %s", c.ShutdownTimeout)
	}
	if _, err := c.LoadAlphabet(); err != nil {
		return errors.WithMessage(err, "invalid alphabet")
	}
	return nil
}

// Load 读取配置文件，未填写的字段保持默认值
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf := DefaultConfig()
	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}
