package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config j2py 项目配置
type Config struct {
	Project ProjectConfig `toml:"project"`
	Output  OutputConfig  `toml:"output"`
	Input   InputConfig   `toml:"input"`
}

// ProjectConfig 项目配置
type ProjectConfig struct {
	Name string `toml:"name"` // 项目名
}

// OutputConfig 输出配置
type OutputConfig struct {
	Dir    string `toml:"dir"`    // 输出目录
	Indent int    `toml:"indent"` // 缩进宽度（空格数）
}

// InputConfig 输入配置
type InputConfig struct {
	Encoding string `toml:"encoding"` // 源文件编码（IANA 名称）
	OnError  string `toml:"on_error"` // 解码错误策略 strict/replace
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectConfig{Name: "app"},
		Output:  OutputConfig{Dir: "output", Indent: 4},
		Input:   InputConfig{Encoding: "utf-8", OnError: "strict"},
	}
}

// IndentString 返回缩进字符串
func (c *Config) IndentString() string {
	if c.Output.Indent <= 0 {
		return "    "
	}
	return strings.Repeat(" ", c.Output.Indent)
}

// FindAndLoad 从指定目录向上查找 j2py.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 j2py.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "j2py.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，缺失的字段用默认值补齐
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	if config.Project.Name == "" {
		config.Project.Name = "app"
	}
	if config.Output.Dir == "" {
		config.Output.Dir = "output"
	}
	if config.Output.Indent <= 0 {
		config.Output.Indent = 4
	}
	if config.Input.Encoding == "" {
		config.Input.Encoding = "utf-8"
	}
	if config.Input.OnError == "" {
		config.Input.OnError = "strict"
	}

	return config, nil
}

// GetProjectRoot 获取项目根目录（j2py.toml 所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
