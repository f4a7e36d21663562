// Package config 定义命令行工具的配置及默认值
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zooyer/drawing/core"
)

// Config 命令行工具的全部配置
type Config struct {
	Debug  bool         `mapstructure:"debug" yaml:"debug"`
	Legacy bool         `mapstructure:"legacy" yaml:"legacy"` // 输入为多条顶层记录，没有外层 ShapeGroup
	Raster RasterConfig `mapstructure:"raster" yaml:"raster"`
	View   ViewConfig   `mapstructure:"view" yaml:"view"`
	Watch  WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// RasterConfig PNG 导出参数
type RasterConfig struct {
	Scale      float64 `mapstructure:"scale" yaml:"scale"`
	Width      int     `mapstructure:"width" yaml:"width"`
	Margin     int     `mapstructure:"margin" yaml:"margin"`
	LineWidth  float64 `mapstructure:"line_width" yaml:"line_width"`
	Stroke     string  `mapstructure:"stroke" yaml:"stroke"`
	Background string  `mapstructure:"background" yaml:"background"`
}

// ViewConfig 终端查看器参数
type ViewConfig struct {
	Step int `mapstructure:"step" yaml:"step"` // 每次按键移动的距离
}

// WatchConfig 文件监视参数
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

func Defaults() Config {
	return Config{
		Raster: RasterConfig{
			Scale:      4,
			Margin:     16,
			LineWidth:  1,
			Stroke:     "#000000",
			Background: "#FFFFFF",
		},
		View: ViewConfig{
			Step: 1,
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
	}
}

func (c Config) Validate() error {
	r := c.Raster
	if r.Scale <= 0 && r.Width <= 0 {
		return fmt.Errorf("raster: scale or width must be positive")
	}
	if r.Margin < 0 {
		return fmt.Errorf("raster: margin must not be negative")
	}
	if r.LineWidth <= 0 {
		return fmt.Errorf("raster: line_width must be positive")
	}
	if !isHexColor(r.Stroke) {
		return fmt.Errorf("raster: stroke %q is not a hex color", r.Stroke)
	}
	if !isHexColor(r.Background) {
		return fmt.Errorf("raster: background %q is not a hex color", r.Background)
	}
	if c.View.Step <= 0 {
		return fmt.Errorf("view: step must be positive")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch: debounce must not be negative")
	}
	return nil
}

// isHexColor 接受 #RGB、#RRGGBB、#RRGGBBAA
func isHexColor(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	switch len(s) {
	case 4, 7, 9:
	default:
		return false
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// WriteDefault 把默认配置写入 path，必要时创建目录
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	core.Logger().Info("created default config", "path", path)
	return nil
}
