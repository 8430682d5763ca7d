package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"sysplash/internal/bar"
)

// 默认值与 bar 包的参数默认值保持一致。
const (
	DefaultStyle        = bar.DefaultStyleName
	DefaultBarLength    = bar.DefaultBarLength
	DefaultGreenBorder  = bar.DefaultGreenBorder
	DefaultYellowBorder = bar.DefaultYellowBorder
)

type Config struct {
	Style        string
	BarLength    int
	GreenBorder  int
	YellowBorder int
	Graph        bool

	Host    string
	User    string
	KeyFile string
	Port    int
}

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sysplash"), nil
}

func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func EnsureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}

func Load() (Config, error) {
	configFile, err := File()
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetDefault("style", DefaultStyle)
	v.SetDefault("length", DefaultBarLength)
	v.SetDefault("green", DefaultGreenBorder)
	v.SetDefault("yellow", DefaultYellowBorder)
	v.SetDefault("graph", false)
	v.SetDefault("host", "")
	v.SetDefault("user", "")
	v.SetDefault("keyfile", "")
	v.SetDefault("port", 0)

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	return Config{
		Style:        v.GetString("style"),
		BarLength:    v.GetInt("length"),
		GreenBorder:  v.GetInt("green"),
		YellowBorder: v.GetInt("yellow"),
		Graph:        v.GetBool("graph"),
		Host:         v.GetString("host"),
		User:         v.GetString("user"),
		KeyFile:      v.GetString("keyfile"),
		Port:         v.GetInt("port"),
	}, nil
}

func Save(config Config) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile, err := File()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("style", config.Style)
	v.Set("length", config.BarLength)
	v.Set("green", config.GreenBorder)
	v.Set("yellow", config.YellowBorder)
	v.Set("graph", config.Graph)
	v.Set("host", config.Host)
	v.Set("user", config.User)
	v.Set("keyfile", config.KeyFile)
	v.Set("port", config.Port)

	return v.WriteConfigAs(configFile)
}
