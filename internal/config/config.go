// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-timekeeper/internal/clock"
	"github.com/hazadus/go-timekeeper/internal/logging"
	"github.com/hazadus/go-timekeeper/internal/utils"
)

const (
	// EnvPrefix - префикс переменных окружения, переопределяющих файл конфигурации
	EnvPrefix = "TIMEKEEPER_"
	// SpeedUpFactor - во сколько раз ускоряются таймеры при SPEED_UP_TIMERS
	SpeedUpFactor = 60

	defaultHistoryFile = "~/.timekeeper_history.yaml"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	Layout            string        `yaml:"layout" env:"LAYOUT"`
	SpeedUpTimers     bool          `yaml:"speed_up_timers" env:"SPEED_UP_TIMERS"`
	DisableAnimations bool          `yaml:"disable_animations" env:"DISABLE_ANIMATIONS"`
	Chime             *bool         `yaml:"chime" env:"CHIME"`
	LogLevel          logging.Level `yaml:"log_level" env:"LOG_LEVEL"`
	HistoryFile       string        `yaml:"history_file" env:"HISTORY_FILE"`

	AwsBucketName string `yaml:"aws_bucket_name" env:"AWS_BUCKET_NAME"`
	AwsAccessKey  string `yaml:"aws_access_key" env:"AWS_ACCESS_KEY"`
	AwsSecretKey  string `yaml:"aws_secret_key" env:"AWS_SECRET_KEY"`
	AwsRegion     string `yaml:"aws_region" env:"AWS_REGION"`
	AwsEndpoint   string `yaml:"aws_endpoint" env:"AWS_ENDPOINT"`
}

// Default возвращает конфигурацию по умолчанию с раскрытыми путями
func Default() *Config {
	config := &Config{}
	if err := config.finalize(); err != nil {
		config.HistoryFile = defaultHistoryFile
	}
	return config
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Отсутствующий файл не является ошибкой: используются значения по умолчанию.
// Переменные окружения с префиксом TIMEKEEPER_ имеют приоритет над файлом.
func LoadConfig(filePath string) (*Config, error) {
	return load(filePath, nil)
}

// load загружает конфигурацию; environment подменяет окружение процесса в тестах
func load(filePath string, environment map[string]string) (*Config, error) {
	path, err := utils.ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(config, opts); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := config.finalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// finalize устанавливает значения по умолчанию и проверяет конфигурацию
func (c *Config) finalize() error {
	if c.Layout == "" {
		c.Layout = clock.LayoutHMS.String()
	}
	if _, err := clock.ParseLayout(c.Layout); err != nil {
		return fmt.Errorf("ошибка в параметре layout: %w", err)
	}

	if c.Chime == nil {
		enabled := true
		c.Chime = &enabled
	}

	if c.HistoryFile == "" {
		c.HistoryFile = defaultHistoryFile
	}

	// Раскрываем тильду в пути к истории
	path, err := utils.ExpandHome(c.HistoryFile)
	if err != nil {
		return err
	}
	c.HistoryFile = path

	return nil
}

// ClockLayout возвращает формат отображения времени
func (c *Config) ClockLayout() clock.Layout {
	layout, _ := clock.ParseLayout(c.Layout)
	return layout
}

// Speed возвращает множитель скорости таймеров
func (c *Config) Speed() int {
	if c.SpeedUpTimers {
		return SpeedUpFactor
	}
	return 1
}

// ChimeEnabled возвращает true, если по завершении таймера нужен звуковой сигнал
func (c *Config) ChimeEnabled() bool {
	return c.Chime == nil || *c.Chime
}

// ArchiveConfigured возвращает true, если заданы параметры S3 для архива истории
func (c *Config) ArchiveConfigured() bool {
	return c.AwsBucketName != "" && c.AwsAccessKey != "" && c.AwsSecretKey != ""
}
