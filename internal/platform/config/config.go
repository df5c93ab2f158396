package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"
)

type Speech struct {
	Enabled       bool
	Command       string
	Voice         string
	FallbackVoice string
	EnglishVoice  string
}

type Config struct {
	DataDir      string
	DBPath       string
	SnapshotPath string
	ReportDir    string
	Storage      string
	LogMode      string
	Profile      string
	Speech       Speech
}

// fileConfig mirrors the optional <data>/config.yaml. Empty fields keep defaults.
type fileConfig struct {
	Storage string      `yaml:"storage"`
	LogMode string      `yaml:"log_mode"`
	Profile string      `yaml:"profile"`
	Speech  *fileSpeech `yaml:"speech"`
}

type fileSpeech struct {
	Enabled       *bool  `yaml:"enabled"`
	Command       string `yaml:"command"`
	Voice         string `yaml:"voice"`
	FallbackVoice string `yaml:"fallback_voice"`
	EnglishVoice  string `yaml:"english_voice"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:      dataDir,
		DBPath:       filepath.Join(dataDir, ".hangul", "hangul.db"),
		SnapshotPath: filepath.Join(dataDir, ".hangul", "progress.json"),
		ReportDir:    filepath.Join(dataDir, "reports"),
		Storage:      StorageSQLite,
		LogMode:      "quiet",
		Profile:      "learner",
		Speech: Speech{
			Enabled:       true,
			Command:       "espeak-ng",
			Voice:         "ko",
			FallbackVoice: "ko-KR",
			EnglishVoice:  "en-us",
		},
	}
	if err := cfg.loadFile(filepath.Join(dataDir, "config.yaml")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	file := fileConfig{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if file.Storage != "" {
		storage := strings.ToLower(strings.TrimSpace(file.Storage))
		switch storage {
		case StorageSQLite, StorageFile, StorageMemory:
			c.Storage = storage
		default:
			return fmt.Errorf("unsupported storage %q", file.Storage)
		}
	}
	if file.LogMode != "" {
		c.LogMode = file.LogMode
	}
	if file.Profile != "" {
		c.Profile = file.Profile
	}
	if file.Speech != nil {
		if file.Speech.Enabled != nil {
			c.Speech.Enabled = *file.Speech.Enabled
		}
		if file.Speech.Command != "" {
			c.Speech.Command = file.Speech.Command
		}
		if file.Speech.Voice != "" {
			c.Speech.Voice = file.Speech.Voice
		}
		if file.Speech.FallbackVoice != "" {
			c.Speech.FallbackVoice = file.Speech.FallbackVoice
		}
		if file.Speech.EnglishVoice != "" {
			c.Speech.EnglishVoice = file.Speech.EnglishVoice
		}
	}
	return nil
}
