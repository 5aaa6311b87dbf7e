package utils

import (
	"errors"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "pipeline.yaml"

	defaultInputDir           = "data/input"
	defaultOutputDir          = "data/output"
	defaultLogsDir            = "logs"
	defaultPromptPath         = "global_prompt.txt"
	defaultTempDir            = ".tmp"
	defaultModelsDir          = "models"
	defaultFFmpegBinary       = "ffmpeg"
	defaultTranscriptionModel = "medium.en"
	defaultLanguage           = "en"
	defaultLogLevel           = "debug"
	defaultHFInferenceURL     = "https://router.huggingface.co/hf-inference/models"
	defaultHFHubURL           = "https://huggingface.co"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Logging       LoggingConfig       `yaml:"logging"`

	// Filled from the environment, never from the YAML file.
	Credentials Credentials `yaml:"-"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Logs   string `yaml:"logs"`
	Prompt string `yaml:"prompt"`
	Temp   string `yaml:"temp"`
	Models string `yaml:"models"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type TranscriptionConfig struct {
	Model    string `yaml:"model"`
	Language string `yaml:"language"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type Credentials struct {
	OpenAIAPIKey   string
	OpenAIBaseURL  string
	HFToken        string
	HFInferenceURL string
	HFHubURL       string
}

// LoadConfig reads path if it exists, falls back to defaults otherwise, and
// picks up credentials from the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	}

	cfg.Validate()
	cfg.Credentials = CredentialsFromEnv()
	return cfg, nil
}

// Validate fills every empty field with its default.
func (c *Config) Validate() {
	setDefault(&c.Paths.Input, defaultInputDir)
	setDefault(&c.Paths.Output, defaultOutputDir)
	setDefault(&c.Paths.Logs, defaultLogsDir)
	setDefault(&c.Paths.Prompt, defaultPromptPath)
	setDefault(&c.Paths.Temp, defaultTempDir)
	setDefault(&c.Paths.Models, defaultModelsDir)
	setDefault(&c.FFmpeg.BinaryPath, defaultFFmpegBinary)
	setDefault(&c.Transcription.Model, defaultTranscriptionModel)
	setDefault(&c.Transcription.Language, defaultLanguage)
	setDefault(&c.Logging.Level, defaultLogLevel)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func CredentialsFromEnv() Credentials {
	creds := Credentials{
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		HFToken:        os.Getenv("HF_TOKEN"),
		HFInferenceURL: os.Getenv("HF_INFERENCE_URL"),
		HFHubURL:       os.Getenv("HF_HUB_URL"),
	}
	setDefault(&creds.HFInferenceURL, defaultHFInferenceURL)
	setDefault(&creds.HFHubURL, defaultHFHubURL)
	return creds
}

// NewOpenAIClient builds a client for the OpenAI API or any server speaking
// its protocol when OPENAI_BASE_URL is set.
func (c Credentials) NewOpenAIClient() *openai.Client {
	config := openai.DefaultConfig(c.OpenAIAPIKey)
	if c.OpenAIBaseURL != "" {
		config.BaseURL = c.OpenAIBaseURL
	}
	return openai.NewClientWithConfig(config)
}
