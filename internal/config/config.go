package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AIConfig struct {
	Provider        string `yaml:"provider"` // gemini | openai
	GeminiKey       string `yaml:"gemini_key"`
	GeminiURL       string `yaml:"gemini_url"`
	OpenAIKey       string `yaml:"openai_key"`
	Model           string `yaml:"model"`
	MaxOutputTokens int    `yaml:"max_output_tokens"`
	ThinkingBudget  int    `yaml:"thinking_budget"`  // gemini reasoning effort, 0 = minimal
	ConcurrentLimit int    `yaml:"concurrent_limit"` // max concurrent generation calls
}

type SpeechConfig struct {
	OpenAIKey  string `yaml:"openai_key"`
	STTModel   string `yaml:"stt_model"`
	TTSModel   string `yaml:"tts_model"`
	Voice      string `yaml:"voice"`
	Language   string `yaml:"language"`    // ISO-639-1 hint for transcription
	SampleRate int    `yaml:"sample_rate"` // normalized WAV sample rate
	FFmpegPath string `yaml:"ffmpeg_path"`
}

type TutorConfig struct {
	TargetLanguage   string `yaml:"target_language"`   // language being practiced
	FeedbackLanguage string `yaml:"feedback_language"` // language corrections are written in
}

type RedisConfig struct {
	URL            string        `yaml:"url"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	TTL            time.Duration `yaml:"ttl"`
	TurnsPerMinute int           `yaml:"turns_per_minute"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	AI     AIConfig     `yaml:"ai"`
	Speech SpeechConfig `yaml:"speech"`
	Tutor  TutorConfig  `yaml:"tutor"`
	Redis  RedisConfig  `yaml:"redis"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	switch {
	case err != nil && dev && os.IsNotExist(err):
		// Dev mode runs on defaults; no config file needed.
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyDefaults()
	cfg.Runtime.Dev = dev

	if !dev {
		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gemini"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.0-flash"
	}
	if c.AI.MaxOutputTokens <= 0 {
		c.AI.MaxOutputTokens = 512
	}
	if c.AI.ConcurrentLimit <= 0 {
		c.AI.ConcurrentLimit = 16
	}
	if c.Speech.STTModel == "" {
		c.Speech.STTModel = "whisper-1"
	}
	if c.Speech.TTSModel == "" {
		c.Speech.TTSModel = "tts-1"
	}
	if c.Speech.Voice == "" {
		c.Speech.Voice = "alloy"
	}
	if c.Speech.Language == "" {
		c.Speech.Language = "nl"
	}
	if c.Speech.SampleRate <= 0 {
		c.Speech.SampleRate = 16000
	}
	if c.Speech.FFmpegPath == "" {
		c.Speech.FFmpegPath = "ffmpeg"
	}
	if c.Tutor.TargetLanguage == "" {
		c.Tutor.TargetLanguage = "Dutch"
	}
	if c.Tutor.FeedbackLanguage == "" {
		c.Tutor.FeedbackLanguage = "English"
	}
	c.Redis.TTL = normalizeTTL(c.Redis.TTL)
	if c.Redis.TurnsPerMinute <= 0 {
		c.Redis.TurnsPerMinute = 20
	}

	// Secrets may come from the environment instead of the YAML file.
	if c.AI.GeminiKey == "" {
		c.AI.GeminiKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
	}
	if c.AI.OpenAIKey == "" {
		c.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Speech.OpenAIKey == "" {
		c.Speech.OpenAIKey = c.AI.OpenAIKey
	}
	if c.Speech.OpenAIKey == "" {
		c.Speech.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	}
}

func (c *Config) validate() error {
	switch c.AI.Provider {
	case "gemini":
		if c.AI.GeminiKey == "" {
			return errors.New("ai.gemini_key (or GEMINI_API_KEY) is required")
		}
	case "openai":
		if c.AI.OpenAIKey == "" {
			return errors.New("ai.openai_key (or OPENAI_API_KEY) is required")
		}
	default:
		return fmt.Errorf("ai.provider %q is not supported", c.AI.Provider)
	}
	if c.Speech.OpenAIKey == "" {
		return errors.New("speech.openai_key (or OPENAI_API_KEY) is required")
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func normalizeTTL(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Hour
	}
	return d
}
