package kernel

import (
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/skcontext/core"
	"github.com/hupe1980/skcontext/logging"
	"github.com/hupe1980/skcontext/memory"
	memoryopenai "github.com/hupe1980/skcontext/memory/openai"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"gopkg.in/yaml.v3"
)

// EmbeddingConfig selects the embedder used by the volatile memory.
type EmbeddingConfig struct {
	Provider string `yaml:"provider"` // "" | "openai"
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
}

// MemoryConfig selects the semantic memory.
type MemoryConfig struct {
	Provider  string          `yaml:"provider"` // "null" | "volatile"
	Embedding EmbeddingConfig `yaml:"embedding"`
}

// ContextConfig controls the contexts handed out by the kernel.
type ContextConfig struct {
	Variant string `yaml:"variant"`
}

// LoggingConfig controls the kernel logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // json | text
}

// Config is the file representation of a kernel.
type Config struct {
	Variables *core.ContextVariables `yaml:"variables"`
	Context   ContextConfig          `yaml:"context"`
	Memory    MemoryConfig           `yaml:"memory"`
	Logging   LoggingConfig          `yaml:"logging"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Variables: core.NewContextVariables(),
		Context:   ContextConfig{Variant: string(core.DefaultVariant)},
		Memory:    MemoryConfig{Provider: "null"},
		Logging:   LoggingConfig{Level: "info", Format: "json"},
	}
}

// LoadConfig reads a kernel config.yaml from path. If the file does not exist
// it returns DefaultConfig() with no error. Missing keys keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kernel config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse kernel config %s: %w", path, err)
	}

	if cfg.Variables == nil {
		cfg.Variables = core.NewContextVariables()
	}

	return cfg, nil
}

// NewFromConfig creates a Kernel from cfg. optFns run after the config has
// been applied and may override any part of it. Logs go to w (os.Stderr when
// nil).
func NewFromConfig(cfg *Config, w io.Writer, optFns ...func(o *Options)) (*Kernel, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	level, err := logging.ParseLogLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	if w == nil {
		w = os.Stderr
	}

	logger := logging.NewKernelLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Logging.Format,
		Output:    w,
		Component: "kernel",
	})

	mem, err := newMemory(cfg.Memory, logger.WithComponent("memory"))
	if err != nil {
		return nil, err
	}

	fns := append([]func(o *Options){func(o *Options) {
		o.Variables = cfg.Variables
		o.Memory = mem
		o.Variant = core.Variant(cfg.Context.Variant)
		o.Logger = logger
	}}, optFns...)

	return New(fns...), nil
}

func newMemory(cfg MemoryConfig, logger logging.Logger) (core.SemanticTextMemory, error) {
	switch cfg.Provider {
	case "", "null":
		return memory.NullMemory{}, nil
	case "volatile":
		embedder, err := newEmbedder(cfg.Embedding)
		if err != nil {
			return nil, err
		}

		return memory.NewVolatileMemory(func(o *memory.VolatileOptions) {
			o.Logger = logger
			if embedder != nil {
				o.Embedder = embedder
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown memory provider %q", cfg.Provider)
	}
}

// newEmbedder returns nil, nil when no embedding provider is configured.
func newEmbedder(cfg EmbeddingConfig) (*memoryopenai.Embedder, error) {
	switch cfg.Provider {
	case "":
		return nil, nil
	case "openai":
		var reqOpts []option.RequestOption
		if cfg.BaseURL != "" {
			reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
		}
		if cfg.APIKey != "" {
			reqOpts = append(reqOpts, option.WithAPIKey(cfg.APIKey))
		}

		client := openai.NewClient(reqOpts...)

		return memoryopenai.NewEmbedderFromClient(&client, func(o *memoryopenai.Options) {
			if cfg.Model != "" {
				o.Model = openai.EmbeddingModel(cfg.Model)
			}
		}), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider %q", cfg.Provider)
	}
}
