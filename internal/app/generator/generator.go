//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"

	"gathering/internal/app/errors"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

const templatePath = "templates/gathering.yaml.tmpl"

//go:embed templates/gathering.yaml.tmpl
var templateFS embed.FS

// Options contains the configuration for generating gathering.yaml
type Options struct {
	*config.Config
	Path    string
	LogFile string
}

// DefaultOptions returns the built-in configuration written to the default path
func DefaultOptions() Options {
	return Options{
		Config:  config.DefaultConfig(),
		Path:    config.ConfigFile,
		LogFile: config.LogFile,
	}
}

// Generator defines the interface for generating gathering.yaml
type Generator interface {
	Generate(opts Options, force bool, dryRun bool) error
}

type generator struct {
	out io.Writer
	log logger.Logger
}

// NewGenerator creates a new generator instance printing dry runs to stdout
func NewGenerator(log logger.Logger) Generator {
	return &generator{
		out: os.Stdout,
		log: log,
	}
}

// Generate renders the template, checks it loads back as a valid configuration and writes it
func (g *generator) Generate(opts Options, force bool, dryRun bool) error {
	if opts.Path == "" {
		opts.Path = config.ConfigFile
	}

	if !dryRun && !force {
		if _, err := os.Stat(opts.Path); err == nil {
			return fmt.Errorf("file %s already exists, use --force to overwrite", opts.Path)
		}
	}

	data, err := render(opts)
	if err != nil {
		return err
	}

	if err := verify(data); err != nil {
		return err
	}

	if dryRun {
		_, err := g.out.Write(data)
		return err
	}

	if err := os.WriteFile(opts.Path, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	g.log.Info().Msgf("Generated %s", opts.Path)

	return nil
}

func render(opts Options) ([]byte, error) {
	tmplContent, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	tmpl, err := template.New(config.ConfigFile).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// verify decodes the rendered file the way a user edit would be read back
func verify(data []byte) error {
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToParseConfig, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return nil
}
