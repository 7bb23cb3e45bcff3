package cmd

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/hovertip/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "config",
		Short: "Show the resolved tooltip configuration",
		Long: `Print the tooltip configuration that applies in a directory.

Reads hovertip.yaml from the given directory (default: the current
directory) and fills unset values with platform defaults.`,
		Usage: "hovertip config [dir]",
		Run:   runConfig,
	})
}

func runConfig(args []string, out io.Writer) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	if len(args) > 1 {
		return fmt.Errorf("too many arguments\n\nUsage: hovertip config [dir]")
	}
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("config directory: %w", err)
	}

	cfg, err := config.LoadOptional(dir)
	if err != nil {
		return err
	}
	type printable struct {
		Version string `yaml:"version"`
		Delays  struct {
			Initial string `yaml:"initial"`
			Show    string `yaml:"show"`
			Between string `yaml:"between"`
		} `yaml:"delays"`
		Tolerance float64 `yaml:"tolerance"`
	}
	var p printable
	p.Version = cfg.Version
	p.Delays.Initial = config.FormatDelay(cfg.Delays.Initial)
	p.Delays.Show = config.FormatDelay(cfg.Delays.Show)
	p.Delays.Between = config.FormatDelay(cfg.Delays.Between)
	p.Tolerance = cfg.Tolerance

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}
