package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config.
func ParseArgs(args []string) (*Config, error) {
	cfg := &Config{}
	var typesRaw string
	var copyTypesRaw string

	fs := pflag.NewFlagSet("aksr", pflag.ContinueOnError)
	fs.StringVarP(&typesRaw, "type", "t", "", "comma-separated struct type names")
	fs.StringVar(&cfg.Path, "path", ".", "package path or pattern to load")
	fs.StringVarP(&cfg.Filename, "output", "o", "aksr_gen.go", "output file name")
	fs.StringVar(&cfg.Tag, "tag", "aksr", "struct tag key holding directives")
	fs.StringVar(&copyTypesRaw, "copy-types", "", "comma-separated named types treated as plain values")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "dump resolved plans to stderr")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.Types = splitCommaList(typesRaw)
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("--type is required")
	}
	if strings.TrimSpace(cfg.Filename) == "" {
		return nil, fmt.Errorf("--output must not be empty")
	}
	if strings.TrimSpace(cfg.Tag) == "" {
		return nil, fmt.Errorf("--tag must not be empty")
	}

	cfg.CopyTypes = splitCommaList(copyTypesRaw)
	return cfg, nil
}

func splitCommaList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
