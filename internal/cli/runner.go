package cli

import (
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/jamjamjon/aksr/internal/classifier"
	"github.com/jamjamjon/aksr/internal/generator"
	"github.com/jamjamjon/aksr/internal/parser"
	"github.com/jamjamjon/aksr/internal/resolver"
	"github.com/jamjamjon/aksr/internal/synth"
)

// Runner orchestrates parser/resolver/synth/generator layers.
type Runner interface {
	Run(cfg *Config) error
}

type runnerImpl struct {
	parser    parser.Parser
	generator generator.Generator
}

// NewRunner creates a default runner implementation.
func NewRunner(p parser.Parser, g generator.Generator) Runner {
	return &runnerImpl{parser: p, generator: g}
}

// Run executes a single generation cycle.
func (r *runnerImpl) Run(cfg *Config) error {
	engine := resolver.New(classifier.New(cfg.CopyTypes...))

	targets, err := r.parser.Parse(cfg.Path, cfg.Types, cfg.Tag)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(targets) == 0 {
		return fmt.Errorf("no structs found for types %v in %q", cfg.Types, cfg.Path)
	}

	pkgName := targets[0].PkgName
	structs := make([]synth.StructMethods, 0, len(targets))
	for _, target := range targets {
		if target.PkgName != pkgName {
			return fmt.Errorf(
				"struct %q lives in package %q, expected %q: one output file covers one package",
				target.Struct.Name, target.PkgName, pkgName)
		}

		plans, err := engine.ResolveStruct(target.Struct)
		if err != nil {
			return fmt.Errorf("resolve: %w", err)
		}
		if cfg.Verbose {
			log.Printf("aksr: plans for %s:\n%s", target.Struct.Name, spew.Sdump(plans))
		}

		methods, err := synth.Synthesize(target.Struct, plans)
		if err != nil {
			return fmt.Errorf("synthesize struct %q: %w", target.Struct.Name, err)
		}
		structs = append(structs, methods)
	}

	return r.generator.Generate(cfg, pkgName, structs)
}
