package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jamjamjon/aksr/internal/cli"
	"github.com/jamjamjon/aksr/internal/generator"
	"github.com/jamjamjon/aksr/internal/parser"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	p := parser.New()
	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(p, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
