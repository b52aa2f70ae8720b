package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/jamjamjon/aksr/internal/descriptor"
	"github.com/jamjamjon/aksr/internal/synth"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

// Generator renders accessor methods for structs into one Go source file.
type Generator interface {
	Generate(cfg Config, pkgName string, structs []synth.StructMethods) error
}

// Config is the minimum config contract required by generator.
type Config interface {
	OutputFilename() string
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package string
	Structs []structTemplateData
}

type structTemplateData struct {
	Name    string
	Methods []string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a plain file writer.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Generate(cfg Config, pkgName string, structs []synth.StructMethods) error {
	if len(structs) == 0 {
		return fmt.Errorf("no structs to generate for")
	}

	data, err := buildTemplateData(pkgName, structs)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "accessors.go.tmpl", data); err != nil {
		return fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(cfg.OutputFilename(), buf.Bytes())
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if err := g.writer.Write(cfg.OutputFilename(), formatted); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}

func (w *fileWriter) Write(filename string, data []byte) error {
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(pkgName string, structs []synth.StructMethods) (templateData, error) {
	data := templateData{Package: pkgName}
	for _, sm := range structs {
		if sm.Struct.Kind == descriptor.KindPositional {
			return templateData{}, fmt.Errorf(
				"struct %q: positional structures cannot be rendered as Go methods", sm.Struct.Name)
		}
		std := structTemplateData{Name: sm.Struct.Name}
		for _, spec := range sm.Specs {
			src, err := renderMethod(sm.Struct.Name, spec)
			if err != nil {
				return templateData{}, err
			}
			std.Methods = append(std.Methods, src)
		}
		data.Structs = append(data.Structs, std)
	}
	return data, nil
}
