// Package example shows the accessor families aksr generates from
// field directives. Run go generate to refresh the generated file.
package example

//go:generate go run github.com/jamjamjon/aksr/cmd/aksr --type Rect,Document --output models_accessors_gen.go

type Kind string

type Rect struct {
	w     float64 `aksr:"alias=width"`
	h     float64 `aksr:"alias=height"`
	name  string
	tags  []string
	attrs map[string]string `aksr:"except=extend"`
	scale *float64
}

type Document struct {
	title    string
	kind     Kind
	sections []string
	meta     map[string]string
}
