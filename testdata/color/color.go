// Package color is fixture input covering named string kinds,
// embedded fields and skipped fields.
package color

type Name string

type Base struct {
	id int
}

type Palette struct {
	Base
	primary  Name
	swatches []Name
	weights  map[string]float64
	refresh  chan struct{} `aksr:"skip"`
	Exported string
}
