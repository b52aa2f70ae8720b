// Package rect is fixture input for parser and runner tests.
package rect

type Rect struct {
	w     float64 `aksr:"alias=width"`
	h     float64 `aksr:"alias=height"`
	name  string
	scale *float64
	tags  []string
	attrs map[string]string `aksr:"except=extend"`
}
