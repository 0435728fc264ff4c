// Package scale parses "WIDTHxHEIGHT" dimension pairs and resolves the
// pixel size of an output canvas from a fit scale and an output scale.
package scale
