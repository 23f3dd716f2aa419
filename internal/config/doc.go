// Package config holds the run configuration of the percolate command and
// resolves it from positional arguments, flags and PERCOLATE_* environment
// variables. Precedence is flag > environment > default.
package config
