// Package app wires a resolved config.Config into a Monte Carlo run: it
// builds the logger, picks the seed, runs the simulation and writes the
// three-line report.
package app
