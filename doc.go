// Package percolate estimates the site-percolation threshold of square grids
// by Monte Carlo simulation.
//
// 🚀 What is percolate?
//
//	A small, dependency-light toolkit that brings together:
//		• unionfind   — weighted quick-union with path halving over [0, N)
//		• percolation — n×n site grid answering IsOpen / IsFull / Percolates incrementally
//		• montecarlo  — repeated trials, seedable RNG, mean / stddev / 95% CI
//
// ✨ Why two union-find universes?
//
//	Percolation is answered by one universe holding virtual TOP and BOTTOM
//	nodes. Fullness is answered by a second universe that only knows TOP,
//	so bottom-row sites are never reported full just because the grid
//	percolates somewhere else ("backwash").
//
// Quick ASCII example (3×3, X = open):
//
//	X . .
//	X . .      percolates: true
//	X . X      (3,3) full: false
//
// Command line:
//
//	go run ./cmd/percolate [--seed S] [--log-level L] [--log-format F] <n> <trials>
//
//	mean                    = 0.5929...
//	stddev                  = 0.0087...
//	95% confidence interval = [0.5927..., 0.5931...]
package percolate
