// Package diag defines the scanner/parser diagnostic model: severities,
// stable codes, and a Bag that collects diagnostics for a single parse.
package diag
