// Package rewriters groups the per-kind span rewriters of the core
// engine. Each subpackage converts one span kind into its spoken form
// behind the driven.Rewriter port.
package rewriters
