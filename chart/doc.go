// Package chart holds the pieces shared by the drawing commands: a
// composable flag parser with the common figure options, input resolution
// between a file argument and piped standard input, tool-prefixed error
// reporting, style tables and figure output through gonum/plot.
package chart
