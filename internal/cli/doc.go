// Package cli parses command-line arguments into an app.Request, layering
// flags over the environment-derived configuration, and carries exit codes
// back to main.
package cli
