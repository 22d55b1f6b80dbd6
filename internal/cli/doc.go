// Package cli parses the life command line, validates user input and maps
// failures to process exit codes.
package cli
