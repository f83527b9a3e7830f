// Package config provides the default values used across the repository.
//
// There are no environment variables or flags, every default is a plain function
// so that callers can override it explicitly with the functional options of the
// respective package.
package config
