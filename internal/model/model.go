// Package model holds the content types persisted as YAML and returned by the
// admin API. Each type registers a Descriptor from its init function.
package model
