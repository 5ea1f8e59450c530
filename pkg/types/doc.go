// Package types defines the entity vocabulary, the EntityLink model, the
// store interfaces, and the standard errors for the tripgraph storage system.
package types
