// Package tripgraph holds module-level metadata.
package tripgraph

// Version is the current tripgraph release.
const Version = "v0.3.0"
