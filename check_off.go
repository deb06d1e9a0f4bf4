//go:build !bitpackcheck

package bitpack

// overflowChecks gates the advisory value-fits-field assertion in Set.
// It is a constant so the release-mode branch compiles away entirely.
const overflowChecks = false
