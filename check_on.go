//go:build bitpackcheck

package bitpack

// overflowChecks enables the development-time assertion that values
// passed to Set fit their field's width. Build with -tags bitpackcheck.
const overflowChecks = true
