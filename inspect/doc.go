// Package inspect renders bitpack layouts and record values in
// human-readable form: a field table for a layout, decoded per-field
// values for a raw storage word, and a binary dump with field
// boundaries marked.
//
// It is pure formatting over the public bitpack API; the cmd/bitpack
// CLI is its main consumer, and it is handy in tests and debug logs.
package inspect
