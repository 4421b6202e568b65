// Package cli wires configuration, logging and the audit pipeline into the
// ux-audit command tree.
package cli
