// Package crosscheck runs query pipelines twice, once through the
// in-memory operators and once as compiled SQL against the store, and
// compares the resulting id sequences element by element.
//
// A check passes only when both sides return the same ids in the same
// order, so it verifies the stable multi-key ordering and the
// order-preserving filters, not just set membership.
package crosscheck
