// Package engine is the resolution facade: it drives one pass over an
// experiment document, from provider registration through binding derivation
// and matrix expansion to the final substituted command lines.
//
// A pass is a pure, synchronous computation. Any configuration error aborts
// it immediately; no partial command list is ever produced. Independent
// passes over different documents are safe to run concurrently.
package engine
