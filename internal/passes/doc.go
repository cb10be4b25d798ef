// Package passes contains the collaborator normalization passes that run
// around the core engine: contraction expansion, punctuation stripping,
// spell-correction and lexicon replacement. Each pass lives in its own
// subpackage and implements the driven.Pass port.
package passes
