// Package textutil provides the title handling shared by the tracker and the
// CLI: normalization, display casing, and fuzzy matching used to suggest a
// title when a lookup misses.
//
// Fingerprints are character bigram frequency vectors over the case-folded
// title, padded with a boundary marker so short titles and transposed letters
// still share terms. Similarity is the cosine of two fingerprints.
package textutil
