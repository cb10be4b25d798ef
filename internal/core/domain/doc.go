// Package domain contains the core types of the vocalise normalization
// engine: classified text spans, the semantic values extracted from them
// (numbers, clock times, calendar dates, arithmetic expressions), and the
// configuration policies that govern how they are spoken.
//
// The domain layer has no dependencies outside the standard library.
package domain
