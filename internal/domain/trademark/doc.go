// Package trademark implements the similarity engine that decides which
// registered trademark records are close enough to a newly observed record to
// warrant human review.
//
// The engine is a pipeline of pure functions over in-memory strings and
// records:
//
//	record pair → field resolution → normalization →
//	    phonetic scoring + fuzzy scoring → weighted fusion →
//	    per-pair score → corpus matching → classification → report
//
// Every operation in this package is a total function over its documented
// input domain: malformed or partial records degrade to empty strings and
// zero scores, never errors.  Nothing here performs I/O, caches results, or
// holds state; concurrent callers are safe as long as each passes its own
// corpus snapshot.
package trademark
