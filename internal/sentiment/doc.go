// Package sentiment scores the lexical polarity of normalized text with an
// AFINN-style word list. Scam content tends toward overly positive,
// too-good-to-be-true language, which the risk policies use as a weak signal.
package sentiment
