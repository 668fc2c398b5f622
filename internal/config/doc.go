// Package config provides configuration structures and utilities for scamscan.
// It defines engine settings, the optional .scamscan configuration file,
// report preferences, and the versioned lexicon resource that carries the
// keyword vocabularies, regex signatures and the classifier seed corpus.
package config
