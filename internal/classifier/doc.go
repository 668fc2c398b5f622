// Package classifier implements the trainable statistical classifier: a
// multinomial naive Bayes model over word tokens, backed by
// github.com/jbrukh/bayesian and normalized from its log scores.
//
// A Model is an immutable snapshot. Classifier publishes exactly one active
// Model through an atomic pointer; retraining builds a new Model off to the
// side and swaps it in, so concurrent classification always sees either the
// old or the new model and never a partially updated one.
package classifier
