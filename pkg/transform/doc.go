// Package transform turns raw parameters into the string context handed to
// the template engine.
//
// Scalars print the way Twig prints PHP values. Sequences become PHP
// short-array literals with one single-quoted element per line. A missing
// hash_salt is generated from a secure random source.
package transform
