// Package language holds the fixed table of languages TreeTagger models
// exist for, keyed by the character encoding each model was trained with.
//
// Every adapter construction goes through this table: a language paired
// with the wrong encoding is rejected before any binary lookup happens.
package language
