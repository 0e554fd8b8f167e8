// Package pipeline runs one generation pass: load packages, collect tagged
// fields, resolve their extraction strategies, render one injector per
// owning type and hand the files to an artifact writer.
package pipeline
