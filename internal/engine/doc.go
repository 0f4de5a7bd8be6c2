// Package engine contains the core scanning logic for VibeShield. It reads
// one file (or a tree of files in a sweep), runs the extractor and classifier
// over the text, and returns structured results. This package is internal;
// external consumers should use the stable facade in pkg/core.
package engine
