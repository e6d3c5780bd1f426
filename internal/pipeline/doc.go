// Package pipeline implements the stages of the manpage assembly:
// block documentation extraction, Markdown to roff conversion, section
// header insertion, and inspection of the generated documentation.
package pipeline
