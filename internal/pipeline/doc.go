// Package pipeline runs the load → propagate → aggregate → rank stages over
// two input tables. It knows nothing about flags or output formats; the app
// layer owns those.
package pipeline
