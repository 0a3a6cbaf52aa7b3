// Package writers turns ranked classes into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text table, TSV, JSON/JSONL, YAML).
//   • Core packages stay domain-only; the pipeline stays orchestration-only.
//   • JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
