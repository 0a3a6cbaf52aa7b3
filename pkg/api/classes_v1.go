package api

// ClassCountV1 is the stable JSON/JSONL/YAML schema for one ranked GO class.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ClassCountV1 struct {
	ClassID   string `json:"class_id" yaml:"class_id"`
	Name      string `json:"name" yaml:"name"`
	GeneCount int    `json:"gene_count" yaml:"gene_count"`
}
