package output

// Fixed-width text report layout.
const (
	IDWidth        = 15
	NameWidth      = 50
	SeparatorWidth = 85

	HeaderID    = "GO Class ID"
	HeaderName  = "GO Class Name"
	HeaderCount = "Gene Count"
)

// TSVHeader is the canonical header row for TSV output.
const TSVHeader = "class_id\tname\tgene_count"
