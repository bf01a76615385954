package recsum

// Record is one validated input element. It exists only transiently between
// validation and accumulation; nothing stores it.
type Record struct {
	ID    int64
	Name  string
	Value float64
}

// Summary is the sole output artifact of a run.
type Summary struct {
	Count      int     `json:"count"`
	TotalValue float64 `json:"total_value"`
	AvgValue   float64 `json:"avg_value"` // TotalValue/Count, or 0 for empty input
}

// Format selects the input encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "YAML"
	}
	return "JSON"
}
