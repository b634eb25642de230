package domain

// DatasetSummary describes the current registry entry of a dataset.
type DatasetSummary struct {
	Name    string   `json:"name"`
	Source  string   `json:"source"`
	Rows    int      `json:"rows"`
	Columns []Column `json:"columns"`
}
