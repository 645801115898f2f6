// Package model contains data structures for launch parameters, the resolved search config and node DTOs
package model

type AppMode string

const (
	ModeSearch = AppMode("search")
	ModeNode   = AppMode("node")
)

// AppInit - resolved launch parameters of the app
type AppInit struct {
	Mode    AppMode
	Address string     // only for ModeNode
	Verbose bool       // debug logging to stderr
	Run     *RunConfig // only for ModeSearch
}

// RunConfig - what to search for and where; immutable once resolved
type RunConfig struct {
	Query         string
	FilePath      string
	CaseSensitive bool
}

// SearchTask - request body accepted by the search node
type SearchTask struct {
	TaskID        string `json:"tid"`
	Query         string `json:"query"`
	CaseSensitive bool   `json:"case_sensitive"`
	Content       string `json:"content"`
}

// SearchResult - response of the search node; HashSumm is an xxhash of Lines
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Lines    []string `json:"lines"`
}
