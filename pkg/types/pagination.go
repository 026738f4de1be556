package types

const (
	DefaultSkip  uint64 = 0
	DefaultLimit uint64 = 100
)

// Pagination - простое смещение/лимит, без метаданных о количестве.
type Pagination struct {
	Skip  uint64 `json:"skip"`
	Limit uint64 `json:"limit"`
}

func DefaultPagination() Pagination {
	return Pagination{Skip: DefaultSkip, Limit: DefaultLimit}
}
