package pagination

// Page holds offset/limit paging parameters parsed from query strings.
type Page struct {
	Limit int
	Skip  int
}

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Normalize clamps the page to sane bounds: limit defaults to DefaultLimit,
// is capped at MaxLimit, and skip is never negative.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	return p
}

// PageResult represents one page of a total ordering.
type PageResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Skip  int   `json:"skip"`
}
