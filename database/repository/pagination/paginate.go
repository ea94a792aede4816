package pagination

type Paginate struct {
	Page     int
	Limit    int
	NumItems int64
}

// MakePaginate clamps the caller-supplied page/limit values instead of
// failing: malformed pagination is never fatal.
func MakePaginate(page, limit int) Paginate {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Paginate{Page: page, Limit: limit}
}

func (a *Paginate) SetNumItems(number int64) {
	a.NumItems = number
}

func (a *Paginate) GetNumItemsAsInt() int64 {
	return a.NumItems
}

func (a *Paginate) GetNumItemsAsFloat() float64 {
	return float64(a.NumItems)
}

func (a *Paginate) GetLimit() int {
	return a.Limit
}

func (a *Paginate) GetOffset() int {
	return (a.Page - 1) * a.Limit
}
