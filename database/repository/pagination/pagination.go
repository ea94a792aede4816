package pagination

import "math"

const DefaultLimit = 10
const MaxLimit = 100

// Pagination holds the data for a single page along with all pagination
// metadata. It's generic and can be used for any data type.
//
// NextPage and PreviousPage are pointers (*int) so they can be nil (and
// omitted from JSON output) when there isn't a next or previous page.
type Pagination[T any] struct {
	Data         []T   `json:"data"`
	Page         int   `json:"page"`
	Total        int64 `json:"total"`
	PageSize     int   `json:"page_size"`
	TotalPages   int   `json:"total_pages"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func MakePagination[T any](data []T, paginate Paginate) *Pagination[T] {
	pSize := float64(paginate.Limit)
	if pSize <= 0 {
		pSize = DefaultLimit
	}

	totalPages := int(
		math.Ceil(paginate.GetNumItemsAsFloat() / pSize),
	)

	pagination := Pagination[T]{
		Data:       data,
		Page:       paginate.Page,
		Total:      paginate.GetNumItemsAsInt(),
		PageSize:   paginate.Limit,
		TotalPages: totalPages,
	}

	if pagination.Page < pagination.TotalPages {
		p := pagination.Page + 1
		pagination.NextPage = &p
	}

	if pagination.Page > 1 && pagination.Page <= pagination.TotalPages {
		p := pagination.Page - 1
		pagination.PreviousPage = &p
	}

	return &pagination
}

// Hydrate transforms a paginated result containing items of a source type (S)
// into a new result containing items of a destination type (D), preserving
// all pagination metadata.
func Hydrate[S any, D any](source *Pagination[S], mapper func(S) D) *Pagination[D] {
	mappedData := make([]D, len(source.Data))

	for i, item := range source.Data {
		mappedData[i] = mapper(item)
	}

	return &Pagination[D]{
		Data:         mappedData,
		Total:        source.Total,
		Page:         source.Page,
		PageSize:     source.PageSize,
		TotalPages:   source.TotalPages,
		NextPage:     source.NextPage,
		PreviousPage: source.PreviousPage,
	}
}
