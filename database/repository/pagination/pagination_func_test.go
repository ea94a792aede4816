package pagination

import "testing"

func TestMakePaginationTotals(t *testing.T) {
	paginate := MakePaginate(2, 2)
	paginate.SetNumItems(5)

	page := MakePagination([]int{3, 4}, paginate)

	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", page.TotalPages)
	}

	if page.Total != 5 {
		t.Fatalf("expected total 5, got %d", page.Total)
	}

	if page.NextPage == nil || *page.NextPage != 3 {
		t.Fatalf("expected next page 3")
	}

	if page.PreviousPage == nil || *page.PreviousPage != 1 {
		t.Fatalf("expected previous page 1")
	}
}

func TestMakePaginateClampsInput(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultLimit},
		{-3, -1, 1, DefaultLimit},
		{2, 500, 2, MaxLimit},
		{4, 12, 4, 12},
	}

	for _, c := range cases {
		got := MakePaginate(c.page, c.limit)

		if got.Page != c.wantPage || got.Limit != c.wantLimit {
			t.Fatalf("MakePaginate(%d, %d) = %+v", c.page, c.limit, got)
		}
	}
}

func TestHydrateKeepsMetadata(t *testing.T) {
	paginate := MakePaginate(1, 2)
	paginate.SetNumItems(3)

	source := MakePagination([]int{1, 2}, paginate)
	mapped := Hydrate(source, func(i int) string {
		if i == 1 {
			return "one"
		}
		return "two"
	})

	if mapped.TotalPages != source.TotalPages || mapped.Total != source.Total {
		t.Fatalf("metadata lost during hydration")
	}

	if len(mapped.Data) != 2 || mapped.Data[0] != "one" {
		t.Fatalf("unexpected mapped data: %+v", mapped.Data)
	}
}
