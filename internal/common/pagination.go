package common

// Pagination holds paging metadata for list responses.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewPagination derives page metadata from the request window and total count.
func NewPagination(page, perPage, totalItems int) Pagination {
	pages := 0
	if perPage > 0 {
		pages = (totalItems + perPage - 1) / perPage
	}
	return Pagination{Page: page, PerPage: perPage, TotalItems: totalItems, TotalPages: pages}
}
