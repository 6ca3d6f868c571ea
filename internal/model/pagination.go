package model

// Pagination mirrors the backend's paging block. The server owns Total and Pages.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Normalize fills Pages from Total and Limit when the server left it out.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Pages == 0 && p.Limit > 0 && p.Total > 0 {
		p.Pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return p
}

// HasPrev reports whether a previous page can be requested.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page can be requested.
func (p Pagination) HasNext() bool {
	return p.Page < p.Pages
}
