package dto

// ErrorResponseDTO is the common error body.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Rating harus berupa angka 1-5"`
}

// MessageResponseDTO is a plain acknowledgement body.
type MessageResponseDTO struct {
	Message string `json:"message" example:"Ulasan berhasil dihapus"`
}

type CountDTO struct {
	Count int64 `json:"count" example:"42"`
}

// Pagination is a generic page envelope.
type Pagination[T any] struct {
	Data       []T            `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	TotalPages int64 `json:"totalPages"`
}

func NewPagination[T any](items []T, total, page, limit int64) Pagination[T] {
	var pages int64
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	if items == nil {
		items = []T{}
	}
	return Pagination[T]{
		Data:       items,
		Pagination: PaginationMeta{Total: total, Page: page, TotalPages: pages},
	}
}
