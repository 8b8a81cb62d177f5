package dto

import "review-insight/models"

// ProductSentimentPageDTO is a concrete swagger-friendly type for the paginated
// products-with-sentiments response
// swagger:model ProductSentimentPageDTO
type ProductSentimentPageDTO struct {
	Data       []models.ProductSentimentSummary `json:"data"`
	Pagination PaginationMeta                   `json:"pagination"`
}
