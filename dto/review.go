package dto

// CreateReviewRequest is the body of POST /api/ulasan. ProductID is optional;
// when missing it is resolved from the product name.
type CreateReviewRequest struct {
	User        string `json:"pengguna" binding:"required" example:"budi"`
	ProductName string `json:"produk" binding:"required" example:"Erigo T-Shirt Basic Black"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment     string `json:"komentar" binding:"required" example:"Bahan adem, pengiriman cepat"`
	Link        string `json:"link" example:"https://shopee.co.id/..."`
	ProductID   string `json:"produk_id" example:"1001"`
}

type ProductRatingDTO struct {
	Rating string `json:"rating" example:"4.250"`
}

// StatisticsDTO is the body of GET /api/statistik.
type StatisticsDTO struct {
	TotalProducts int64            `json:"totalProduk"`
	TotalReviews  int64            `json:"totalUlasan"`
	MostReviewed  *MostReviewedDTO `json:"produkPalingBanyakUlasan"`
}

type MostReviewedDTO struct {
	ProductName string `json:"_id"`
	ReviewCount int64  `json:"jumlahUlasan"`
}
