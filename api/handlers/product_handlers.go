package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"review-insight/dto"
	"review-insight/models"
	"review-insight/repositories"
	"review-insight/services"
)

// SearchProductsHandler godoc
// @Summary      Search products
// @Tags         produk
// @Param        q          query  string  false  "Name contains (case-insensitive)"
// @Param        harga_min  query  int     false  "Minimum price"
// @Param        harga_max  query  int     false  "Maximum price"
// @Param        ukuran     query  string  false  "Size"
// @Param        kondisi    query  string  false  "Condition"
// @Produce      json
// @Success      200  {array}   models.Product
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /produk [get]
func SearchProductsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := repositories.ProductFilter{
			Query:     c.Query("q"),
			Size:      c.Query("ukuran"),
			Condition: c.Query("kondisi"),
		}
		var err error
		if f.PriceMin, err = optionalInt64(c, "harga_min"); err != nil {
			badRequest(c, "harga_min harus berupa angka")
			return
		}
		if f.PriceMax, err = optionalInt64(c, "harga_max"); err != nil {
			badRequest(c, "harga_max harus berupa angka")
			return
		}

		items, err := svc.Search(c.Request.Context(), f)
		if err != nil {
			respondError(c, err, "Gagal mengambil data produk")
			return
		}
		c.JSON(http.StatusOK, productsOrEmpty(items))
	}
}

// RecommendedProductsHandler godoc
// @Summary      Recommended products
// @Description  Best selling products
// @Tags         produk
// @Param        limit  query  int  false  "Limit (default 50)"
// @Produce      json
// @Success      200  {array}  models.Product
// @Router       /produk/rekomendasi [get]
func RecommendedProductsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Recommendations(c.Request.Context(), queryInt64(c, "limit", services.DefaultRecommendationLimit))
		if err != nil {
			respondError(c, err, "Gagal mengambil produk rekomendasi")
			return
		}
		c.JSON(http.StatusOK, productsOrEmpty(items))
	}
}

// CreateProductHandler godoc
// @Summary      Create product
// @Tags         produk
// @Accept       json
// @Produce      json
// @Param        body  body      models.Product  true  "Product"
// @Success      201   {object}  models.Product
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /produk [post]
func CreateProductHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p models.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			badRequest(c, "Gagal menambah produk")
			return
		}
		out, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			respondError(c, err, "Gagal menambah produk")
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// UpdateProductHandler godoc
// @Summary      Update product
// @Description  Partial update; unknown fields are ignored
// @Tags         produk
// @Accept       json
// @Produce      json
// @Param        id    path      string  true  "Product ObjectID"
// @Param        body  body      object  true  "Fields to change"
// @Success      200   {object}  models.Product
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      404   {object}  dto.ErrorResponseDTO
// @Router       /produk/{id} [put]
func UpdateProductHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch map[string]any
		if err := c.ShouldBindJSON(&patch); err != nil {
			badRequest(c, "Gagal update produk")
			return
		}
		out, err := svc.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, err, "Gagal update produk")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// DeleteProductHandler godoc
// @Summary      Delete product
// @Tags         produk
// @Param        id   path  string  true  "Product ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /produk/{id} [delete]
func DeleteProductHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err, "Gagal hapus produk")
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Produk berhasil dihapus"})
	}
}

// ProductRatingHandler godoc
// @Summary      Average rating
// @Description  Average rating of the reviews whose product name equals the path value, three decimals
// @Tags         produk
// @Param        id   path  string  true  "Product name"
// @Produce      json
// @Success      200  {object}  dto.ProductRatingDTO
// @Router       /produk/{id}/rating [get]
func ProductRatingHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.AverageRating(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Gagal menghitung rating")
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// CountProductsHandler godoc
// @Summary      Product count
// @Tags         produk
// @Produce      json
// @Success      200  {object}  dto.CountDTO
// @Router       /produk/count [get]
func CountProductsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.Count(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal menghitung produk")
			return
		}
		c.JSON(http.StatusOK, dto.CountDTO{Count: n})
	}
}

// ProductDetailHandler godoc
// @Summary      Product detail
// @Tags         produk
// @Param        id   path  string  true  "Marketplace product id"
// @Produce      json
// @Success      200  {object}  models.Product
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /produk/detail/{id} [get]
func ProductDetailHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Detail(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Gagal mengambil produk")
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// ProductReviewsHandler godoc
// @Summary      Product sentiment records
// @Description  Sentiment records of one product, newest first
// @Tags         produk
// @Param        id   path  string  true  "Marketplace product id"
// @Produce      json
// @Success      200  {array}  models.SentimentRecord
// @Router       /produk/{id}/reviews [get]
func ProductReviewsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.Reviews(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err, "Gagal mengambil ulasan produk")
			return
		}
		if items == nil {
			items = []models.SentimentRecord{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// TopRatedProductsHandler godoc
// @Summary      Top rated products
// @Tags         produk
// @Param        limit  query  int  false  "Limit (default 5)"
// @Produce      json
// @Success      200  {array}  models.Product
// @Router       /produk/top-rated [get]
func TopRatedProductsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.TopRated(c.Request.Context(), queryInt64(c, "limit", services.DefaultTopRatedLimit))
		if err != nil {
			respondError(c, err, "Gagal mengambil produk terbaik")
			return
		}
		c.JSON(http.StatusOK, productsOrEmpty(items))
	}
}

// ProductsWithSentimentsHandler godoc
// @Summary      Products with sentiment counts
// @Description  Products that have sentiment records, with per-label counts and percentages
// @Tags         produk
// @Param        page   query  int  false  "Page (default 1)"
// @Param        limit  query  int  false  "Page size (default 10)"
// @Produce      json
// @Success      200  {object}  dto.ProductSentimentPageDTO
// @Router       /produk/with-sentiments [get]
func ProductsWithSentimentsHandler(svc *services.ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := svc.WithSentiments(c.Request.Context(), queryInt64(c, "page", 1), queryInt64(c, "limit", services.DefaultSentimentPageSize))
		if err != nil {
			respondError(c, err, "Gagal mengambil produk dengan sentimen")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func productsOrEmpty(items []models.Product) []models.Product {
	if items == nil {
		return []models.Product{}
	}
	return items
}
