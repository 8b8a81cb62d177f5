package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"review-insight/dto"
	"review-insight/models"
	"review-insight/services"
)

// ListReviewsHandler godoc
// @Summary      List reviews
// @Description  All raw reviews. Served from a short-lived cache; a stale copy is returned when the store is down.
// @Tags         ulasan
// @Produce      json
// @Success      200  {array}   models.Review
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /ulasan [get]
func ListReviewsHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Gagal mengambil data ulasan")
			return
		}
		if items == nil {
			items = []models.Review{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// ReviewsByProductHandler godoc
// @Summary      Reviews by product name
// @Description  Case-insensitive substring match on the product name, at most 50 reviews
// @Tags         ulasan
// @Param        nama_produk  path  string  true  "Product name"
// @Produce      json
// @Success      200  {array}   models.Review
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /ulasan/produk/{nama_produk} [get]
func ReviewsByProductHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.ByProductName(c.Request.Context(), c.Param("nama_produk"))
		if err != nil {
			respondError(c, err, "Gagal mengambil ulasan produk")
			return
		}
		if items == nil {
			items = []models.Review{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// ReviewsByRatingHandler godoc
// @Summary      Reviews by rating
// @Tags         ulasan
// @Param        rating  path  int  true  "Rating 1-5"
// @Produce      json
// @Success      200  {array}   models.Review
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /ulasan/rating/{rating} [get]
func ReviewsByRatingHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rating, err := strconv.Atoi(c.Param("rating"))
		if err != nil {
			badRequest(c, "Rating harus berupa angka 1-5")
			return
		}
		items, err := svc.ByRating(c.Request.Context(), rating)
		if err != nil {
			respondError(c, err, "Gagal mengambil ulasan berdasarkan rating")
			return
		}
		if items == nil {
			items = []models.Review{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateReviewHandler godoc
// @Summary      Create review
// @Description  Stores a review and classifies it, inline or through the event bus
// @Tags         ulasan
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateReviewRequest  true  "Review"
// @Success      201   {object}  models.Review
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Router       /ulasan [post]
func CreateReviewHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Data ulasan tidak lengkap: pengguna, produk, rating (1-5) dan komentar wajib diisi")
			return
		}
		review, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			respondError(c, err, "Gagal menambah ulasan")
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// DeleteReviewHandler godoc
// @Summary      Delete review
// @Description  Removes a review and its sentiment record
// @Tags         ulasan
// @Param        id   path  string  true  "Review id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /ulasan/{id} [delete]
func DeleteReviewHandler(svc *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := svc.Delete(c.Request.Context(), models.ParseFlexID(c.Param("id")))
		if err != nil {
			respondError(c, err, "Gagal menghapus ulasan")
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Ulasan berhasil dihapus"})
	}
}
