package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"review-insight/models"
	"review-insight/parser"
)

type rawProduct struct {
	No              looseValue `json:"no"`
	ProductID       looseValue `json:"product_id"`
	Name            string     `json:"nama_produk"`
	Category        string     `json:"kategori"`
	Sold            looseValue `json:"terjual"`
	Rating          looseValue `json:"rating"`
	Price           looseValue `json:"harga"`
	Size            string     `json:"ukuran"`
	Condition       string     `json:"kondisi"`
	Description     string     `json:"deskripsi"`
	DescriptionHTML string     `json:"deskripsi_HTML"`
	Stock           looseValue `json:"stok"`
	Image1          string     `json:"link_Gambar 1"`
	Image2          string     `json:"link_Gambar 2"`
	Image3          string     `json:"link_Gambar 3"`
	Link            string     `json:"link"`
}

type rawReview struct {
	ProductID looseValue `json:"produk_id"`
	User      string     `json:"pengguna"`
	Product   string     `json:"produk"`
	Rating    looseValue `json:"rating"`
	Comment   string     `json:"komentar"`
	Link      string     `json:"link"`
}

// LoadProducts decodes a JSON array of scraped products. Entries without a
// name or a numeric product_id are skipped and counted.
func LoadProducts(r io.Reader) ([]models.Product, int, error) {
	var raws []rawProduct
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	out := make([]models.Product, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		p, ok := raw.toProduct()
		if !ok {
			skipped++
			continue
		}
		out = append(out, p)
	}
	return out, skipped, nil
}

func (raw rawProduct) toProduct() (models.Product, bool) {
	name := strings.TrimSpace(raw.Name)
	id, ok := ParseInt(raw.ProductID.String())
	if name == "" || !ok {
		return models.Product{}, false
	}
	no, _ := ParseInt(raw.No.String())

	description := strings.TrimSpace(raw.Description)
	if description == "" {
		description = parser.TextFromHTML(raw.DescriptionHTML)
	}

	return models.Product{
		No:              no,
		ProductID:       id,
		Name:            name,
		Category:        strings.TrimSpace(raw.Category),
		Sold:            raw.Sold.String(),
		Rating:          ParseRating(raw.Rating.String()),
		Price:           ParsePrice(raw.Price.String()),
		Size:            strings.TrimSpace(raw.Size),
		Condition:       strings.TrimSpace(raw.Condition),
		Description:     description,
		DescriptionHTML: raw.DescriptionHTML,
		Stock:           ParseStock(raw.Stock.String()),
		Image1:          raw.Image1,
		Image2:          raw.Image2,
		Image3:          raw.Image3,
		Link:            raw.Link,
	}, true
}

// LoadReviews decodes a JSON array of scraped reviews. Entries without a
// product name or with a rating outside 1-5 are skipped and counted. An
// empty comment is kept.
func LoadReviews(r io.Reader) ([]models.Review, int, error) {
	var raws []rawReview
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, 0, fmt.Errorf("decode reviews: %w", err)
	}

	out := make([]models.Review, 0, len(raws))
	skipped := 0
	for _, raw := range raws {
		rv, ok := raw.toReview()
		if !ok {
			skipped++
			continue
		}
		out = append(out, rv)
	}
	return out, skipped, nil
}

func (raw rawReview) toReview() (models.Review, bool) {
	product := strings.TrimSpace(raw.Product)
	rating, ok := ParseInt(raw.Rating.String())
	if product == "" || !ok || rating < 1 || rating > 5 {
		return models.Review{}, false
	}
	return models.Review{
		ProductID:   raw.ProductID.String(),
		User:        strings.TrimSpace(raw.User),
		ProductName: product,
		Rating:      int(rating),
		Comment:     strings.TrimSpace(raw.Comment),
		Link:        raw.Link,
	}, true
}
