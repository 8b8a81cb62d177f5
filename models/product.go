package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is a catalogue entry imported from the marketplace dataset.
// Collection: ds_produk
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	No              int64              `bson:"no,omitempty" json:"no,omitempty"`
	ProductID       int64              `bson:"product_id" json:"product_id"`
	Name            string             `bson:"nama_produk" json:"nama_produk"`
	Category        string             `bson:"kategori" json:"kategori"`
	Sold            string             `bson:"terjual" json:"terjual"`
	Rating          float64            `bson:"rating" json:"rating"`
	Price           int64              `bson:"harga" json:"harga"`
	Size            string             `bson:"ukuran" json:"ukuran"`
	Condition       string             `bson:"kondisi" json:"kondisi"`
	Description     string             `bson:"deskripsi" json:"deskripsi"`
	DescriptionHTML string             `bson:"deskripsi_HTML" json:"deskripsi_HTML"`
	Stock           int64              `bson:"stok" json:"stok"`
	Image1          string             `bson:"link_Gambar 1" json:"link_Gambar 1"`
	Image2          string             `bson:"link_Gambar 2" json:"link_Gambar 2"`
	Image3          string             `bson:"link_Gambar 3" json:"link_Gambar 3"`
	Link            string             `bson:"link" json:"link"`
}

// ProductSentimentSummary is a product joined with its sentiment label counts.
type ProductSentimentSummary struct {
	ProductID          int64   `bson:"product_id" json:"product_id"`
	Name               string  `bson:"nama_produk" json:"nama_produk"`
	Category           string  `bson:"kategori" json:"kategori"`
	Price              int64   `bson:"harga" json:"harga"`
	Rating             float64 `bson:"rating" json:"rating"`
	Image1             string  `bson:"link_Gambar 1" json:"link_Gambar 1"`
	SentimentCount     int64   `bson:"sentimentCount" json:"sentimentCount"`
	PositiveCount      int64   `bson:"positiveCount" json:"positiveCount"`
	NegativeCount      int64   `bson:"negativeCount" json:"negativeCount"`
	NeutralCount       int64   `bson:"neutralCount" json:"neutralCount"`
	PositivePercentage float64 `bson:"positivePercentage" json:"positivePercentage"`
	NegativePercentage float64 `bson:"negativePercentage" json:"negativePercentage"`
}
