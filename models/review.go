package models

// Review is a raw customer review.
// Collection: ds_ulasan
type Review struct {
	ID          FlexID `bson:"_id,omitempty" json:"_id"`
	ProductID   string `bson:"produk_id" json:"produk_id"`
	User        string `bson:"pengguna" json:"pengguna"`
	ProductName string `bson:"produk" json:"produk"`
	Rating      int    `bson:"rating" json:"rating"`
	Comment     string `bson:"komentar" json:"komentar"`
	Link        string `bson:"link,omitempty" json:"link,omitempty"`
}
