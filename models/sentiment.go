package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Label is the overall sentiment of a review.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
)

// Labels lists the overall labels in reporting order.
var Labels = []Label{LabelPositive, LabelNeutral, LabelNegative}

// AspectLabel is stored in Indonesian to stay readable by existing dashboards.
type AspectLabel string

const (
	AspectPositive AspectLabel = "positif"
	AspectNeutral  AspectLabel = "netral"
	AspectNegative AspectLabel = "negatif"
)

// AspectName identifies one of the four scored aspects.
type AspectName string

const (
	AspectPrice    AspectName = "harga"
	AspectQuality  AspectName = "kualitas"
	AspectShipping AspectName = "pengiriman"
	AspectService  AspectName = "pelayanan"
)

type AspectScore struct {
	Score float64     `bson:"skor" json:"skor"`
	Label AspectLabel `bson:"label" json:"label"`
}

// Aspects always carries all four keys.
type Aspects struct {
	Price    AspectScore `bson:"harga" json:"harga"`
	Quality  AspectScore `bson:"kualitas" json:"kualitas"`
	Shipping AspectScore `bson:"pengiriman" json:"pengiriman"`
	Service  AspectScore `bson:"pelayanan" json:"pelayanan"`
}

// Get returns the score for name; unknown names yield the zero value.
func (a Aspects) Get(name AspectName) AspectScore {
	switch name {
	case AspectPrice:
		return a.Price
	case AspectQuality:
		return a.Quality
	case AspectShipping:
		return a.Shipping
	case AspectService:
		return a.Service
	}
	return AspectScore{}
}

func (a *Aspects) Set(name AspectName, s AspectScore) {
	switch name {
	case AspectPrice:
		a.Price = s
	case AspectQuality:
		a.Quality = s
	case AspectShipping:
		a.Shipping = s
	case AspectService:
		a.Service = s
	}
}

// SentimentRecord is the derived analysis of a single review.
// Collection: ds_sentimen
type SentimentRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ReviewID  FlexID             `bson:"ulasanId" json:"ulasanId"`
	ProductID FlexID             `bson:"produkId" json:"produkId"`
	Comment   string             `bson:"komentarUlasan" json:"komentarUlasan"`
	Rating    int                `bson:"ratingUlasan" json:"ratingUlasan"`
	User      string             `bson:"pengguna" json:"pengguna"`
	Score     float64            `bson:"skor" json:"skor"`
	Label     Label              `bson:"label" json:"label"`
	Aspects   Aspects            `bson:"aspek" json:"aspek"`
	Rationale string             `bson:"alasan" json:"alasan"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
