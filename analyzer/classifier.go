// Package analyzer implements the rule-based review sentiment engine: rating
// based labelling, per-aspect lexicon scoring, keyword ranking and complaint
// attribution. Every function here is pure; persistence is left to callers.
package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"review-insight/models"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrMissingField  = errors.New("missing required review field")
)

const (
	scorePositive  = 0.8
	scoreNegative  = 0.2
	scoreUnmatched = 0.5
)

// LabelForRating maps a 1..5 rating onto the overall label.
func LabelForRating(rating int) models.Label {
	switch {
	case rating >= 4:
		return models.LabelPositive
	case rating <= 2:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// ScoreForRating is the linear transform (rating-1)/4.
func ScoreForRating(rating int) float64 {
	return float64(rating-1) / 4
}

// Classify derives the sentiment record of a review. The returned record has
// no timestamps; the store sets them on write.
func Classify(review models.Review) (models.SentimentRecord, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.SentimentRecord{}, fmt.Errorf("%w: got %d", ErrInvalidRating, review.Rating)
	}
	if review.ID.IsZero() {
		return models.SentimentRecord{}, fmt.Errorf("%w: review id", ErrMissingField)
	}
	productID := models.ParseFlexID(review.ProductID)
	if productID.IsZero() {
		return models.SentimentRecord{}, fmt.Errorf("%w: product id", ErrMissingField)
	}

	aspects, praised, criticised := scoreAspects(review.Comment)

	return models.SentimentRecord{
		ReviewID:  review.ID,
		ProductID: productID,
		Comment:   review.Comment,
		Rating:    review.Rating,
		User:      review.User,
		Score:     ScoreForRating(review.Rating),
		Label:     LabelForRating(review.Rating),
		Aspects:   aspects,
		Rationale: rationale(review.Rating, praised, criticised),
	}, nil
}

func scoreAspects(comment string) (models.Aspects, []string, []string) {
	var aspects models.Aspects
	var praised, criticised []string

	text := strings.ToLower(comment)
	for _, rule := range aspectRules {
		score := models.AspectScore{Score: scoreUnmatched, Label: models.AspectNeutral}
		if text != "" {
			switch {
			case containsAny(text, rule.positive):
				score = models.AspectScore{Score: scorePositive, Label: models.AspectPositive}
				praised = append(praised, rule.title)
			case containsAny(text, rule.negative):
				score = models.AspectScore{Score: scoreNegative, Label: models.AspectNegative}
				criticised = append(criticised, rule.title)
			}
		}
		aspects.Set(rule.name, score)
	}
	return aspects, praised, criticised
}

func rationale(rating int, praised, criticised []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analisis sentimen berdasarkan rating %d/5 dan konten ulasan.", rating)
	if len(praised) > 0 {
		b.WriteString(" Pelanggan mengapresiasi " + strings.Join(praised, ", ") + ".")
	}
	if len(criticised) > 0 {
		b.WriteString(" Pelanggan mengkritisi " + strings.Join(criticised, ", ") + ".")
	}
	return b.String()
}

func containsAny(text string, stems []string) bool {
	for _, s := range stems {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
