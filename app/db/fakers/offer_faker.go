package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/ssapkota/hamropasal/app/models"
)

// OfferFaker builds an active promotion banner linked to the given
// product.
func OfferFaker(product *models.Product) *models.OfferProduct {
	productID := product.ID
	return &models.OfferProduct{
		ID:        uuid.New().String(),
		Title:     faker.Word() + " offer",
		Desc:      faker.Sentence(),
		Image:     sampleImages[rand.Intn(len(sampleImages))],
		IsActive:  true,
		ProductID: &productID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
