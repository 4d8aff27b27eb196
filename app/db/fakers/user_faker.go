package fakers

import (
	"strings"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/ssapkota/hamropasal/app/helpers"
	"github.com/ssapkota/hamropasal/app/models"
)

func UserFaker() *models.User {
	firstName := faker.FirstName()
	lastName := faker.LastName()

	return &models.User{
		ID:            uuid.New().String(),
		Username:      strings.ToLower(firstName) + uuid.NewString()[:6],
		FirstName:     firstName,
		LastName:      lastName,
		Email:         faker.Email(),
		Phone:         faker.Phonenumber(),
		StreetAddress: faker.Sentence(),
		Password:      helpers.HashPassword("password123"),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
