package fakers

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/ssapkota/hamropasal/app/models"
)

func BlogCategoryFaker() *models.BlogCategory {
	name := faker.Word() + " " + uuid.NewString()[:4]
	return &models.BlogCategory{
		ID:          uuid.New().String(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: faker.Sentence(),
		CreatedAt:   time.Now(),
	}
}

func TagFaker() *models.Tag {
	name := faker.Word() + " " + uuid.NewString()[:4]
	return &models.Tag{
		ID:   uuid.New().String(),
		Name: name,
		Slug: slug.Make(name),
	}
}

// BlogPostFaker builds a published post by the given author, tagged
// with the given tags. Roughly one in four comes out featured.
func BlogPostFaker(author *models.User, category *models.BlogCategory, tags []models.Tag) *models.BlogPost {
	title := faker.Sentence()
	categoryID := category.ID

	return &models.BlogPost{
		ID:            uuid.New().String(),
		Title:         title,
		Slug:          slug.Make(title + "-" + uuid.NewString()[:6]),
		AuthorID:      author.ID,
		CategoryID:    &categoryID,
		Tags:          tags,
		FeaturedImage: sampleImages[rand.Intn(len(sampleImages))],
		Excerpt:       faker.Sentence(),
		Content:       faker.Paragraph(),
		Views:         uint(rand.Intn(500)),
		IsPublished:   true,
		IsFeatured:    rand.Intn(4) == 0,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}
