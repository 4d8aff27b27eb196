package seeders

import (
	"context"
	"log"
	"math/rand"

	"github.com/ssapkota/hamropasal/app/db/fakers"
	"github.com/ssapkota/hamropasal/app/models"
	"github.com/ssapkota/hamropasal/app/repositories"
	"gorm.io/gorm"
)

const (
	seedCategories     = 4
	seedProductsPerSub = 3
	seedUsers          = 5
	seedOffers         = 3
	seedBlogCategories = 3
	seedTags           = 8
	seedBlogPosts      = 12
)

// DBSeed fills an empty database with fake catalog, user and blog
// content for local development. Writes go through the repositories so
// the same write-path rules (derived prices, slug hooks) apply to seed
// data.
func DBSeed(db *gorm.DB) error {
	ctx := context.Background()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	blogRepo := repositories.NewBlogRepository(db)

	users := make([]*models.User, 0, seedUsers)
	for i := 0; i < seedUsers; i++ {
		user := fakers.UserFaker()
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	var products []*models.Product
	for i := 0; i < seedCategories; i++ {
		category := fakers.CategoryFaker()
		if err := categoryRepo.Create(ctx, category); err != nil {
			return err
		}
		for j := range category.SubCategories {
			for k := 0; k < seedProductsPerSub; k++ {
				product := fakers.ProductFaker(category, &category.SubCategories[j])
				if err := productRepo.Create(ctx, product); err != nil {
					return err
				}
				products = append(products, product)
			}
		}
	}
	log.Printf("Seeded %d products across %d categories", len(products), seedCategories)

	for i := 0; i < seedOffers && i < len(products); i++ {
		offer := fakers.OfferFaker(products[rand.Intn(len(products))])
		if err := offerRepo.Create(ctx, offer); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d offers", seedOffers)

	blogCategories := make([]*models.BlogCategory, 0, seedBlogCategories)
	for i := 0; i < seedBlogCategories; i++ {
		category := fakers.BlogCategoryFaker()
		if err := db.Create(category).Error; err != nil {
			return err
		}
		blogCategories = append(blogCategories, category)
	}

	tags := make([]models.Tag, 0, seedTags)
	for i := 0; i < seedTags; i++ {
		tag := fakers.TagFaker()
		if err := db.Create(tag).Error; err != nil {
			return err
		}
		tags = append(tags, *tag)
	}

	for i := 0; i < seedBlogPosts; i++ {
		author := users[rand.Intn(len(users))]
		category := blogCategories[rand.Intn(len(blogCategories))]
		postTags := tags[:rand.Intn(3)+1]
		post := fakers.BlogPostFaker(author, category, postTags)
		if err := blogRepo.CreatePost(ctx, post); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d blog posts", seedBlogPosts)

	return nil
}
