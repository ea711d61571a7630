package main

import (
	"log"
	"time"

	"attire/internal/models"
	"attire/internal/repositories"
)

// seedCatalog populates an empty product repository with the starter catalog.
// The slice order is the curated "featured" order on the storefront.
func seedCatalog(repo repositories.ProductRepository) {
	count, err := repo.Count()
	if err != nil {
		log.Printf("Error checking catalog before seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	products := []models.Product{
		{
			ID:          "5a1f2c48-6a9e-4f60-9d71-0b1f0f6a2c01",
			Name:        "Essential Cotton Tee",
			Price:       45,
			Category:    models.CategoryUnisex,
			Images:      []string{"/images/white-tee.jpg", "/images/white-tee-back.jpg"},
			Description: "Premium organic cotton t-shirt with a relaxed fit. Perfect for everyday wear.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Navy", "Stone"},
			Tags:        []string{"sustainable"},
			Material:    "Organic cotton",
			IsNew:       true,
			IsFeatured:  true,
			Stock:       120,
		},
		{
			ID:          "9c3b7a10-2f44-4f9e-8d2a-5e6f7a8b9c02",
			Name:        "Tailored Wool Blazer",
			Price:       285,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/blazer.jpg", "/images/blazer-detail.jpg"},
			Description: "Elegant wool blazer with structured shoulders and a modern silhouette.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Charcoal", "Camel", "Navy"},
			Material:    "Wool",
			IsFeatured:  true,
			Stock:       45,
		},
		{
			ID:          "b7e4d2f6-8c15-4a3b-9e0d-1f2a3b4c5d03",
			Name:        "Slim Fit Chinos",
			Price:       98,
			Category:    models.CategoryMen,
			Images:      []string{"/images/chinos.jpg", "/images/chinos-side.jpg"},
			Description: "Modern slim-fit chinos crafted from stretch cotton twill.",
			Sizes:       []string{"28", "30", "32", "34", "36"},
			Colors:      []string{"Khaki", "Navy", "Olive", "Black"},
			IsNew:       true,
			Stock:       80,
		},
		{
			ID:          "e1d0c9b8-a7f6-4e5d-8c4b-3a2f1e0d9c04",
			Name:        "Cashmere Sweater",
			Price:       195,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/cashmere.jpg", "/images/cashmere-detail.jpg"},
			Description: "Luxuriously soft cashmere crewneck sweater.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Ivory", "Blush", "Charcoal"},
			Material:    "Cashmere",
			Stock:       60,
		},
		{
			ID:          "4f5e6d7c-8b9a-4c1d-9e2f-3a4b5c6d7e05",
			Name:        "Relaxed Denim Jacket",
			Price:       135,
			Category:    models.CategoryUnisex,
			Images:      []string{"/images/denim-jacket.jpg", "/images/denim-jacket-back.jpg"},
			Description: "Classic denim jacket with a comfortable relaxed fit.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Light Wash", "Dark Wash", "Black"},
			IsNew:       true,
			IsFeatured:  true,
			Stock:       95,
		},
		{
			ID:          "8a9b0c1d-2e3f-4a5b-8c6d-7e8f9a0b1c06",
			Name:        "Oxford Button-Down",
			Price:       78,
			Category:    models.CategoryMen,
			Images:      []string{"/images/oxford.jpg", "/images/oxford-detail.jpg"},
			Description: "Timeless oxford cloth button-down shirt.",
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"White", "Blue", "Pink"},
			Stock:       110,
		},
		{
			ID:          "2b3c4d5e-6f7a-4b8c-9d0e-1f2a3b4c5d07",
			Name:        "Leather Ankle Boots",
			Price:       245,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/boots.jpg", "/images/boots-side.jpg"},
			Description: "Premium leather ankle boots with a sleek silhouette.",
			Sizes:       []string{"6", "7", "8", "9", "10"},
			Colors:      []string{"Black", "Brown", "Cognac"},
			Material:    "Leather",
			IsNew:       true,
			Stock:       55,
		},
		{
			ID:          "6c7d8e9f-0a1b-4c2d-8e3f-4a5b6c7d8e08",
			Name:        "Midi Wrap Dress",
			Price:       165,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/midi-dress.jpg", "/images/midi-dress-detail.jpg"},
			Description: "Elegant midi dress with flattering wrap design.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "Navy", "Forest Green"},
			IsFeatured:  true,
			Stock:       70,
		},
		{
			ID:          "0d1e2f3a-4b5c-4d6e-9f7a-8b9c0d1e2f09",
			Name:        "Classic Trench Coat",
			Price:       325,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/trench.jpg", "/images/trench-back.jpg"},
			Description: "Iconic trench coat in water-resistant fabric.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Beige", "Black", "Navy"},
			Stock:       40,
		},
		{
			ID:          "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c10",
			Name:        "Athletic Joggers",
			Price:       68,
			Category:    models.CategoryUnisex,
			Images:      []string{"/images/joggers.jpg", "/images/joggers-side.jpg"},
			Description: "Comfortable cotton-blend joggers for active days.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Gray", "Black", "Navy"},
			IsNew:       true,
			Stock:       150,
		},
		{
			ID:          "c5d6e7f8-a9b0-4c1d-8e2f-3a4b5c6d7e11",
			Name:        "Merino Wool Cardigan",
			Price:       145,
			Category:    models.CategoryMen,
			Images:      []string{"/images/cardigan.jpg"},
			Description: "Soft merino wool cardigan with button closure.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Navy", "Charcoal", "Oatmeal"},
			Material:    "Merino wool",
			Stock:       65,
		},
		{
			ID:          "f9a0b1c2-d3e4-4f5a-9b6c-7d8e9f0a1b12",
			Name:        "Silk Blouse",
			Price:       125,
			Category:    models.CategoryWomen,
			Images:      []string{"/images/silk-blouse.jpg"},
			Description: "Elegant silk blouse with delicate draping.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Ivory", "Blush", "Navy"},
			Material:    "Silk",
			IsFeatured:  true,
			Stock:       50,
		},
	}

	for i := range products {
		if err := repo.Create(&products[i]); err != nil {
			log.Printf("Error seeding product %s: %v", products[i].Name, err)
		} else {
			log.Printf("Seeded product: %s (ID: %s)", products[i].Name, products[i].ID)
		}
	}
}

// seedAttributes populates the managed attribute lists shown in the admin
// attribute manager when they are empty.
func seedAttributes(repo repositories.AttributeRepository) {
	if sizes, err := repo.GetSizes(); err == nil && len(sizes) == 0 {
		for _, name := range []string{"XS", "S", "M", "L", "XL", "XXL"} {
			if err := repo.CreateSize(&models.Size{Name: name}); err != nil {
				log.Printf("Error seeding size %s: %v", name, err)
			}
		}
	}
	if colors, err := repo.GetColors(); err == nil && len(colors) == 0 {
		swatches := map[string]string{
			"Black": "#000000",
			"White": "#FFFFFF",
			"Navy":  "#000080",
			"Gray":  "#808080",
			"Beige": "#F5F5DC",
			"Brown": "#8B4513",
			"Blue":  "#0000FF",
		}
		for _, name := range []string{"Black", "White", "Blue", "Navy", "Gray", "Beige", "Brown"} {
			hex := swatches[name]
			if err := repo.CreateColor(&models.Color{Name: name, HexCode: &hex}); err != nil {
				log.Printf("Error seeding color %s: %v", name, err)
			}
		}
	}
	if categories, err := repo.GetCategories(); err == nil && len(categories) == 0 {
		for _, c := range []models.Category{
			{Name: "Men", Slug: models.CategoryMen},
			{Name: "Women", Slug: models.CategoryWomen},
			{Name: "Unisex", Slug: models.CategoryUnisex},
		} {
			category := c
			if err := repo.CreateCategory(&category); err != nil {
				log.Printf("Error seeding category %s: %v", category.Name, err)
			}
		}
	}
}

// seedPromotions installs the starter discount codes when none exist.
func seedPromotions(repo repositories.PromotionRepository) {
	existing, err := repo.GetAll()
	if err != nil || len(existing) > 0 {
		return
	}

	expiry := time.Now().AddDate(0, 3, 0)
	promotions := []models.Promotion{
		{Code: "WELCOME10", Type: models.PromotionTypePercentage, Discount: 10, Active: true},
		{Code: "FREESHIP", Type: models.PromotionTypeFixed, Discount: 10, Active: true},
		{Code: "FALL25", Type: models.PromotionTypePercentage, Discount: 25, ExpiresAt: &expiry, MaxUses: 100, Active: false},
	}
	for i := range promotions {
		if err := repo.Create(&promotions[i]); err != nil {
			log.Printf("Error seeding promotion %s: %v", promotions[i].Code, err)
		}
	}
}
