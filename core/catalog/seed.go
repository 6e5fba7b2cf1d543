package catalog

import (
	"time"

	"github.com/rotemed/pharmastore/validate"
)

// Seed loads the wholesale catalog the storefront launches with.
func Seed(store *Store) {
	now := time.Now().UTC()

	seeded := []Product{
		{
			Name:        "Paracetamol 500mg",
			Category:    "Pain Relief",
			Description: "Pain relief and fever reducer tablets",
			ImageURL:    "/images/product.jpg",
			Price:       2599,
			InStock:     true,
			Rating:      4.8,
			Reviews:     124,
		},
		{
			Name:        "Amoxicillin 250mg",
			Category:    "Antibiotics",
			Description: "Broad-spectrum antibiotic capsules",
			ImageURL:    "/images/product2.jpg",
			Price:       4550,
			InStock:     true,
			Rating:      4.9,
			Reviews:     89,
		},
		{
			Name:        "Insulin Pen",
			Category:    "Diabetes Care",
			Description: "Pre-filled insulin pen for blood sugar control",
			ImageURL:    "/images/product3.jpg",
			Price:       8999,
			InStock:     false,
			Rating:      4.7,
			Reviews:     156,
		},
		{
			Name:        "Blood Pressure Monitor",
			Category:    "Medical Devices",
			Description: "Digital upper-arm blood pressure monitor",
			ImageURL:    "/images/product4.jpg",
			Price:       12500,
			InStock:     true,
			Rating:      4.6,
			Reviews:     203,
		},
		{
			Name:        "Vitamin D3 1000IU",
			Category:    "Supplements",
			Description: "Daily vitamin D3 softgels",
			ImageURL:    "/images/product5.jpg",
			Price:       1875,
			InStock:     true,
			Rating:      4.5,
			Reviews:     78,
		},
		{
			Name:        "Surgical Masks (Box of 50)",
			Category:    "Medical Supplies",
			Description: "Disposable 3-ply surgical masks",
			ImageURL:    "/images/product6.jpg",
			Price:       1599,
			InStock:     true,
			Rating:      4.4,
			Reviews:     312,
		},
	}

	for _, p := range seeded {
		p.ID = validate.GenerateID()
		p.CreatedAt = now
		p.UpdatedAt = now
		store.Create(p)
	}
}
