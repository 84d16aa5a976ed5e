package tour

import "travelerapp/models"

// SeedTours is the static fallback catalog served when the document
// store is unreachable or empty.
func SeedTours() []models.Tour {
	return []models.Tour{
		{
			ID:          "seed-halong",
			Title:       "Ha Long Bay Cruise",
			Description: "Two nights aboard a traditional junk boat among the limestone karsts.",
			Location:    "Quang Ninh",
			Category:    "Cruise",
			Rating:      9.2,
			Price:       1250000,
			Duration:    "3 days",
			Status:      "active",
		},
		{
			ID:          "seed-sapa",
			Title:       "Sapa Trekking Adventure",
			Description: "Guided trek through rice terraces with a homestay in Ta Van village.",
			Location:    "Lao Cai",
			Category:    "Trekking",
			Rating:      8.7,
			Price:       775000,
			Duration:    "2 days",
			Status:      "active",
		},
		{
			ID:          "seed-hoian",
			Title:       "Hoi An Ancient Town Walk",
			Description: "Lantern-lit evening walk with a riverside cooking class.",
			Location:    "Quang Nam",
			Category:    "Culture",
			Rating:      9.0,
			Price:       450000,
			Duration:    "1 day",
			Status:      "active",
		},
		{
			ID:          "seed-mekong",
			Title:       "Mekong Delta Day Trip",
			Description: "Sampan ride through the floating markets of Cai Rang.",
			Location:    "Can Tho",
			Category:    "Nature",
			Rating:      8.4,
			Price:       520000,
			Duration:    "1 day",
			Status:      "active",
		},
	}
}
