package memory

import "property_listing/internal/domain"

var sample = []domain.Property{
	{
		ID: "villa-ocean-breeze", Name: "Villa Ocean Breeze", Rating: 4.89,
		Categories: []string{"Luxury Villa", "Pool", "Free Parking"},
		Address:    domain.Address{State: "Seminyak", City: "Bali", Country: "Indonesia"},
		Price:      3200, Offers: domain.Offers{Bed: "3", Shower: "3", Occupants: "4-6"},
		Image: "https://example.com/image1.jpg",
	},
	{
		ID: "mountain-escape-chalet", Name: "Mountain Escape Chalet", Rating: 4.7,
		Categories: []string{"Mountain View", "Hiking", "Fireplace"},
		Address:    domain.Address{State: "Aspen", City: "Colorado", Country: "USA"},
		Price:      1800, Offers: domain.Offers{Bed: "4", Shower: "2", Occupants: "5-7"},
		Image: "https://example.com/image2.jpg", Discount: "30",
	},
	{
		ID: "cozy-desert-retreat", Name: "Cozy Desert Retreat", Rating: 4.5,
		Categories: []string{"Desert View", "Pet Friendly", "Self Checkin"},
		Address:    domain.Address{State: "Palm Springs", City: "California", Country: "USA"},
		Price:      1500, Offers: domain.Offers{Bed: "2", Shower: "1", Occupants: "2-3"},
		Image: "https://example.com/image3.jpg",
	},
	{
		ID: "city-lights-penthouse", Name: "City Lights Penthouse", Rating: 4.85,
		Categories: []string{"City View", "Free WiFi", "Luxury Apartment"},
		Address:    domain.Address{State: "New York", City: "New York", Country: "USA"},
		Price:      4500, Offers: domain.Offers{Bed: "2", Shower: "2", Occupants: "2-4"},
		Image: "https://example.com/image4.jpg", Discount: "15",
	},
	{
		ID: "riverside-cabin", Name: "Riverside Cabin", Rating: 4.77,
		Categories: []string{"Mountain Cabin", "Riverfront", "Pet Friendly"},
		Address:    domain.Address{State: "Queenstown", City: "Otago", Country: "New Zealand"},
		Price:      2800, Offers: domain.Offers{Bed: "3", Shower: "2", Occupants: "4-6"},
		Image: "https://example.com/image5.jpg", Discount: "20",
	},
	{
		ID: "modern-beachfront-villa", Name: "Modern Beachfront Villa", Rating: 4.95,
		Categories: []string{"Beachfront", "Pool Villa", "Free Reschedule"},
		Address:    domain.Address{State: "Phuket", City: "Phuket", Country: "Thailand"},
		Price:      5000, Offers: domain.Offers{Bed: "5", Shower: "4", Occupants: "8-10"},
		Image: "https://example.com/image6.jpg",
	},
	{
		ID: "lakeside-cottage", Name: "Lakeside Cottage", Rating: 4.6,
		Categories: []string{"Lake View", "Free Parking", "Self Checkin"},
		Address:    domain.Address{State: "Lake Como", City: "Lombardy", Country: "Italy"},
		Price:      2200, Offers: domain.Offers{Bed: "2", Shower: "1", Occupants: "2-4"},
		Image: "https://example.com/image7.jpg",
	},
	{
		ID: "safari-lodge", Name: "Safari Lodge", Rating: 4.92,
		Categories: []string{"Safari", "Luxury Lodge", "Pool"},
		Address:    domain.Address{State: "Serengeti", City: "Mara", Country: "Tanzania"},
		Price:      4000, Offers: domain.Offers{Bed: "4", Shower: "4", Occupants: "6-8"},
		Image: "https://example.com/image8.jpg", Discount: "10",
	},
	{
		ID: "alpine-ski-cabin", Name: "Alpine Ski Cabin", Rating: 4.82,
		Categories: []string{"Cabin", "Mountain View", "Ski-in/Ski-out"},
		Address:    domain.Address{State: "Zermatt", City: "Valais", Country: "Switzerland"},
		Price:      3600, Offers: domain.Offers{Bed: "3", Shower: "2", Occupants: "4-6"},
		Image: "https://example.com/image9.jpg",
	},
	{
		ID: "tropical-island-bungalow", Name: "Tropical Island Bungalow", Rating: 4.88,
		Categories: []string{"Beachfront", "Overwater Villa", "Free Reschedule"},
		Address:    domain.Address{State: "Malé", City: "North Malé Atoll", Country: "Maldives"},
		Price:      6000, Offers: domain.Offers{Bed: "2", Shower: "2", Occupants: "2"},
		Image: "https://example.com/image10.jpg", Discount: "25",
	},
	{
		ID: "urban-loft", Name: "Urban Loft", Rating: 4.3,
		Categories: []string{"Apartment", "City Center", "Self Checkin"},
		Address:    domain.Address{State: "Berlin", City: "Berlin", Country: "Germany"},
		Price:      900, Offers: domain.Offers{Bed: "1", Shower: "1", Occupants: "1-2"},
		Image: "https://example.com/image11.jpg",
	},
	{
		ID: "countryside-farmhouse", Name: "Countryside Farmhouse", Rating: 4.4,
		Categories: []string{"Countryside", "Pet Friendly", "Free Parking"},
		Address:    domain.Address{State: "Tuscany", City: "Siena", Country: "Italy"},
		Price:      1300, Offers: domain.Offers{Bed: "3", Shower: "2", Occupants: "4-6"},
		Image: "https://example.com/image12.jpg",
	},
}
