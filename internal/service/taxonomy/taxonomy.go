package taxonomy

import "strings"

const fallbackLabel = "Local Business"

// categoryLabels maps provider place types to human-friendly display names.
var categoryLabels = map[string]string{
	"cafe":                   "Coffee Shop",
	"restaurant":             "Restaurant",
	"bar":                    "Bar",
	"bakery":                 "Bakery",
	"book_store":             "Bookshop",
	"clothing_store":         "Clothing",
	"shoe_store":             "Shoe Store",
	"jewelry_store":          "Jewelry",
	"hardware_store":         "Hardware Store",
	"home_goods_store":       "Home Goods",
	"florist":                "Florist",
	"grocery_or_supermarket": "Grocery",
	"hair_care":              "Hair Salon",
	"beauty_salon":           "Beauty Salon",
	"spa":                    "Spa",
	"gym":                    "Gym",
	"bicycle_store":          "Bike Shop",
	"pet_store":              "Pet Store",
	"pharmacy":               "Pharmacy",
	"electronics_store":      "Electronics",
	"furniture_store":        "Furniture",
	"art_gallery":            "Art Gallery",
	"museum":                 "Museum",
	"laundry":                "Laundry",
	"locksmith":              "Locksmith",
	"painter":                "Painter",
	"plumber":                "Plumber",
	"electrician":            "Electrician",
	"car_repair":             "Auto Repair",
	"doctor":                 "Doctor",
	"health":                 "Health Clinic",
	"hospital":               "Hospital",
	"amusement_center":       "Arcade/Amusement",
	"bowling_alley":          "Bowling Alley",
}

// Label resolves a display category from a place's type tags. The first tag
// with a table entry wins; tag order is the provider's, which ranks the most
// specific type first. Unknown leading tags fall back to a title-cased form
// of the first tag, and an empty tag list yields a generic label.
func Label(types []string) string {
	for _, t := range types {
		if label, ok := categoryLabels[t]; ok {
			return label
		}
	}
	if len(types) == 0 {
		return fallbackLabel
	}
	return titleCase(strings.ReplaceAll(types[0], "_", " "))
}

func titleCase(value string) string {
	parts := strings.Fields(value)
	for i, p := range parts {
		lower := strings.ToLower(p)
		if len(lower) == 0 {
			continue
		}
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
