package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"property_listing/internal/domain"
)

/********** alias registry (single source of truth) **********/

var propertyAliases = map[string][]string{
	"id":         {"id", "property_id", "slug", "uuid"},
	"name":       {"name", "title", "property_name"},
	"rating":     {"rating", "score", "rating.value", "average_rating"},
	"categories": {"category", "categories", "tags", "amenities"},
	"state":      {"address.state", "state", "region"},
	"city":       {"address.city", "city", "locality"},
	"country":    {"address.country", "country"},
	"price":      {"price", "price_per_night", "price.amount", "nightly_price"},
	"bed":        {"offers.bed", "bed", "beds", "bedrooms"},
	"shower":     {"offers.shower", "shower", "bathrooms"},
	"occupants":  {"offers.occupants", "occupants", "guests", "max_guests"},
	"image":      {"image", "image_url", "thumbnail", "images", "photos"},
	"discount":   {"discount", "discount_percent"},
}

// propertyNS seeds IDs for upstream records that arrive without one.
var propertyNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("property-listing/properties"))

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// firstScalar returns the first alias holding a string or number, as text.
func firstScalar(m map[string]any, key string) string {
	for _, p := range propertyAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		}
	}
	return ""
}

// firstFloat: number from the alias paths (float64/int/string like "4,8").
func firstFloat(m map[string]any, key string) float64 {
	for _, p := range propertyAliases[key] {
		switch v := lookupAny(m, p).(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			s = strings.TrimLeft(s, "$€£")
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// firstStrings accepts a single string, a comma list, or []any with either
// strings or {url/src/name} objects.
func firstStrings(m map[string]any, key string) []string {
	for _, p := range propertyAliases[key] {
		switch raw := lookupAny(m, p).(type) {
		case string:
			var out []string
			for _, s := range strings.Split(raw, ",") {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case []any:
			out := make([]string, 0, len(raw))
			for _, it := range raw {
				switch t := it.(type) {
				case string:
					if t = strings.TrimSpace(t); t != "" {
						out = append(out, t)
					}
				case map[string]any:
					for _, k := range []string{"url", "src", "name"} {
						if u, ok := t[k].(string); ok && u != "" {
							out = append(out, u)
							break
						}
					}
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

/********** property mapper **********/

func mapProperty(p map[string]any) domain.Property {
	out := domain.Property{
		ID:         firstScalar(p, "id"),
		Name:       firstScalar(p, "name"),
		Rating:     firstFloat(p, "rating"),
		Categories: firstStrings(p, "categories"),
		Address: domain.Address{
			State:   firstScalar(p, "state"),
			City:    firstScalar(p, "city"),
			Country: firstScalar(p, "country"),
		},
		Price: firstFloat(p, "price"),
		Offers: domain.Offers{
			Bed:       firstScalar(p, "bed"),
			Shower:    firstScalar(p, "shower"),
			Occupants: firstScalar(p, "occupants"),
		},
		Discount: firstScalar(p, "discount"),
	}
	if imgs := firstStrings(p, "image"); len(imgs) > 0 {
		out.Image = imgs[0]
	}

	// No upstream id: derive a stable one from the name, else from the payload.
	if out.ID == "" {
		seed := []byte(out.Name)
		if out.Name == "" {
			raw, err := json.Marshal(p)
			if err != nil {
				log.Error().Err(err).Str("context", "mapProperty").Msg("failed to marshal property to JSON")
			}
			seed = raw
		}
		out.ID = uuid.NewSHA1(propertyNS, seed).String()
	}
	return out
}

func mapProperties(in []map[string]any) []domain.Property {
	out := make([]domain.Property, 0, len(in))
	for i, p := range in {
		m := mapProperty(p)
		m.Position = i
		out = append(out, m)
	}
	return out
}
