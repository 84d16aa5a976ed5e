package tourRepo

import (
	"strconv"
	"strings"
	"time"

	"travelerapp/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The tours collection predates any schema discipline: the same logical
// field appears under several names depending on which tool wrote the
// document. All of that messiness is normalized here, at the data-access
// boundary, so the rest of the workflow only ever sees models.Tour.

// tourFromDoc maps an arbitrary legacy tour document onto the canonical
// Tour shape.
func tourFromDoc(id string, doc bson.M) models.Tour {
	tour := models.Tour{ID: id}

	tour.Title = firstString(doc, "title", "nameTour", "name")
	tour.Description = asString(doc["description"])
	tour.ImageURL = firstString(doc, "tourImageUrl", "imageUrl", "image")
	tour.Status = asString(doc["status"])
	tour.Category = asString(doc["category"])
	tour.ProviderPhone = asString(doc["providerPhone"])
	tour.PickupLoc = asString(doc["pickupLoc"])
	tour.Address = asString(doc["address"])
	tour.Duration = asString(doc["duration"])

	tour.Location = asString(doc["location"])
	if tour.Location == "" {
		tour.Location = tour.Address
	}

	if v, ok := firstValue(doc, "rating", "review"); ok {
		tour.Rating, _ = asFloat(v)
	}

	if v, ok := doc["price"]; ok {
		if price, numeric := asFloat(v); numeric {
			tour.Price = price
		} else {
			tour.RawPrice = asString(v)
		}
	}

	return tour
}

// dateOptionFromDoc maps an availableDates document onto a
// BookingDateOption. Returns false when the document has no usable date.
func dateOptionFromDoc(id string, doc bson.M) (models.BookingDateOption, bool) {
	opt := models.BookingDateOption{
		ID:        id,
		Available: true,
	}

	date, ok := asTime(doc["date"])
	if !ok {
		return opt, false
	}
	opt.Date = date

	opt.DayOfWeek = dayOfWeekFrom(doc["dayOfWeek"], date)

	if v, ok := doc["price"]; ok {
		opt.Price, _ = asFloat(v)
	}
	if v, ok := doc["isHoliday"]; ok {
		opt.Holiday, _ = v.(bool)
	}

	return opt, true
}

// dayOfWeekFrom accepts a numeric weekday, a weekday name, or nothing at
// all, in which case the weekday is derived from the date itself.
func dayOfWeekFrom(v interface{}, date time.Time) int {
	switch d := v.(type) {
	case int32:
		return int(d)
	case int64:
		return int(d)
	case int:
		return d
	case float64:
		return int(d)
	case string:
		switch strings.ToLower(d) {
		case "sunday":
			return 0
		case "monday":
			return 1
		case "tuesday":
			return 2
		case "wednesday":
			return 3
		case "thursday":
			return 4
		case "friday":
			return 5
		case "saturday":
			return 6
		}
	}
	return int(date.Weekday())
}

func firstString(doc bson.M, keys ...string) string {
	if v, ok := firstValue(doc, keys...); ok {
		return asString(v)
	}
	return ""
}

func firstValue(doc bson.M, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if v, ok := doc[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return ""
	}
}

// asFloat coerces numeric document values, including numeric strings.
// The second return is false when the value is not numeric at all.
func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return parsed, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
