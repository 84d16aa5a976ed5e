// File: utils/constants.go
package utils

import "time"

// TourCachePrefix is the prefix used for Redis tour catalog cache keys.
const TourCachePrefix = "tours:"

// TourCacheTTL is the time-to-live for tour catalog cache entries.
const TourCacheTTL = 10 * time.Minute
