package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrStoreUnavailable is returned when a retailer search request fails
	ErrStoreUnavailable = errors.New("store request failed")

	// ErrNoListings is returned when no retailer returned any listings
	ErrNoListings = errors.New("no listings found")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrSearchFailed is the single generic error the search client surfaces
	// for transport failures, non-2xx responses, and malformed bodies
	ErrSearchFailed = errors.New("search request failed")

	// ErrSignupFailed is returned when a signup profile cannot be persisted
	ErrSignupFailed = errors.New("signup could not be saved")
)
