package seed

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// pick returns a uniformly random element of the pool
func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}

// sampleItems returns k distinct elements of the pool, without replacement
func sampleItems[T any](rng *rand.Rand, pool []T, k int) []T {
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return nil
	}

	sampled := make([]T, 0, k)
	for _, idx := range rng.Perm(len(pool))[:k] {
		sampled = append(sampled, pool[idx])
	}
	return sampled
}

// excluding returns the ids without the given one
func excluding(ids []uuid.UUID, exclude uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out
}

// dateOnly truncates a timestamp to its UTC calendar date
func dateOnly(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// eventSlug turns a competitive event name into a URL path segment
func eventSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, "&", "and")
	slug = strings.ReplaceAll(slug, " ", "-")
	return strings.ReplaceAll(slug, "--", "-")
}

// schoolEmail derives a chapter contact address from the school name
func schoolEmail(name string) string {
	host := strings.ToLower(name)
	host = strings.ReplaceAll(host, " ", "")
	host = strings.ReplaceAll(host, "fbla", "")
	return "fbla@" + host + ".edu"
}
