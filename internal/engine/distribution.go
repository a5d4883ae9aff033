package engine

import (
	"strings"

	"quizzer-backend/internal/models"
)

// Performance buckets derived from rolling accuracy.
const (
	BucketNew  = "new"
	BucketLow  = "low"
	BucketMid  = "mid"
	BucketHigh = "high"
)

// BucketForAccuracy maps a rolling accuracy percentage to a performance
// bucket. Callers pass BucketNew directly when the user has no attempts.
func BucketForAccuracy(accuracy float64) string {
	switch {
	case accuracy >= 75:
		return BucketHigh
	case accuracy <= 40:
		return BucketLow
	default:
		return BucketMid
	}
}

// base distributions are shaped for a 5-question quiz; the assembler's
// fill-up step reconciles them with other counts.
var bucketProfiles = map[string]models.DifficultyProfile{
	BucketHigh: {Easy: 1, Medium: 3, Hard: 1},
	BucketLow:  {Easy: 3, Medium: 2, Hard: 0},
	BucketMid:  {Easy: 2, Medium: 2, Hard: 1},
	BucketNew:  {Easy: 2, Medium: 2, Hard: 1},
}

// SelectDistribution resolves a count-per-difficulty profile. An explicit
// difficulty of EASY, MEDIUM or HARD pins all count questions to that level;
// anything else falls through to the caller's performance bucket.
func SelectDistribution(bucket, explicit string, count int) models.DifficultyProfile {
	switch strings.ToUpper(strings.TrimSpace(explicit)) {
	case "EASY":
		return models.DifficultyProfile{Easy: count}
	case "MEDIUM":
		return models.DifficultyProfile{Medium: count}
	case "HARD":
		return models.DifficultyProfile{Hard: count}
	}
	profile, ok := bucketProfiles[bucket]
	if !ok {
		profile = bucketProfiles[BucketNew]
	}
	return profile
}
