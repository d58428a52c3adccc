package nav

import (
	"fmt"
	"slices"
	"strings"
)

// Bucket is the classification of one document.
type Bucket int

const (
	BucketIndex Bucket = iota
	BucketEasy
	BucketMedium
	BucketHard
	BucketUtility
	BucketSummary
)

// DetailedOrder is the fixed section order of detailed mode.
var DetailedOrder = []Bucket{BucketEasy, BucketUtility, BucketMedium, BucketHard, BucketSummary}

var bucketKeys = [...]string{
	BucketIndex:   "index",
	BucketEasy:    "easy",
	BucketMedium:  "medium",
	BucketHard:    "hard",
	BucketUtility: "utility",
	BucketSummary: "summary",
}

// String returns the bucket key used in configuration labels and icons.
func (b Bucket) String() string {
	if b < BucketIndex || b > BucketSummary {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	return bucketKeys[b]
}

// MarshalText encodes the bucket as its key.
func (b Bucket) MarshalText() ([]byte, error) {
	if b < BucketIndex || b > BucketSummary {
		return nil, fmt.Errorf("invalid bucket %d", int(b))
	}
	return []byte(b.String()), nil
}

// UnmarshalText decodes a bucket key.
func (b *Bucket) UnmarshalText(text []byte) error {
	for i, k := range bucketKeys {
		if k == string(text) {
			*b = Bucket(i)
			return nil
		}
	}
	return fmt.Errorf("unknown bucket %q", string(text))
}

// DefaultSummaryNames are the logical names routed to the summary bucket.
var DefaultSummaryNames = []string{"总结", "summary"}

// ParseBucket classifies a logical name using DefaultSummaryNames.
func ParseBucket(logical string) Bucket {
	return parseBucket(logical, DefaultSummaryNames)
}

func parseBucket(logical string, summaryNames []string) Bucket {
	switch {
	case logical == "index":
		return BucketIndex
	case slices.Contains(summaryNames, logical):
		return BucketSummary
	case strings.HasPrefix(logical, "1-"):
		return BucketEasy
	case strings.HasPrefix(logical, "2-"):
		return BucketMedium
	case strings.HasPrefix(logical, "3-"):
		return BucketHard
	default:
		return BucketUtility
	}
}
