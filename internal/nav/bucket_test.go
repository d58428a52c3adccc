package nav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBucket(t *testing.T) {
	cases := map[string]Bucket{
		"index":       BucketIndex,
		"总结":          BucketSummary,
		"summary":     BucketSummary,
		"1-foo":       BucketEasy,
		"2-bar":       BucketMedium,
		"3-baz":       BucketHard,
		"qux":         BucketUtility,
		"4-later":     BucketUtility,
		"10-foo":      BucketUtility,
		"Index":       BucketUtility,
		"1-index":     BucketEasy,
		"useRequest":  BucketUtility,
		"1-useToggle": BucketEasy,
	}
	for name, want := range cases {
		require.Equal(t, want, ParseBucket(name), name)
	}
}

func TestParseBucket_CustomSummaryNames(t *testing.T) {
	require.Equal(t, BucketSummary, parseBucket("wrap-up", []string{"wrap-up"}))
	require.Equal(t, BucketUtility, parseBucket("总结", []string{"wrap-up"}))
}

func TestBucket_TextRoundTrip(t *testing.T) {
	data, err := json.Marshal(map[string]Bucket{"b": BucketMedium})
	require.NoError(t, err)
	require.JSONEq(t, `{"b":"medium"}`, string(data))

	var b Bucket
	require.NoError(t, b.UnmarshalText([]byte("summary")))
	require.Equal(t, BucketSummary, b)
	require.Error(t, b.UnmarshalText([]byte("legendary")))

	require.Equal(t, "Bucket(42)", Bucket(42).String())
}
