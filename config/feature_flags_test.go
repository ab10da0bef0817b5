package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeatureFlags_Defaults(t *testing.T) {
	ff := LoadFeatureFlags()

	assert.True(t, ff.IsEnabled(FeatureGalleryPopular))
	assert.True(t, ff.IsEnabled(FeatureAnalyticsInsights))

	// Integrations needing external services ship disabled.
	assert.False(t, ff.IsEnabled(FeatureLearningOmniscient))
	assert.False(t, ff.IsEnabled(FeatureGalleryRedisRanking))
	assert.False(t, ff.IsEnabled(FeatureContentGitHubScraper))

	assert.False(t, ff.IsEnabled("nonexistent.feature"))
}

func TestLoadFeatureFlags_EnvOverrides(t *testing.T) {
	t.Setenv("FEATURE_GALLERY_POPULAR", "false")
	t.Setenv("FEATURE_LEARNING_OMNISCIENT", "true")
	t.Setenv("FEATURE_GALLERY_POPULAR_ROLLOUT", "25")

	ff := LoadFeatureFlags()

	assert.False(t, ff.IsEnabled(FeatureGalleryPopular))
	assert.True(t, ff.IsEnabled(FeatureLearningOmniscient))
	assert.Equal(t, 25, ff.All()[FeatureGalleryPopular].RolloutPercent)
}

func TestLoadFeatureFlags_BadEnvValuesIgnored(t *testing.T) {
	t.Setenv("FEATURE_GALLERY_POPULAR", "definitely")
	t.Setenv("FEATURE_GALLERY_POPULAR_ROLLOUT", "150")

	ff := LoadFeatureFlags()

	assert.True(t, ff.IsEnabled(FeatureGalleryPopular))
	assert.Equal(t, 100, ff.All()[FeatureGalleryPopular].RolloutPercent)
}

func TestFeatureFlags_EnableDisable(t *testing.T) {
	ff := LoadFeatureFlags()

	ff.Disable(FeatureGalleryPopular)
	assert.False(t, ff.IsEnabled(FeatureGalleryPopular))

	ff.Enable(FeatureGalleryPopular)
	assert.True(t, ff.IsEnabled(FeatureGalleryPopular))
}

func TestFeatureFlags_UserOverrides(t *testing.T) {
	ff := LoadFeatureFlags()
	ff.Disable(FeatureGalleryPopular)

	assert.False(t, ff.IsEnabledFor(FeatureGalleryPopular, "user-1"))

	ff.SetOverride("user-1", FeatureGalleryPopular, true)
	assert.True(t, ff.IsEnabledFor(FeatureGalleryPopular, "user-1"))
	assert.False(t, ff.IsEnabledFor(FeatureGalleryPopular, "user-2"))

	ff.ClearOverrides("user-1")
	assert.False(t, ff.IsEnabledFor(FeatureGalleryPopular, "user-1"))
}

func TestFeatureFlags_PartialRollout(t *testing.T) {
	t.Setenv("FEATURE_GALLERY_POPULAR_ROLLOUT", "50")
	ff := LoadFeatureFlags()

	// Global checks on partially rolled out features report off.
	assert.False(t, ff.IsEnabled(FeatureGalleryPopular))

	// Per-user assignment is deterministic.
	first := ff.IsEnabledFor(FeatureGalleryPopular, "user-1")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ff.IsEnabledFor(FeatureGalleryPopular, "user-1"))
	}

	// With enough users both buckets show up.
	seen := map[bool]int{}
	for i := 0; i < 100; i++ {
		seen[ff.IsEnabledFor(FeatureGalleryPopular, fmt.Sprintf("user-%d", i))]++
	}
	assert.Positive(t, seen[true])
	assert.Positive(t, seen[false])
}

func TestFeatureFlags_ZeroRollout(t *testing.T) {
	t.Setenv("FEATURE_GALLERY_POPULAR_ROLLOUT", "0")
	ff := LoadFeatureFlags()

	assert.False(t, ff.IsEnabledFor(FeatureGalleryPopular, "user-1"))
}

func TestBucketFor_Deterministic(t *testing.T) {
	bucket := bucketFor("user-1", FeatureGalleryPopular)
	require.GreaterOrEqual(t, bucket, 0)
	require.Less(t, bucket, 100)

	assert.Equal(t, bucket, bucketFor("user-1", FeatureGalleryPopular))
}
