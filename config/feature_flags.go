package config

import (
	"hash/fnv"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FeatureFlags manages feature toggles and gradual rollouts. Flags can be
// flipped per environment without a redeploy via FEATURE_* variables.
type FeatureFlags struct {
	mu sync.RWMutex

	// Core features
	features map[string]*Feature

	// Override rules (for testing/debugging)
	userOverrides map[string]map[string]bool // userID -> feature -> enabled
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool

	// Rollout percentage (0-100)
	// Users are assigned based on hash of their ID
	RolloutPercent int

	// Time-based activation
	EnabledFrom  *time.Time
	EnabledUntil *time.Time
}

// Predefined feature flag names.
const (
	// === Learning Features ===
	FeatureLearningPredictions     = "learning.predictions"     // outcome predictions endpoint
	FeatureLearningRecommendations = "learning.recommendations" // recommendation ranking
	FeatureLearningOmniscient      = "learning.omniscient"      // external hub enrichment

	// === Gallery Features ===
	FeatureGalleryPopular      = "gallery.popular"       // popularity ranking
	FeatureGalleryCuration     = "gallery.curation"      // update/feature endpoints
	FeatureGalleryCollections  = "gallery.collections"   // collection catalog
	FeatureGallerySuggestions  = "gallery.suggestions"   // style suggestions
	FeatureGalleryRedisRanking = "gallery.redis_ranking" // cached popularity ranking

	// === Analytics Features ===
	FeatureAnalyticsInsights = "analytics.insights" // pattern insights
	FeatureAnalyticsMetrics  = "analytics.metrics"  // trailing-window metrics

	// === Content Features ===
	FeatureContentGitHubScraper = "content.github_scraper" // educational content scraping
)

// defaultFeatures returns the built-in feature set. Everything ships
// enabled except the integrations that need external services.
func defaultFeatures() map[string]*Feature {
	return map[string]*Feature{
		FeatureLearningPredictions: {
			Name:           FeatureLearningPredictions,
			Description:    "Outcome predictions for stored learning paths",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureLearningRecommendations: {
			Name:           FeatureLearningRecommendations,
			Description:    "Ranked content/activity/peer recommendations",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureLearningOmniscient: {
			Name:           FeatureLearningOmniscient,
			Description:    "Omniscient Hub enrichment with local fallbacks",
			Enabled:        false,
			RolloutPercent: 100,
		},
		FeatureGalleryPopular: {
			Name:           FeatureGalleryPopular,
			Description:    "Popularity ranking over likes and views",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureGalleryCuration: {
			Name:           FeatureGalleryCuration,
			Description:    "Editorial updates and featuring",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureGalleryCollections: {
			Name:           FeatureGalleryCollections,
			Description:    "Durable art collections",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureGallerySuggestions: {
			Name:           FeatureGallerySuggestions,
			Description:    "Prompt-based style suggestions",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureGalleryRedisRanking: {
			Name:           FeatureGalleryRedisRanking,
			Description:    "Redis-backed popularity ranking",
			Enabled:        false,
			RolloutPercent: 100,
		},
		FeatureAnalyticsInsights: {
			Name:           FeatureAnalyticsInsights,
			Description:    "Learning pattern insights",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureAnalyticsMetrics: {
			Name:           FeatureAnalyticsMetrics,
			Description:    "Trailing-window user metrics",
			Enabled:        true,
			RolloutPercent: 100,
		},
		FeatureContentGitHubScraper: {
			Name:           FeatureContentGitHubScraper,
			Description:    "GitHub educational content scraping",
			Enabled:        false,
			RolloutPercent: 100,
		},
	}
}

// LoadFeatureFlags builds the feature set with environment overrides
// applied. FEATURE_GALLERY_POPULAR=false disables gallery.popular, and
// FEATURE_GALLERY_POPULAR_ROLLOUT=25 rolls it out to a quarter of users.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{
		features:      defaultFeatures(),
		userOverrides: make(map[string]map[string]bool),
	}

	for name, feature := range ff.features {
		envKey := "FEATURE_" + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))

		if val := os.Getenv(envKey); val != "" {
			if enabled, err := strconv.ParseBool(val); err == nil {
				feature.Enabled = enabled
			}
		}

		if val := os.Getenv(envKey + "_ROLLOUT"); val != "" {
			if pct, err := strconv.Atoi(val); err == nil && pct >= 0 && pct <= 100 {
				feature.RolloutPercent = pct
			}
		}
	}

	return ff
}

// IsEnabled reports whether a feature is globally enabled.
func (ff *FeatureFlags) IsEnabled(name string) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	feature, ok := ff.features[name]
	if !ok {
		return false
	}
	return ff.evaluate(feature, "")
}

// IsEnabledFor reports whether a feature is enabled for a specific user,
// honoring overrides and percentage rollouts.
func (ff *FeatureFlags) IsEnabledFor(name, userID string) bool {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	if overrides, ok := ff.userOverrides[userID]; ok {
		if enabled, ok := overrides[name]; ok {
			return enabled
		}
	}

	feature, ok := ff.features[name]
	if !ok {
		return false
	}
	return ff.evaluate(feature, userID)
}

// SetOverride forces a feature on or off for one user.
func (ff *FeatureFlags) SetOverride(userID, name string, enabled bool) {
	ff.mu.Lock()
	defer ff.mu.Unlock()

	if ff.userOverrides[userID] == nil {
		ff.userOverrides[userID] = make(map[string]bool)
	}
	ff.userOverrides[userID][name] = enabled
}

// ClearOverrides removes all overrides for a user.
func (ff *FeatureFlags) ClearOverrides(userID string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	delete(ff.userOverrides, userID)
}

// Enable turns a feature on globally.
func (ff *FeatureFlags) Enable(name string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	if feature, ok := ff.features[name]; ok {
		feature.Enabled = true
	}
}

// Disable turns a feature off globally.
func (ff *FeatureFlags) Disable(name string) {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	if feature, ok := ff.features[name]; ok {
		feature.Enabled = false
	}
}

// All returns a snapshot of every feature keyed by name.
func (ff *FeatureFlags) All() map[string]Feature {
	ff.mu.RLock()
	defer ff.mu.RUnlock()

	out := make(map[string]Feature, len(ff.features))
	for name, feature := range ff.features {
		out[name] = *feature
	}
	return out
}

// evaluate applies the enabled flag, time window, and rollout percentage.
// Caller must hold at least a read lock.
func (ff *FeatureFlags) evaluate(feature *Feature, userID string) bool {
	if !feature.Enabled {
		return false
	}

	now := time.Now()
	if feature.EnabledFrom != nil && now.Before(*feature.EnabledFrom) {
		return false
	}
	if feature.EnabledUntil != nil && now.After(*feature.EnabledUntil) {
		return false
	}

	if feature.RolloutPercent >= 100 {
		return true
	}
	if feature.RolloutPercent <= 0 {
		return false
	}
	if userID == "" {
		// Global checks on partially rolled out features stay off.
		return false
	}

	return bucketFor(userID, feature.Name) < feature.RolloutPercent
}

// bucketFor deterministically maps (user, feature) into [0, 100).
func bucketFor(userID, featureName string) int {
	h := fnv.New32a()
	h.Write([]byte(userID))
	h.Write([]byte(featureName))
	return int(h.Sum32() % 100)
}
