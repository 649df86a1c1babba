package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectoryFilter(t *testing.T) {
	params := url.Values{}
	params.Set("niche", "Tech")
	params.Set("department", "Montevideo")
	params.Set("ageMin", "18")
	params.Set("ageMax", "35")
	params.Set("followersMin", "1000")
	params.Set("engagementMax", "7.5")
	params.Set("platforms", "INSTAGRAM,TIKTOK")
	params.Set("collaborationType", "Canje")

	f := ParseDirectoryFilter(params)

	assert.Equal(t, "Tech", f.Niche)
	assert.Equal(t, "Montevideo", f.Department)
	require.NotNil(t, f.AgeMin)
	assert.Equal(t, 18, *f.AgeMin)
	require.NotNil(t, f.AgeMax)
	assert.Equal(t, 35, *f.AgeMax)
	require.NotNil(t, f.FollowersMin)
	assert.Equal(t, 1000, *f.FollowersMin)
	assert.Nil(t, f.FollowersMax)
	assert.Nil(t, f.EngagementMin)
	require.NotNil(t, f.EngagementMax)
	assert.Equal(t, 7.5, *f.EngagementMax)
	assert.Equal(t, []string{"INSTAGRAM", "TIKTOK"}, f.Platforms)
	assert.Equal(t, "Canje", f.CollaborationType)
}

func TestParseDirectoryFilterMalformedNumbersAreAbsent(t *testing.T) {
	params := url.Values{}
	params.Set("ageMin", "abc")
	params.Set("followersMin", "10k")
	params.Set("engagementMin", "high")

	f := ParseDirectoryFilter(params)

	assert.Nil(t, f.AgeMin)
	assert.Nil(t, f.FollowersMin)
	assert.Nil(t, f.EngagementMin)
	assert.False(t, f.HasPlatformFilter())
}

func TestParseDirectoryFilterEmptyPlatforms(t *testing.T) {
	f := ParseDirectoryFilter(url.Values{})
	assert.Empty(t, f.Platforms)
	assert.False(t, f.HasPlatformFilter())

	params := url.Values{}
	params.Set("platforms", ",, ,")
	f = ParseDirectoryFilter(params)
	assert.Empty(t, f.Platforms)
}

func TestHasPlatformFilter(t *testing.T) {
	min := 100
	assert.True(t, DirectoryFilter{Platforms: []string{"INSTAGRAM"}}.HasPlatformFilter())
	assert.True(t, DirectoryFilter{FollowersMin: &min}.HasPlatformFilter())

	rate := 3.0
	assert.True(t, DirectoryFilter{EngagementMax: &rate}.HasPlatformFilter())
	assert.False(t, DirectoryFilter{Niche: "Tech"}.HasPlatformFilter())
}
