package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// DirectoryFilter is the set of optional constraints a public directory query
// can carry. Nil/empty fields impose no constraint. Niche, department, age and
// collaboration type apply to the influencer row; platform names and the
// followers/engagement bounds apply to the owned platform rows.
type DirectoryFilter struct {
	Niche             string
	Department        string
	AgeMin            *int
	AgeMax            *int
	FollowersMin      *int
	FollowersMax      *int
	EngagementMin     *float64
	EngagementMax     *float64
	Platforms         []string
	CollaborationType string
}

// HasPlatformFilter reports whether any platform-level constraint is set. When
// true, results whose platform rows all fail the constraint are excluded.
func (f DirectoryFilter) HasPlatformFilter() bool {
	return len(f.Platforms) > 0 ||
		f.FollowersMin != nil || f.FollowersMax != nil ||
		f.EngagementMin != nil || f.EngagementMax != nil
}

// ParseDirectoryFilter builds a DirectoryFilter from raw query parameters.
// Numeric values that fail to parse are treated as absent rather than
// rejected, and an empty platforms parameter imposes no platform constraint.
func ParseDirectoryFilter(params url.Values) DirectoryFilter {
	f := DirectoryFilter{
		Niche:             params.Get("niche"),
		Department:        params.Get("department"),
		AgeMin:            parseIntParam(params.Get("ageMin")),
		AgeMax:            parseIntParam(params.Get("ageMax")),
		FollowersMin:      parseIntParam(params.Get("followersMin")),
		FollowersMax:      parseIntParam(params.Get("followersMax")),
		EngagementMin:     parseFloatParam(params.Get("engagementMin")),
		EngagementMax:     parseFloatParam(params.Get("engagementMax")),
		CollaborationType: params.Get("collaborationType"),
	}

	for _, p := range strings.Split(params.Get("platforms"), ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			f.Platforms = append(f.Platforms, p)
		}
	}

	return f
}

func parseIntParam(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
