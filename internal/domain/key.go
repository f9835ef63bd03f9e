package domain

import "strings"

// NormalizeCampaignParam lowercases a campaign identifier and strips the
// leading account sigils used by the donation platform ("@" for users, "+"
// for teams). The same logical campaign must always produce the same value
// regardless of how the caller typed it.
func NormalizeCampaignParam(param string) string {
	return strings.ToLower(strings.TrimLeft(param, "@+"))
}

// CollectionKey builds the storage partition name for a campaign by joining
// the normalized parts with underscores, e.g.
// CollectionKey("donations", "@GeeScot", "my-run") == "donations_geescot_my-run".
func CollectionKey(parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, part := range parts {
		normalized = append(normalized, NormalizeCampaignParam(part))
	}
	return strings.Join(normalized, "_")
}
