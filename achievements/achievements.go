// Package achievements implements the unlock engine behind the page's
// gamification layer: a fixed catalog of achievements, a visit tracker,
// and a toast queue. It has no rendering dependencies so the whole
// engine can be exercised headless.
package achievements

// Achievement IDs, stable across releases. Persisted state references
// these, so they must never be renamed.
const (
	AchievementInitiate   = "initiate"
	AchievementExplorer   = "explorer"
	AchievementMember     = "member"
	AchievementConnector  = "connector"
	AchievementDesigner   = "designer"
	AchievementAudiophile = "audiophile"
)

// Achievement is a catalog entry. Definitions are immutable except for
// Unlocked, which flips to true at most once per session (Reset aside).
type Achievement struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Unlocked    bool
}

// defaultCatalog returns the full achievement list in display order.
func defaultCatalog() []*Achievement {
	return []*Achievement{
		{
			ID:          AchievementInitiate,
			Title:       "Initiate",
			Description: "Began the journey from the top",
			Icon:        "I",
		},
		{
			ID:          AchievementExplorer,
			Title:       "Explorer",
			Description: "Visited every corner of the page",
			Icon:        "E",
		},
		{
			ID:          AchievementMember,
			Title:       "Nexus Member",
			Description: "Stepped into the nexus",
			Icon:        "M",
		},
		{
			ID:          AchievementConnector,
			Title:       "Connector",
			Description: "Found the way to get in touch",
			Icon:        "C",
		},
		{
			ID:          AchievementDesigner,
			Title:       "Designer",
			Description: "Made the place look your own",
			Icon:        "D",
		},
		{
			ID:          AchievementAudiophile,
			Title:       "Audiophile",
			Description: "Turned the ambience on",
			Icon:        "A",
		},
	}
}
