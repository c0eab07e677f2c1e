package backdrop

// EffectInfo describes an available backdrop effect layer
type EffectInfo struct {
	ID          string // Unique identifier referenced by theme backdrop chains
	Name        string // Display name for the preferences panel
	Description string // Brief description of the effect
	Weight      int    // Higher weight = applied earlier in chain
}

// AvailableEffects lists all backdrop effects a theme chain can reference
var AvailableEffects = []EffectInfo{
	{
		ID:          "aurora",
		Name:        "Aurora",
		Description: "Slow drifting glow in the theme's colors",
		Weight:      900,
	},
	{
		ID:          "grid",
		Name:        "Grid",
		Description: "Scrolling line grid rising toward the horizon",
		Weight:      850,
	},
	{
		ID:          "grain",
		Name:        "Grain",
		Description: "Animated film grain",
		Weight:      400,
	},
	{
		ID:          "vignette",
		Name:        "Vignette",
		Description: "Darkened corners framing the page",
		Weight:      100,
	},
}

// effectWeights provides O(1) weight lookup by effect ID
var effectWeights map[string]int

// effectNames provides O(1) display name lookup by effect ID
var effectNames map[string]string

func init() {
	effectWeights = make(map[string]int)
	effectNames = make(map[string]string)
	for _, e := range AvailableEffects {
		effectWeights[e.ID] = e.Weight
		effectNames[e.ID] = e.Name
	}
}

// GetEffectWeight returns the weight for an effect ID (0 if unknown)
func GetEffectWeight(id string) int {
	return effectWeights[id]
}

// EffectName returns the display name for an effect ID.
// Unknown IDs fall back to the raw ID so the panel never shows a blank.
func EffectName(id string) string {
	if name, ok := effectNames[id]; ok {
		return name
	}
	return id
}

// IsKnownEffect returns true if the ID names a registered effect
func IsKnownEffect(id string) bool {
	_, ok := effectWeights[id]
	return ok
}
