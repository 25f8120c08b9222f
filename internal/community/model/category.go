package model

type Category string

const (
	CategoryGeneral      Category = "General Discussion"
	CategoryConservation Category = "Conservation Efforts"
	CategoryBiology      Category = "Marine Biology"
	CategoryDiving       Category = "Diving & Exploration"
	CategoryPhotography  Category = "Photography & Art"
	CategoryQA           Category = "Q&A"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryGeneral,
	CategoryConservation,
	CategoryBiology,
	CategoryDiving,
	CategoryPhotography,
	CategoryQA,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// AvatarKeywords are the ocean words avatar seeds are drawn from.
var AvatarKeywords = []string{
	"coral", "reef", "fish", "whale", "dolphin", "turtle", "shark", "ocean", "wave",
	"beach", "coast", "seaweed", "jellyfish", "octopus", "starfish", "anemone", "seal",
	"seabird", "boat", "underwater", "diving", "seascape", "crab", "clam", "manta", "ray",
}
