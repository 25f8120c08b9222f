package ai

// FallbackFacts is served when live facts are unavailable.
func FallbackFacts() []Fact {
	return []Fact{
		{Topic: "Plastic Pollution", Fact: "Over 8 million tons of plastic enter the oceans each year, harming marine life and ecosystems. It's estimated that by 2050, there could be more plastic than fish in the ocean by weight."},
		{Topic: "Overfishing", Fact: "More than a third of the world's fish stocks are being fished at biologically unsustainable levels, threatening marine biodiversity and the livelihoods of millions of people."},
		{Topic: "Coral Bleaching", Fact: "Rising ocean temperatures due to climate change are causing widespread coral bleaching, where corals expel the algae living in their tissues, turning them white and vulnerable to disease and death."},
		{Topic: "Ocean Acidification", Fact: "The ocean absorbs about 30% of the CO2 released into the atmosphere, leading to increased acidity. This harms organisms like corals and shellfish by hindering their ability to build shells and skeletons."},
		{Topic: "Marine Protected Areas (MPAs)", Fact: "MPAs are crucial for conservation. They are designated areas where human activities are restricted to protect nature. Currently, only about 8% of the world's ocean is protected."},
		{Topic: "Sustainable Seafood", Fact: "Consumers can help protect the ocean by choosing sustainably sourced seafood. Look for certifications from groups like the Marine Stewardship Council (MSC) to make an informed choice."},
	}
}
