package poster

import (
	"fmt"

	"marketing-poster-server/modules/common/model"
)

// BuildPrompt - narrative art-direction prompt around the product fields
func BuildPrompt(p model.ProductInfo) string {
	return fmt.Sprintf(
		"Don't just create a poster. Create a story. This isn't about decoration, it's about making people feel something the moment they see it.\n\n"+
			"Here's the product you're working with:\n"+
			"- Product Name: %s\n"+
			"- Price: %s\n"+
			"- Description: %s\n"+
			"- Location: %s\n"+
			"- Industry: %s\n\n"+
			"Now, design a marketing poster that is iconic. It must be clean, minimalistic, and emotionally powerful. "+
			"The product should be the hero of the poster. Use whitespace and typography masterfully; every element must have a reason to exist. "+
			"Highlight the product name and price with absolute clarity, and let the design whisper confidence and trust.\n"+
			"Avoid clutter. Avoid clichés. Make it timeless. The result should look like it could be on a billboard in New York City or in an Apple keynote. "+
			"Something people instantly remember, something people believe in.\n"+
			"Create the highest-resolution, modern, industry-relevant poster possible, blending design thinking with storytelling. Make it extraordinary. Make it unforgettable.",
		p.ProductName, p.Price, p.Description, p.Location, p.Industry,
	)
}
