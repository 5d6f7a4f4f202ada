package caption

import (
	"fmt"

	"marketing-poster-server/modules/common/model"
)

// BuildPrompt - text-only prompt for a social media caption
func BuildPrompt(p model.ProductInfo) string {
	return fmt.Sprintf(
		"You are a copywriter who writes captions people actually stop scrolling for.\n\n"+
			"Here's the product:\n"+
			"- Product Name: %s\n"+
			"- Price: %s\n"+
			"- Description: %s\n"+
			"- Location: %s\n"+
			"- Industry: %s\n\n"+
			"Write one marketing caption for a social media post about this product. "+
			"Keep it to two or three short sentences, name the product and state the price clearly, "+
			"and speak to customers in the given location in a tone that fits the industry. "+
			"Finish with three to five relevant hashtags.\n"+
			"Reply with the caption text only: no title, no quotes, no explanations.",
		p.ProductName, p.Price, p.Description, p.Location, p.Industry,
	)
}
