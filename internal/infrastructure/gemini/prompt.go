package gemini

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/shoplens/backend/internal/domain"
)

// analysisPrompt takes the product name (%[1]s) and the resolved language name (%[2]s)
const analysisPrompt = `
	You are an expert product analyst for the Indian market. Your goal is to provide a comprehensive, structured overview for the user.
	Focus your search on the **Indian e-commerce market**.

	Search the web for the product: "%[1]s".

	Your task is to gather the following information and return it ONLY as a single, minified JSON object. Do not add any other text, greetings, or explanations.

	1.  **productName**: The official name of the product you analyzed.
	2.  **variants**: Identify 2-4 common variants of this product available in India (e.g., different RAM/storage, different models like 'Pro' or 'Lite'). Provide the variant name and a brief description.
	3.  **prices**: Find the current price from at least 3 different major Indian online retailers (e.g., Amazon.in, Flipkart, Croma, Reliance Digital). Prices must be in **Indian Rupees (₹)**. Provide the store name, the price, and a direct URL.
	4.  **pros**: Read user and expert reviews from an Indian perspective. List the top 3-5 most commonly cited positive points.
	5.  **cons**: Read user and expert reviews from an Indian perspective. List the top 3-5 most commonly cited negative points.
	6.  **alternativeProducts**: Suggest 2-3 alternative products in a similar price range and category, popular in the Indian market. For each, provide the name, estimated price in INR, and a short reason why it's a good alternative.

	All text in 'pros', 'cons', 'variants', and 'alternativeProducts' must be in %[2]s.

	The final JSON object must match this exact structure:
	{
	  "productName": "Official Product Name",
	  "variants": [
	    {"name": "Variant Name", "description": "Brief description in %[2]s"},
	    ...
	  ],
	  "prices": [
	    {"store": "Store Name", "price": "Price in ₹", "url": "Product URL"},
	    ...
	  ],
	  "pros": [
	    "Positive point 1 in %[2]s",
	    ...
	  ],
	  "cons": [
	    "Negative point 1 in %[2]s",
	    ...
	  ],
	  "alternativeProducts": [
	    {"name": "Alternative Product Name", "price": "Estimated Price in ₹", "reason": "Reason for suggestion in %[2]s"},
	    ...
	  ]
	}
`

// BuildPrompt renders the analysis instruction for a product and output language.
// Unknown language codes fall back to English.
func BuildPrompt(productName string, language domain.Language) string {
	text := strings.TrimSpace(dedent.Dedent(analysisPrompt))
	return fmt.Sprintf(text, productName, language.DisplayName())
}
