package script

import (
	"fmt"
	"strings"

	"scriptviral/internal/domain"
)

// BuildInstruction renders the natural-language instruction for one request.
// It is a pure function of its input: the output schema travels separately,
// not embedded here.
func BuildInstruction(req domain.GenerationRequest) string {
	sb := &strings.Builder{}
	sb.WriteString("You are an expert marketing script generator for social media. ")
	sb.WriteString("Your primary goal is to create scripts that are precisely tailored to the user's specified video duration.\n\n")
	fmt.Fprintf(sb, "You will generate %d different script options based on the product link and the following preferences:\n\n", req.OutputCount)
	fmt.Fprintf(sb, "Product Link: %s\n", req.ProductLink)
	fmt.Fprintf(sb, "Language Style: %s\n", req.LanguageStyle)
	fmt.Fprintf(sb, "Hook Type: %s\n\n", req.HookType)
	fmt.Fprintf(sb, "Crucial instruction: the script's content MUST be readable within the specified video duration. ")
	fmt.Fprintf(sb, "The target video duration is exactly %d seconds. ", req.ScriptLength)
	fmt.Fprintf(sb, "Adjust the word count and pacing of the script to strictly meet this time limit. ")
	fmt.Fprintf(sb, "Do not generate a script that is too long or too short for a %d-second video.\n\n", req.ScriptLength)
	sb.WriteString(ctaDirective(req))
	sb.WriteString("Each script option must include relevant and powerful hashtags. ")
	sb.WriteString("All content must be tailored to the Indonesian market.\n\n")
	fmt.Fprintf(sb, "Ensure that the output provides exactly %d distinct script options, each with its own unique content for every field. ", req.OutputCount)
	sb.WriteString("Be creative and persuasive while strictly adhering to the time constraint.")
	return sb.String()
}

func ctaDirective(req domain.GenerationRequest) string {
	if req.CTAType != domain.CTAMarketplace {
		return fmt.Sprintf("The call to action of every option must express the intent %q.\n\n", string(req.CTAType))
	}
	sb := &strings.Builder{}
	sb.WriteString("For the call to action, infer the source marketplace from the product link's domain ")
	sb.WriteString("(e-commerce platforms like Shopee or Tokopedia versus social platforms like TikTok or Instagram) ")
	sb.WriteString("and pick the CTA category that fits it best yourself.")
	if m := domain.DetectMarketplace(req.ProductLink); m != domain.MarketplaceUnknown {
		fmt.Fprintf(sb, " The link points to %s, so a %q CTA fits, for example: %q.", m, string(m.CTACategory()), m.CTAExample())
	}
	sb.WriteString(" Fold the chosen category's intent and phrasing into the generated text; never leave the CTA blank.\n\n")
	return sb.String()
}
