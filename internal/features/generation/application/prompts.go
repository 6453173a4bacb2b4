package application

import (
	"fmt"
	"strings"

	"marketing-ai-hub/backend/internal/features/generation/domain"
)

// contentTypeLeads maps a content type to the instruction that opens the
// content-generation prompt.
var contentTypeLeads = map[string]string{
	"social-media":        "Create an engaging social media post",
	"blog-post":           "Write a compelling blog post introduction and outline",
	"product-description": "Write a persuasive product description",
	"ad-copy":             "Create compelling advertisement copy",
	"newsletter":          "Write engaging newsletter content",
	"landing-page":        "Write persuasive landing page copy",
}

func contentAnalysisPrompt(f domain.Fields) string {
	return fmt.Sprintf(`You are simulating how a specific persona would interact with marketing content. Analyze this %s from their perspective.

PERSONA PROFILE:
%s

MARKETING CONTENT TO ANALYZE:
%s

Simulate this persona's interaction with the content step by step:

1. ATTENTION: What catches their eye first? What do they notice immediately?
2. ENGAGEMENT: What elements would they click on or interact with?
3. FRICTION: What turns them off, creates doubt, or makes them want to leave?
4. EMOTION: How does the content make them feel? What's their emotional journey?
5. DECISION: Would they ultimately convert/buy? Why or why not?

Provide a detailed analysis that includes:
- Their emotional response and feelings
- What they notice first (in order of attention)
- What they would click on
- What creates friction or turns them off
- Pros and cons from their perspective
- Conversion likelihood (0-100 score)
- Specific improvement suggestions
- Your confidence level in this analysis

Be specific and realistic based on the persona's demographics, psychographics, pain points, and behavioral patterns.`,
		f.Text("contentType"), f.Text("personaContext"), f.Text("marketingContent"))
}

func marketAnalysisPrompt(f domain.Fields) string {
	return fmt.Sprintf(`Conduct a comprehensive market analysis for:

INDUSTRY: %s
PRODUCT/SERVICE: %s
TARGET MARKET: %s
KNOWN COMPETITORS: %s
ADDITIONAL CONTEXT: %s

Provide a detailed market analysis including:
- Market overview and current state
- Market size and growth projections
- Key market trends (positive and negative)
- Competitive landscape analysis
- Market opportunities
- Market challenges and barriers
- Strategic recommendations

Be specific, data-driven where possible, and provide actionable insights for market entry or expansion.`,
		f.Text("industry"), f.Text("product"), f.Text("targetMarket"), f.Text("competitors"), f.Text("additionalInfo"))
}

func campaignPrompt(f domain.Fields) string {
	return fmt.Sprintf(`Create a comprehensive marketing campaign strategy for:

PRODUCT/SERVICE: %s
TARGET AUDIENCE: %s
BUDGET: %s
DURATION: %s
PRIMARY GOAL: %s
PREFERRED CHANNELS: %s
ADDITIONAL INFO: %s

Generate a detailed campaign strategy that includes:
- Campaign name and tagline
- Campaign overview and strategy
- Campaign phases with timeline
- Marketing channels to use
- Budget allocation breakdown
- Key performance indicators (KPIs)

Make it actionable, realistic, and tailored to the specific goals and constraints provided.`,
		f.Text("product"), f.Text("targetAudience"), f.Text("budget"), f.Text("duration"),
		f.Text("goals"), f.Text("channels"), f.Text("additionalInfo"))
}

func contentPrompt(f domain.Fields) string {
	lead, ok := contentTypeLeads[f.Text("contentType")]
	if !ok {
		lead = "undefined"
	}
	return fmt.Sprintf(`%s about "%s".
Target audience: %s
Tone: %s
Additional requirements: %s

Make it engaging, relevant, and actionable. Include strong calls-to-action where suitable.`,
		lead, f.Text("topic"), f.Text("audience"), f.Text("tone"), f.Text("additionalInfo"))
}

func ideasPrompt(f domain.Fields) string {
	return fmt.Sprintf(`Generate creative marketing ideas for:

BUSINESS: %[1]s
CHALLENGE: %[2]s
TARGET AUDIENCE: %[3]s
BUDGET: %[4]s
TIMEFRAME: %[5]s
CREATIVITY LEVEL: %[6]s
ADDITIONAL CONTEXT: %[7]s

Generate a comprehensive set of marketing ideas including:

1. QUICK WINS: 3-4 low-effort, high-impact ideas that can be implemented quickly
2. CAMPAIGN IDEAS: 2-3 larger campaign concepts with detailed execution plans
3. CONTENT IDEAS: 4-6 specific content pieces across different platforms
4. IMPLEMENTATION TIPS: Practical advice for executing these ideas

Tailor the creativity level to match the requested approach (%[6]s). Make ideas specific, actionable, and relevant to the target audience and business context.`,
		f.Text("business"), f.Text("challenge"), f.Text("audience"), f.Text("budget"),
		f.Text("timeframe"), f.Text("creativity"), f.Text("additionalInfo"))
}

func personaPrompt(f domain.Fields) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed marketing persona for a %s business that offers %s.\n\n", f.Text("industry"), f.Text("product"))

	section := func(title string, rows [][2]string, suffix string) {
		b.WriteString(title + ":\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "- %s: %s%s\n", row[0], f.Text(row[1]), suffix)
		}
		b.WriteString("\n")
	}
	section("DEMOGRAPHICS", [][2]string{
		{"Age", "age"},
		{"Gender", "gender"},
		{"Location", "location"},
		{"Income", "income"},
		{"Profession", "profession"},
		{"Education", "education"},
	}, "")
	section("PSYCHOGRAPHICS", [][2]string{
		{"Personality Type", "personalityType"},
		{"Lifestyle", "lifestyle"},
		{"Core Values", "coreValues"},
		{"Decision Making", "decisionMaking"},
		{"Pain Points", "painPoints"},
		{"Shopping Motivation", "shoppingMotivation"},
	}, "")
	section("MEDIA HABITS", [][2]string{
		{"Devices", "devices"},
		{"Social Platforms", "socialPlatforms"},
		{"Content Type", "contentType"},
		{"Brand Trust", "brandTrust"},
	}, "")
	section("PERSONALITY TRAITS (1-10 scale)", [][2]string{
		{"Trust Level", "trustLevel"},
		{"Innovation Level", "innovationLevel"},
		{"Price vs Quality Focus", "priceVsQuality"},
		{"Social Level", "socialLevel"},
	}, "/10")

	if f.Truthy("personalitySeed") {
		fmt.Fprintf(&b, "PERSONALITY SEED TEXT: %s", f.Text("personalitySeed"))
	}
	fmt.Fprintf(&b, "\n\nAdditional context: %s\n\n", f.Text("additionalInfo"))
	b.WriteString("Generate a comprehensive, realistic persona that incorporates ALL the provided information. " +
		"Include specific behavioral patterns, communication preferences, and detailed marketing recommendations based on the complete profile.")
	return b.String()
}

func personaHeader(p domain.Fields) string {
	return fmt.Sprintf(`PERSONA DETAILS:
- Age: %s
- Background: %s
- Personality: %s`, p.Text("age"), p.Text("background"), p.Text("personality"))
}

func adFeedbackPrompt(f domain.Fields) string {
	p := f.Object("persona")
	name := p.Text("name")
	return fmt.Sprintf(`You are %[1]s, %[2]s.

%[3]s

Please review this advertisement/marketing material from your perspective:

"%[4]s"

Provide detailed feedback as %[1]s would, including:

1. **First Impression**: What's your immediate reaction?
2. **What Catches Your Eye**: What elements stand out to you?
3. **Credibility**: Do you trust this message? Why or why not?
4. **Relevance**: How relevant is this to your needs/interests?
5. **Emotional Response**: How does this make you feel?
6. **Action Likelihood**: Would you click/buy/engage? Why?
7. **Improvements**: What would make this more appealing to you?
8. **Overall Rating**: Rate this ad from 1-10 and explain why.

Be honest, specific, and true to your persona's characteristics. Use "I" statements and speak from your personal perspective.`,
		name, p.Text("title"), personaHeader(p), f.Text("adContent"))
}

func chatPrompt(f domain.Fields) string {
	p := f.Object("persona")
	name := p.Text("name")

	history := f.History("conversationHistory")
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := name
		if msg.Role == domain.ChatRoleUser {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+msg.Content)
	}

	return fmt.Sprintf(`You are %[1]s, %[2]s.

%[3]s

CONVERSATION HISTORY:
%[4]s

User: %[5]s

Respond as %[1]s would, staying true to your personality, background, and perspective. Be conversational, authentic, and provide insights based on your persona's characteristics. If asked about marketing materials, give honest feedback from your persona's viewpoint.

%[1]s:`,
		name, p.Text("title"), personaHeader(p), strings.Join(lines, "\n"), f.Text("message"))
}
