package bumblebee

import (
	"fmt"
	"strings"
)

// PromptRules is the linguistic policy table passed to the translation
// gateway as prompt instructions. It is data, not logic: every entry can be
// replaced or extended by the caller without a code change.
type PromptRules struct {
	// BrandPrefix is a product-family prefix word. When it is followed by
	// another word and the pairing denotes a product or brand name, the
	// model is told to keep the pair in English.
	BrandPrefix string `yaml:"brand_prefix"`

	// Products are product and brand names that are never translated.
	Products []string `yaml:"products"`

	// People are names of persons that are never translated.
	People []string `yaml:"people"`

	// Verbatim are literal tokens that must appear unchanged in the output,
	// e.g. the fixed-format "24/7".
	Verbatim []string `yaml:"verbatim"`

	// TagOverrides maps an ambiguous locale tag to the language the model
	// should translate into, e.g. "sw" -> "Swahili".
	TagOverrides map[string]string `yaml:"tag_overrides"`

	// MirrorPunctuation maps a locale tag to a punctuation instruction for
	// right-to-left conventions, e.g. Arabic question marks.
	MirrorPunctuation map[string]string `yaml:"mirror_punctuation"`

	// Extra are free-form instruction lines appended verbatim.
	Extra []string `yaml:"extra"`
}

// DefaultPromptRules returns the standard rule table.
func DefaultPromptRules() PromptRules {
	return PromptRules{
		BrandPrefix: "Deriv",
		Products: []string{
			"Forex", "CFDs", "P2P", "MT5", "Deriv X", "Deriv cTrader",
			"SmartTrader", "Deriv Trader", "Deriv GO", "Deriv Bot", "Binary Bot",
		},
		People: []string{
			"Louise Wolf", "Rakshit Choudhary", "Chris Horn",
			"Seema Hallon", "Jean-Yves Sireau",
		},
		Verbatim: []string{"24/7"},
		TagOverrides: map[string]string{
			"sw": "Swahili",
		},
		MirrorPunctuation: map[string]string{
			"ar": "Use the Arabic question mark (؟) in place of '?', following right-to-left convention.",
		},
	}
}

// Instructions renders the rule table as prompt instruction lines for the
// given target locale tag.
func (r PromptRules) Instructions(targetTag string) []string {
	var lines []string
	if r.BrandPrefix != "" {
		lines = append(lines, fmt.Sprintf(
			"When encountering the word %q followed by another word, analyze the context and, when the pairing denotes a product or brand name, keep it in English.",
			r.BrandPrefix))
	}
	if len(r.Products) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Keep product names such as %s in English.", strings.Join(r.Products, ", ")))
	}
	if len(r.People) > 0 {
		lines = append(lines, fmt.Sprintf(
			"Do not translate the following names of people: %s. Keep them exactly as written.",
			strings.Join(r.People, ", ")))
	}
	for _, token := range r.Verbatim {
		lines = append(lines, fmt.Sprintf("Never translate the literal token %q.", token))
	}
	if lang, ok := r.TagOverrides[strings.ToLower(targetTag)]; ok {
		lines = append(lines, fmt.Sprintf(
			"The target language tag is %q: translate to %s specifically.", targetTag, lang))
	}
	if rule, ok := r.MirrorPunctuation[baseTag(targetTag)]; ok {
		lines = append(lines, rule)
	}
	lines = append(lines, r.Extra...)
	return lines
}

// baseTag extracts the base language from a BCP-47-like tag ("pt-BR" -> "pt").
func baseTag(tag string) string {
	tag = strings.ToLower(tag)
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return tag[:i]
	}
	return tag
}
