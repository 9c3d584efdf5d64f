package bumblebee

// LanguageNames maps locale tags to human-readable names for prompts.
// Webflow locale tags are BCP-47-like ("es", "pt-BR", "zh-CN").
var LanguageNames = map[string]string{
	"ar":    "Arabic",
	"bn":    "Bengali",
	"de":    "German",
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"id":    "Indonesian",
	"it":    "Italian",
	"ko":    "Korean",
	"ms":    "Malay",
	"pl":    "Polish",
	"pt":    "Portuguese",
	"pt-BR": "Brazilian Portuguese",
	"ru":    "Russian",
	"si":    "Sinhala",
	"sw":    "Swahili",
	"th":    "Thai",
	"tr":    "Turkish",
	"ur":    "Urdu",
	"vi":    "Vietnamese",
	"zh-CN": "Simplified Chinese",
	"zh-TW": "Traditional Chinese",
}

// LanguageName resolves a locale tag to a language name for prompt text.
// Unknown tags fall back to the tag itself, which the model handles fine.
func LanguageName(tag string) string {
	if name, ok := LanguageNames[tag]; ok {
		return name
	}
	if name, ok := LanguageNames[baseTag(tag)]; ok {
		return name
	}
	return tag
}
