package bumblebee

import "sort"

// Glossary maps a category name to literal strings that must appear
// unchanged in translated output. Read-only during a translation run, so it
// may be shared across concurrent workers.
type Glossary map[string][]string

// Terms flattens the glossary into a sorted, deduplicated slice.
func (g Glossary) Terms() []string {
	seen := make(map[string]bool)
	var terms []string
	for _, list := range g {
		for _, term := range list {
			if term != "" && !seen[term] {
				seen[term] = true
				terms = append(terms, term)
			}
		}
	}
	sort.Strings(terms)
	return terms
}

// Merge returns a new glossary combining g and other. Categories present in
// both are concatenated; Terms() deduplicates.
func (g Glossary) Merge(other Glossary) Glossary {
	out := make(Glossary, len(g)+len(other))
	for cat, list := range g {
		out[cat] = append([]string(nil), list...)
	}
	for cat, list := range other {
		out[cat] = append(out[cat], list...)
	}
	return out
}

// DefaultGlossary returns the built-in do-not-translate term set. Callers
// normally merge their own categories on top or replace it entirely.
func DefaultGlossary() Glossary {
	return Glossary{
		"technical_terms": {
			"API", "SDK", "URL", "HTTP", "HTTPS", "SSL", "TLS", "JSON", "XML",
			"REST", "WebSocket", "OAuth", "Passkey", "JWT", "VPN", "CSV", "PDF",
			"iOS", "Android",
		},
		"products": {
			"Deriv App", "Deriv Bot", "Deriv GO", "Deriv Trader", "Deriv X",
			"Deriv cTrader", "SmartTrader", "Binary Bot", "MT5", "P2P",
		},
		"awards": {
			"Affiliate Program of the Year", "Best Customer Service - Global",
			"Best Latam Region Broker", "Best Partner Programme",
			"Best Trading Experience", "Broker of the Year - Global",
			"Global Forex Awards", "Most Innovative Broker", "Most Trusted Broker",
		},
		"people": {
			"Louise Wolf", "Rakshit Choudhary", "Chris Horn",
			"Seema Hallon", "Jean-Yves Sireau",
		},
		"addresses": {
			"Deriv HQ, 3500, Jalan Teknokrat 3, 63000 Cyberjaya, Selangor",
			"First Floor, 68 - 72 Leonard Street, London, EC2A 4QX",
			"Level 3, W Business Centre, Triq Dun Karm, Birkirkara, BKR 9033",
			"80 Robinson Road, #11-03, Singapore 068898",
			"Kemperplatz 1 Mitte D, 10785 Berlin, Germany",
			"Office 1902, Jumeirah Business Center 1, JLT Cluster G",
		},
	}
}
