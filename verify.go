package bumblebee

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MissingTerms reports glossary terms that appear in the original fields but
// are absent from the translated fields. Terms are matched case-sensitively
// as literal strings; HTML markup is stripped before matching so a term
// split by tags in the source does not produce a false positive.
func MissingTerms(original, translated map[string]string, terms []string) []string {
	if len(terms) == 0 {
		return nil
	}

	var src, dst strings.Builder
	for name, v := range original {
		src.WriteString(textContent(v))
		src.WriteByte('\n')
		if tv, ok := translated[name]; ok {
			dst.WriteString(textContent(tv))
			dst.WriteByte('\n')
		}
	}
	source, target := src.String(), dst.String()

	var missing []string
	for _, term := range terms {
		if strings.Contains(source, term) && !strings.Contains(target, term) {
			missing = append(missing, term)
		}
	}
	return missing
}

// textContent strips HTML markup from a field value. Values that do not
// parse as HTML are returned unchanged.
func textContent(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
