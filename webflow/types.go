package webflow

// Pagination is the metadata block carried on every paginated response.
// Total is authoritative across all pages.
type Pagination struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RichText is the text envelope carried by DOM nodes and property
// overrides: HTML for rich text, Text for plain text.
type RichText struct {
	HTML string `json:"html,omitempty"`
	Text string `json:"text,omitempty"`
}

// Node is one page or component DOM node. Text-typed nodes carry a single
// rich-text value; component instances carry per-property overrides.
type Node struct {
	ID                string             `json:"id"`
	Type              string             `json:"type"`
	Text              *RichText          `json:"text,omitempty"`
	PropertyOverrides []PropertyOverride `json:"propertyOverrides,omitempty"`
}

// PropertyOverride is a per-instance text customization on a component node.
type PropertyOverride struct {
	PropertyID string    `json:"propertyId"`
	Text       *RichText `json:"text,omitempty"`
}

// ComponentProperty is one default property on a reusable component.
type ComponentProperty struct {
	PropertyID string    `json:"propertyId"`
	Type       string    `json:"type,omitempty"`
	Label      string    `json:"label,omitempty"`
	Text       *RichText `json:"text,omitempty"`
}

// Page is a site page summary.
type Page struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Component is a reusable component summary.
type Component struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Collection is a CMS collection summary.
type Collection struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Slug        string `json:"slug"`
}

// CollectionItem is one CMS item. FieldData is the loosely-shaped field
// container the normalizer filters through a FieldSchema.
type CollectionItem struct {
	ID          string         `json:"id"`
	CMSLocaleID string         `json:"cmsLocaleId,omitempty"`
	IsArchived  bool           `json:"isArchived"`
	IsDraft     bool           `json:"isDraft"`
	FieldData   map[string]any `json:"fieldData"`
}

// siteLocale is the raw locale record on the site resource. The site
// localeId namespace addresses page translations; cmsLocaleId addresses
// collection item translations.
type siteLocale struct {
	ID          string `json:"id"`
	CMSLocaleID string `json:"cmsLocaleId"`
	Tag         string `json:"tag"`
	DisplayName string `json:"displayName"`
	Enabled     bool   `json:"enabled"`
}
