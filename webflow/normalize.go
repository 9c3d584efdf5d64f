package webflow

import (
	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// NormalizeNodes converts DOM nodes into translatable records. Text-typed
// nodes become a single-field record carrying the rich-text HTML; component
// instances with property overrides become one record with a field per
// property identifier. Nodes with neither are skipped.
func NormalizeNodes(nodes []Node) []bumblebee.TranslatableRecord {
	var records []bumblebee.TranslatableRecord

	for _, node := range nodes {
		if node.Type == "text" && node.Text != nil {
			records = append(records, bumblebee.TranslatableRecord{
				ID:         node.ID,
				Identifier: node.ID,
				Kind:       bumblebee.KindTextNode,
				Fields:     map[string]string{"text": node.Text.HTML},
				FieldOrder: []string{"text"},
			})
			continue
		}

		if len(node.PropertyOverrides) == 0 {
			continue
		}
		fields := make(map[string]string)
		var order []string
		for _, override := range node.PropertyOverrides {
			if override.PropertyID == "" || override.Text == nil {
				continue
			}
			fields[override.PropertyID] = override.Text.Text
			order = append(order, override.PropertyID)
		}
		if len(fields) == 0 {
			continue
		}
		records = append(records, bumblebee.TranslatableRecord{
			ID:         node.ID,
			Identifier: node.ID,
			Kind:       bumblebee.KindNodeOverrides,
			Fields:     fields,
			FieldOrder: order,
		})
	}
	return records
}

// NormalizeComponentNodes converts component DOM nodes into translatable
// records. Only nodes with non-empty rich-text HTML are kept, matching the
// component content endpoint's update contract.
func NormalizeComponentNodes(nodes []Node) []bumblebee.TranslatableRecord {
	var records []bumblebee.TranslatableRecord
	for _, node := range nodes {
		if node.Text == nil || node.Text.HTML == "" {
			continue
		}
		records = append(records, bumblebee.TranslatableRecord{
			ID:         node.ID,
			Identifier: node.ID,
			Kind:       bumblebee.KindTextNode,
			Fields:     map[string]string{"text": node.Text.HTML},
			FieldOrder: []string{"text"},
		})
	}
	return records
}

// NormalizeProperties folds a component's default properties into a single
// record so one translation call covers the whole component. Properties
// without a text envelope are skipped.
func NormalizeProperties(componentID string, props []ComponentProperty) []bumblebee.TranslatableRecord {
	fields := make(map[string]string)
	var order []string
	for _, prop := range props {
		if prop.PropertyID == "" || prop.Text == nil {
			continue
		}
		value := prop.Text.Text
		if value == "" {
			value = prop.Text.HTML
		}
		fields[prop.PropertyID] = value
		order = append(order, prop.PropertyID)
	}
	if len(fields) == 0 {
		return nil
	}
	return []bumblebee.TranslatableRecord{{
		ID:         componentID,
		Identifier: componentID,
		Kind:       bumblebee.KindComponentProperty,
		Fields:     fields,
		FieldOrder: order,
	}}
}

// NormalizeItems converts CMS items into translatable records according to
// the content type's field schema. Fields in the translate set with string
// values become translation targets; everything else in the schema that is
// present on the item is carried through preserved. Fields absent from the
// item are omitted, not defaulted. Records whose translatable set ends up
// empty are still emitted so preserved-only content can flow through.
func NormalizeItems(items []CollectionItem, schema bumblebee.FieldSchema) []bumblebee.TranslatableRecord {
	records := make([]bumblebee.TranslatableRecord, 0, len(items))

	for _, item := range items {
		identifier := "Unnamed"
		if v, ok := item.FieldData[schema.IdentifierField].(string); ok && v != "" {
			identifier = v
		}
		slug := "no-slug"
		if v, ok := item.FieldData["slug"].(string); ok && v != "" {
			slug = v
		}

		rec := bumblebee.TranslatableRecord{
			ID:         item.ID,
			Identifier: identifier,
			Slug:       slug,
			Kind:       bumblebee.KindCollectionItem,
			Fields:     make(map[string]string),
			Preserved:  make(map[string]any),
		}
		for _, name := range schema.Translate {
			value, ok := item.FieldData[name]
			if !ok {
				continue
			}
			if s, ok := value.(string); ok {
				rec.Fields[name] = s
				rec.FieldOrder = append(rec.FieldOrder, name)
			} else {
				rec.Preserved[name] = value
			}
		}
		for _, name := range schema.Preserve {
			if value, ok := item.FieldData[name]; ok {
				rec.Preserved[name] = value
			}
		}
		records = append(records, rec)
	}
	return records
}
