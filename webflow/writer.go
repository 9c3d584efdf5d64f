package webflow

import (
	"context"
	"net/url"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// domWritePayload is the localized DOM update body shared by page and
// component content endpoints.
type domWritePayload struct {
	Nodes []domWriteNode `json:"nodes"`
}

type domWriteNode struct {
	NodeID            string              `json:"nodeId"`
	Text              string              `json:"text,omitempty"`
	PropertyOverrides []propertyWriteItem `json:"propertyOverrides,omitempty"`
}

type propertyWriteItem struct {
	PropertyID string `json:"propertyId"`
	Text       string `json:"text"`
}

// domWriteResponse carries the per-node error list a 200 response may
// still include.
type domWriteResponse struct {
	Errors []bumblebee.NodeWriteError `json:"errors"`
}

// domNodeFor reassembles one record into the DOM update shape.
func domNodeFor(rec bumblebee.TranslatableRecord) domWriteNode {
	node := domWriteNode{NodeID: rec.ID}
	if rec.Kind == bumblebee.KindNodeOverrides {
		for _, name := range rec.FieldNames() {
			node.PropertyOverrides = append(node.PropertyOverrides, propertyWriteItem{
				PropertyID: name,
				Text:       rec.Fields[name],
			})
		}
		return node
	}
	node.Text = rec.Fields["text"]
	return node
}

// receiptFrom surfaces in-band node errors without failing the write.
func receiptFrom(resp domWriteResponse) *bumblebee.WriteReceipt {
	return &bumblebee.WriteReceipt{NodeErrors: resp.Errors}
}

// PageWriter publishes translated page DOM records.
type PageWriter struct {
	client *Client
	pageID string
}

// NewPageWriter creates a writer for one page.
func NewPageWriter(client *Client, pageID string) *PageWriter {
	return &PageWriter{client: client, pageID: pageID}
}

// Write implements bumblebee.Writer. locale.ID must be a site localeId.
func (w *PageWriter) Write(ctx context.Context, rec bumblebee.TranslatableRecord, locale bumblebee.LocaleTarget) (*bumblebee.WriteReceipt, error) {
	payload := domWritePayload{Nodes: []domWriteNode{domNodeFor(rec)}}
	query := url.Values{"localeId": {locale.ID}}

	var resp domWriteResponse
	if err := w.client.do(ctx, "POST", "/pages/"+w.pageID+"/dom", query, payload, &resp); err != nil {
		return nil, err
	}
	return receiptFrom(resp), nil
}

// ComponentWriter publishes translated component DOM records.
type ComponentWriter struct {
	client      *Client
	siteID      string
	componentID string
}

// NewComponentWriter creates a writer for one component's content.
func NewComponentWriter(client *Client, siteID, componentID string) *ComponentWriter {
	return &ComponentWriter{client: client, siteID: siteID, componentID: componentID}
}

// Write implements bumblebee.Writer. locale.ID must be a site localeId.
func (w *ComponentWriter) Write(ctx context.Context, rec bumblebee.TranslatableRecord, locale bumblebee.LocaleTarget) (*bumblebee.WriteReceipt, error) {
	payload := domWritePayload{Nodes: []domWriteNode{domNodeFor(rec)}}
	query := url.Values{"localeId": {locale.ID}}
	path := "/sites/" + w.siteID + "/components/" + w.componentID + "/dom"

	var resp domWriteResponse
	if err := w.client.do(ctx, "POST", path, query, payload, &resp); err != nil {
		return nil, err
	}
	return receiptFrom(resp), nil
}

// PropertiesWriter publishes translated component default properties.
type PropertiesWriter struct {
	client      *Client
	siteID      string
	componentID string
}

// NewPropertiesWriter creates a writer for one component's properties.
func NewPropertiesWriter(client *Client, siteID, componentID string) *PropertiesWriter {
	return &PropertiesWriter{client: client, siteID: siteID, componentID: componentID}
}

// Write implements bumblebee.Writer. locale.ID must be a site localeId.
func (w *PropertiesWriter) Write(ctx context.Context, rec bumblebee.TranslatableRecord, locale bumblebee.LocaleTarget) (*bumblebee.WriteReceipt, error) {
	payload := struct {
		Properties []propertyWriteItem `json:"properties"`
	}{}
	for _, name := range rec.FieldNames() {
		payload.Properties = append(payload.Properties, propertyWriteItem{
			PropertyID: name,
			Text:       rec.Fields[name],
		})
	}
	query := url.Values{"localeId": {locale.ID}}
	path := "/sites/" + w.siteID + "/components/" + w.componentID + "/properties"

	var resp domWriteResponse
	if err := w.client.do(ctx, "POST", path, query, payload, &resp); err != nil {
		return nil, err
	}
	return receiptFrom(resp), nil
}

// CollectionItemWriter publishes translated CMS items.
type CollectionItemWriter struct {
	client       *Client
	collectionID string
}

// NewCollectionItemWriter creates a writer for one collection.
func NewCollectionItemWriter(client *Client, collectionID string) *CollectionItemWriter {
	return &CollectionItemWriter{client: client, collectionID: collectionID}
}

// Write implements bumblebee.Writer. locale.ID must be a cmsLocaleId. The
// update payload is the flat field map: translated fields plus every
// preserved field, unchanged.
func (w *CollectionItemWriter) Write(ctx context.Context, rec bumblebee.TranslatableRecord, locale bumblebee.LocaleTarget) (*bumblebee.WriteReceipt, error) {
	fieldData := make(map[string]any, len(rec.Fields)+len(rec.Preserved))
	for name, value := range rec.Preserved {
		fieldData[name] = value
	}
	for name, value := range rec.Fields {
		fieldData[name] = value
	}

	payload := struct {
		IsArchived  bool           `json:"isArchived"`
		IsDraft     bool           `json:"isDraft"`
		FieldData   map[string]any `json:"fieldData"`
		CMSLocaleID string         `json:"cmsLocaleId"`
	}{
		FieldData:   fieldData,
		CMSLocaleID: locale.ID,
	}

	path := "/collections/" + w.collectionID + "/items/" + rec.ID
	if err := w.client.do(ctx, "PATCH", path, nil, payload, nil); err != nil {
		return nil, err
	}
	return &bumblebee.WriteReceipt{}, nil
}
