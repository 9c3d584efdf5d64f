package webflow

import (
	"context"
	"net/url"
	"strconv"
)

func pageQuery(offset, limit int) url.Values {
	return url.Values{
		"offset": {strconv.Itoa(offset)},
		"limit":  {strconv.Itoa(limit)},
	}
}

// Pages lists the site's pages.
func (c *Client) Pages(ctx context.Context, siteID string) ([]Page, error) {
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]Page, Pagination, error) {
		var resp struct {
			Pages      []Page     `json:"pages"`
			Pagination Pagination `json:"pagination"`
		}
		err := c.do(ctx, "GET", "/sites/"+siteID+"/pages", pageQuery(offset, limit), nil, &resp)
		return resp.Pages, resp.Pagination, err
	})
}

// Collections lists the site's CMS collections.
func (c *Client) Collections(ctx context.Context, siteID string) ([]Collection, error) {
	var resp struct {
		Collections []Collection `json:"collections"`
	}
	if err := c.do(ctx, "GET", "/sites/"+siteID+"/collections", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Collections, nil
}

// Components lists the site's reusable components.
func (c *Client) Components(ctx context.Context, siteID string) ([]Component, error) {
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]Component, Pagination, error) {
		var resp struct {
			Components []Component `json:"components"`
			Pagination Pagination  `json:"pagination"`
		}
		err := c.do(ctx, "GET", "/sites/"+siteID+"/components", pageQuery(offset, limit), nil, &resp)
		return resp.Components, resp.Pagination, err
	})
}

// CollectionItems exhaustively fetches a collection's items.
func (c *Client) CollectionItems(ctx context.Context, collectionID string) ([]CollectionItem, error) {
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]CollectionItem, Pagination, error) {
		var resp struct {
			Items      []CollectionItem `json:"items"`
			Pagination Pagination       `json:"pagination"`
		}
		err := c.do(ctx, "GET", "/collections/"+collectionID+"/items", pageQuery(offset, limit), nil, &resp)
		return resp.Items, resp.Pagination, err
	})
}

// PageDOM exhaustively fetches a page's DOM nodes.
func (c *Client) PageDOM(ctx context.Context, pageID string) ([]Node, error) {
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]Node, Pagination, error) {
		var resp struct {
			Nodes      []Node     `json:"nodes"`
			Pagination Pagination `json:"pagination"`
		}
		err := c.do(ctx, "GET", "/pages/"+pageID+"/dom", pageQuery(offset, limit), nil, &resp)
		return resp.Nodes, resp.Pagination, err
	})
}

// ComponentDOM exhaustively fetches a component's DOM nodes.
func (c *Client) ComponentDOM(ctx context.Context, siteID, componentID string) ([]Node, error) {
	path := "/sites/" + siteID + "/components/" + componentID + "/dom"
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]Node, Pagination, error) {
		var resp struct {
			Nodes      []Node     `json:"nodes"`
			Pagination Pagination `json:"pagination"`
		}
		err := c.do(ctx, "GET", path, pageQuery(offset, limit), nil, &resp)
		return resp.Nodes, resp.Pagination, err
	})
}

// ComponentProperties exhaustively fetches a component's default properties.
func (c *Client) ComponentProperties(ctx context.Context, siteID, componentID string) ([]ComponentProperty, error) {
	path := "/sites/" + siteID + "/components/" + componentID + "/properties"
	return fetchAll(ctx, c.logger, func(ctx context.Context, offset, limit int) ([]ComponentProperty, Pagination, error) {
		var resp struct {
			Properties []ComponentProperty `json:"properties"`
			Pagination Pagination          `json:"pagination"`
		}
		err := c.do(ctx, "GET", path, pageQuery(offset, limit), nil, &resp)
		return resp.Properties, resp.Pagination, err
	})
}
