package webflow

import (
	"context"

	bumblebee "github.com/arshaad-deriv/bumble-bee"
)

// siteResponse is the subset of the site resource the pipeline reads.
type siteResponse struct {
	Locales struct {
		Primary   siteLocale   `json:"primary"`
		Secondary []siteLocale `json:"secondary"`
	} `json:"locales"`
}

// SiteLocales lists the site's locales keyed by the site localeId namespace,
// used for page and component DOM translations. The primary locale comes
// first and is flagged Default.
func (c *Client) SiteLocales(ctx context.Context, siteID string) ([]bumblebee.LocaleTarget, error) {
	var site siteResponse
	if err := c.do(ctx, "GET", "/sites/"+siteID, nil, nil, &site); err != nil {
		return nil, err
	}

	var locales []bumblebee.LocaleTarget
	if p := site.Locales.Primary; p.ID != "" {
		locales = append(locales, bumblebee.LocaleTarget{
			ID: p.ID, Tag: p.Tag, DisplayName: p.DisplayName, Default: true,
		})
	}
	for _, s := range site.Locales.Secondary {
		locales = append(locales, bumblebee.LocaleTarget{
			ID: s.ID, Tag: s.Tag, DisplayName: s.DisplayName,
		})
	}
	return locales, nil
}

// CMSLocales lists the site's locales keyed by the cmsLocaleId namespace,
// used for collection item translations. Disabled secondary locales are
// skipped.
func (c *Client) CMSLocales(ctx context.Context, siteID string) ([]bumblebee.LocaleTarget, error) {
	var site siteResponse
	if err := c.do(ctx, "GET", "/sites/"+siteID, nil, nil, &site); err != nil {
		return nil, err
	}

	var locales []bumblebee.LocaleTarget
	if p := site.Locales.Primary; p.CMSLocaleID != "" {
		locales = append(locales, bumblebee.LocaleTarget{
			ID: p.CMSLocaleID, Tag: p.Tag, DisplayName: p.DisplayName, Default: true,
		})
	}
	for _, s := range site.Locales.Secondary {
		if !s.Enabled {
			continue
		}
		locales = append(locales, bumblebee.LocaleTarget{
			ID: s.CMSLocaleID, Tag: s.Tag, DisplayName: s.DisplayName,
		})
	}
	return locales, nil
}
