package geoserver

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// The OGC service family returns bare content with no status channel:
// a failed request surfaces as an error instead.

// LayerSummary is one layer advertised by a capabilities document.
type LayerSummary struct {
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Abstract string `json:"abstract,omitempty"`
}

// GetWMSLayers lists the layers a workspace's WMS advertises. The
// capabilities document is cached; acceptLanguages selects localized
// titles and bypasses the cache key only through its value.
func (c *Client) GetWMSLayers(
	ctx context.Context, workspace, acceptLanguages string,
) ([]LayerSummary, error) {
	q := url.Values{
		"service": {"WMS"},
		"version": {"1.3.0"},
		"request": {"GetCapabilities"},
	}
	if acceptLanguages != "" {
		q.Set("AcceptLanguages", acceptLanguages)
	}

	doc, err := c.capabilities(ctx, workspace, "wms:"+acceptLanguages, q)
	if err != nil {
		return nil, err
	}
	return parseWMSCapabilities(doc)
}

// GetWFSLayers lists the feature types a workspace's WFS advertises.
func (c *Client) GetWFSLayers(ctx context.Context, workspace string) ([]LayerSummary, error) {
	q := url.Values{
		"service": {"WFS"},
		"version": {"2.0.0"},
		"request": {"GetCapabilities"},
	}
	doc, err := c.capabilities(ctx, workspace, "wfs", q)
	if err != nil {
		return nil, err
	}
	return parseWFSCapabilities(doc)
}

// GetFeature performs a WFS GetFeature request and returns the GeoJSON
// response. featureID and maxFeatures are optional (zero values skip).
func (c *Client) GetFeature(
	ctx context.Context, workspace, typeName, featureID string, maxFeatures int,
) (any, error) {
	q := url.Values{
		"service":      {"WFS"},
		"version":      {"2.0.0"},
		"request":      {"GetFeature"},
		"typeNames":    {typeName},
		"outputFormat": {"application/json"},
	}
	if featureID != "" {
		q.Set("featureID", featureID)
	}
	if maxFeatures > 0 {
		q.Set("count", strconv.Itoa(maxFeatures))
	}

	body, status, err := c.ows(ctx, workspace, q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Status: status, Message: trimForError(body)}
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		// Service exceptions come back as XML even when JSON was requested.
		return nil, fmt.Errorf("unexpected GetFeature response: %s", trimForError(body))
	}
	return v, nil
}

// DescribeFeatureType returns schema information for one feature type
// or, when typeName is empty, for all of them.
func (c *Client) DescribeFeatureType(ctx context.Context, workspace, typeName string) (any, error) {
	q := url.Values{
		"service":      {"WFS"},
		"version":      {"2.0.0"},
		"request":      {"DescribeFeatureType"},
		"outputFormat": {"application/json"},
	}
	if typeName != "" {
		q.Set("typeNames", typeName)
	}

	body, status, err := c.ows(ctx, workspace, q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Status: status, Message: trimForError(body)}
	}

	var v any
	if err := json.Unmarshal([]byte(body), &v); err == nil {
		return v, nil
	}
	return body, nil
}

// GetPropertyValue returns the values of one property across a feature
// type via WFS GetPropertyValue.
func (c *Client) GetPropertyValue(
	ctx context.Context, workspace, typeName, property string,
) ([]string, error) {
	q := url.Values{
		"service":        {"WFS"},
		"version":        {"2.0.0"},
		"request":        {"GetPropertyValue"},
		"typeNames":      {typeName},
		"valueReference": {property},
	}

	body, status, err := c.ows(ctx, workspace, q, nil)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &StatusError{Status: status, Message: trimForError(body)}
	}
	return parsePropertyValues(body)
}

// capabilities fetches a capabilities document through the shared cache.
func (c *Client) capabilities(
	ctx context.Context, workspace, kind string, q url.Values,
) (string, error) {
	key := c.baseURL + "/" + workspace + "/" + kind
	return c.caps.Load(key, func() (string, error) {
		body, status, err := c.ows(ctx, workspace, q, nil)
		if err != nil {
			return "", err
		}
		if status != http.StatusOK {
			return "", &StatusError{Status: status, Message: trimForError(body)}
		}
		return body, nil
	})
}

func parseWMSCapabilities(doc string) ([]LayerSummary, error) {
	var caps struct {
		Capability struct {
			Layer wmsLayer `xml:"Layer"`
		} `xml:"Capability"`
	}
	if err := xml.Unmarshal([]byte(doc), &caps); err != nil {
		return nil, fmt.Errorf("parse WMS capabilities: %w", err)
	}

	var out []LayerSummary
	collectWMSLayers(caps.Capability.Layer, &out)
	return out, nil
}

type wmsLayer struct {
	Name     string     `xml:"Name"`
	Title    string     `xml:"Title"`
	Abstract string     `xml:"Abstract"`
	Layers   []wmsLayer `xml:"Layer"`
}

// collectWMSLayers flattens the capability layer tree, keeping only
// named (requestable) layers.
func collectWMSLayers(l wmsLayer, out *[]LayerSummary) {
	if l.Name != "" {
		*out = append(*out, LayerSummary{
			Name:     l.Name,
			Title:    strings.TrimSpace(l.Title),
			Abstract: strings.TrimSpace(l.Abstract),
		})
	}
	for _, child := range l.Layers {
		collectWMSLayers(child, out)
	}
}

func parseWFSCapabilities(doc string) ([]LayerSummary, error) {
	var caps struct {
		FeatureTypes []struct {
			Name     string `xml:"Name"`
			Title    string `xml:"Title"`
			Abstract string `xml:"Abstract"`
		} `xml:"FeatureTypeList>FeatureType"`
	}
	if err := xml.Unmarshal([]byte(doc), &caps); err != nil {
		return nil, fmt.Errorf("parse WFS capabilities: %w", err)
	}

	out := make([]LayerSummary, 0, len(caps.FeatureTypes))
	for _, ft := range caps.FeatureTypes {
		out = append(out, LayerSummary{
			Name:     ft.Name,
			Title:    strings.TrimSpace(ft.Title),
			Abstract: strings.TrimSpace(ft.Abstract),
		})
	}
	return out, nil
}

func parsePropertyValues(doc string) ([]string, error) {
	var collection struct {
		Members []struct {
			Value struct {
				Text string `xml:",chardata"`
			} `xml:",any"`
		} `xml:"member"`
	}
	if err := xml.Unmarshal([]byte(doc), &collection); err != nil {
		return nil, fmt.Errorf("parse GetPropertyValue response: %w", err)
	}

	values := make([]string, 0, len(collection.Members))
	for _, m := range collection.Members {
		values = append(values, strings.TrimSpace(m.Value.Text))
	}
	return values, nil
}
