package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerConnectionTools(r *Registry) {
	r.Register(Descriptor{
		Name: "get_geoserver_connection_info",
		Summary: "Get current GeoServer connection information. " +
			"Shows the configured URL and username (password is hidden).",
		Handler: func(ctx context.Context, gs *geoserver.Client, args Args) (Result, error) {
			return Bare(map[string]any{
				"url":      gs.BaseURL(),
				"user":     gs.User(),
				"password": "***hidden***",
				"status":   "configured",
			}), nil
		},
	})

	r.Register(Descriptor{
		Name:    "get_version",
		Summary: "Get GeoServer version information.",
		Field:   "content",
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetVersion(ctx)
		}),
	})
}
