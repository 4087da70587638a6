package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerStyleTools(r *Registry) {
	r.Register(Descriptor{
		Name: "get_styles",
		Summary: "List all styles. With a workspace, list workspace styles, " +
			"otherwise list global styles.",
		Field:  "styles",
		Params: []Param{optionalWorkspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetStyles(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_style_definition",
		Summary: "Get the definition of a style.",
		Field:   "style",
		Params: []Param{
			{Name: "style_name", Type: TypeString, Description: "Name of the style", Required: true},
			optionalWorkspaceParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetStyleDefinition(ctx, args.String("workspace_name"), args.String("style_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_style_from_string",
		Summary: "Create a style from an SLD string.",
		Field:   "message",
		Params: []Param{
			{Name: "style_name", Type: TypeString, Description: "Name for the new style", Required: true},
			{Name: "style_content", Type: TypeString, Description: "SLD content", Required: true},
			optionalWorkspaceParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateStyleFromSLD(ctx,
				args.String("workspace_name"), args.String("style_name"),
				args.String("style_content"))
		}),
	})

	r.Register(Descriptor{
		Name:    "set_default_layer_style",
		Summary: "Set the default style for a layer.",
		Field:   "message",
		Params: []Param{
			layerParam("Name of the layer"),
			workspaceParam(),
			{Name: "style_name", Type: TypeString, Description: "Name of the style to set as default", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.SetDefaultLayerStyle(ctx,
				args.String("workspace_name"), args.String("layer_name"),
				args.String("style_name"))
		}),
	})
}
