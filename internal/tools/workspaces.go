package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerWorkspaceTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_workspaces",
		Summary: "List all GeoServer workspaces.",
		Field:   "workspaces",
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetWorkspaces(ctx)
		}),
	})

	r.Register(Descriptor{
		Name:    "get_workspace",
		Summary: "Get details of a specific workspace.",
		Field:   "workspace",
		Params:  []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetWorkspace(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name: "create_workspace",
		Summary: "Create a new workspace in GeoServer. " +
			"If the workspace already exists, it will be updated.",
		Field: "message",
		Params: []Param{
			workspaceParam(),
			{Name: "isolated", Type: TypeBool, Description: "Create the workspace isolated", Default: false},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateWorkspace(ctx, args.String("workspace_name"), args.Bool("isolated"))
		}),
	})

	r.Register(Descriptor{
		Name: "delete_workspace",
		Summary: "Delete a workspace and all its contents recursively. " +
			"WARNING: this deletes all datastores, layers, and styles in the workspace.",
		Field:  "message",
		Params: []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteWorkspace(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name: "recreate_workspace",
		Summary: "Recreate a workspace by first deleting it if it exists, then creating it fresh. " +
			"WARNING: this deletes all existing content in the workspace.",
		Field: "message",
		Params: []Param{
			workspaceParam(),
			{Name: "isolated", Type: TypeBool, Description: "Create the workspace isolated", Default: false},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.RecreateWorkspace(ctx, args.String("workspace_name"), args.Bool("isolated"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_workspace_wms_settings",
		Summary: "Get WMS service settings for a workspace.",
		Field:   "wms_settings",
		Params:  []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetWorkspaceWmsSettings(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "publish_workspace",
		Summary: "Enable and publish WMS service for a workspace with default settings.",
		Field:   "message",
		Params:  []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.PublishWorkspace(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "set_default_locale_for_service",
		Summary: "Set a default language for localized WMS requests.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			{Name: "locale", Type: TypeString, Description: "Language code (e.g. 'en', 'fr', 'de')", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.SetDefaultLocale(ctx, args.String("workspace_name"), args.String("locale"))
		}),
	})
}
