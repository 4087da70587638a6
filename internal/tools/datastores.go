package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func registerDatastoreTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_datastores",
		Summary: "List all datastores in a workspace.",
		Field:   "datastores",
		Params:  []Param{workspaceParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetDatastores(ctx, args.String("workspace_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_datastore",
		Summary: "Get details of a specific datastore.",
		Field:   "datastore",
		Params:  []Param{workspaceParam(), datastoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetDatastore(ctx, args.String("workspace_name"), args.String("datastore_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_pg_datastore",
		Summary: "Create a PostGIS datastore connection.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			{Name: "pg_host", Type: TypeString, Description: "PostgreSQL host", Required: true},
			{Name: "pg_port", Type: TypeInt, Description: "PostgreSQL port", Required: true},
			{Name: "pg_db", Type: TypeString, Description: "Database name", Required: true},
			{Name: "pg_user", Type: TypeString, Description: "Database username", Required: true},
			{Name: "pg_password", Type: TypeString, Description: "Database password", Required: true},
			{Name: "pg_schema", Type: TypeString, Description: "Schema name", Default: "public"},
			descriptionParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreatePostGISDatastore(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				geoserver.PostGISOptions{
					Host:        args.String("pg_host"),
					Port:        args.Int("pg_port"),
					Database:    args.String("pg_db"),
					User:        args.String("pg_user"),
					Password:    args.String("pg_password"),
					Schema:      args.String("pg_schema"),
					Description: args.String("description"),
				})
		}),
	})

	r.Register(Descriptor{
		Name:    "create_jndi_datastore",
		Summary: "Create a PostGIS datastore from a JNDI resource.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			{Name: "jndi_reference", Type: TypeString, Description: "JNDI resource name", Required: true},
			{Name: "pg_schema", Type: TypeString, Description: "Schema name", Default: "public"},
			descriptionParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateJNDIDatastore(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				args.String("jndi_reference"), args.String("pg_schema"), args.String("description"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_pmtiles_datastore",
		Summary: "Create a PMTiles datastore.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			{Name: "pmtiles_url", Type: TypeString, Description: "URL or path to the PMTiles file", Required: true},
			descriptionParam(),
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreatePMTilesDatastore(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				args.String("pmtiles_url"), args.String("description"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_datastore",
		Summary: "Create a generic datastore with custom connection parameters.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			datastoreParam(),
			{Name: "datastore_type", Type: TypeString, Description: "Datastore type (e.g. 'PostGIS', 'Shapefile')", Required: true},
			{Name: "connection_parameters", Type: TypeObject, Description: "Connection parameters", Required: true},
			descriptionParam(),
			{Name: "enabled", Type: TypeBool, Description: "Enable the datastore", Default: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateDatastore(ctx,
				args.String("workspace_name"), args.String("datastore_name"),
				geoserver.DatastoreOptions{
					Type:                 args.String("datastore_type"),
					ConnectionParameters: args.Object("connection_parameters"),
					Description:          args.String("description"),
					Enabled:              args.Bool("enabled"),
				})
		}),
	})
}
