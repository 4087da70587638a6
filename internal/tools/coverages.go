package tools

import (
	"context"

	"github.com/geoservercloud/geoserver-mcp/internal/geoserver"
)

func coverageStoreParam() Param {
	return Param{Name: "coveragestore_name", Type: TypeString, Description: "Name of the coverage store", Required: true}
}

func registerCoverageTools(r *Registry) {
	r.Register(Descriptor{
		Name:    "get_coverages",
		Summary: "List all coverages (raster layers) in a coverage store.",
		Field:   "coverages",
		Params:  []Param{workspaceParam(), coverageStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetCoverages(ctx, args.String("workspace_name"), args.String("coveragestore_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_coverage",
		Summary: "Get details of a specific coverage.",
		Field:   "coverage",
		Params: []Param{
			workspaceParam(),
			coverageStoreParam(),
			{Name: "coverage_name", Type: TypeString, Description: "Name of the coverage", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetCoverage(ctx,
				args.String("workspace_name"), args.String("coveragestore_name"),
				args.String("coverage_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "get_coverage_store",
		Summary: "Get details of a coverage store.",
		Field:   "coverage_store",
		Params:  []Param{workspaceParam(), coverageStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.GetCoverageStore(ctx, args.String("workspace_name"), args.String("coveragestore_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_coverage_store",
		Summary: "Create a coverage store for raster data.",
		Field:   "coverage_store",
		Params: []Param{
			workspaceParam(),
			coverageStoreParam(),
			{Name: "url", Type: TypeString, Description: "Path to the raster data directory or file", Required: true},
			{Name: "store_type", Type: TypeString, Description: "Store type (ImageMosaic, GeoTIFF, ...)", Default: "ImageMosaic"},
			{Name: "enabled", Type: TypeBool, Description: "Enable the store", Default: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateCoverageStore(ctx,
				args.String("workspace_name"), args.String("coveragestore_name"),
				args.String("url"), args.String("store_type"), args.Bool("enabled"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_coverage",
		Summary: "Publish a coverage layer from a coverage store.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			coverageStoreParam(),
			{Name: "coverage_name", Type: TypeString, Description: "Name for the coverage layer", Required: true},
			{Name: "title", Type: TypeString, Description: "Human-readable title"},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateCoverage(ctx,
				args.String("workspace_name"), args.String("coveragestore_name"),
				args.String("coverage_name"), args.String("title"))
		}),
	})

	r.Register(Descriptor{
		Name:    "delete_coverage_store",
		Summary: "Delete a coverage store and all its coverages.",
		Field:   "message",
		Params:  []Param{workspaceParam(), coverageStoreParam()},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.DeleteCoverageStore(ctx, args.String("workspace_name"), args.String("coveragestore_name"))
		}),
	})

	r.Register(Descriptor{
		Name:    "create_imagemosaic_store_from_directory",
		Summary: "Create an ImageMosaic coverage store from a directory of raster files.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			coverageStoreParam(),
			{Name: "directory_path", Type: TypeString, Description: "Path to the directory containing raster files", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.CreateImageMosaicFromDirectory(ctx,
				args.String("workspace_name"), args.String("coveragestore_name"),
				args.String("directory_path"))
		}),
	})

	r.Register(Descriptor{
		Name:    "harvest_granules_to_coverage_store",
		Summary: "Harvest additional granules (raster files) into an existing ImageMosaic store.",
		Field:   "message",
		Params: []Param{
			workspaceParam(),
			coverageStoreParam(),
			{Name: "directory_path", Type: TypeString, Description: "Path to directory containing new granules", Required: true},
		},
		Handler: forward(func(ctx context.Context, gs *geoserver.Client, args Args) (any, int, error) {
			return gs.HarvestGranules(ctx,
				args.String("workspace_name"), args.String("coveragestore_name"),
				args.String("directory_path"))
		}),
	})
}
