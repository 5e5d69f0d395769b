// Package assets loads style sheets for the renderer.
//
// Style sheets are YAML documents. Built-in sheets are embedded at compile
// time; a custom directory can override or extend them:
//
//	Loader (interface)
//	    ├── EmbeddedLoader    built-in sheets (default, classic, compact)
//	    ├── FilesystemLoader  {basePath}/styles/{name}.yaml
//	    └── AssetResolver     custom first, embedded as fallback
//
// Names are validated before any lookup, and FilesystemLoader resolves
// symlinks and refuses paths that leave its base directory.
package assets
