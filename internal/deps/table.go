// Package deps holds the static dependency table and the fetch/extract
// flow that materializes it inside the package tree.
package deps

import "github.com/upmkit/upmkit/internal/models"

// Table is the fixed list of binary dependencies bundled into the
// package. It is hand-maintained: entries pin exact registry versions
// and select only the netstandard2.0 assemblies from each archive.
var Table = []models.Dependency{
	{
		Name:     "Newtonsoft.Json",
		Origin:   "https://www.nuget.org/packages/Newtonsoft.Json/13.0.3",
		URL:      "https://www.nuget.org/api/v2/package/Newtonsoft.Json/13.0.3",
		Filename: "newtonsoft.json.13.0.3.nupkg",
		Pattern:  "lib/netstandard2.0/*",
		License:  "MIT",
	},
	{
		Name:     "System.Memory",
		Origin:   "https://www.nuget.org/packages/System.Memory/4.5.5",
		URL:      "https://www.nuget.org/api/v2/package/System.Memory/4.5.5",
		Filename: "system.memory.4.5.5.nupkg",
		Pattern:  "lib/netstandard2.0/*",
		License:  "MIT",
	},
	{
		Name:     "Microsoft.Bcl.AsyncInterfaces",
		Origin:   "https://www.nuget.org/packages/Microsoft.Bcl.AsyncInterfaces/8.0.0",
		URL:      "https://www.nuget.org/api/v2/package/Microsoft.Bcl.AsyncInterfaces/8.0.0",
		Filename: "microsoft.bcl.asyncinterfaces.8.0.0.nupkg",
		Pattern:  "lib/netstandard2.0/*",
		License:  "MIT",
	},
}
