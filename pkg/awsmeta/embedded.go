package awsmeta

import _ "embed"

// packagedServices is the embedded copy of the service descriptor data.
//
// It is the fallback when no refreshed cache exists on disk, so the CLI
// works out of the box regardless of working directory or installation
// location. `recreate-caches` materializes this data into the OS cache
// directory, where it can be refreshed independently of the binary.
//
//go:embed data/services.json
var packagedServices []byte
