package mgdata

import "github.com/hatoba/marbletk/internal/keyregistry"

// Params describes one candidate layout for an archive's fixed-size
// entry records.
type Params = keyregistry.Params

// DefaultPresets are the known MgData entry layouts, tried in order
// until one decodes every entry's name cleanly.
var DefaultPresets = keyregistry.MgDataPresets
