package core

import (
	"sort"

	"cleancore/pkg/capability"
)

func sortPluginMetadata(items []PluginMetadata) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
}

func sortSpecies(items []capability.Bird) {
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })
}
