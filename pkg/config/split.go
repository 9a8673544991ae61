package config

import "strings"

// ListSeparator separates items of a list value
const ListSeparator = ","

// SplitList turns one configuration value into its items. The value is split
// on commas, every item is trimmed and empty items are dropped; a value
// without a comma yields a single item.
func SplitList(value string) []string {
	return compact(strings.Split(value, ListSeparator))
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
