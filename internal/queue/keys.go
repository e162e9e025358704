package queue

import (
	"fmt"
	"strings"
)

// pendingPrefix namespaces pending manifest entries in the store
const pendingPrefix = "pending:"

// Key builds the store key for a pending manifest. Keys sort by plugin
// name then manifest id, which is the snapshot order.
func Key(pluginName, manifestID string) string {
	return pendingPrefix + pluginName + ":" + manifestID
}

// ParseKey splits a store key back into plugin name and manifest id
func ParseKey(key string) (pluginName, manifestID string, err error) {
	rest, ok := strings.CutPrefix(key, pendingPrefix)
	if !ok {
		return "", "", fmt.Errorf("not a pending manifest key: %q", key)
	}

	plugin, id, ok := strings.Cut(rest, ":")
	if !ok || plugin == "" || id == "" {
		return "", "", fmt.Errorf("malformed pending manifest key: %q", key)
	}
	return plugin, id, nil
}
