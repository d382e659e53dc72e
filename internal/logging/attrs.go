package logging

import "log/slog"

// attrsToMap flattens attributes into a field map. Group members are keyed
// as "group.key".
func attrsToMap(attrs []slog.Attr) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	values := map[string]any{}
	for _, attr := range attrs {
		collectAttr(values, "", attr)
	}
	if len(values) == 0 {
		return nil
	}
	return values
}

func collectAttr(into map[string]any, prefix string, attr slog.Attr) {
	if attr.Key == "" {
		return
	}
	key := attr.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		for _, member := range value.Group() {
			collectAttr(into, key, member)
		}
		return
	}
	into[key] = value.Any()
}
