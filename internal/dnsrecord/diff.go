package dnsrecord

// Diff returns the storage convention fields of the desired record
// whose value is missing from or differs in the current server record.
// An empty map means no change is needed.
//
// The comparison is add/overwrite oriented: fields present on the
// server but not desired are never returned, so a stale record of
// the other address type under the same name is left untouched.
func Diff(current Record, found bool, desired Desired) (diff map[string]string) {
	wanted := StorageFields(desired)
	diff = make(map[string]string, len(wanted))
	for field, value := range wanted {
		if !found {
			diff[field] = value
			continue
		}
		currentValue, ok := current[field]
		if !ok || !valueEqual(currentValue, value) {
			diff[field] = value
		}
	}
	return diff
}

// valueEqual compares a server side field value with the desired
// scalar value. The server returns multi-valued fields as a list,
// so a list of one value is normalized before comparing.
func valueEqual(currentValue any, value string) (equal bool) {
	switch typed := currentValue.(type) {
	case string:
		return typed == value
	case []string:
		return len(typed) == 1 && typed[0] == value
	case []any:
		if len(typed) != 1 {
			return false
		}
		s, ok := typed[0].(string)
		return ok && s == value
	default:
		return false
	}
}

func firstString(value any) (s string, ok bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case []string:
		if len(typed) == 0 {
			return "", false
		}
		return typed[0], true
	case []any:
		if len(typed) == 0 {
			return "", false
		}
		s, ok = typed[0].(string)
		return s, ok
	default:
		return "", false
	}
}
