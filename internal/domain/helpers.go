package domain

// requireString extracts a required string field from a raw payload.
// Absent, nil and empty values report errMissing; non-string values report
// errType. The checks run in that order, so a wrong-typed value on a present
// field always surfaces as a type violation.
func requireString(payload map[string]interface{}, key string, errMissing, errType error) (string, error) {
	v, ok := payload[key]
	if !ok || v == nil {
		return "", errMissing
	}
	s, ok := v.(string)
	if !ok {
		return "", errType
	}
	if s == "" {
		return "", errMissing
	}
	return s, nil
}
