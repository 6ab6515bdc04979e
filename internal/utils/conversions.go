package utils

// ToStringSlice keeps the string members of a mixed slice, dropping the
// rest. Validation error locations arrive as mixed string/number paths.
func ToStringSlice(slice []any) []string {
	stringSlice := make([]string, 0)
	for _, v := range slice {
		if s, ok := v.(string); ok {
			stringSlice = append(stringSlice, s)
		}
	}
	return stringSlice
}
