package utils

// SafeSlice 取前 max 个元素，不足时返回全部
func SafeSlice[T any](slice []T, max int) []T {
	if max < 0 {
		max = 0
	}
	if len(slice) < max {
		return slice
	}
	return slice[:max]
}
