package search

// NotFound is returned when the value is absent.
const NotFound = -1

func Linear(arr []int, x int) int {
	for i := 0; i < len(arr); i++ {
		if arr[i] == x {
			return i
		}
	}
	return NotFound
}

// Binary expects arr sorted in ascending order.
func Binary(arr []int, x int) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if arr[mid] == x {
			return mid
		}
		if arr[mid] < x {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return NotFound
}
