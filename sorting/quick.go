package sorting

// Quick sorts arr[low..high] (inclusive) in place.
func Quick(arr []int, low, high int) {
	if low < high {
		// arr[pi] is now in its final place
		pi := Partition(arr, low, high)

		Quick(arr, low, pi-1)
		Quick(arr, pi+1, high)
	}
}

func QuickAll(arr []int) {
	Quick(arr, 0, len(arr)-1)
}

// Partition uses arr[high] as the pivot and moves every element <= pivot
// to its left. It returns the pivot's final index, or 0 for an empty slice
// or low > high.
func Partition(arr []int, low, high int) int {
	if len(arr) == 0 || low > high {
		return 0
	}

	pivot := arr[high]
	i := low - 1
	for j := low; j < high; j++ {
		if arr[j] <= pivot {
			i++
			arr[i], arr[j] = arr[j], arr[i]
		}
	}
	arr[i+1], arr[high] = arr[high], arr[i+1]

	return i + 1
}
