package manager

import "github.com/Sole248k/Task-Management-Application/internal/core/domain"

// sortTasks orders tasks by the given key with a stable merge sort.
// Natural directions: due_date ascending, created_at ascending,
// priority by descending severity (High first). OrderReversed flips
// the result after sorting.
func sortTasks(tasks []domain.Task, key domain.SortKey, order domain.SortOrder) []domain.Task {
	sorted := mergeSort(tasks, compareFunc(key))
	if order == domain.OrderReversed {
		reverse(sorted)
	}
	return sorted
}

// compareFunc returns a three-way comparison for the key; negative
// means a sorts before b in the key's natural direction.
func compareFunc(key domain.SortKey) func(a, b domain.Task) int {
	switch key {
	case domain.SortByPriority:
		return func(a, b domain.Task) int {
			return b.Priority().Rank() - a.Priority().Rank()
		}
	case domain.SortByCreatedAt:
		return func(a, b domain.Task) int {
			return a.CreatedAt().Compare(b.CreatedAt())
		}
	default:
		return func(a, b domain.Task) int {
			return a.DueDate().Compare(b.DueDate())
		}
	}
}

// mergeSort splits at the midpoint, sorts each half, and merges.
// Length <= 1 is the base case. The input slice is not modified.
func mergeSort(tasks []domain.Task, compare func(a, b domain.Task) int) []domain.Task {
	if len(tasks) <= 1 {
		out := make([]domain.Task, len(tasks))
		copy(out, tasks)
		return out
	}

	mid := len(tasks) / 2
	left := mergeSort(tasks[:mid], compare)
	right := mergeSort(tasks[mid:], compare)

	return merge(left, right, compare)
}

// merge repeatedly takes the lesser-ranked head; ties prefer the left
// half, which is what makes the sort stable.
func merge(left, right []domain.Task, compare func(a, b domain.Task) int) []domain.Task {
	result := make([]domain.Task, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if compare(left[i], right[j]) <= 0 {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}

	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}

func reverse(tasks []domain.Task) {
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
}
