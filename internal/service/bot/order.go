package bot

// ColumnOrder returns every column index of a board with the given width,
// center first, then alternating left and right outwards. Odd widths start
// on the single middle column, even widths on the left then right middle.
func ColumnOrder(columns int) []int {
	if columns <= 0 {
		return nil
	}

	order := make([]int, 0, columns)
	var left, right int
	if columns%2 == 1 {
		mid := columns / 2
		order = append(order, mid)
		left, right = mid-1, mid+1
	} else {
		left, right = columns/2-1, columns/2
	}

	for len(order) < columns {
		if left >= 0 {
			order = append(order, left)
		}
		if right < columns {
			order = append(order, right)
		}
		left--
		right++
	}

	return order
}
