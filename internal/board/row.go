package board

// ShiftRowLeft slides a row to the left and merges adjacent equal tiles.
//
// Zeros are removed first, then a single left-to-right pass merges each pair
// of equal neighbours once. The cursor skips both cells of a merged pair, so
// a merged tile never merges again in the same move. The row is compacted a
// second time and padded back to its length with zeros.
// Returns the new row and the sum of all merged values.
func ShiftRowLeft(row []int) ([]int, int) {
	if len(row) < 2 {
		return append([]int(nil), row...), 0
	}

	compacted := compactRow(row)
	score := mergePairs(compacted)
	return compactRow(compacted), score
}

// ShiftRowRight is the mirror image of ShiftRowLeft.
func ShiftRowRight(row []int) ([]int, int) {
	shifted, score := ShiftRowLeft(reverseRow(row))
	return reverseRow(shifted), score
}

// compactRow returns a copy of row with the non-zero values moved to the
// front in their original order and zeros filling the tail.
func compactRow(row []int) []int {
	out := make([]int, len(row))
	writePos := 0
	for _, v := range row {
		if v == 0 {
			continue
		}
		out[writePos] = v
		writePos++
	}
	return out
}

// mergePairs merges equal neighbours of a compacted row in place, leaving a
// zero where the right-hand tile of each pair was. Returns the score gained.
func mergePairs(row []int) int {
	score := 0
	i := 0
	for i < len(row)-1 && row[i] != 0 {
		if row[i] == row[i+1] {
			row[i] += row[i+1]
			row[i+1] = 0
			score += row[i]
			i += 2
			continue
		}
		i++
	}
	return score
}

// reverseRow returns a reversed copy of row.
func reverseRow(row []int) []int {
	out := make([]int, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}
