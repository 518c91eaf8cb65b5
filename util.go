package candkey

// combinations calls fcn with every r element combination of the indexes
// 0, 1, ..., n-1 in lexicographic order.  The indexes in each combination are
// increasing.  The slice given to fcn is reused between calls, so fcn should
// copy it if it needs to keep it.  If fcn returns an error, no further
// combinations are generated and the error is returned.
func combinations(n, r int, fcn func(idx []int) error) error {
	if r < 0 || r > n {
		return nil
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fcn(idx); err != nil {
			return err
		}

		// find the rightmost index that has not reached its final value,
		// which for position i is n-r+i
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
