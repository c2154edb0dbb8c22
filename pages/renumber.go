package pages

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileName returns the on-disk name of page num, 1-based:
// prefix_001.png, prefix_002.png and so on.
func FileName(prefix string, num int) string {
	return fmt.Sprintf("%s_%03d.png", prefix, num)
}

// TwoPhaseRenumber reverses the numbering of n page files in dir so
// that the file previously numbered 1 becomes n. Right-to-left output
// writes pages in ascending coordinate order first; this rename makes
// page 1 name the rightmost slice.
//
// The rename goes through temporary names, since reversing in place
// would overwrite pages still waiting to move. It returns the final
// file paths in page-number order.
func TwoPhaseRenumber(dir, prefix string, n int) ([]string, error) {
	if n < 2 {
		out := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			out = append(out, filepath.Join(dir, FileName(prefix, i)))
		}
		return out, nil
	}

	tmp := make([]string, n)
	for i := 0; i < n; i++ {
		old := filepath.Join(dir, FileName(prefix, i+1))
		tmp[i] = filepath.Join(dir, fmt.Sprintf("_rtl_tmp_%03d.png", i))
		if err := os.Rename(old, tmp[i]); err != nil {
			return nil, fmt.Errorf("renumbering pages: %w", err)
		}
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		newNum := n - i
		final := filepath.Join(dir, FileName(prefix, newNum))
		if err := os.Rename(tmp[i], final); err != nil {
			return nil, fmt.Errorf("renumbering pages: %w", err)
		}
		out[newNum-1] = final
	}
	return out, nil
}
