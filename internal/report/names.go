// internal/report/names.go
package report

import "strconv"

// Names hands out file name parts that are unique within one report run.
// A part that was already claimed gets a numeric suffix ("x", "x_2", "x_3").
type Names map[string]int

// Claim returns part unchanged the first time it is seen and a suffixed
// variant afterwards. An empty part claimed twice becomes "2", "3" and so on.
func (n Names) Claim(part string) string {
	if _, taken := n[part]; !taken {
		n[part] = 1
		return part
	}
	for {
		n[part]++
		candidate := strconv.Itoa(n[part])
		if part != "" {
			candidate = part + "_" + candidate
		}
		if _, taken := n[candidate]; !taken {
			n[candidate] = 1
			return candidate
		}
	}
}

// JobSlug is Slug(job), or "job<position>" when the name has no letters or
// digits to keep.
func JobSlug(job string, position int) string {
	if s := Slug(job); s != "" {
		return s
	}
	return "job" + strconv.Itoa(position)
}
