package shell

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/shoplist/internal/textlist"
)

// closest returns the list element nearest to v by case-insensitive edit
// distance, if it is within maxDist. Ties go to the earlier element.
func closest(list *textlist.List, v string, maxDist int) (string, bool) {
	if maxDist <= 0 {
		return "", false
	}
	needle := strings.ToUpper(v)
	best, bestDist := "", maxDist+1
	for _, item := range list.All() {
		dist := levenshtein.ComputeDistance(needle, strings.ToUpper(item))
		if dist < bestDist {
			best, bestDist = item, dist
		}
	}
	return best, bestDist <= maxDist
}
