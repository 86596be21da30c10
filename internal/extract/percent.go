package extract

import (
	"strconv"

	"github.com/gyeh/pipelineqc/internal/model"
	"github.com/gyeh/pipelineqc/internal/normalize"
)

// PercentToStr renders num as a percentage of denom rounded to sigFigs
// significant figures. With withCount the count is included,
// "950 (95%)"; otherwise only the percentage, "95%". A zero denominator
// has no percentage and renders model.MissingValue.
func PercentToStr(num, denom int64, sigFigs int, withCount bool) string {
	if denom == 0 {
		return model.MissingValue
	}
	pct := normalize.FormatSigFigs(100*float64(num)/float64(denom), sigFigs) + "%"
	if !withCount {
		return pct
	}
	return strconv.FormatInt(num, 10) + " (" + pct + ")"
}
