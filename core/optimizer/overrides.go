package optimizer

import (
	"github.com/YashRawat0947/SIH-2025/core/model"
)

// OverrideMarker prefixes the reasoning of every decision changed by an
// operator.
const OverrideMarker = "Manual override"

// ApplyOverrides overwrites decisions for the trains named in overrides
// that exist in the outcome; unknown ids are skipped (the planner rejects
// them before they get here). A changed decision loses its computed
// rationale in favor of the override marker. The summary is recomputed from
// the full post-override decision map, never patched.
func ApplyOverrides(out *model.Outcome, trains []model.TrainRecord, overrides map[string]model.Override) {
	if len(overrides) == 0 {
		return
	}
	for id, ov := range overrides {
		d, ok := out.Decisions[id]
		if !ok {
			continue
		}
		if d.Value != ov.Value {
			action := "Held"
			if ov.Value == 1 {
				action = "Inducted"
			}
			reason := action + ": " + OverrideMarker + " by operator"
			if ov.Reason != "" {
				reason += " (" + ov.Reason + ")"
			}
			d.Reasoning = reason
		}
		d.Value = ov.Value
		d.Overridden = true
		out.Decisions[id] = d
	}
	out.Summary = model.Summarize(trains, out.Decisions)
}
