package capacity

import (
	"sort"

	"github.com/millbrook-mfg/schedsync/internal/domain/model"
)

// BuildGanttJobs maps jobs into display-oriented timeline records, grouped by
// machine and ordered by start time within each machine row.
func BuildGanttJobs(jobs []model.Job) []model.GanttJob {
	out := make([]model.GanttJob, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		label := j.ItemName
		if label == "" {
			label = j.EndProduct
		}
		if label == "" {
			label = j.ProcessOrder
		}
		out = append(out, model.GanttJob{
			Machine:         j.Machine,
			ProcessOrder:    j.ProcessOrder,
			ProductionOrder: j.ProductionOrder,
			Label:           label,
			Customer:        j.Customer,
			Start:           j.StartTime,
			End:             j.EndTime(),
			Status:          j.Status,
			Priority:        j.Priority,
			IsManuallyMoved: j.IsManuallyMoved,
			Department:      j.Department,
		})
	}
	sort.SliceStable(out, func(i, k int) bool {
		if out[i].Machine != out[k].Machine {
			return out[i].Machine < out[k].Machine
		}
		return out[i].Start.Before(out[k].Start)
	})
	return out
}
