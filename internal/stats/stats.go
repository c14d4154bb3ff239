package stats

import (
	"sort"

	"ecokosova-dashboard/internal/models"
	"ecokosova-dashboard/internal/threshold"
)

// Statistics summarizes a container collection. Critical, Warning and
// Normal partition Total; Offline overlaps with all three.
type Statistics struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Normal   int `json:"normal"`
	Offline  int `json:"offline"`
}

// Summarize classifies every container with the same config
func Summarize(containers []models.Container, cfg threshold.Config) Statistics {
	s := Statistics{Total: len(containers)}
	for _, c := range containers {
		switch threshold.Classify(c.FillLevel, cfg) {
		case threshold.Critical:
			s.Critical++
		case threshold.Warning:
			s.Warning++
		default:
			s.Normal++
		}
		if !c.Operational {
			s.Offline++
		}
	}
	return s
}

// AverageFill returns the mean fill level, 0 for an empty collection
func AverageFill(containers []models.Container) float64 {
	if len(containers) == 0 {
		return 0
	}
	sum := 0
	for _, c := range containers {
		sum += c.FillLevel
	}
	return float64(sum) / float64(len(containers))
}

// ZoneSummary is the per-zone breakdown shown on the zones page
type ZoneSummary struct {
	ZoneID           string  `json:"zoneId"`
	Total            int     `json:"total"`
	Critical         int     `json:"critical"`
	Operational      int     `json:"operational"`
	AverageFillLevel float64 `json:"averageFillLevel"`
}

// SummarizeZones groups containers by zone, sorted by zone id
func SummarizeZones(containers []models.Container, cfg threshold.Config) []ZoneSummary {
	byZone := make(map[string][]models.Container)
	for _, c := range containers {
		byZone[c.ZoneID] = append(byZone[c.ZoneID], c)
	}

	summaries := make([]ZoneSummary, 0, len(byZone))
	for zoneID, list := range byZone {
		zs := ZoneSummary{
			ZoneID:           zoneID,
			Total:            len(list),
			AverageFillLevel: AverageFill(list),
		}
		for _, c := range list {
			if threshold.IsCritical(c.FillLevel, cfg) {
				zs.Critical++
			}
			if c.Operational {
				zs.Operational++
			}
		}
		summaries = append(summaries, zs)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ZoneID < summaries[j].ZoneID
	})
	return summaries
}
