// Package reports turns backend report envelopes into typed reports and
// renders them as text.
package reports

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ecokosova-dashboard/internal/models"
)

var (
	ErrUnknownKind = errors.New("unknown report type")
	ErrMissingData = errors.New("report has no data")
)

type Kind string

const (
	KindGeneral     Kind = "GENERAL"
	KindCritical    Kind = "CRITICAL"
	KindZones       Kind = "ZONES"
	KindPerformance Kind = "PERFORMANCE"
)

// Kinds lists every report type in display order
var Kinds = []Kind{KindGeneral, KindCritical, KindZones, KindPerformance}

// ParseKind is case-insensitive
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	switch k {
	case KindGeneral, KindCritical, KindZones, KindPerformance:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type General struct {
	TotalContainers    int     `json:"totalContainers"`
	CriticalContainers int     `json:"criticalContainers"`
	WarningContainers  int     `json:"warningContainers"`
	NormalContainers   int     `json:"normalContainers"`
	TotalZones         int     `json:"totalZones"`
	CriticalZones      int     `json:"criticalZones"`
	AverageFillLevel   float64 `json:"averageFillLevel"`
}

type CriticalContainer struct {
	ID        string `json:"id"`
	ZoneID    string `json:"zoneId"`
	FillLevel int    `json:"fillLevel"`
	Status    string `json:"status"`
	Address   string `json:"address"`
}

type Critical struct {
	Containers []CriticalContainer `json:"criticalContainers"`
	Count      int                 `json:"count"`
}

type ZoneLine struct {
	ZoneID             string  `json:"zoneId"`
	ZoneName           string  `json:"zoneName"`
	TotalContainers    int     `json:"totalContainers"`
	CriticalContainers int     `json:"criticalContainers"`
	AverageFillLevel   float64 `json:"averageFillLevel"`
	Status             string  `json:"status"`
}

type Zones struct {
	Zones      []ZoneLine `json:"zones"`
	TotalZones int        `json:"totalZones"`
}

type Performance struct {
	OperationalContainers    int     `json:"operationalContainers"`
	NonOperationalContainers int     `json:"nonOperationalContainers"`
	OperationalRate          float64 `json:"operationalRate"`
	AverageFillLevel         float64 `json:"averageFillLevel"`
	TotalCapacity            int     `json:"totalCapacity"`
}

// Report carries exactly one non-nil payload, selected by Kind
type Report struct {
	ID          string
	Title       string
	Description string
	Kind        Kind
	GeneratedAt string

	General     *General
	Critical    *Critical
	Zones       *Zones
	Performance *Performance
}

// Decode validates the envelope's type and decodes its data into the
// matching payload
func Decode(raw models.RawReport) (*Report, error) {
	kind, err := ParseKind(raw.Type)
	if err != nil {
		return nil, err
	}
	if len(raw.Data) == 0 || string(raw.Data) == "null" {
		return nil, fmt.Errorf("%w: %s", ErrMissingData, kind)
	}

	r := &Report{
		ID:          raw.ID,
		Title:       raw.Title,
		Description: raw.Description,
		Kind:        kind,
		GeneratedAt: raw.GeneratedAt,
	}

	var target any
	switch kind {
	case KindGeneral:
		r.General = &General{}
		target = r.General
	case KindCritical:
		r.Critical = &Critical{}
		target = r.Critical
	case KindZones:
		r.Zones = &Zones{}
		target = r.Zones
	case KindPerformance:
		r.Performance = &Performance{}
		target = r.Performance
	}

	if err := json.Unmarshal(raw.Data, target); err != nil {
		return nil, fmt.Errorf("decode %s report: %w", kind, err)
	}
	return r, nil
}

// Payload returns the typed data for Kind
func (r *Report) Payload() any {
	switch r.Kind {
	case KindGeneral:
		return r.General
	case KindCritical:
		return r.Critical
	case KindZones:
		return r.Zones
	case KindPerformance:
		return r.Performance
	}
	return nil
}

func (r *Report) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		Type        Kind   `json:"type"`
		GeneratedAt string `json:"generatedAt,omitempty"`
		Data        any    `json:"data"`
	}{r.ID, r.Title, r.Description, r.Kind, r.GeneratedAt, r.Payload()})
}
