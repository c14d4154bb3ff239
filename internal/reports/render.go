package reports

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"ecokosova-dashboard/internal/models"
)

// Render writes a plain-text version of r
func Render(w io.Writer, r *Report) error {
	title := r.Title
	if title == "" {
		title = string(r.Kind)
	}
	fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len([]rune(title))))
	if r.GeneratedAt != "" {
		fmt.Fprintf(w, "Gjeneruar: %s\n", r.GeneratedAt)
	}
	fmt.Fprintln(w)

	switch r.Kind {
	case KindGeneral:
		return renderGeneral(w, r.General)
	case KindCritical:
		return renderCritical(w, r.Critical)
	case KindZones:
		return renderZones(w, r.Zones)
	case KindPerformance:
		return renderPerformance(w, r.Performance)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
}

func renderGeneral(w io.Writer, g *General) error {
	if g == nil {
		return ErrMissingData
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kontejnerë gjithsej:\t%d\n", g.TotalContainers)
	fmt.Fprintf(tw, "Kritikë:\t%d\n", g.CriticalContainers)
	fmt.Fprintf(tw, "Paralajmërim:\t%d\n", g.WarningContainers)
	fmt.Fprintf(tw, "Normalë:\t%d\n", g.NormalContainers)
	fmt.Fprintf(tw, "Zona gjithsej:\t%d\n", g.TotalZones)
	fmt.Fprintf(tw, "Zona kritike:\t%d\n", g.CriticalZones)
	fmt.Fprintf(tw, "Mbushja mesatare:\t%.1f%%\n", g.AverageFillLevel)
	return tw.Flush()
}

func renderCritical(w io.Writer, c *Critical) error {
	if c == nil {
		return ErrMissingData
	}
	fmt.Fprintf(w, "Kontejnerë kritikë: %d\n", c.Count)
	if len(c.Containers) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tZona\tMbushja\tStatusi\tAdresa")
	for _, ct := range c.Containers {
		fmt.Fprintf(tw, "%s\t%s\t%d%%\t%s\t%s\n", ct.ID, ct.ZoneID, ct.FillLevel, ct.Status, ct.Address)
	}
	return tw.Flush()
}

func renderZones(w io.Writer, z *Zones) error {
	if z == nil {
		return ErrMissingData
	}
	fmt.Fprintf(w, "Zona: %d\n", z.TotalZones)
	if len(z.Zones) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Zona\tEmri\tKontejnerë\tKritikë\tMesatarja\tStatusi")
	for _, zl := range z.Zones {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.1f%%\t%s\n",
			zl.ZoneID, zl.ZoneName, zl.TotalContainers, zl.CriticalContainers, zl.AverageFillLevel, zl.Status)
	}
	return tw.Flush()
}

func renderPerformance(w io.Writer, p *Performance) error {
	if p == nil {
		return ErrMissingData
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Operacionalë:\t%d\n", p.OperationalContainers)
	fmt.Fprintf(tw, "Jo operacionalë:\t%d\n", p.NonOperationalContainers)
	fmt.Fprintf(tw, "Shkalla operacionale:\t%.1f%%\n", p.OperationalRate)
	fmt.Fprintf(tw, "Mbushja mesatare:\t%.1f%%\n", p.AverageFillLevel)
	fmt.Fprintf(tw, "Kapaciteti total:\t%d L\n", p.TotalCapacity)
	return tw.Flush()
}

// RenderRoute writes a summary of a computed collection route
func RenderRoute(w io.Writer, route models.Route) error {
	name := route.ZoneName
	if name == "" {
		name = route.ZoneID
	}
	fmt.Fprintf(w, "Rruga për zonën %s (%s)\n", name, route.RouteType)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Kontejnerë:\t%d\n", route.ContainerCount)
	fmt.Fprintf(tw, "Distanca:\t%.2f km\n", route.TotalDistanceKm)
	fmt.Fprintf(tw, "Koha e vlerësuar:\t%.0f min\n", route.EstimatedTimeMinutes)
	fmt.Fprintf(tw, "Kapaciteti:\t%d L\n", route.TotalCapacityLiters)
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, c := range route.Containers {
		fmt.Fprintf(w, "%2d. %s  %d%%  %s\n", i+1, c.ID, c.FillLevel, c.Address)
	}
	return nil
}
