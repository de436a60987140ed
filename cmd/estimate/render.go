package main

import (
	"fmt"
	"io"
	"snailmail-delivery/internal/services"
)

func render(w io.Writer, view *services.ResultsView, origin, destination string) {
	fmt.Fprintln(w, "🎯 Delivery Options")

	if len(view.Options) > 0 {
		origin = view.Options[0].Estimate.Origin
		destination = view.Options[0].Estimate.Destination
	}
	fmt.Fprintf(w, "From: %s → To: %s\n", origin, destination)

	if s := view.Summary; s != nil {
		line := "📏 Total Distance: " + s.Text
		if s.IsAIEstimate {
			line += " ✨ AI Estimate"
		}
		fmt.Fprintln(w, line)
	}

	if len(view.Options) == 0 {
		fmt.Fprintln(w, "No delivery options.")
		return
	}

	selected, expanded := view.Selected()

	fmt.Fprintln(w)
	for i, o := range view.Options {
		fmt.Fprintf(w, "%d. %s %s: %s (%s)\n", i+1, o.Emoji, o.DisplayName(), o.Estimate.DeliveryTimeText, o.SpeedDisplay())

		if !expanded || selected.Mode != o.Mode {
			continue
		}
		fmt.Fprintf(w, "   %s\n", o.Description)
		fmt.Fprintf(w, "   Distance:      %s\n", o.Estimate.DistanceText)
		fmt.Fprintf(w, "   Speed:         %s\n", o.SpeedDisplay())
		fmt.Fprintf(w, "   Delivery Time: %s\n", o.Estimate.DeliveryTimeText)
		fmt.Fprintf(w, "   Route:         %s → %s\n", o.Estimate.Origin, o.Estimate.Destination)
	}
}
