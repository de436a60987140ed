package services

import (
	"fmt"
	"snailmail-delivery/internal/domain"
)

// ResultsView holds one ranked result set and its selection. It belongs to
// a single view and is not safe for concurrent use.
type ResultsView struct {
	Options   []TransportOption
	Summary   *DistanceSummary
	Selection Selection
}

func NewResultsView(results map[domain.TransportMode]domain.DeliveryEstimate) (*ResultsView, error) {
	v := &ResultsView{}
	if err := v.Reset(results); err != nil {
		return nil, err
	}
	return v, nil
}

// Reset replaces the whole result set and clears the selection. On error
// the view is left unchanged.
func (v *ResultsView) Reset(results map[domain.TransportMode]domain.DeliveryEstimate) error {
	options, err := BuildOptions(results)
	if err != nil {
		return fmt.Errorf("reset results view: %w", err)
	}

	v.Options = options
	v.Summary = Summarize(options)
	v.Selection = Selection{}
	return nil
}

func (v *ResultsView) Toggle(mode domain.TransportMode) Selection {
	v.Selection = v.Selection.Toggle(mode)
	return v.Selection
}

// Selected returns the expanded option, if one is selected and present.
func (v *ResultsView) Selected() (TransportOption, bool) {
	mode, ok := v.Selection.Selected()
	if !ok {
		return TransportOption{}, false
	}
	for _, o := range v.Options {
		if o.Mode == mode {
			return o, true
		}
	}
	return TransportOption{}, false
}
