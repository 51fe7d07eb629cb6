package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/rhobs/launch-dash/pkg/callbacks"
	"github.com/rhobs/launch-dash/pkg/dataset"
	"github.com/rhobs/launch-dash/pkg/figure"
	"github.com/rhobs/launch-dash/pkg/layout"
	"github.com/rhobs/launch-dash/pkg/resultutil"
	"github.com/rhobs/launch-dash/pkg/tooldef"
)

func BuildSuccessPieInput(args map[string]any) SuccessPieInput {
	return SuccessPieInput{
		Site: tooldef.GetString(args, "site", callbacks.AllSites),
	}
}

func BuildPayloadScatterInput(args map[string]any) (PayloadScatterInput, error) {
	low, lowErr := tooldef.GetFloatPtr(args, "payload_low")
	high, highErr := tooldef.GetFloatPtr(args, "payload_high")
	if err := errors.Join(lowErr, highErr); err != nil {
		return PayloadScatterInput{}, err
	}
	return PayloadScatterInput{
		Site:        tooldef.GetString(args, "site", callbacks.AllSites),
		PayloadLow:  low,
		PayloadHigh: high,
	}, nil
}

func BuildQueryLaunchesInput(args map[string]any) QueryLaunchesInput {
	return QueryLaunchesInput{
		Selector: tooldef.GetString(args, "selector", ""),
	}
}

// ListLaunchSitesHandler lists the launch sites with their launch and success
// counts. A non-empty options list restricts and labels the sites the way the
// dashboard dropdown shows them; otherwise every site of ds is listed.
func ListLaunchSitesHandler(_ context.Context, ds *dataset.Dataset, options []layout.SiteOption) *resultutil.Result {
	slog.Info("ListLaunchSitesHandler called")

	if len(options) == 0 {
		options = layout.SiteOptionsFromDataset(ds)
	}
	if err := layout.ValidateSiteOptions(ds, options); err != nil {
		return resultutil.NewErrorResult(fmt.Errorf("site options do not match the dataset: %w", err))
	}

	launches := lo.CountValuesBy(ds.Launches(), func(l dataset.Launch) string { return l.LaunchSite })
	successes := lo.CountValuesBy(ds.Filter(dataset.Successful()), func(l dataset.Launch) string { return l.LaunchSite })

	output := SitesOutput{Sites: make([]SiteSummary, 0, len(options))}
	for _, opt := range options {
		if opt.Value == callbacks.AllSites {
			continue
		}
		summary := SiteSummary{
			Site:      opt.Value,
			Label:     opt.Label,
			Launches:  launches[opt.Value],
			Successes: successes[opt.Value],
		}
		if summary.Launches > 0 {
			summary.SuccessRate = float64(summary.Successes) / float64(summary.Launches)
		}
		output.Sites = append(output.Sites, summary)
	}

	slog.Info("ListLaunchSitesHandler executed successfully", "resultLength", len(output.Sites))
	return resultutil.NewSuccessResult(output).
		WithSummary(fmt.Sprintf("%d launch sites", len(output.Sites)))
}

// GetPayloadRangeHandler reports the payload mass extent of the dataset.
func GetPayloadRangeHandler(_ context.Context, ds *dataset.Dataset) *resultutil.Result {
	slog.Info("GetPayloadRangeHandler called")

	output := PayloadRangeOutput{
		Min:     ds.PayloadMin,
		Max:     ds.PayloadMax,
		Records: ds.Len(),
	}
	return resultutil.NewSuccessResult(output).
		WithSummary(fmt.Sprintf("payload mass ranges from %g to %g kg over %d launches", output.Min, output.Max, output.Records))
}

// SuccessPieChartHandler builds the launch success pie chart.
func SuccessPieChartHandler(_ context.Context, ds *dataset.Dataset, input SuccessPieInput) *resultutil.Result {
	slog.Info("SuccessPieChartHandler called")
	slog.Debug("SuccessPieChartHandler params", "input", input)

	fig, err := callbacks.SuccessPie(ds, input.Site)
	if err != nil {
		return resultutil.NewErrorResult(err)
	}

	return resultutil.NewSuccessResult(ChartOutput{
		Output: callbacks.SuccessPieChartID,
		Figure: fig,
	}).WithSummary(fig.Layout.Title.Text)
}

// PayloadScatterChartHandler builds the payload mass vs. outcome scatter chart.
// Missing bounds default to the dataset's payload extent.
func PayloadScatterChartHandler(_ context.Context, ds *dataset.Dataset, input PayloadScatterInput) *resultutil.Result {
	slog.Info("PayloadScatterChartHandler called")
	slog.Debug("PayloadScatterChartHandler params", "input", input)

	low, high := ds.PayloadMin, ds.PayloadMax
	if input.PayloadLow != nil {
		low = *input.PayloadLow
	}
	if input.PayloadHigh != nil {
		high = *input.PayloadHigh
	}

	fig, err := callbacks.PayloadScatter(ds, input.Site, low, high)
	if err != nil {
		return resultutil.NewErrorResult(err)
	}

	points := lo.SumBy(fig.Data, func(t figure.Trace) int { return len(t.X) })
	slog.Info("PayloadScatterChartHandler executed successfully", "traces", len(fig.Data), "points", points)

	return resultutil.NewSuccessResult(ChartOutput{
		Output: callbacks.PayloadScatterChartID,
		Figure: fig,
	}).WithSummary(fmt.Sprintf("%s: %d launches", fig.Layout.Title.Text, points))
}

// QueryLaunchesHandler returns the launch records matching a label selector.
func QueryLaunchesHandler(_ context.Context, ds *dataset.Dataset, input QueryLaunchesInput) *resultutil.Result {
	slog.Info("QueryLaunchesHandler called")
	slog.Debug("QueryLaunchesHandler params", "input", input)

	if input.Selector == "" {
		return resultutil.NewErrorResult(fmt.Errorf("selector parameter is required and must be a string"))
	}

	matchers, err := dataset.ParseSelector(input.Selector)
	if err != nil {
		return resultutil.NewErrorResult(err)
	}

	launches := ds.Select(matchers)
	output := QueryLaunchesOutput{
		Launches:  launches,
		Count:     len(launches),
		Successes: len(dataset.Filter(launches, dataset.Successful())),
	}

	slog.Info("QueryLaunchesHandler executed successfully", "resultLength", output.Count)
	return resultutil.NewSuccessResult(output).
		WithSummary(fmt.Sprintf("%d launches match %s (%d successful)", output.Count, input.Selector, output.Successes))
}
