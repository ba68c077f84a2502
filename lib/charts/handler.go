package charts

import (
	"fmt"
	"job-portal-backend/config"
	"job-portal-backend/lib/analytics"
	initchecker "job-portal-backend/lib/utils/init-checker"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"
)

// chart keys, also the image file names under the plots directory
const (
	KeyJobCategories        = "job_categories"
	KeyApplicationStatus    = "application_status"
	KeyApplicationsOverTime = "applications_over_time"
	KeySalaryDistribution   = "salary_distribution"
	KeyTopEmployers         = "top_employers"
)

const salaryBins = 20

type Provider interface {
	// GenerateAll renders every admin chart to its fixed path and returns
	// the key -> path map. Each chart is independent: a failure or an empty
	// data set drops that one key and the rest still render.
	GenerateAll() map[string]string
}

var Instance Provider

func NewHandler() {
	instance := impl{
		analytics: analytics.Instance,
		plotsDir:  config.Conf.Files.PlotsDir,
	}
	initchecker.CheckInit(
		"analytics", instance.analytics,
	)
	if err := os.MkdirAll(instance.plotsDir, 0o755); err != nil {
		log.WithError(err).Error("failed to create plots directory")
	}
	Instance = instance
}

func NewInstance(analyticsProvider analytics.Provider, plotsDir string) Provider {
	return impl{
		analytics: analyticsProvider,
		plotsDir:  plotsDir,
	}
}

type impl struct {
	analytics analytics.Provider
	plotsDir  string
}

func (i impl) GenerateAll() map[string]string {
	plots := map[string]string{}
	steps := []struct {
		key    string
		render func(path string) (rendered bool, err error)
	}{
		{KeyJobCategories, i.jobCategories},
		{KeyApplicationStatus, i.applicationStatus},
		{KeyApplicationsOverTime, i.applicationsOverTime},
		{KeySalaryDistribution, i.salaryDistribution},
		{KeyTopEmployers, i.topEmployers},
	}
	for _, step := range steps {
		path := filepath.Join(i.plotsDir, step.key+".png")
		rendered, err := step.render(path)
		if err != nil {
			log.WithError(err).WithField("chart", step.key).Error("failed to generate chart")
			continue
		}
		if rendered {
			plots[step.key] = path
		}
	}
	return plots
}

func (i impl) jobCategories(path string) (rendered bool, err error) {
	list, err := i.analytics.CategoryCounts()
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	bars := make([]chart.Value, 0, len(list))
	for _, rec := range list {
		bars = append(bars, chart.Value{Label: rec.Category, Value: float64(rec.Count)})
	}
	graph := chart.BarChart{
		Title:    "Job Count per Category",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}
	return true, renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (i impl) applicationStatus(path string) (rendered bool, err error) {
	list, err := i.analytics.StatusDistribution()
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	var total int64
	for _, rec := range list {
		total += rec.Count
	}
	values := make([]chart.Value, 0, len(list))
	for _, rec := range list {
		label := fmt.Sprintf("%s (%.1f%%)", rec.Status, float64(rec.Count)*100/float64(total))
		values = append(values, chart.Value{Label: label, Value: float64(rec.Count)})
	}
	graph := chart.PieChart{
		Title:  "Application Status Distribution",
		Width:  512,
		Height: 512,
		Values: values,
	}
	return true, renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (i impl) applicationsOverTime(path string) (rendered bool, err error) {
	list, err := i.analytics.ApplicationsPerDay()
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	xValues := make([]time.Time, 0, len(list))
	yValues := make([]float64, 0, len(list))
	for _, rec := range list {
		day, err := time.Parse("2006-01-02", rec.Day)
		if err != nil {
			return false, errors.Wrap(err, "bad day value in aggregation")
		}
		xValues = append(xValues, day)
		yValues = append(yValues, float64(rec.Count))
	}
	graph := chart.Chart{
		Title:  "Applications Over Time",
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				XValues: xValues,
				YValues: yValues,
			},
		},
	}
	return true, renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (i impl) salaryDistribution(path string) (rendered bool, err error) {
	salaries, err := i.analytics.Salaries()
	if err != nil {
		return false, err
	}
	bins := analytics.Histogram(salaries, salaryBins)
	if len(bins) == 0 {
		return false, nil
	}
	bars := make([]chart.Value, 0, len(bins))
	for _, bin := range bins {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.0f", bin.Low),
			Value: float64(bin.Count),
		})
	}
	graph := chart.BarChart{
		Title:    "Salary Distribution",
		Width:    1024,
		Height:   512,
		BarWidth: 30,
		Bars:     bars,
	}
	return true, renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (i impl) topEmployers(path string) (rendered bool, err error) {
	list, err := i.analytics.TopEmployers()
	if err != nil {
		return false, err
	}
	if len(list) == 0 {
		return false, nil
	}
	bars := make([]chart.Value, 0, len(list))
	for _, rec := range list {
		bars = append(bars, chart.Value{Label: rec.Name, Value: float64(rec.JobCount)})
	}
	graph := chart.BarChart{
		Title:    "Top 10 Most Active Employers",
		Width:    1024,
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}
	return true, renderToFile(path, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// renderToFile overwrites any previous image at path.
func renderToFile(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create chart file")
	}
	defer f.Close()
	return render(f)
}
