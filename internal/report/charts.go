package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/analyze"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/analysis"
	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/domain/skill"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/rs/zerolog"
)

const (
	colorMatch     = "#27ae60"
	colorMissing   = "#e74c3c"
	colorInfo      = "#3498db"
	colorSecondary = "#95a5a6"
)

const (
	chartWidth  = "800px"
	chartHeight = "600px"

	topMissingLimit = 10
	histogramBins   = 20
)

// Charts writes the interactive HTML charts for one analysis into a
// directory. Charts with no data are skipped rather than rendered
// empty.
type Charts struct {
	dir    string
	logger zerolog.Logger
}

func NewCharts(dir string, logger zerolog.Logger) *Charts {
	return &Charts{dir: dir, logger: logger}
}

type renderable interface {
	Render(w io.Writer) error
}

// RenderAll produces every chart the data supports and returns the
// written file paths.
func (c *Charts) RenderAll(res *analysis.Result, matches []analyze.JobMatch, resumeSkills []skill.Skill) ([]string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create charts directory: %w", err)
	}

	var written []string
	render := func(name string, chart renderable, ok bool) {
		if !ok {
			c.logger.Debug().Str("chart", name).Msg("no data, chart skipped")
			return
		}
		path := filepath.Join(c.dir, name)
		if err := c.write(chart, path); err != nil {
			c.logger.Error().Err(err).Str("chart", name).Msg("chart render failed")
			return
		}
		written = append(written, path)
	}

	matchChart, ok := c.skillMatchChart(len(res.MatchingSkills), len(res.MissingSkills))
	render("skill_match.html", matchChart, ok)

	missingChart, ok := c.topMissingChart(res)
	render("missing_skills.html", missingChart, ok)

	distChart, ok := c.matchDistributionChart(matches)
	render("match_distribution.html", distChart, ok)

	catChart, ok := c.categoryChart(resumeSkills)
	render("skill_categories.html", catChart, ok)

	return written, nil
}

// skillMatchChart compares have-versus-learn as percentage bars.
func (c *Charts) skillMatchChart(matching, missing int) (*charts.Bar, bool) {
	total := matching + missing
	if total == 0 {
		return nil, false
	}
	matchPct := math.Round(float64(matching)/float64(total)*1000) / 10
	missPct := math.Round(float64(missing)/float64(total)*1000) / 10

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Skill Match Analysis", Left: "center"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Percentage (%)", Max: 100}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	bar.SetXAxis([]string{"Skills You Have", "Skills to Learn"}).
		AddSeries("Skills", []opts.BarData{
			{Value: matchPct, Name: fmt.Sprintf("%d skills", matching), ItemStyle: &opts.ItemStyle{Color: colorMatch}},
			{Value: missPct, Name: fmt.Sprintf("%d skills", missing), ItemStyle: &opts.ItemStyle{Color: colorMissing}},
		})
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top", Formatter: "{c}%"}),
	)
	return bar, true
}

// topMissingChart ranks the most-demanded gaps as a horizontal bar
// chart, highest demand on top.
func (c *Charts) topMissingChart(res *analysis.Result) (*charts.Bar, bool) {
	top := res.TopMissing(topMissingLimit)
	if len(top) == 0 {
		return nil, false
	}

	// category axes render bottom-up, so reverse for top-down reading
	names := make([]string, 0, len(top))
	data := make([]opts.BarData, 0, len(top))
	for i := len(top) - 1; i >= 0; i-- {
		names = append(names, top[i].Name)
		data = append(data, opts.BarData{
			Value:     top[i].Demand,
			ItemStyle: &opts.ItemStyle{Color: colorMissing},
		})
	}

	height := len(top) * 40
	if height < 400 {
		height = 400
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: fmt.Sprintf("%dpx", height)}),
		charts.WithTitleOpts(opts.Title{Title: "Top Missing Skills", Left: "center"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Number of Jobs Requiring This Skill"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	bar.SetXAxis(names).AddSeries("Demand", data)
	bar.SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)
	bar.XYReversal()
	return bar, true
}

// matchDistributionChart bins per-job match percentages into a
// histogram over the 0-100 range.
func (c *Charts) matchDistributionChart(matches []analyze.JobMatch) (*charts.Bar, bool) {
	if len(matches) == 0 {
		return nil, false
	}

	width := 100.0 / histogramBins
	labels := make([]string, histogramBins)
	counts := make([]int, histogramBins)
	for i := range labels {
		lo := float64(i) * width
		labels[i] = fmt.Sprintf("%.0f-%.0f", lo, lo+width)
	}
	for _, m := range matches {
		bin := int(m.MatchPercentage / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		if bin < 0 {
			bin = 0
		}
		counts[bin]++
	}

	data := make([]opts.BarData, histogramBins)
	for i, n := range counts {
		data[i] = opts.BarData{Value: n, ItemStyle: &opts.ItemStyle{Color: colorInfo}}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Job Match Distribution", Left: "center"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Match Percentage (%)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Jobs"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)
	bar.SetXAxis(labels).AddSeries("Jobs", data)
	return bar, true
}

// categoryChart breaks the resume's skills down by category as a donut.
func (c *Charts) categoryChart(resumeSkills []skill.Skill) (*charts.Pie, bool) {
	if len(resumeSkills) == 0 {
		return nil, false
	}

	byCategory := map[string]int{}
	for _, s := range resumeSkills {
		byCategory[s.Category]++
	}

	type slice struct {
		name  string
		count int
	}
	slices := make([]slice, 0, len(byCategory))
	for name, count := range byCategory {
		slices = append(slices, slice{name: name, count: count})
	}
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].count != slices[j].count {
			return slices[i].count > slices[j].count
		}
		return slices[i].name < slices[j].name
	})

	items := make([]opts.PieData, 0, len(slices))
	for _, s := range slices {
		items = append(items, opts.PieData{Name: s.name, Value: s.count})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Skills by Category", Left: "center"}),
		charts.WithColorsOpts(opts.Colors{colorMatch, colorInfo, colorMissing, colorSecondary, "#9b59b6", "#f39c12", "#1abc9c", "#34495e"}),
	)
	pie.AddSeries("Skills", items).SetSeriesOptions(
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie, true
}

func (c *Charts) write(chart renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return chart.Render(f)
}
