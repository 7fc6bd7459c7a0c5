// Package chart строит PNG с графиками дневного прогресса:
// кумулятивная вода и калорийный баланс против норм.
package chart

import (
	"bytes"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 800
	chartHeight = 300
)

// ErrNoData — в истории дня нет ни одной точки.
var ErrNoData = errors.New("no data points")

// Render возвращает PNG из двух графиков друг под другом: прогресс воды
// и калорийный баланс, каждый с пунктирной линией цели.
func Render(times []time.Time, waterMl []float64, waterGoalMl int, calories []float64, calorieGoal int) ([]byte, error) {
	if len(times) == 0 {
		return nil, ErrNoData
	}
	xs, water, cal := padSeries(times, waterMl, calories)

	waterPNG, err := renderSeries("Прогресс воды", "Вода (мл)", xs, water, float64(waterGoalMl))
	if err != nil {
		return nil, err
	}
	caloriesPNG, err := renderSeries("Прогресс калорий", "Калорийный баланс (ккал)", xs, cal, float64(calorieGoal))
	if err != nil {
		return nil, err
	}

	return stackVertically(waterPNG, caloriesPNG)
}

func renderSeries(title, name string, xs []time.Time, ys []float64, goal float64) ([]byte, error) {
	goalYs := make([]float64, len(xs))
	for i := range goalYs {
		goalYs[i] = goal
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    name,
				XValues: xs,
				YValues: ys,
			},
			chart.TimeSeries{
				Name:    "Цель",
				XValues: xs,
				YValues: goalYs,
				Style: chart.Style{
					StrokeColor:     drawing.ColorGreen,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// padSeries дублирует единственную точку минутой позже: библиотеке
// нужно минимум две точки на ряд.
func padSeries(times []time.Time, water, calories []float64) ([]time.Time, []float64, []float64) {
	if len(times) > 1 {
		return times, water, calories
	}
	return append(times, times[0].Add(time.Minute)),
		append(water, water[0]),
		append(calories, calories[0])
}

func stackVertically(topPNG, bottomPNG []byte) ([]byte, error) {
	top, err := png.Decode(bytes.NewReader(topPNG))
	if err != nil {
		return nil, err
	}
	bottom, err := png.Decode(bytes.NewReader(bottomPNG))
	if err != nil {
		return nil, err
	}

	tb, bb := top.Bounds(), bottom.Bounds()
	width := tb.Dx()
	if bb.Dx() > width {
		width = bb.Dx()
	}
	out := image.NewRGBA(image.Rect(0, 0, width, tb.Dy()+bb.Dy()))
	draw.Draw(out, image.Rect(0, 0, tb.Dx(), tb.Dy()), top, tb.Min, draw.Src)
	draw.Draw(out, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottom, bb.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
