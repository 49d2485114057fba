// Package weekimage renders a company's weekly availability windows as
// a PNG grid for the staff management screens.
package weekimage

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/talentdesk/interview-scheduler/internal/model"
)

const (
	imageWidth      = 1120
	imageHeight     = 700
	headerHeight    = 70
	leftLabelsWidth = 70
	dayPaddingX     = 6.0
	windowRadius    = 5.0

	// Hour range shown when a company has no windows yet.
	defaultMinHour = 8
	defaultMaxHour = 18
)

var (
	bgColor       = color.RGBA{245, 246, 248, 255}
	gridColor     = color.RGBA{215, 218, 222, 255}
	textColor     = color.RGBA{80, 85, 90, 255}
	labelColor    = color.RGBA{110, 115, 120, 255}
	activeFill    = color.RGBA{116, 170, 231, 255}
	activeStroke  = color.RGBA{74, 128, 189, 255}
	inactiveFill  = color.RGBA{200, 203, 208, 255}
	windowTextCol = color.RGBA{255, 255, 255, 255}
)

// Render draws the weekly grid. Inactive windows are shown greyed out
// so staff can see what the generator is ignoring.
func Render(companyName string, windows []model.AvailabilityWindow) ([]byte, error) {
	minHour, maxHour := hourRange(windows)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	dc.SetColor(textColor)
	dc.DrawStringAnchored(
		fmt.Sprintf("%s — weekly interview availability", companyName),
		imageWidth/2, headerHeight/3, 0.5, 0.5,
	)

	colWidth := float64(imageWidth-leftLabelsWidth) / 7
	hourHeight := float64(imageHeight-headerHeight) / float64(maxHour-minHour)

	for i, day := range model.DayNames {
		x := float64(leftLabelsWidth) + float64(i)*colWidth
		dc.SetColor(textColor)
		dc.DrawStringAnchored(day, x+colWidth/2, float64(headerHeight)-14, 0.5, 0.5)

		dc.SetColor(gridColor)
		dc.DrawLine(x, headerHeight, x, imageHeight)
		dc.Stroke()
	}

	for h := minHour; h <= maxHour; h++ {
		y := float64(headerHeight) + float64(h-minHour)*hourHeight
		dc.SetColor(gridColor)
		dc.DrawLine(leftLabelsWidth, y, imageWidth, y)
		dc.Stroke()

		dc.SetColor(labelColor)
		dc.DrawStringAnchored(fmt.Sprintf("%02d:00", h), leftLabelsWidth/2, y, 0.5, 0.5)
	}

	minuteHeight := hourHeight / 60
	for _, w := range windows {
		dayIdx, ok := model.DayIndex(w.DayOfWeek)
		if !ok {
			continue
		}

		x := float64(leftLabelsWidth) + float64(dayIdx)*colWidth + dayPaddingX
		y := float64(headerHeight) + float64(w.StartTime.Minutes()-minHour*60)*minuteHeight
		h := float64(w.EndTime.Minutes()-w.StartTime.Minutes()) * minuteHeight

		fill, stroke := activeFill, activeStroke
		if !w.Active {
			fill, stroke = inactiveFill, gridColor
		}

		dc.SetColor(fill)
		dc.DrawRoundedRectangle(x, y, colWidth-2*dayPaddingX, h, windowRadius)
		dc.Fill()
		dc.SetColor(stroke)
		dc.DrawRoundedRectangle(x, y, colWidth-2*dayPaddingX, h, windowRadius)
		dc.Stroke()

		if h >= 16 {
			dc.SetColor(windowTextCol)
			label := fmt.Sprintf("%s-%s", w.StartTime, w.EndTime)
			dc.DrawStringAnchored(label, x+(colWidth-2*dayPaddingX)/2, y+h/2, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode schedule image: %w", err)
	}
	return buf.Bytes(), nil
}

func hourRange(windows []model.AvailabilityWindow) (int, int) {
	if len(windows) == 0 {
		return defaultMinHour, defaultMaxHour
	}

	minHour, maxHour := 24, 0
	for _, w := range windows {
		if w.StartTime.Hour < minHour {
			minHour = w.StartTime.Hour
		}
		end := w.EndTime.Hour
		if w.EndTime.Minute > 0 {
			end++
		}
		if end > maxHour {
			maxHour = end
		}
	}

	if minHour > 0 {
		minHour--
	}
	if maxHour < 24 {
		maxHour++
	}
	if maxHour <= minHour {
		maxHour = minHour + 1
	}
	return minHour, maxHour
}
