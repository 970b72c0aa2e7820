package pointplot

// Theme holds the default styles of points and lines.
type Theme struct {
	PointStyle, LineStyle Style
}

var DefaultTheme = Theme{
	PointStyle: Style{
		"size":  "3",
		"shape": "solid-circle",
		"color": "#1f77b4",
		"alpha": "1",
	},
	LineStyle: Style{
		"size":     "1.5",
		"linetype": "solid",
		"color":    "#1f77b4",
		"alpha":    "1",
	},
}
