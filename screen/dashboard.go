package screen

import (
	"serialui/terminal"
)

// Stock dashboard layout: a full-screen frame, a temperature gauge with
// label and value slot, and a status box. The shape constants stay
// addressable so update functions can repaint individual slots without
// redrawing the whole screen.
var (
	dashboardBG        = terminal.Box{X: 0, Y: 0, W: 80, H: 24, Color: terminal.Blue}
	dashboardTempGauge = terminal.Box{X: 2, Y: 2, W: 20, H: 3, Color: terminal.White}
	dashboardTempLabel = terminal.Text{X: 4, Y: 1, Content: "TEMPERATURE", Color: terminal.Cyan}
	dashboardTempVal   = terminal.Text{X: 23, Y: 3, Content: "%0.1f C", Color: terminal.Yellow}
	dashboardStatusBox = terminal.Box{X: 40, Y: 2, W: 30, H: 5, Color: terminal.Magenta}
	dashboardStatus    = terminal.Text{X: 42, Y: 4, Content: "SYSTEM: INITIALIZING", Color: terminal.White}
)

// Dashboard returns the stock status display screen.
func Dashboard() Screen {
	return Screen{
		Name: "dashboard",
		Elements: []Element{
			{Name: "bg", Shape: dashboardBG},
			{Name: "temp_gauge", Shape: dashboardTempGauge},
			{Name: "temp_label", Shape: dashboardTempLabel},
			{Name: "temp_val", Shape: dashboardTempVal},
			{Name: "status_box", Shape: dashboardStatusBox},
			{Name: "status_text", Shape: dashboardStatus},
		},
	}
}

// UpdateDashboard repaints the dynamic slots of the dashboard: the
// temperature gauge (red above 80 degrees), the numeric readout and the
// status line. Static elements are left untouched; the trailing spaces
// on the status strings overwrite the longer INITIALIZING text.
func UpdateDashboard(d *terminal.Driver, temp float64, ok bool) {
	gaugeColor := terminal.Green
	if temp > 80 {
		gaugeColor = terminal.Red
	}
	d.DrawProgressBar(dashboardTempGauge, temp, gaugeColor)
	d.Printf(dashboardTempVal, temp)
	if ok {
		d.DrawTextAt(dashboardStatus.X, dashboardStatus.Y, "SYSTEM: OK          ", terminal.Green)
	} else {
		d.DrawTextAt(dashboardStatus.X, dashboardStatus.Y, "SYSTEM: ERROR       ", terminal.BrightRed)
	}
}
