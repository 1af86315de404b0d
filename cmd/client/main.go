package main

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/labstack/gommon/log"

	"isa-explorer/internal/config"
	"isa-explorer/internal/sounding/command"
	"isa-explorer/internal/sounding/crossing"
	"isa-explorer/internal/sounding/probe"
	"isa-explorer/internal/sounding/simulation"
	"isa-explorer/internal/ui"
	"isa-explorer/pkg/atmosphere"
	"isa-explorer/pkg/types"
)

const helpText = `T <K>        sea-level temperature
Q <m>        query altitude
L <site>     launch probe
[ID] A <m>   target altitude
[ID] R <m/s> ascent rate
[ID] C       cut down
C <ID>       cut down`

// simulated seconds ahead to look for the next layer boundary
const crossingLookahead = 600

type Game struct {
	width, height int
	sim           *simulation.Simulation

	selectedProbeID types.ProbeID
	commandInput    *ui.TextInput
	status          string
	showHelp        bool
}

func NewGame(cfg config.Config) *Game {
	game := &Game{
		sim:      simulation.NewSimulation(cfg),
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		showHelp: true,
	}

	game.commandInput = ui.NewTextInput(10, cfg.WindowHeight-40, cfg.WindowWidth/2, 30, "> ", func(cmd string) {
		game.parseAndExecuteCommand(cmd)
	})

	return game
}

func (g *Game) Update() error {
	dt := 1.0 / g.sim.TickRate
	g.sim.Update(dt)

	if _, ok := g.sim.Probes[g.selectedProbeID]; !ok {
		g.selectedProbeID = ""
	}

	g.handleInput()
	g.commandInput.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	g.drawColumn(screen)
	g.drawSites(screen)

	for _, id := range g.sim.ProbeIDs() {
		g.drawProbe(screen, g.sim.Probes[id])
	}

	g.drawCursorReadout(screen)
	g.drawUI(screen)
	ebitenutil.DebugPrint(screen, "FPS: "+strconv.FormatFloat(ebiten.ActualFPS(), 'f', 2, 64))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()

		if g.commandInput.IsClicked(x, y) {
			g.commandInput.IsActive = true
			return
		}
		g.commandInput.IsActive = false

		clicked := types.NewVec2(float64(x), float64(y))
		g.selectedProbeID = ""
		for _, id := range g.sim.ProbeIDs() {
			pr := g.sim.Probes[id]
			if clicked.DistanceTo(g.probeScreenPos(pr)) < 10 {
				g.selectedProbeID = id
				log.Infof("Selected probe: %s", id)
				break
			}
		}
	}

	if g.commandInput.IsActive {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.selectedProbeID != "" {
		g.execute(command.Command{ProbeID: g.selectedProbeID, Type: command.CutDown})
	}
}

func (g *Game) probeScreenPos(pr *probe.Probe) types.Vec2 {
	return types.NewVec2(pr.Position.X, g.sim.Column.AltitudeToY(pr.Altitude))
}

func (g *Game) drawColumn(screen *ebiten.Image) {
	col := g.sim.Column
	left, right := float32(60), float32(g.width-220)

	for i, band := range col.Bands {
		top := float32(col.AltitudeToY(band.Top))
		bottom := float32(col.AltitudeToY(band.Bottom))
		fill := color.RGBA{10, 20, 40, 255}
		if i%2 == 1 {
			fill = color.RGBA{15, 30, 55, 255}
		}
		vector.DrawFilledRect(screen, left, top, right-left, bottom-top, fill, false)
		vector.StrokeLine(screen, left, bottom, right, bottom, 1, color.RGBA{0, 100, 0, 255}, false)

		label := band.Name
		if band.Isothermal {
			label += " (isothermal)"
		}
		ebitenutil.DebugPrintAt(screen, label, int(right)+5, int((top+bottom)/2)-8)
	}

	for km := 0; km <= int(atmosphere.MaxAltitude/1000); km += 10 {
		y := float32(col.AltitudeToY(float64(km) * 1000))
		vector.StrokeLine(screen, left-5, y, left, y, 1, color.White, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%2d km", km), 10, int(y)-8)
	}
}

func (g *Game) drawSites(screen *ebiten.Image) {
	for _, id := range g.sim.Column.SiteIDs() {
		site := g.sim.Column.Sites[id]
		x := float32(site.Position.X)
		y := float32(site.Position.Y)
		vector.DrawFilledRect(screen, x-4, y-4, 8, 8, color.RGBA{0, 255, 255, 255}, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %.0fK", site.ID, site.SurfaceTemperature), int(x)-20, int(y)+6)
	}
}

func (g *Game) drawProbe(screen *ebiten.Image, pr *probe.Probe) {
	col := g.sim.Column
	pos := g.probeScreenPos(pr)

	// trace of recorded samples
	for i := 1; i < len(pr.Samples); i++ {
		y1 := float32(col.AltitudeToY(pr.Samples[i-1].Altitude))
		y2 := float32(col.AltitudeToY(pr.Samples[i].Altitude))
		vector.StrokeLine(screen, float32(pos.X), y1, float32(pos.X), y2, 1, color.RGBA{100, 100, 255, 255}, false)
	}

	dotColor := color.RGBA{255, 255, 255, 255}
	if pr.Burst {
		dotColor = color.RGBA{255, 80, 0, 255}
	}
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 4, dotColor, false)

	if g.selectedProbeID == pr.ID {
		vector.StrokeRect(screen, float32(pos.X-10), float32(pos.Y-10), 20, 20, 1, color.RGBA{255, 255, 255, 255}, false)
	}

	s := pr.Sample
	tagText := fmt.Sprintf("%s %s\nALT:%.0f (%.0f)\nT:%.1fC P:%.1fhPa\nRHO:%.4f",
		pr.ID, probe.StateStringMap[pr.State],
		pr.Altitude, pr.TargetAltitude,
		s.TemperatureCelsius(), s.PressureHPa(), s.Density)
	if ok, seconds, next := crossing.PredictCrossing(pr, crossingLookahead); ok {
		tagText += fmt.Sprintf("\n%s in %.0fs", next.To, seconds)
	}
	ebitenutil.DebugPrintAt(screen, tagText, int(pos.X)+10, int(pos.Y)-20)
}

// drawCursorReadout shows the reference model at the altitude under the mouse.
func (g *Game) drawCursorReadout(screen *ebiten.Image) {
	_, y := ebiten.CursorPosition()
	alt := g.sim.Column.YToAltitude(float64(y))
	c, err := g.sim.Query(alt)
	if err != nil {
		return
	}
	text := fmt.Sprintf("cursor %.0f m\nT %.2f K\nP %.2f Pa\nRHO %.5f\na %.1f m/s",
		alt, c.Temperature, c.Pressure, c.Density, atmosphere.SpeedOfSound(c.Temperature))
	ebitenutil.DebugPrintAt(screen, text, g.width-210, g.height-150)
}

func (g *Game) drawUI(screen *ebiten.Image) {
	g.commandInput.Draw(screen)

	selectedText := "Selected: None"
	if g.selectedProbeID != "" {
		selectedText = "Selected: " + string(g.selectedProbeID)
	}
	header := fmt.Sprintf("%s | Sea level %.2f K | Launches %d Landed %d Crossings %d",
		selectedText, g.sim.Model.SeaLevelTemperature(), g.sim.Launches, g.sim.Landings, g.sim.LayerCrossings)
	ebitenutil.DebugPrintAt(screen, header, 10, g.height-60)
	ebitenutil.DebugPrintAt(screen, g.status, g.width/2+20, g.height-35)

	var lines []string
	for _, r := range g.sim.RecentReports(6) {
		prefix := ""
		if r.IsUrgent {
			prefix = "!! "
		}
		lines = append(lines, fmt.Sprintf("%s[%s] %s: %s", prefix, r.SimTime.Truncate(1e9), r.ProbeID, r.Message))
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 70, 20)

	if g.showHelp {
		ebitenutil.DebugPrintAt(screen, helpText+"\nF1 toggles help", g.width-210, 20)
	}
}

func (g *Game) setStatus(format string, args ...interface{}) {
	g.status = fmt.Sprintf(format, args...)
	log.Info(g.status)
}

func (g *Game) parseAndExecuteCommand(line string) {
	cmd, err := command.Parse(line, g.selectedProbeID)
	if err != nil {
		g.setStatus("%v", err)
		return
	}
	g.execute(cmd)
}

func (g *Game) execute(cmd command.Command) {
	switch cmd.Type {
	case command.SeaLevelTemperature:
		kelvin, err := atmosphere.ParseNumber("sea_level_temperature", cmd.Value)
		if err != nil {
			g.setStatus("%v", err)
			return
		}
		g.sim.SetSeaLevelTemperature(kelvin)
		g.setStatus("Sea level set to %.2f K", kelvin)
	case command.Query:
		alt, err := atmosphere.ParseValue("geometric_height_meters", cmd.Value)
		if err != nil {
			g.setStatus("%v", err)
			return
		}
		c, err := g.sim.Query(alt)
		if err != nil {
			g.setStatus("%v", err)
			return
		}
		g.setStatus("%s m: P %.2f Pa, T %.2f K, RHO %.5f", cmd.Value, c.Pressure, c.Temperature, c.Density)
	case command.Launch:
		id, err := g.sim.LaunchProbe(strings.ToUpper(cmd.Value))
		if err != nil {
			g.setStatus("Launch failed: %v", err)
			return
		}
		g.selectedProbeID = id
		g.setStatus("Launched %s", id)
	case command.Altitude:
		alt, err := atmosphere.ParseValue("altitude", cmd.Value)
		if err == nil {
			err = g.sim.IssueAltitude(cmd.ProbeID, alt)
		}
		if err != nil {
			g.setStatus("%v", err)
			return
		}
		g.setStatus("Issued A %s to %s", cmd.Value, cmd.ProbeID)
	case command.AscentRate:
		rate, err := atmosphere.ParseNumber("ascent_rate", cmd.Value)
		if err == nil {
			err = g.sim.IssueAscentRate(cmd.ProbeID, rate)
		}
		if err != nil {
			g.setStatus("%v", err)
			return
		}
		g.setStatus("Issued R %.1f to %s", rate, cmd.ProbeID)
	case command.CutDown:
		if err := g.sim.IssueCutDown(cmd.ProbeID); err != nil {
			g.setStatus("%v", err)
			return
		}
		g.setStatus("Issued cut down to %s", cmd.ProbeID)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(cfg.LogLevel)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("ISA Explorer")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(int(math.Round(cfg.TickRate)))

	game := NewGame(cfg)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
