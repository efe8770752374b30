package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/stackfall/playfield"
)

// PerformanceStats shows frame times and per-phase pipeline timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int

	// phase name -> last duration in ms, indexed like frameHistory
	phaseHistory map[string][]float32
	phaseNames   []string
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		phaseHistory:  make(map[string][]float32),
	}
}

// record stores one frame sample. deltaTime is in seconds.
func (ps *PerformanceStats) record(deltaTime float32, stats *playfield.PipelineStats) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0

	for _, phase := range stats.Phases {
		history, ok := ps.phaseHistory[phase.Name]
		if !ok {
			history = make([]float32, ps.historyFrames)
			ps.phaseHistory[phase.Name] = history
			ps.phaseNames = append(ps.phaseNames, phase.Name)
		}
		history[ps.frameIndex] = float32(phase.LastDuration) / float32(time.Millisecond)
	}

	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

func (ps *PerformanceStats) averageFrameTime() float32 {
	var total float32
	for _, ft := range ps.frameHistory {
		total += ft
	}
	return total / float32(ps.historyFrames)
}

// ordered returns history rotated so the oldest sample comes first.
func (ps *PerformanceStats) ordered(history []float32) []float32 {
	out := make([]float32, ps.historyFrames)
	copy(out, history[ps.frameIndex:])
	copy(out[ps.historyFrames-ps.frameIndex:], history[:ps.frameIndex])
	return out
}

func (ps *PerformanceStats) Render(game *playfield.Game, deltaTime float32) {
	stats := game.Stats()
	ps.record(deltaTime, stats)

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 320), imgui.CondOnce)
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.averageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}
	imgui.Text(fmt.Sprintf("Blocks: %d", game.BlockCount()))
	imgui.Text(fmt.Sprintf("Frames: %d", stats.TotalExecutions/int64(max(stats.PhaseCount, 1))))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, phase := range stats.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(phase.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(phase.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Phase Latency") {
		if implot.BeginPlotV("##phaselatency", imgui.NewVec2(-1, 180), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)
			for _, name := range ps.phaseNames {
				samples := ps.ordered(ps.phaseHistory[name])
				implot.PlotLineFloatPtrInt(name, &samples[0], int32(len(samples)))
			}
			implot.EndPlot()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
