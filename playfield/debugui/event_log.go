package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/playfield"
)

type EventEntry struct {
	Seq   int
	Event playfield.Event
}

func (e EventEntry) String() string {
	ev := e.Event
	switch ev.Kind {
	case playfield.EventSpawned, playfield.EventLocked:
		return fmt.Sprintf("%s %s", ev.Kind, ev.Shape)
	case playfield.EventLinesCleared:
		return fmt.Sprintf("%s %d (score %d)", ev.Kind, ev.Lines, ev.Score)
	case playfield.EventLevelUp:
		return fmt.Sprintf("%s %d", ev.Kind, ev.Level)
	}
	return fmt.Sprintf("%s score=%d level=%d lines=%d", ev.Kind, ev.Score, ev.Level, ev.Lines)
}

// EventLog keeps the most recent game events for display.
type EventLog struct {
	entries    []EventEntry
	capacity   int
	seq        int
	filterText string
	hideSpawns bool
}

// NewEventLog subscribes to events and keeps up to capacity entries.
func NewEventLog(events *playfield.Events, capacity int) *EventLog {
	el := &EventLog{
		capacity:   capacity,
		hideSpawns: true,
	}
	events.Subscribe(el.record)
	return el
}

func (el *EventLog) record(ev playfield.Event) {
	el.seq++
	el.entries = append(el.entries, EventEntry{Seq: el.seq, Event: ev})
	if len(el.entries) > el.capacity {
		el.entries = el.entries[len(el.entries)-el.capacity:]
	}
}

func (el *EventLog) filtered() []EventEntry {
	filter := strings.ToLower(el.filterText)

	out := make([]EventEntry, 0, len(el.entries))
	for _, entry := range el.entries {
		if el.hideSpawns && entry.Event.Kind == playfield.EventSpawned {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(entry.String()), filter) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func (el *EventLog) Render(game *playfield.Game, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Event Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &el.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear") {
		el.entries = el.entries[:0]
	}
	imgui.Checkbox("Hide spawns", &el.hideSpawns)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Event")
		imgui.TableHeadersRow()

		entries := el.filtered()
		for i := len(entries) - 1; i >= 0; i-- {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", entries[i].Seq))
			imgui.TableNextColumn()
			imgui.Text(entries[i].String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
