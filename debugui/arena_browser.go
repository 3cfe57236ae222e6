package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/arena"
	"github.com/plus3/blockfall/tetris"
)

// SessionInfo is one row of the arena browser.
type SessionInfo struct {
	ID    arena.SessionID
	State tetris.State
	Lines int
	Locks int
	Time  float64
}

// ArenaBrowser lists the sessions of an arena and tracks a selection.
type ArenaBrowser struct {
	sessions      []SessionInfo
	sortColumn    int
	sortAscending bool
	filterText    string
	selected      arena.SessionID
}

func NewArenaBrowser() *ArenaBrowser {
	return &ArenaBrowser{sortAscending: true}
}

// Refresh rebuilds the row cache from a.
func (ab *ArenaBrowser) Refresh(a *arena.Arena) {
	ab.sessions = ab.sessions[:0]
	for id, session := range a.All() {
		ab.sessions = append(ab.sessions, SessionInfo{
			ID:    id,
			State: session.State(),
			Lines: session.Lines(),
			Locks: session.Locks(),
			Time:  session.Time(),
		})
	}
	ab.sortSessions()
}

func (ab *ArenaBrowser) Render(a *arena.Arena) {
	if !imgui.BeginV("Arena", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ab.Refresh(a)

	imgui.InputTextWithHint("##search", "Filter by state...", &ab.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		ab.filterText = ""
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("SessionTable", 5, tableFlags, imgui.NewVec2(0, 300), 0) {
		imgui.TableSetupColumn("Session")
		imgui.TableSetupColumn("State")
		imgui.TableSetupColumn("Lines")
		imgui.TableSetupColumn("Locks")
		imgui.TableSetupColumn("Time")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			ab.sortColumn = int(spec.ColumnIndex())
			ab.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			ab.sortSessions()
			sortSpecs.SetSpecsDirty(false)
		}

		for _, info := range ab.Filtered() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := ab.selected == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ab.selected = info.ID
			}

			imgui.TableNextColumn()
			imgui.Text(info.State.String())
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Lines))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.Locks))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.1f", info.Time))
		}

		imgui.EndTable()
	}

	stats := a.Stats()
	imgui.Text(fmt.Sprintf("Sessions: %d running, %d paused, %d over", stats.Running, stats.Paused, stats.Over))

	imgui.End()
}

func (ab *ArenaBrowser) sortSessions() {
	sort.Slice(ab.sessions, func(i, j int) bool {
		a, b := ab.sessions[i], ab.sessions[j]
		var less bool

		switch ab.sortColumn {
		case 1:
			less = a.State < b.State
		case 2:
			less = a.Lines < b.Lines
		case 3:
			less = a.Locks < b.Locks
		case 4:
			less = a.Time < b.Time
		default:
			less = a.ID < b.ID
		}

		if !ab.sortAscending {
			return !less
		}
		return less
	})
}

// Filtered returns the cached rows whose state name contains the filter text.
func (ab *ArenaBrowser) Filtered() []SessionInfo {
	if ab.filterText == "" {
		return ab.sessions
	}

	filterLower := strings.ToLower(ab.filterText)
	filtered := make([]SessionInfo, 0, len(ab.sessions))
	for _, info := range ab.sessions {
		if strings.Contains(strings.ToLower(info.State.String()), filterLower) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}

// SetFilter replaces the state filter.
func (ab *ArenaBrowser) SetFilter(text string) {
	ab.filterText = text
}

// Selected returns the selected session id, zero when nothing is selected.
func (ab *ArenaBrowser) Selected() arena.SessionID {
	return ab.selected
}
