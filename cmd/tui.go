// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Sightline Robotics

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sightline-robotics/pixyscope/pkg/pixycam"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Live object view",
	Long: `Full-screen live view of the camera's detected objects.

The table always shows the most recent published batch; the footer tracks
decode statistics. Press q to quit.`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

var (
	tuiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	tuiInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	tuiErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

type tickMsg time.Time

func tuiTick() tea.Cmd {
	// Matches the Pixy's 50 Hz frame cadence.
	return tea.Tick(20*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type tuiModel struct {
	cam      *pixycam.Camera
	connInfo string

	table      table.Model
	lastUpdate time.Time
	haveBatch  bool

	width  int
	height int

	err      error
	quitting bool
}

func newTUIModel(cam *pixycam.Camera, connInfo string) tuiModel {
	columns := []table.Column{
		{Title: "SIG", Width: 8},
		{Title: "X", Width: 5},
		{Title: "Y", Width: 5},
		{Title: "W", Width: 5},
		{Title: "H", Width: 5},
		{Title: "ANGLE", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	return tuiModel{cam: cam, connInfo: connInfo, table: t}
}

func (m tuiModel) Init() tea.Cmd {
	return tuiTick()
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Height > 10 {
			m.table.SetHeight(msg.Height - 8)
		}
		return m, nil

	case tickMsg:
		if err := m.cam.Err(); err != nil {
			m.err = err
			return m, tea.Quit
		}

		if blocks := m.cam.DetectedObjects(); blocks != nil {
			rows := make([]table.Row, len(blocks))
			for i, b := range blocks {
				angle := "-"
				if b.IsColorCoded() {
					angle = strconv.Itoa(int(b.Angle))
				}
				rows[i] = table.Row{
					pixycam.FormatSignature(b),
					strconv.Itoa(int(b.CenterX)),
					strconv.Itoa(int(b.CenterY)),
					strconv.Itoa(int(b.Width)),
					strconv.Itoa(int(b.Height)),
					angle,
				}
			}
			m.table.SetRows(rows)
			m.lastUpdate = time.Time(msg)
			m.haveBatch = true
		}
		return m, tuiTick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	title := tuiTitleStyle.Render("Pixyscope - Live Objects")
	info := tuiInfoStyle.Render(m.connInfo)

	status := "waiting for first batch..."
	if m.haveBatch {
		status = fmt.Sprintf("last batch %s  objects=%d", m.lastUpdate.Format("15:04:05.000"), len(m.table.Rows()))
	}
	if m.err != nil {
		status = tuiErrorStyle.Render(m.err.Error())
	}

	stats := m.cam.Stats()
	footer := tuiInfoStyle.Render(fmt.Sprintf(
		"frames=%d blocks=%d chksum_err=%d sync_loss=%d realign=%d  %.1f fps   q: quit",
		stats.FramesPublished, stats.BlocksAccepted, stats.ChecksumErrors,
		stats.SyncLosses, stats.Realignments, stats.FrameRate))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		info,
		"",
		m.table.View(),
		"",
		tuiInfoStyle.Render(status),
		footer,
	)
}

func runTUI(cmd *cobra.Command, args []string) error {
	dev, connInfo, err := openTransport()
	if err != nil {
		return err
	}
	defer dev.Close()

	cam := newCamera(dev)
	cam.Start()

	p := tea.NewProgram(newTUIModel(cam, connInfo), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(tuiModel); ok && m.err != nil {
		return m.err
	}

	fmt.Print(cam.Stats().String())
	return nil
}
