package main

import (
	"fmt"
	"log"
	"net/rpc"
	"strconv"
	"time"

	"github.com/AndrewLester/sntp/internal/ui"
	"github.com/AndrewLester/sntp/pkg/sntp"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func handleStatusCommand(socket string) {
	m := statusModel{socket: socket, table: setupTable()}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}

const fetchSamplesPeriod = time.Second * 5

type statusModel struct {
	socket string

	table            table.Model
	samples          []sntp.Sample
	daemonKillStatus string
}

var client *rpc.Client

type dialSocketMessage *rpc.Client
type fetchSamplesMessage []sntp.Sample
type tickMsg time.Time

func dialSocketCommand(m statusModel) tea.Cmd {
	return func() tea.Msg {
		client, err := rpc.Dial("unix", m.socket)
		if err != nil {
			log.Fatalf("Error connecting to sntpd daemon: %v", err)
		}

		return dialSocketMessage(client)
	}
}

func fetchSamplesCommand() tea.Cmd {
	return func() tea.Msg {
		var samples []sntp.Sample
		if err := client.Call("SNTPRPCServer.FetchSamples", 0, &samples); err != nil {
			log.Fatalf("Error getting samples from daemon: %v", err)
		}

		return fetchSamplesMessage(samples)
	}
}

func stopDaemonCommand() tea.Cmd {
	return func() tea.Msg {
		killDaemon()
		return nil
	}
}

func tickCommand(duration time.Duration) tea.Cmd {
	return tea.Tick(duration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m statusModel) Init() tea.Cmd {
	return dialSocketCommand(m)
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.table.Focused() {
				m.table.Blur()
			} else {
				m.table.Focus()
			}
		case "stop", "s":
			m.daemonKillStatus = "Stopping sntpd"
			return m, tea.Sequence(stopDaemonCommand(), tea.Quit)
		case "ctrl+c", "q":
			return m, tea.Quit
		}

		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	case dialSocketMessage:
		client = msg
		return m, tickCommand(0)
	case fetchSamplesMessage:
		m.samples = msg
		rows := []table.Row{}
		for i := len(m.samples) - 1; i >= 0; i-- {
			sample := m.samples[i]
			row := table.Row{
				sample.Time.Local().Format("15:04:05"),
				strconv.FormatFloat(sample.Offset, 'G', 5, 64),
				strconv.FormatFloat(sample.Delay, 'G', 5, 64),
				fmt.Sprintf("%d (%v)", sample.Stratum, sample.Stratum.Kind()),
				sample.Refid,
			}
			rows = append(rows, row)
		}
		m.table.SetRows(rows)
		return m, nil
	case tickMsg:
		return m, tea.Batch(tickCommand(fetchSamplesPeriod), fetchSamplesCommand())
	default:
		return m, nil
	}
}

func (m statusModel) View() (s string) {
	s += ui.Title("SNTP - Daemon") + "\n"
	s += ui.TableBase(m.table.View()) + "\n\n"
	if m.daemonKillStatus != "" {
		s += m.daemonKillStatus + "\n"
	} else {
		s += ui.Help("q: exit, s: stop daemon") + "\n"
	}
	return
}

func setupTable() table.Model {
	columns := []table.Column{
		{Title: "Time", Width: 12},
		{Title: "Offset (ms)", Width: 15},
		{Title: "Delay (ms)", Width: 15},
		{Title: "Stratum", Width: 18},
		{Title: "Reference ID", Width: 25},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ui.TableGray).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("218")).
		Background(lipgloss.Color("70")).
		Bold(false)
	t.SetStyles(s)

	return t
}
