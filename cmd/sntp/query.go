package main

import (
	"fmt"
	"os"

	"github.com/AndrewLester/sntp/internal/sugar"
	"github.com/AndrewLester/sntp/pkg/sntp"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func handleQueryCommand(client *sntp.Client, address string, messages int, set, compare bool) {
	m := queryCommandModel{client: client, address: address, messages: messages}
	m.resetProgress()

	if _, err := sugar.RunProgramWithErrors(m); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if queryResult == nil {
		return
	}
	if compare {
		fmt.Println(compareWithReference(address, queryResult.Offset))
	}
	if set {
		if err := applyClock(queryResult.Offset); err != nil {
			fmt.Printf("Error adjusting clock: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("System clock adjusted.")
	}
}

var (
	textStyle = lipgloss.NewStyle().Inline(true).Bold(true).Foreground(lipgloss.Color("252")).Render
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render
)

const (
	padding  = 10
	maxWidth = 80
)

var percentage float64 = 0
var result string
var queryResult *sntp.QueryResult

type queryCommandModel struct {
	progress progress.Model
	client   *sntp.Client
	address  string
	messages int
	err      error
}

type sntpQueryMessage string
type sntpQueryError error
type progressUpdateMessage struct{}

func sntpQueryCommand(client *sntp.Client, address string, messages int) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Query(address, messages)
		if err != nil {
			return sntpQueryError(err)
		}

		queryResult = res
		return sntpQueryMessage(renderReport(address, res))
	}
}

func progressListenCommand(m queryCommandModel) tea.Cmd {
	return func() tea.Msg {
		<-m.client.Progress
		return progressUpdateMessage{}
	}
}

func (m *queryCommandModel) resetProgress() {
	m.progress = progress.New(progress.WithScaledGradient("#68b1b1", "#6ea4ff"))
}

func (m queryCommandModel) Init() tea.Cmd {
	return tea.Batch(sntpQueryCommand(m.client, m.address, m.messages), progressListenCommand(m))
}

func (m queryCommandModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}
		return m, nil
	case progressUpdateMessage:
		percentage += 1 / float64(m.messages)
		return m, progressListenCommand(m)
	case sntpQueryMessage:
		result = string(msg)
		return m, tea.Quit
	case sntpQueryError:
		m.err = msg
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m queryCommandModel) View() (s string) {
	if m.err != nil {
		return
	}

	if result == "" {
		s += textStyle("SNTP - Query") + "\n\n"
		s += m.progress.ViewAs(percentage) + "\n\n"
		s += helpStyle("q: exit\n")
	} else {
		s += result + "\n"
	}
	return
}

func (m queryCommandModel) GetError() error {
	return m.err
}
