package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type LeaderboardModel struct {
	Client *Client
	Table  table.Model
	User   *UserInfo
	Err    error
}

func NewLeaderboardModel(client *Client, user *UserInfo, width, height int) LeaderboardModel {
	columns := []table.Column{
		{Title: "User ID", Width: 16},
		{Title: "Name", Width: 24},
		{Title: "Points", Width: 10},
		{Title: "Valid Days", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return LeaderboardModel{Client: client, Table: t, User: user}
}

type leaderboardMsg struct {
	Rows []PointsRecord
	Err  error
}

func (m LeaderboardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m LeaderboardModel) refreshCmd() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		rows, err := client.Leaderboard()
		return leaderboardMsg{Rows: rows, Err: err}
	}
}

func (m LeaderboardModel) Update(msg tea.Msg) (LeaderboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.refreshCmd()
		case "q":
			return m, tea.Quit
		}

	case leaderboardMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		rows := make([]table.Row, 0, len(msg.Rows))
		for _, rec := range msg.Rows {
			rows = append(rows, table.Row{
				rec.UserID,
				rec.UserName,
				fmt.Sprintf("%d", rec.TotalPoints),
				fmt.Sprintf("%d", rec.ValidDays),
			})
		}
		m.Table.SetRows(rows)
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m LeaderboardModel) View() string {
	var b strings.Builder
	header := "Points Leaderboard"
	if m.User != nil {
		header = fmt.Sprintf("Points Leaderboard - %s", m.User.Username)
	}
	b.WriteString(titleStyle.Render(header) + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Press 'r' to refresh, 'q' to quit, up/down to navigate"))
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
