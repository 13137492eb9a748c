package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateLeaderboard
)

type RootModel struct {
	State       state
	Client      *Client
	Login       LoginModel
	Leaderboard LeaderboardModel
	Quitting    bool
	width       int
	height      int
}

func NewRootModel(baseURL string) RootModel {
	client := NewClient(baseURL)
	return RootModel{
		State:  stateLogin,
		Client: client,
		Login:  NewLoginModel(client),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateLeaderboard {
			m.Leaderboard.Table.SetHeight(max(msg.Height-10, 5))
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			_ = m.Client.Logout()
			return m, tea.Quit
		}

	case loginResultMsg:
		if msg.Err == nil && msg.User != nil {
			m.State = stateLeaderboard
			m.Leaderboard = NewLeaderboardModel(m.Client, msg.User, m.width, m.height)
			return m, m.Leaderboard.Init()
		}
	}

	switch m.State {
	case stateLogin:
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)
	case stateLeaderboard:
		newBoard, cmd := m.Leaderboard.Update(msg)
		m.Leaderboard = newBoard
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateLeaderboard:
		return m.Leaderboard.View()
	}
	return "Unknown state"
}
