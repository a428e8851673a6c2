package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"touchline/internal/career"
	cl "touchline/internal/cli"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	scoreStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	minuteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	goalStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	cardStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

const maxFeedEvents = 8

type liveTickMsg time.Time

type liveStateMsg struct {
	live career.LiveMatch
	err  error
}

type liveModel struct {
	client  *cl.Client
	prog    progress.Model
	live    career.LiveMatch
	started bool
	err     error
}

func newLiveModel(client *cl.Client) liveModel {
	return liveModel{
		client: client,
		prog:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m liveModel) Init() tea.Cmd {
	return tea.Batch(m.fetch, liveTick())
}

func liveTick() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return liveTickMsg(t)
	})
}

func (m liveModel) fetch() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	live, err := m.client.LiveMatch(ctx)
	return liveStateMsg{live: live, err: err}
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "a":
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = m.client.CancelMatch(ctx)
			return m, tea.Quit
		}
	case liveTickMsg:
		return m, tea.Batch(m.fetch, liveTick())
	case liveStateMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.err = nil
		m.live = msg.live
		if msg.live.Active {
			m.started = true
		} else if m.started || msg.live.Minute >= career.FullTimeMinute {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.prog.Width = msg.Width - 8
		if m.prog.Width > 60 {
			m.prog.Width = 60
		}
	}
	return m, nil
}

func (m liveModel) View() string {
	if m.err != nil {
		return "live feed lost: " + m.err.Error() + "\n"
	}
	live := m.live
	if live.HomeTeam == "" {
		return faintStyle.Render("Waiting for kick-off...") + "\n"
	}

	var b strings.Builder
	b.WriteString(scoreStyle.Render(fmt.Sprintf("%s %d - %d %s",
		live.HomeTeam, live.HomeScore, live.AwayScore, live.AwayTeam)))
	b.WriteString("  ")
	b.WriteString(minuteStyle.Render(fmt.Sprintf("%d'", live.Minute)))
	b.WriteString("\n")
	b.WriteString(m.prog.ViewAs(float64(live.Minute) / float64(career.FullTimeMinute)))
	b.WriteString("\n\n")

	feed := live.Events
	if len(feed) > maxFeedEvents {
		feed = feed[:maxFeedEvents]
	}
	for _, ev := range feed {
		line := fmt.Sprintf("%2d' %s", ev.Minute, eventLine(ev))
		switch ev.Type {
		case career.EventGoal:
			b.WriteString(goalStyle.Render(line))
		case career.EventYellow, career.EventRed:
			b.WriteString(cardStyle.Render(line))
		default:
			b.WriteString(eventStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("q: leave the feed  a: abandon the match"))
	b.WriteString("\n")
	return b.String()
}

func eventLine(ev career.MatchEvent) string {
	if ev.Description != "" {
		return ev.Description
	}
	if ev.Player != "" {
		return fmt.Sprintf("%s (%s)", ev.Type, ev.Player)
	}
	return string(ev.Type)
}

// watchLive runs the live viewer until full time, abandonment or the
// user walking away, then prints the final score if one was recorded.
func watchLive(ctx context.Context, client *cl.Client) error {
	model := newLiveModel(client)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(liveModel); ok && m.err != nil {
		return m.err
	}

	resultCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	live, err := client.LiveMatch(resultCtx)
	if err == nil && !live.Active && live.Minute >= career.FullTimeMinute {
		result, err := client.LastMatch(resultCtx)
		if err == nil {
			renderResult(result)
		}
	}
	return nil
}
