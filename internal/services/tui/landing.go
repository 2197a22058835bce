package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/louisbranch/renderdemo/internal/view"
)

type landingScreen struct {
	ctx     context.Context
	landing view.Landing
	nav     *cmdNavigator
	out     view.LandingOutput
	err     error
}

var _ Screen = (*landingScreen)(nil)

func newLandingScreen(deps screenDeps) Screen {
	s := &landingScreen{ctx: deps.ctx, nav: &cmdNavigator{}}
	s.out = s.landing.Render()
	return s
}

func (s *landingScreen) Init() tea.Cmd { return nil }

func (s *landingScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || key.Type != tea.KeyEnter {
		return s, nil
	}
	s.err = s.landing.Activate(s.ctx, s.nav)
	return s, s.nav.flush()
}

func (s *landingScreen) View() string {
	content := styles.Title.Render(s.out.Heading) + "\n\n"
	content += "> " + styles.Link.Render(s.out.Link.Label)
	if s.err != nil {
		content += "\n\n" + styles.Error.Render(s.err.Error())
	}
	return content
}
