package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sinaw-id/sinaw/internal/nav"
)

type profileItem struct {
	label  string
	intent func() *Intent
}

var profileMenu = []profileItem{
	{"Sertifikat", func() *Intent { return navigateTo(nav.ViewCertificate, nil) }},
	{"Paket Langganan", func() *Intent { return navigateTo(nav.ViewSubscription, nil) }},
	{"Pengaturan", func() *Intent { return navigateTo(nav.ViewSettings, nil) }},
	{"Edit Profil", func() *Intent { return navigateTo(nav.ViewEditProfile, nil) }},
	{"Keluar", func() *Intent { return &Intent{Kind: IntentLogout} }},
}

type profileScreen struct {
	cursor int
}

func (p *profileScreen) Enter(*Context) tea.Cmd {
	p.cursor = 0
	return nil
}

func (p *profileScreen) Update(ctx *Context, msg tea.Msg) (tea.Cmd, *Intent) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}
	switch {
	case key.Matches(km, ctx.Keys.Up):
		p.cursor = clampIndex(p.cursor-1, len(profileMenu))
	case key.Matches(km, ctx.Keys.Down):
		p.cursor = clampIndex(p.cursor+1, len(profileMenu))
	case key.Matches(km, ctx.Keys.Enter):
		return nil, profileMenu[p.cursor].intent()
	}
	return nil, nil
}

func (p *profileScreen) View(ctx *Context, width, _ int) string {
	u := ctx.Session.User
	if u == nil {
		return ""
	}

	card := lipgloss.JoinVertical(lipgloss.Center,
		mutedStyle.Render(u.Avatar),
		titleStyle.Render(u.Name),
		mutedStyle.Render(u.Email),
		chipStyle.Render(fmt.Sprintf("%s Member", u.Tier)),
	)

	items := make([]string, len(profileMenu))
	for i, it := range profileMenu {
		items[i] = it.label
		if it.label == "Keluar" && i != p.cursor {
			items[i] = dangerStyle.Render(it.label)
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(max(width-4, 1), lipgloss.Center, card),
		"",
		renderList(items, p.cursor),
	))
}

type subscriptionScreen struct{}

func (*subscriptionScreen) Enter(*Context) tea.Cmd { return nil }

func (*subscriptionScreen) Update(*Context, tea.Msg) (tea.Cmd, *Intent) { return nil, nil }

func (*subscriptionScreen) View(ctx *Context, width, _ int) string {
	plans := ctx.Catalog.Plans()
	cardWidth := max(min((width-4)/max(len(plans), 1)-2, 32), 20)

	cards := make([]string, len(plans))
	for i, plan := range plans {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Bold(true).Render(plan.Name) + "\n")
		b.WriteString(titleStyle.Render("Rp "+plan.Price) + mutedStyle.Render("/bulan") + "\n\n")
		for _, f := range plan.Features {
			b.WriteString(lipgloss.NewStyle().Foreground(ColorGreen).Render("✓ ") + f + "\n")
		}
		b.WriteString("\n")
		button := chipStyle.Render("Langganan Sekarang")
		style := cardStyle
		if plan.Highlight {
			button = selectedStyle.Padding(0, 1).Render("Langganan Sekarang")
			style = highlightCardStyle
		}
		b.WriteString(button)
		cards[i] = style.Width(cardWidth).Render(b.String())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader("Paket Langganan", true, width),
		lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Pilih Paket Belajar Kamu"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		)),
	)
}

// placeholderScreen stands in for profile destinations not built yet.
type placeholderScreen struct {
	title string
}

func (*placeholderScreen) Enter(*Context) tea.Cmd { return nil }

func (*placeholderScreen) Update(*Context, tea.Msg) (tea.Cmd, *Intent) { return nil, nil }

func (s *placeholderScreen) View(_ *Context, width, height int) string {
	header := renderHeader(s.title, true, width)
	body := lipgloss.Place(width, max(height-lipgloss.Height(header), 1), lipgloss.Center, lipgloss.Center,
		mutedStyle.Render("Coming soon"))
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
