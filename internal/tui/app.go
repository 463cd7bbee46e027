package tui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sinaw-id/sinaw/internal/catalog"
	"github.com/sinaw-id/sinaw/internal/mentor"
	"github.com/sinaw-id/sinaw/internal/nav"
)

// Options configures a new App.
type Options struct {
	Catalog            *catalog.Catalog
	Mentor             mentor.Service
	MentorTimeout      time.Duration
	SplashDuration     time.Duration
	ReverseScrollWheel bool
}

// App is the top-level Bubble Tea model. It owns the navigation controller
// and routes input to the screen for the current view.
type App struct {
	ctl     *nav.Controller
	catalog *catalog.Catalog
	mentor  mentor.Service
	chat    *mentor.Chat
	keys    KeyMap

	screens map[nav.View]Screen
	modals  []Modal

	splash             time.Duration
	reverseScrollWheel bool
	status             string

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

type splashDoneMsg struct{}

// mentorReplyMsg carries a finished backend call back into the update loop.
type mentorReplyMsg struct {
	ticket mentor.Ticket
	text   string
	err    error
}

// NewApp creates an App at the splash screen.
func NewApp(opts Options) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		ctl:     nav.New(opts.Catalog.DemoUser()),
		catalog: opts.Catalog,
		mentor:  opts.Mentor,
		chat:    mentor.NewChat(opts.MentorTimeout),
		keys:    DefaultKeyMap(),
		screens: map[nav.View]Screen{
			nav.ViewSplash:       &splashScreen{},
			nav.ViewLogin:        newLoginScreen(),
			nav.ViewHome:         &homeScreen{},
			nav.ViewMyCourses:    &myCoursesScreen{},
			nav.ViewCourse:       &courseScreen{},
			nav.ViewMentor:       newMentorScreen(),
			nav.ViewProfile:      &profileScreen{},
			nav.ViewSubscription: &subscriptionScreen{},
			nav.ViewCertificate:  &placeholderScreen{title: "Sertifikat"},
			nav.ViewSettings:     &placeholderScreen{title: "Pengaturan"},
			nav.ViewEditProfile:  &placeholderScreen{title: "Edit Profil"},
		},
		splash:             opts.SplashDuration,
		reverseScrollWheel: opts.ReverseScrollWheel,
		ctx:                ctx,
		cancel:             cancel,
		width:              80,
		height:             24,
	}
}

func (a *App) Init() tea.Cmd {
	if a.splash <= 0 {
		return func() tea.Msg { return splashDoneMsg{} }
	}
	return tea.Tick(a.splash, func(time.Time) tea.Msg { return splashDoneMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case splashDoneMsg:
		if a.ctl.FinishSplash() {
			return a, a.enterCurrent()
		}
		return a, nil
	case mentorReplyMsg:
		if _, ok := a.chat.Resolve(msg.ticket, msg.text, msg.err); !ok {
			log.Printf("tui: dropped stale mentor reply")
		}
		return a, nil
	case SpinnerTickMsg:
		return a, a.handleSpinnerTick()
	}

	if m := a.topModal(); m != nil {
		pop, cmd := m.Update(msg)
		if pop {
			a.popModal()
		}
		return a, cmd
	}

	if km, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := a.handleGlobalKey(km); handled {
			return a, cmd
		}
	}

	cmd, intent := a.current().Update(a.screenContext(), msg)
	return a, tea.Batch(cmd, a.apply(intent))
}

func (a *App) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		a.cancel()
		return true, tea.Quit
	}

	capturing := false
	if c, ok := a.current().(Capturing); ok {
		capturing = c.Capturing()
	}

	if key.Matches(msg, a.keys.Back) && (!capturing || msg.Type == tea.KeyEsc) {
		// Splash and login have nowhere to go back to.
		if a.ctl.User() == nil {
			return true, nil
		}
		return true, a.apply(&Intent{Kind: IntentBack})
	}
	if capturing {
		return false, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.cancel()
		return true, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.pushModal(NewHelpModal(a.keys, a.reverseScrollWheel))
		return true, nil
	}

	if a.ctl.BottomNavVisible() {
		tabs := nav.PrimaryTabs()
		for i, b := range a.keys.tabBindings() {
			if key.Matches(msg, b) {
				return true, a.apply(navigateTo(tabs[i], nil))
			}
		}
	}
	return false, nil
}

// apply hands an intent to the controller and enters the resulting screen.
func (a *App) apply(in *Intent) tea.Cmd {
	if in == nil {
		return nil
	}
	a.status = ""

	switch in.Kind {
	case IntentNavigate:
		if _, err := a.ctl.Navigate(in.View, in.Params); err != nil {
			log.Printf("tui: navigate to %s: %v", in.View, err)
			a.status = err.Error()
			return nil
		}
	case IntentBack:
		a.ctl.GoBack()
	case IntentSignIn:
		a.ctl.SignIn()
	case IntentRegister:
		if err := a.ctl.Register(in.Name); err != nil {
			if errors.Is(err, nav.ErrEmptyName) {
				a.status = "Nama lengkap wajib diisi."
			} else {
				a.status = err.Error()
			}
			return nil
		}
	case IntentLogout:
		a.ctl.Logout()
		a.chat.Reset()
	}
	return a.enterCurrent()
}

func (a *App) enterCurrent() tea.Cmd {
	return a.current().Enter(a.screenContext())
}

func (a *App) current() Screen {
	v, _ := a.ctl.Current()
	return a.screens[v]
}

func (a *App) screenContext() *Context {
	return &Context{
		Session:            a.ctl.Snapshot(),
		Catalog:            a.catalog,
		Chat:               a.chat,
		Mentor:             a.mentor,
		Keys:               a.keys,
		ReverseScrollWheel: a.reverseScrollWheel,
		base:               a.ctx,
	}
}

func (a *App) View() string {
	if m := a.topModal(); m != nil {
		return m.View(a.width, a.height)
	}

	ctx := a.screenContext()
	var footer []string
	if a.status != "" {
		footer = append(footer, errorStyle.Render(a.status))
	}
	if nav.BottomNavVisible(ctx.Session) {
		footer = append(footer, renderBottomBar(ctx.Session.View, a.width))
	}

	footerView := lipgloss.JoinVertical(lipgloss.Left, footer...)
	bodyHeight := a.height
	if len(footer) > 0 {
		bodyHeight -= lipgloss.Height(footerView)
	}

	body := lipgloss.NewStyle().
		Width(a.width).
		Height(max(bodyHeight, 1)).
		MaxHeight(max(bodyHeight, 1)).
		Render(a.current().View(ctx, a.width, bodyHeight))

	if len(footer) == 0 {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footerView)
}
