package nav

import (
	"errors"
	"testing"

	"github.com/sinaw-id/sinaw/internal/model"
)

var demoUser = model.User{
	Name:   "Budi Darmawan",
	Email:  "budi.darmawan@example.com",
	Avatar: "https://picsum.photos/seed/user/100",
	Tier:   model.TierPro,
}

// signedIn returns a controller sitting on home with an empty stack.
func signedIn(t *testing.T) *Controller {
	t.Helper()
	c := New(demoUser)
	c.SignIn()
	if v, _ := c.Current(); v != ViewHome {
		t.Fatalf("view after sign in = %s, want home", v)
	}
	return c
}

func TestNew_StartsAtSplash(t *testing.T) {
	t.Parallel()

	c := New(demoUser)
	s := c.Snapshot()
	if s.View != ViewSplash {
		t.Fatalf("initial view = %s, want splash", s.View)
	}
	if s.User != nil {
		t.Fatalf("initial user = %+v, want nil", s.User)
	}
	if len(s.History) != 0 {
		t.Fatalf("initial history = %v, want empty", s.History)
	}
}

func TestFinishSplash(t *testing.T) {
	t.Parallel()

	c := New(demoUser)
	if !c.FinishSplash() {
		t.Fatal("FinishSplash() = false on splash, want true")
	}
	if v, _ := c.Current(); v != ViewLogin {
		t.Fatalf("view = %s, want login", v)
	}
	if c.FinishSplash() {
		t.Fatal("FinishSplash() = true after splash left, want false")
	}
	if c.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", c.Depth())
	}
}

func TestNavigate_TabToTabNeverGrowsStack(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	seq := []View{ViewProfile, ViewMentor, ViewMyCourses, ViewHome, ViewHome, ViewProfile}
	for _, v := range seq {
		tr, err := c.Navigate(v, nil)
		if err != nil {
			t.Fatalf("Navigate(%s): %v", v, err)
		}
		if tr != TransitionCleared {
			t.Fatalf("Navigate(%s) transition = %s, want cleared", v, tr)
		}
		if c.Depth() != 0 {
			t.Fatalf("depth after Navigate(%s) = %d, want 0", v, c.Depth())
		}
	}
}

func TestNavigate_DrillDownPushesExactlyOne(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		setup  []View
		target View
		params Params
	}{
		{name: "tab to detail", target: ViewCourse, params: CourseParams{CourseID: 1}},
		{name: "tab to subscription", setup: []View{ViewProfile}, target: ViewSubscription},
		{name: "detail to detail", setup: []View{ViewProfile, ViewSubscription}, target: ViewCertificate},
		{name: "detail to tab", target: ViewMentor, setup: []View{ViewCourse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := signedIn(t)
			for _, v := range tt.setup {
				if _, err := c.Navigate(v, nil); err != nil {
					t.Fatalf("setup Navigate(%s): %v", v, err)
				}
			}
			before := c.Depth()
			tr, err := c.Navigate(tt.target, tt.params)
			if err != nil {
				t.Fatalf("Navigate(%s): %v", tt.target, err)
			}
			if tr != TransitionPushed {
				t.Fatalf("transition = %s, want pushed", tr)
			}
			if got := c.Depth(); got != before+1 {
				t.Fatalf("depth = %d, want %d", got, before+1)
			}
		})
	}
}

func TestNavigate_CourseAndBackScenario(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	if _, err := c.Navigate(ViewCourse, CourseParams{CourseID: 3}); err != nil {
		t.Fatalf("Navigate(course): %v", err)
	}

	s := c.Snapshot()
	if len(s.History) != 1 || s.History[0].View != ViewHome || s.History[0].Params != (NoParams{}) {
		t.Fatalf("history = %+v, want [(home, {})]", s.History)
	}
	if id, ok := CourseID(s.Params); s.View != ViewCourse || !ok || id != 3 {
		t.Fatalf("current = %s/%+v, want course/{3}", s.View, s.Params)
	}

	if tr := c.GoBack(); tr != TransitionPopped {
		t.Fatalf("GoBack transition = %s, want popped", tr)
	}
	s = c.Snapshot()
	if s.View != ViewHome || s.Params != (NoParams{}) || len(s.History) != 0 {
		t.Fatalf("after back = %s/%+v history %v, want home/{} []", s.View, s.Params, s.History)
	}
}

func TestNavigate_ProfileThenSubscriptionScenario(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	if tr, _ := c.Navigate(ViewProfile, nil); tr != TransitionCleared {
		t.Fatalf("home->profile transition = %s, want cleared", tr)
	}
	if c.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", c.Depth())
	}
	if tr, _ := c.Navigate(ViewSubscription, nil); tr != TransitionPushed {
		t.Fatalf("profile->subscription transition = %s, want pushed", tr)
	}
	s := c.Snapshot()
	if len(s.History) != 1 || s.History[0].View != ViewProfile {
		t.Fatalf("history = %+v, want [(profile, {})]", s.History)
	}
}

func TestGoBack_NoReplay(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	c.Navigate(ViewCourse, CourseParams{CourseID: 2})
	c.Navigate(ViewMentor, nil)

	if tr := c.GoBack(); tr != TransitionPopped {
		t.Fatalf("first back = %s, want popped", tr)
	}
	v, p := c.Current()
	if id, _ := CourseID(p); v != ViewCourse || id != 2 {
		t.Fatalf("after first back = %s/%+v, want course/{2}", v, p)
	}

	c.GoBack()
	v, p = c.Current()
	if v != ViewHome {
		t.Fatalf("after second back = %s, want home", v)
	}
	if _, ok := CourseID(p); ok {
		t.Fatalf("course frame replayed: params %+v", p)
	}
	if c.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", c.Depth())
	}
}

func TestGoBack_EmptyStackFallsBackHome(t *testing.T) {
	t.Parallel()

	c := New(demoUser)
	c.FinishSplash()
	for i := 0; i < 3; i++ {
		if tr := c.GoBack(); tr != TransitionFallback {
			t.Fatalf("GoBack #%d = %s, want fallback", i, tr)
		}
		v, p := c.Current()
		if v != ViewHome || p != (NoParams{}) {
			t.Fatalf("GoBack #%d current = %s/%+v, want home/{}", i, v, p)
		}
		if c.Depth() != 0 {
			t.Fatalf("GoBack #%d depth = %d, want 0", i, c.Depth())
		}
	}
}

func TestNavigate_RejectsInvalidView(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	c.Navigate(ViewCourse, CourseParams{CourseID: 1})
	before := c.Snapshot()

	for _, v := range []View{-1, viewCount, 99} {
		if _, err := c.Navigate(v, nil); !errors.Is(err, ErrInvalidView) {
			t.Fatalf("Navigate(%d) error = %v, want ErrInvalidView", int(v), err)
		}
	}
	after := c.Snapshot()
	if after.View != before.View || len(after.History) != len(before.History) {
		t.Fatalf("session changed after rejected navigate: before %+v after %+v", before, after)
	}
}

func TestNavigate_RejectsMisplacedParams(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	if _, err := c.Navigate(ViewProfile, CourseParams{CourseID: 1}); !errors.Is(err, ErrParamsMismatch) {
		t.Fatalf("error = %v, want ErrParamsMismatch", err)
	}
	if v, _ := c.Current(); v != ViewHome {
		t.Fatalf("view = %s, want home unchanged", v)
	}
}

func TestNavigate_NilParamsNormalised(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	c.Navigate(ViewCourse, nil)
	if _, p := c.Current(); p != (NoParams{}) {
		t.Fatalf("params = %#v, want NoParams{}", p)
	}
}

func TestLoginAndLogoutReset(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	c.Navigate(ViewCourse, CourseParams{CourseID: 4})
	c.Navigate(ViewMentor, nil)

	c.Logout()
	s := c.Snapshot()
	if s.User != nil || s.View != ViewLogin || len(s.History) != 0 {
		t.Fatalf("after logout = %+v, want no user, login, empty stack", s)
	}

	// Logging out again keeps the user absent and still resets view/stack.
	c.Navigate(ViewSettings, nil)
	c.Logout()
	s = c.Snapshot()
	if s.User != nil || s.View != ViewLogin || len(s.History) != 0 {
		t.Fatalf("after second logout = %+v, want no user, login, empty stack", s)
	}

	c.Navigate(ViewSettings, nil)
	c.Login("Sari")
	s = c.Snapshot()
	if s.User == nil || s.User.Name != "Sari" || s.View != ViewHome || len(s.History) != 0 {
		t.Fatalf("after login = %+v, want Sari at home with empty stack", s)
	}
	if s.User.Email != demoUser.Email || s.User.Tier != demoUser.Tier {
		t.Fatalf("login user = %+v, want demo record fields", s.User)
	}
}

func TestSignIn_IgnoresCredentials(t *testing.T) {
	t.Parallel()

	c := New(demoUser)
	c.FinishSplash()
	c.SignIn()
	if u := c.User(); u == nil || u.Name != demoUser.Name {
		t.Fatalf("user = %+v, want demo identity", u)
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	c := New(demoUser)
	c.FinishSplash()

	if err := c.Register("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("Register(blank) error = %v, want ErrEmptyName", err)
	}
	if c.User() != nil {
		t.Fatal("user set after rejected register")
	}
	if v, _ := c.Current(); v != ViewLogin {
		t.Fatalf("view = %s, want login unchanged", v)
	}

	if err := c.Register("Rina Kusuma"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u := c.User(); u == nil || u.Name != "Rina Kusuma" {
		t.Fatalf("user = %+v, want Rina Kusuma", u)
	}
}

func TestSnapshot_IsDetached(t *testing.T) {
	t.Parallel()

	c := signedIn(t)
	c.Navigate(ViewCourse, CourseParams{CourseID: 1})

	s := c.Snapshot()
	s.History[0] = Frame{View: ViewSettings}
	s.User.Name = "mutated"

	again := c.Snapshot()
	if again.History[0].View != ViewHome {
		t.Fatalf("history mutated through snapshot: %+v", again.History)
	}
	if again.User.Name != demoUser.Name {
		t.Fatalf("user mutated through snapshot: %+v", again.User)
	}
}

func TestBottomNavVisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    Session
		want bool
	}{
		{name: "no user", s: Session{View: ViewHome}, want: false},
		{name: "home", s: Session{User: &demoUser, View: ViewHome}, want: true},
		{name: "my courses", s: Session{User: &demoUser, View: ViewMyCourses}, want: true},
		{name: "profile", s: Session{User: &demoUser, View: ViewProfile}, want: true},
		{name: "mentor hidden", s: Session{User: &demoUser, View: ViewMentor}, want: false},
		{name: "detail", s: Session{User: &demoUser, View: ViewCourse}, want: false},
		{name: "subscription", s: Session{User: &demoUser, View: ViewSubscription}, want: false},
	}

	for _, tt := range tests {
		if got := BottomNavVisible(tt.s); got != tt.want {
			t.Errorf("%s: BottomNavVisible = %v, want %v", tt.name, got, tt.want)
		}
	}
}
