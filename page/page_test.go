package page

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrosajp/poium/driver"
	"github.com/rrosajp/poium/utils"
)

// performedActions records one PerformActions call
type performedActions struct {
	pointerType string
	actions     []driver.PointerAction
}

// mockDriver records every forwarded call and returns configured results
type mockDriver struct {
	err error // when set, returned by every method

	scripts     []string
	scriptArgs  [][]interface{}
	scriptValue interface{}

	cookies        []driver.Cookie
	addedCookies   []driver.Cookie
	deletedCookies []string
	clearedCookies bool

	handles        []string
	switchedWindow string
	maximized      bool
	rectWidth      int
	rectHeight     int
	frameIDs       []interface{}
	parentFrames   int

	contexts        []string
	currentContext  string
	switchedContext string

	alertAccepted  bool
	alertDismissed bool
	alertText      string
	alertErr       error

	performed []performedActions
	released  bool

	wentBack  bool
	openedURL string
	keyCodes  []int
	metaState []int

	implicitTimeout time.Duration
	scriptTimeout   time.Duration
	pageLoadTimeout time.Duration

	screenshot []byte
}

func (m *mockDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	m.scripts = append(m.scripts, script)
	m.scriptArgs = append(m.scriptArgs, args)
	return m.scriptValue, m.err
}

func (m *mockDriver) GetCookies() ([]driver.Cookie, error) { return m.cookies, m.err }

func (m *mockDriver) GetCookie(name string) (*driver.Cookie, error) {
	for i := range m.cookies {
		if m.cookies[i].Name == name {
			return &m.cookies[i], m.err
		}
	}
	return nil, errors.New("no such cookie")
}

func (m *mockDriver) AddCookie(cookie driver.Cookie) error {
	m.addedCookies = append(m.addedCookies, cookie)
	return m.err
}

func (m *mockDriver) DeleteCookie(name string) error {
	m.deletedCookies = append(m.deletedCookies, name)
	return m.err
}

func (m *mockDriver) DeleteAllCookies() error {
	m.clearedCookies = true
	return m.err
}

func (m *mockDriver) WindowHandles() ([]string, error) { return m.handles, m.err }

func (m *mockDriver) SwitchToWindow(handle string) error {
	m.switchedWindow = handle
	return m.err
}

func (m *mockDriver) MaximizeWindow() error {
	m.maximized = true
	return m.err
}

func (m *mockDriver) SetWindowRect(width, height int) error {
	m.rectWidth, m.rectHeight = width, height
	return m.err
}

func (m *mockDriver) SwitchToFrame(id interface{}) error {
	m.frameIDs = append(m.frameIDs, id)
	return m.err
}

func (m *mockDriver) SwitchToParentFrame() error {
	m.parentFrames++
	return m.err
}

func (m *mockDriver) Contexts() ([]string, error)     { return m.contexts, m.err }
func (m *mockDriver) CurrentContext() (string, error) { return m.currentContext, m.err }

func (m *mockDriver) SwitchToContext(name string) error {
	m.switchedContext = name
	return m.err
}

func (m *mockDriver) AcceptAlert() error {
	m.alertAccepted = true
	return m.err
}

func (m *mockDriver) DismissAlert() error {
	m.alertDismissed = true
	return m.err
}

func (m *mockDriver) AlertText() (string, error) {
	if m.alertErr != nil {
		return "", m.alertErr
	}
	return m.alertText, m.err
}

func (m *mockDriver) PerformActions(pointerType string, actions []driver.PointerAction) error {
	m.performed = append(m.performed, performedActions{pointerType, actions})
	return m.err
}

func (m *mockDriver) ReleaseActions() error {
	m.released = true
	return m.err
}

func (m *mockDriver) Back() error {
	m.wentBack = true
	return m.err
}

func (m *mockDriver) OpenURL(url string) error {
	m.openedURL = url
	return m.err
}

func (m *mockDriver) PressKeyCode(keycode, metastate int) error {
	m.keyCodes = append(m.keyCodes, keycode)
	m.metaState = append(m.metaState, metastate)
	return m.err
}

func (m *mockDriver) SetImplicitTimeout(d time.Duration) error {
	m.implicitTimeout = d
	return m.err
}

func (m *mockDriver) SetScriptTimeout(d time.Duration) error {
	m.scriptTimeout = d
	return m.err
}

func (m *mockDriver) SetPageLoadTimeout(d time.Duration) error {
	m.pageLoadTimeout = d
	return m.err
}

func (m *mockDriver) TakeScreenshot() ([]byte, error) { return m.screenshot, m.err }

// disableSleep makes gesture settle waits instant for the duration of a test
func disableSleep(t *testing.T) {
	original := sleep
	sleep = func(time.Duration) {}
	t.Cleanup(func() { sleep = original })
}

func TestExecuteScript(t *testing.T) {
	m := &mockDriver{scriptValue: 42.0}
	p := New(m)

	result, err := p.ExecuteScript("return 42;", "a", 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, result)
	assert.Equal(t, []string{"return 42;"}, m.scripts)
	assert.Equal(t, []interface{}{"a", 1}, m.scriptArgs[0])
}

func TestExecuteScript_EmptyScript(t *testing.T) {
	p := New(&mockDriver{})

	_, err := p.ExecuteScript("")
	assert.ErrorIs(t, err, ErrNoScript)
}

func TestExecuteScript_DriverErrorPropagates(t *testing.T) {
	driverErr := errors.New("javascript error: boom")
	p := New(&mockDriver{err: driverErr})

	_, err := p.ExecuteScript("return 1;")
	assert.ErrorIs(t, err, driverErr)
}

func TestWindowScroll(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.WindowScroll(0, 500))
	assert.Equal(t, []string{"window.scrollTo(0,500);"}, m.scripts)
}

func TestTitleAndURL(t *testing.T) {
	m := &mockDriver{scriptValue: "hello"}
	p := New(m)

	title, err := p.Title()
	require.NoError(t, err)
	assert.Equal(t, "hello", title)

	url, err := p.URL()
	require.NoError(t, err)
	assert.Equal(t, "hello", url)

	assert.Equal(t, []string{"return document.title;", "return document.URL;"}, m.scripts)
}

func TestSetWindowSize(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.SetWindowSize(800, 600))
	assert.Equal(t, 800, m.rectWidth)
	assert.Equal(t, 600, m.rectHeight)
	assert.False(t, m.maximized)

	require.NoError(t, p.SetWindowSize(0, 0))
	assert.True(t, m.maximized)
}

func TestSwitchToWindow(t *testing.T) {
	m := &mockDriver{handles: []string{"w0", "w1", "w2"}}
	p := New(m)

	require.NoError(t, p.SwitchToWindow(1))
	assert.Equal(t, "w1", m.switchedWindow)
}

func TestSwitchToWindow_IndexOutOfRange(t *testing.T) {
	m := &mockDriver{handles: []string{"w0"}}
	p := New(m)

	err := p.SwitchToWindow(3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
	assert.Empty(t, m.switchedWindow)
}

func TestFrameSwitching(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.SwitchToFrame(2))
	require.NoError(t, p.SwitchToParentFrame())
	require.NoError(t, p.SwitchToDefaultContent())

	assert.Equal(t, []interface{}{2, nil}, m.frameIDs)
	assert.Equal(t, 1, m.parentFrames)
}

func TestCookies(t *testing.T) {
	m := &mockDriver{
		cookies: []driver.Cookie{{Name: "foo", Value: "bar"}},
	}
	p := New(m)

	cookies, err := p.Cookies()
	require.NoError(t, err)
	assert.Len(t, cookies, 1)

	cookie, err := p.Cookie("foo")
	require.NoError(t, err)
	assert.Equal(t, "bar", cookie.Value)

	require.NoError(t, p.AddCookies([]driver.Cookie{
		{Name: "a", Value: "1"},
		{Name: "b", Value: "2"},
	}))
	assert.Len(t, m.addedCookies, 2)

	require.NoError(t, p.DeleteCookie("foo"))
	assert.Equal(t, []string{"foo"}, m.deletedCookies)

	require.NoError(t, p.DeleteAllCookies())
	assert.True(t, m.clearedCookies)
}

func TestAddCookie_EmptyName(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	err := p.AddCookie(driver.Cookie{Value: "bar"})
	require.Error(t, err)
	assert.Empty(t, m.addedCookies)

	// a bad entry in the middle stops the batch
	err = p.AddCookies([]driver.Cookie{
		{Name: "a", Value: "1"},
		{Value: "2"},
		{Name: "c", Value: "3"},
	})
	require.Error(t, err)
	assert.Len(t, m.addedCookies, 1)
}

func TestSwitchToNative(t *testing.T) {
	m := &mockDriver{currentContext: "WEBVIEW_com.example"}
	p := New(m)

	require.NoError(t, p.SwitchToNative())
	assert.Equal(t, NativeAppContext, m.switchedContext)
}

func TestSwitchToNative_AlreadyNative(t *testing.T) {
	m := &mockDriver{currentContext: NativeAppContext}
	p := New(m)

	require.NoError(t, p.SwitchToNative())
	assert.Empty(t, m.switchedContext)
}

func TestSwitchToWebView_ExplicitName(t *testing.T) {
	m := &mockDriver{currentContext: NativeAppContext}
	p := New(m)

	require.NoError(t, p.SwitchToWebView("WEBVIEW_com.example"))
	assert.Equal(t, "WEBVIEW_com.example", m.switchedContext)
}

func TestSwitchToWebView_AlreadyInWebView(t *testing.T) {
	m := &mockDriver{currentContext: "WEBVIEW_com.example"}
	p := New(m)

	require.NoError(t, p.SwitchToWebView(""))
	assert.Empty(t, m.switchedContext)
}

func TestSwitchToWebView_ScansContexts(t *testing.T) {
	m := &mockDriver{
		currentContext: NativeAppContext,
		contexts:       []string{"NATIVE_APP", "WEBVIEW_com.first", "WEBVIEW_com.second"},
	}
	p := New(m)

	require.NoError(t, p.SwitchToWebView(""))
	assert.Equal(t, "WEBVIEW_com.first", m.switchedContext)
}

func TestSwitchToWebView_NoneFound(t *testing.T) {
	m := &mockDriver{
		currentContext: NativeAppContext,
		contexts:       []string{"NATIVE_APP"},
	}
	p := New(m)

	err := p.SwitchToWebView("")
	assert.ErrorIs(t, err, ErrNoWebView)
	assert.Empty(t, m.switchedContext)
}

func TestSwitchToFlutter(t *testing.T) {
	m := &mockDriver{currentContext: NativeAppContext}
	p := New(m)

	require.NoError(t, p.SwitchToFlutter())
	assert.Equal(t, FlutterContext, m.switchedContext)

	m.currentContext = FlutterContext
	m.switchedContext = ""
	require.NoError(t, p.SwitchToFlutter())
	assert.Empty(t, m.switchedContext)
}

func TestTap_GestureSequence(t *testing.T) {
	disableSleep(t)
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.Tap(150, 300))
	require.Len(t, m.performed, 1)
	assert.Equal(t, "touch", m.performed[0].pointerType)

	actions := m.performed[0].actions
	require.Len(t, actions, 4)
	assert.Equal(t, driver.PointerAction{Type: "pointerMove", X: 150, Y: 300}, actions[0])
	assert.Equal(t, "pointerDown", actions[1].Type)
	assert.Equal(t, driver.PointerAction{Type: "pause", Duration: 100}, actions[2])
	assert.Equal(t, "pointerUp", actions[3].Type)
}

func TestTap_SettleWait(t *testing.T) {
	var slept time.Duration
	original := sleep
	sleep = func(d time.Duration) { slept = d }
	defer func() { sleep = original }()

	p := New(&mockDriver{})
	require.NoError(t, p.Tap(1, 1))
	assert.Equal(t, DefaultTapSettle, slept)

	require.NoError(t, p.TapWithSettle(1, 1, 250*time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, slept)
}

func TestSwipe(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.Swipe(10, 500, 10, 100, 0))
	require.Len(t, m.performed, 1)

	actions := m.performed[0].actions
	require.Len(t, actions, 4)
	assert.Equal(t, driver.PointerAction{Type: "pointerMove", X: 10, Y: 500}, actions[0])
	assert.Equal(t, driver.PointerAction{Type: "pointerMove", Duration: 1000, X: 10, Y: 100}, actions[2])
}

func TestMoveByOffset(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.MoveByOffset(5, -10, false))
	require.Len(t, m.performed, 1)
	assert.Equal(t, "mouse", m.performed[0].pointerType)
	assert.Equal(t, driver.PointerAction{Type: "pointerMove", X: 5, Y: -10, Origin: "pointer"}, m.performed[0].actions[0])
	assert.Len(t, m.performed[0].actions, 1)

	require.NoError(t, p.MoveByOffset(5, -10, true))
	assert.Len(t, m.performed[1].actions, 3)
	assert.Equal(t, "pointerDown", m.performed[1].actions[1].Type)
	assert.Equal(t, "pointerUp", m.performed[1].actions[2].Type)
}

func TestReleasePointer(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.ReleasePointer())
	assert.True(t, m.released)
	assert.Empty(t, m.performed)
}

func TestKeyText(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.KeyText("ab1"))
	assert.Equal(t, []int{29, 30, 8}, m.keyCodes)
	assert.Equal(t, []int{0, 0, 0}, m.metaState)
}

func TestKeyTextCapital(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.KeyTextCapital("HI"))
	assert.Equal(t, []int{36, 37}, m.keyCodes)
	assert.Equal(t, []int{1, 1}, m.metaState)
}

func TestKeyText_UnsupportedCharacter(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	err := p.KeyText("日本語")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported character")
	assert.Empty(t, m.keyCodes)
}

func TestAlerts(t *testing.T) {
	m := &mockDriver{alertText: "are you sure?"}
	p := New(m)

	assert.True(t, p.AlertPresent())

	text, err := p.AlertText()
	require.NoError(t, err)
	assert.Equal(t, "are you sure?", text)

	require.NoError(t, p.AcceptAlert())
	assert.True(t, m.alertAccepted)

	require.NoError(t, p.DismissAlert())
	assert.True(t, m.alertDismissed)
}

func TestAlertPresent_NoAlert(t *testing.T) {
	m := &mockDriver{alertErr: errors.New("no such alert: no alert is displayed")}
	p := New(m)

	var buf bytes.Buffer
	logger := utils.Logger()
	original := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(original) })

	assert.False(t, p.AlertPresent())
	assert.Empty(t, buf.String())
}

func TestAlertPresent_TransportFailureIsLogged(t *testing.T) {
	m := &mockDriver{alertErr: errors.New("failed to get endpoint alert/text: connection refused")}
	p := New(m)

	var buf bytes.Buffer
	logger := utils.Logger()
	original := logger.Out
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(original) })

	// a transport failure says nothing about alert state
	assert.False(t, p.AlertPresent())
	assert.Contains(t, buf.String(), "alert check failed")
}

func TestBackAndHome(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.Back())
	assert.True(t, m.wentBack)

	require.NoError(t, p.Home())
	assert.Equal(t, []int{androidKeyCodeHome}, m.keyCodes)
}

func TestTimeouts(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.SetImplicitWait(10*time.Second))
	require.NoError(t, p.SetScriptTimeout(20*time.Second))
	require.NoError(t, p.SetPageLoadTimeout(30*time.Second))

	assert.Equal(t, 10*time.Second, m.implicitTimeout)
	assert.Equal(t, 20*time.Second, m.scriptTimeout)
	assert.Equal(t, 30*time.Second, m.pageLoadTimeout)
}

func TestScreenshot(t *testing.T) {
	m := &mockDriver{screenshot: []byte("png-data")}
	p := New(m)

	dir := t.TempDir()
	path, err := p.Screenshot(dir, "shot.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shot.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-data"), data)
}

func TestScreenshot_DefaultFilename(t *testing.T) {
	m := &mockDriver{screenshot: []byte("png-data")}
	p := New(m)

	path, err := p.Screenshot(t.TempDir(), "")
	require.NoError(t, err)
	assert.Regexp(t, `\d+\.png$`, path)
}

func TestOpen(t *testing.T) {
	m := &mockDriver{}
	p := New(m)

	require.NoError(t, p.Open("https://example.com"))
	assert.Equal(t, "https://example.com", m.openedURL)
}
