package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/beatly/internal/api"
	"github.com/desertthunder/beatly/internal/auth"
	"github.com/desertthunder/beatly/internal/forms"
	"github.com/desertthunder/beatly/internal/listctl"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LoginView ViewState = iota
	SignupView
	HomeView
	VideoDetailView
	ManageView
	ConfirmDeleteView
	AnalyticsView
)

// statsHolder captures the platform totals that ride along with each
// analytics page fetch.
type statsHolder struct {
	mu    sync.Mutex
	stats *api.OverallStats
}

func (h *statsHolder) set(s *api.OverallStats) {
	h.mu.Lock()
	h.stats = s
	h.mu.Unlock()
}

func (h *statsHolder) get() *api.OverallStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stats
}

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	store   auth.Store
	client  *api.Client
	session *auth.Session
	width   int
	height  int

	loginInputs  []textinput.Model
	loginFocus   int
	signupInputs []textinput.Model
	signupFocus  int

	videoCtl  *listctl.Controller[api.Video]
	videoList list.Model
	sortIdx   int

	manageCtl     *listctl.Controller[api.Video]
	manageList    list.Model
	manageSortIdx int
	pendingDelete *api.Video

	analyticsCtl     *listctl.Controller[api.Video]
	analyticsSortIdx int
	stats            *api.OverallStats
	holder           statsHolder

	detail       *api.VideoDetail
	detailReturn ViewState
	commentInput textarea.Model
	commenting   bool

	errMsg string
	notice string
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, store auth.Store, client *api.Client) *Model {
	m := &Model{
		ctx:     ctx,
		view:    LoginView,
		store:   store,
		client:  client,
		session: store.Current(),
		help:    help.New(),
		keys:    newKeyMap(),
	}

	m.loginInputs = newAuthInputs("Email", "Password")
	m.signupInputs = newAuthInputs("Name", "Email", "Password", "Confirm password")

	m.videoCtl = listctl.New(func(ctx context.Context, q api.ListQuery) (*listctl.Page[api.Video], error) {
		page, err := client.ListVideos(ctx, q)
		if err != nil {
			return nil, err
		}
		return &listctl.Page[api.Video]{
			Items:       page.Videos,
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalCount:  page.Pagination.TotalVideos,
		}, nil
	})
	m.manageCtl = listctl.New(func(ctx context.Context, q api.ListQuery) (*listctl.Page[api.Video], error) {
		page, err := client.ListVideos(ctx, q)
		if err != nil {
			return nil, err
		}
		return &listctl.Page[api.Video]{
			Items:       page.Videos,
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalCount:  page.Pagination.TotalVideos,
		}, nil
	})
	m.analyticsCtl = listctl.New(func(ctx context.Context, q api.ListQuery) (*listctl.Page[api.Video], error) {
		page, err := client.Analytics(ctx, q)
		if err != nil {
			return nil, err
		}
		m.holder.set(&page.OverallStats)
		return &listctl.Page[api.Video]{
			Items:       page.Videos,
			CurrentPage: page.Pagination.CurrentPage,
			TotalPages:  page.Pagination.TotalPages,
			TotalCount:  page.Pagination.TotalVideos,
		}, nil
	})

	ta := textarea.New()
	ta.Placeholder = "Write a comment..."
	ta.SetHeight(3)
	m.commentInput = ta

	return m
}

func newAuthInputs(placeholders ...string) []textinput.Model {
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		if strings.Contains(strings.ToLower(p), "password") {
			ti.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return inputs
}

// Init routes to the stored session's home view, or login when there is none.
// A stored session carrying an unrecognized role is discarded, and the login
// screen shows why instead of silently asking for credentials again.
func (m *Model) Init() tea.Cmd {
	if m.session != nil {
		if m.session.Valid() {
			return m.navigate(auth.HomeRoute(m.session.Role))
		}
		if _, err := auth.ParseRole(string(m.session.Role)); err != nil {
			m.errMsg = api.ErrorMessage(err)
		}
		m.session = nil
	}
	m.view = LoginView
	return textinput.Blink
}

// navigate authorizes the target route and switches views, following any
// redirect the authorization decision returns.
func (m *Model) navigate(route auth.RouteName) tea.Cmd {
	decision := auth.Authorize(m.session, auth.Lookup(route))
	if !decision.Allowed {
		route = decision.RedirectTo
	}

	m.errMsg = ""
	m.notice = ""

	switch route {
	case auth.RouteLogin:
		m.view = LoginView
		return textinput.Blink
	case auth.RouteSignup:
		m.view = SignupView
		return textinput.Blink
	case auth.RouteConsumerHome:
		m.view = HomeView
		return m.fetchVideos(m.videoCtl)
	case auth.RouteAdminVideos:
		m.view = ManageView
		return m.fetchManage()
	case auth.RouteAnalytics:
		m.view = AnalyticsView
		return m.fetchAnalytics()
	default:
		m.view = LoginView
		return textinput.Blink
	}
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.videoList.SetSize(msg.Width-4, msg.Height-8)
		m.manageList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LoginView:
			return m.handleLoginKeys(msg)
		case SignupView:
			return m.handleSignupKeys(msg)
		case HomeView:
			return m.handleHomeKeys(msg)
		case VideoDetailView:
			return m.handleDetailKeys(msg)
		case ManageView:
			return m.handleManageKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		case AnalyticsView:
			return m.handleAnalyticsKeys(msg)
		}

	case authDoneMsg:
		if msg.err != nil {
			m.errMsg = api.ErrorMessage(msg.err)
			return m, nil
		}
		m.session = &msg.session
		return m, m.navigate(auth.HomeRoute(msg.session.Role))

	case videosLoadedMsg:
		ctl := msg.ctl
		if !ctl.Apply(msg.done) {
			return m, nil
		}
		if ctl.Status() == listctl.Failed {
			m.errMsg = ctl.Err()
			return m, nil
		}
		m.errMsg = ""
		if ctl == m.videoCtl {
			m.videoList = m.newVideoList("Videos", m.videoCtl, m.sortIdx)
		} else {
			m.manageList = m.newVideoList("Manage Videos", m.manageCtl, m.manageSortIdx)
		}
		return m, nil

	case analyticsLoadedMsg:
		if !m.analyticsCtl.Apply(msg.done) {
			return m, nil
		}
		if m.analyticsCtl.Status() == listctl.Failed {
			m.errMsg = m.analyticsCtl.Err()
			return m, nil
		}
		m.errMsg = ""
		m.stats = msg.stats
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.errMsg = api.ErrorMessage(msg.err)
			return m, nil
		}
		m.detail = msg.detail
		m.view = VideoDetailView
		return m, nil

	case likeToggledMsg:
		if msg.err != nil {
			m.errMsg = api.ErrorMessage(msg.err)
			return m, nil
		}
		if m.detail != nil && msg.result != nil {
			m.detail.Likes = msg.result.Likes
			m.detail.Video.Likes = msg.result.TotalLikes
		}
		return m, nil

	case commentAddedMsg:
		if msg.err != nil {
			m.errMsg = api.ErrorMessage(msg.err)
			return m, nil
		}
		m.commentInput.Reset()
		m.commenting = false
		// The server owns comment state; reload the detail rather than
		// splicing the new comment in locally.
		if m.detail != nil {
			return m, m.fetchDetail(m.detail.Video.ID)
		}
		return m, nil

	case videoDeletedMsg:
		if msg.err != nil {
			m.errMsg = api.ErrorMessage(msg.err)
			m.view = ManageView
			return m, nil
		}
		m.notice = "Video deleted"
		m.view = ManageView
		return m, m.fetchManage()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case LoginView:
		body = m.renderLogin()
	case SignupView:
		body = m.renderSignup()
	case HomeView:
		body = m.renderHome()
	case VideoDetailView:
		body = m.renderDetail()
	case ManageView:
		body = m.renderManage()
	case ConfirmDeleteView:
		body = m.renderConfirmDelete()
	case AnalyticsView:
		body = m.renderAnalytics()
	}

	if m.errMsg != "" {
		body = fmt.Sprintf("%s\n\n%s", body, styles.err.Render("Error: "+m.errMsg))
	}
	if m.notice != "" {
		body = fmt.Sprintf("%s\n\n%s", body, styles.ok.Render(m.notice))
	}
	return body
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		m.loginFocus = cycleFocus(m.loginInputs, m.loginFocus, msg.String() == "tab")
		return m, textinput.Blink
	case "ctrl+s":
		m.errMsg = ""
		m.view = SignupView
		return m, textinput.Blink
	case "enter":
		email := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if email == "" || password == "" {
			m.errMsg = "email and password are required"
			return m, nil
		}
		return m, m.login(email, password)
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleSignupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.errMsg = ""
		m.view = LoginView
		return m, textinput.Blink
	case "tab", "shift+tab":
		m.signupFocus = cycleFocus(m.signupInputs, m.signupFocus, msg.String() == "tab")
		return m, textinput.Blink
	case "enter":
		return m, m.signup()
	}

	var cmd tea.Cmd
	m.signupInputs[m.signupFocus], cmd = m.signupInputs[m.signupFocus].Update(msg)
	return m, cmd
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "right", "]":
		if m.videoCtl.HasNext() {
			m.videoCtl.Next()
			return m, m.fetchVideos(m.videoCtl)
		}
		return m, nil
	case "left", "[":
		if m.videoCtl.HasPrevious() {
			m.videoCtl.Previous()
			return m, m.fetchVideos(m.videoCtl)
		}
		return m, nil
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(sortPresets)
		preset := sortPresets[m.sortIdx]
		m.videoCtl.SetParams(listctl.ParamPatch{
			SortBy: listctl.StrPtr(preset.sortBy),
			Order:  listctl.OrderPtr(preset.order),
		})
		return m, m.fetchVideos(m.videoCtl)
	case "enter":
		if item, ok := m.videoList.SelectedItem().(videoItem); ok {
			m.detailReturn = HomeView
			return m, m.fetchDetail(item.video.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.videoList, cmd = m.videoList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commenting {
		switch msg.String() {
		case "esc":
			m.commenting = false
			m.commentInput.Reset()
			return m, nil
		case "ctrl+d":
			text := m.commentInput.Value()
			if strings.TrimSpace(text) == "" {
				m.errMsg = "comment cannot be empty"
				return m, nil
			}
			return m, m.addComment(m.detail.Video.ID, text)
		}
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.detail = nil
		m.view = m.detailReturn
		return m, nil
	case "l":
		return m, m.toggleLike(m.detail.Video.ID)
	case "c":
		m.commenting = true
		m.commentInput.Focus()
		return m, textarea.Blink
	}
	return m, nil
}

func (m *Model) handleManageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "ctrl+s":
		return m, m.navigate(auth.RouteAnalytics)
	case "right", "]":
		if m.manageCtl.HasNext() {
			m.manageCtl.Next()
			return m, m.fetchManage()
		}
		return m, nil
	case "left", "[":
		if m.manageCtl.HasPrevious() {
			m.manageCtl.Previous()
			return m, m.fetchManage()
		}
		return m, nil
	case "s":
		m.manageSortIdx = (m.manageSortIdx + 1) % len(sortPresets)
		preset := sortPresets[m.manageSortIdx]
		m.manageCtl.SetParams(listctl.ParamPatch{
			SortBy: listctl.StrPtr(preset.sortBy),
			Order:  listctl.OrderPtr(preset.order),
		})
		return m, m.fetchManage()
	case "d":
		if item, ok := m.manageList.SelectedItem().(videoItem); ok {
			video := item.video
			m.pendingDelete = &video
			m.view = ConfirmDeleteView
		}
		return m, nil
	case "enter":
		if item, ok := m.manageList.SelectedItem().(videoItem); ok {
			m.detailReturn = ManageView
			return m, m.fetchDetail(item.video.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.manageList, cmd = m.manageList.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.pendingDelete != nil {
			id := m.pendingDelete.ID
			m.pendingDelete = nil
			return m, m.deleteVideo(id)
		}
		m.view = ManageView
		return m, nil
	case "n", "esc", "q":
		m.pendingDelete = nil
		m.view = ManageView
		return m, nil
	}
	return m, nil
}

func (m *Model) handleAnalyticsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, m.logout()
	case "ctrl+s", "esc":
		return m, m.navigate(auth.RouteAdminVideos)
	case "right", "]":
		if m.analyticsCtl.HasNext() {
			m.analyticsCtl.Next()
			return m, m.fetchAnalytics()
		}
		return m, nil
	case "left", "[":
		if m.analyticsCtl.HasPrevious() {
			m.analyticsCtl.Previous()
			return m, m.fetchAnalytics()
		}
		return m, nil
	case "s":
		m.analyticsSortIdx = (m.analyticsSortIdx + 1) % len(sortPresets)
		preset := sortPresets[m.analyticsSortIdx]
		m.analyticsCtl.SetParams(listctl.ParamPatch{
			SortBy: listctl.StrPtr(preset.sortBy),
			Order:  listctl.OrderPtr(preset.order),
		})
		return m, m.fetchAnalytics()
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case HomeView:
		m.videoList, cmd = m.videoList.Update(msg)
	case ManageView:
		m.manageList, cmd = m.manageList.Update(msg)
	}
	return m, cmd
}

func cycleFocus(inputs []textinput.Model, focus int, forward bool) int {
	inputs[focus].Blur()
	if forward {
		focus = (focus + 1) % len(inputs)
	} else {
		focus = (focus - 1 + len(inputs)) % len(inputs)
	}
	inputs[focus].Focus()
	return focus
}

func (m *Model) newVideoList(title string, ctl *listctl.Controller[api.Video], sortIdx int) list.Model {
	page := ctl.Result()
	var items []list.Item
	if page != nil {
		items = make([]list.Item, len(page.Items))
		for i, v := range page.Items {
			items[i] = videoItem{video: v}
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	if page != nil {
		l.Title = fmt.Sprintf("%s · %s · page %d/%d", title, sortPresets[sortIdx].label, page.CurrentPage, max(page.TotalPages, 1))
	} else {
		l.Title = title
	}
	l.SetSize(m.width-4, m.height-8)
	return l
}

func (m *Model) login(email, password string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.client.Login(m.ctx, email, password)
		if err != nil {
			return authDoneMsg{err: err}
		}
		session, err := sessionFromAuth(resp)
		if err != nil {
			return authDoneMsg{err: err}
		}
		if err := m.store.Save(session); err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m *Model) signup() tea.Cmd {
	form := formFromInputs(m.signupInputs)
	if errs := form.Validate(); !errs.Ok() {
		m.errMsg = errs.First()
		return nil
	}

	return func() tea.Msg {
		resp, err := m.client.Register(m.ctx, api.RegisterRequest{
			Name:     form.Name,
			Email:    form.Email,
			Password: form.Password,
		})
		if err != nil {
			return authDoneMsg{err: err}
		}
		session, err := sessionFromAuth(resp)
		if err != nil {
			return authDoneMsg{err: err}
		}
		if err := m.store.Save(session); err != nil {
			return authDoneMsg{err: err}
		}
		return authDoneMsg{session: session}
	}
}

func (m *Model) logout() tea.Cmd {
	if err := m.store.Clear(); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.session = nil
	m.notice = ""
	return m.navigate(auth.RouteLogin)
}

func (m *Model) fetchVideos(ctl *listctl.Controller[api.Video]) tea.Cmd {
	run := ctl.Fetch(m.ctx)
	return func() tea.Msg {
		return videosLoadedMsg{ctl: ctl, done: run()}
	}
}

func (m *Model) fetchManage() tea.Cmd {
	return m.fetchVideos(m.manageCtl)
}

func (m *Model) fetchAnalytics() tea.Cmd {
	run := m.analyticsCtl.Fetch(m.ctx)
	return func() tea.Msg {
		done := run()
		return analyticsLoadedMsg{done: done, stats: m.holder.get()}
	}
}

func (m *Model) fetchDetail(videoID string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.client.VideoDetail(m.ctx, videoID)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *Model) toggleLike(videoID string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.ToggleLike(m.ctx, videoID)
		return likeToggledMsg{result: result, err: err}
	}
}

func (m *Model) addComment(videoID, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.client.AddComment(m.ctx, videoID, text)
		return commentAddedMsg{err: err}
	}
}

func (m *Model) deleteVideo(videoID string) tea.Cmd {
	return func() tea.Msg {
		err := m.client.DeleteVideo(m.ctx, videoID)
		return videoDeletedMsg{videoID: videoID, err: err}
	}
}

func formFromInputs(inputs []textinput.Model) forms.SignupForm {
	return forms.SignupForm{
		Name:            strings.TrimSpace(inputs[0].Value()),
		Email:           strings.TrimSpace(inputs[1].Value()),
		Password:        inputs[2].Value(),
		ConfirmPassword: inputs[3].Value(),
	}
}

func sessionFromAuth(resp *api.AuthResponse) (auth.Session, error) {
	role, err := auth.ParseRole(resp.User.Role)
	if err != nil {
		return auth.Session{}, err
	}
	return auth.Session{
		UserID:      resp.User.ID,
		DisplayName: resp.User.Name,
		Role:        role,
		Token:       resp.Token,
	}, nil
}

func (m *Model) renderLogin() string {
	title := styles.title.Render("Log in to Beatly")
	fields := make([]string, len(m.loginInputs))
	for i, in := range m.loginInputs {
		fields[i] = in.View()
	}

	signupKey := key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sign up"))
	helpKeys := []key.Binding{m.keys.tab, m.keys.enter, signupKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, strings.Join(fields, "\n"), helpView)
}

func (m *Model) renderSignup() string {
	title := styles.title.Render("Create a Beatly account")
	fields := make([]string, len(m.signupInputs))
	for i, in := range m.signupInputs {
		fields[i] = in.View()
	}

	helpKeys := []key.Binding{m.keys.tab, m.keys.enter, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, strings.Join(fields, "\n"), helpView)
}

func (m *Model) renderHome() string {
	if m.videoCtl.Status() == listctl.Loading {
		return styles.help.Render("Loading videos...")
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.prevPage, m.keys.nextPage, m.keys.sort, m.keys.logout, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.videoList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.detail == nil {
		return styles.help.Render("Loading video...")
	}

	v := m.detail.Video
	title := styles.title.Render(v.Title)

	liked := ""
	if m.session != nil && m.detail.LikedBy(m.session.UserID) {
		liked = " (liked)"
	}

	info := fmt.Sprintf("by %s · %d views · %d likes%s\n\n%s",
		v.UploaderName, v.Views, v.Likes, liked, v.Description)

	var comments strings.Builder
	comments.WriteString(fmt.Sprintf("\n\nComments (%d):", len(m.detail.Comments)))
	for _, c := range m.detail.Comments {
		comments.WriteString(fmt.Sprintf("\n  %s: %s", c.UserName, c.Text))
	}

	if m.commenting {
		submitKey := key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "post"))
		helpView := m.help.ShortHelpView([]key.Binding{submitKey, m.keys.back})
		return fmt.Sprintf("%s\n%s%s\n\n%s\n%s", title, info, comments.String(), m.commentInput.View(), helpView)
	}

	helpKeys := []key.Binding{m.keys.like, m.keys.comment, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, comments.String(), helpView)
}

func (m *Model) renderManage() string {
	if m.manageCtl.Status() == listctl.Loading {
		return styles.help.Render("Loading videos...")
	}

	analyticsKey := key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "analytics"))
	helpKeys := []key.Binding{m.keys.enter, m.keys.delete, m.keys.prevPage, m.keys.nextPage, m.keys.sort, analyticsKey, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.manageList.View(), helpView)
}

func (m *Model) renderConfirmDelete() string {
	if m.pendingDelete == nil {
		return ""
	}

	title := styles.warn.Render(fmt.Sprintf("Delete '%s'?", m.pendingDelete.Title))
	info := "\nThis removes the video and all its comments and likes.\n"

	helpKeys := []key.Binding{m.keys.yes, m.keys.no}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n%s", title, info, helpView)
}

func (m *Model) renderAnalytics() string {
	if m.analyticsCtl.Status() == listctl.Loading {
		return styles.help.Render("Loading analytics...")
	}

	title := styles.title.Render("Analytics")

	var totals string
	if m.stats != nil {
		totals = fmt.Sprintf("Videos: %d · Views: %d · Likes: %d · Comments: %d\n",
			m.stats.TotalVideos, m.stats.TotalViews, m.stats.TotalLikes, m.stats.TotalComments)
	}

	var rows strings.Builder
	page := m.analyticsCtl.Result()
	if page != nil {
		for _, v := range page.Items {
			rows.WriteString(fmt.Sprintf("\n  %-40.40s  %6d views  %5d likes  %5d comments",
				v.Title, v.Views, v.Likes, v.Comments))
		}
		rows.WriteString(fmt.Sprintf("\n\n  page %d/%d · %s", page.CurrentPage, max(page.TotalPages, 1), sortPresets[m.analyticsSortIdx].label))
	}

	helpKeys := []key.Binding{m.keys.prevPage, m.keys.nextPage, m.keys.sort, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s%s\n\n%s", title, totals, rows.String(), helpView)
}
