// Package tui is the storefront shell: a root model that owns the chrome
// (header, nav bar, help footer) and routes between one sub-model per page.
// Layout direction follows the active language.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/souqlabs/souq/internal/i18n"
	"github.com/souqlabs/souq/internal/session"
	"github.com/souqlabs/souq/pkg/client"
	"github.com/souqlabs/souq/pkg/domain"
)

type view int

const (
	viewHome view = iota
	viewProducts
	viewSearch
	viewRecommend
	viewCart
	viewTryOn
	viewLogin
	viewRegister
	viewProfile
)

// navigateMsg switches the active view. The target view is re-mounted, so
// it re-reads the session store and reloads its data.
type navigateMsg struct {
	to view
}

func navigateCmd(to view) tea.Cmd {
	return func() tea.Msg { return navigateMsg{to: to} }
}

// sessionChangedMsg announces that the persisted session record changed.
type sessionChangedMsg struct {
	user *domain.User
}

// addToCartMsg puts one unit of a product into the in-memory cart.
type addToCartMsg struct {
	product domain.Product
}

// App is the root model.
type App struct {
	client  *client.Client
	loc     *i18n.Localizer
	store   *session.Store
	version string

	view      view
	me        *domain.User
	home      homeModel
	products  productsModel
	search    searchModel
	recommend recommendModel
	cart      cartModel
	tryon     tryOnModel
	login     loginModel
	register  registerModel
	profile   profileModel

	width  int
	height int
}

// NewApp creates the shell with every page wired to the same client,
// localizer and session store.
func NewApp(c *client.Client, loc *i18n.Localizer, store *session.Store, version string) App {
	me, _ := store.Load()
	return App{
		client:    c,
		loc:       loc,
		store:     store,
		version:   version,
		me:        me,
		home:      newHomeModel(c, loc),
		products:  newProductsModel(c, loc),
		search:    newSearchModel(c, loc),
		recommend: newRecommendModel(c, loc, store),
		cart:      newCartModel(loc),
		tryon:     newTryOnModel(c, loc),
		login:     newLoginModel(c, loc, store),
		register:  newRegisterModel(c, loc, store),
		profile:   newProfileModel(c, loc, store),
	}
}

func (a App) Init() tea.Cmd {
	return a.home.Init()
}

// chromeLines is header(1) + nav(1) + help(1).
const chromeLines = 3

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - chromeLines}
		a.home, _ = a.home.Update(bodyMsg)
		a.products, _ = a.products.Update(bodyMsg)
		a.search, _ = a.search.Update(bodyMsg)
		a.recommend, _ = a.recommend.Update(bodyMsg)
		a.cart, _ = a.cart.Update(bodyMsg)
		a.tryon, _ = a.tryon.Update(bodyMsg)
		a.login, _ = a.login.Update(bodyMsg)
		a.register, _ = a.register.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		return a, nil

	case navigateMsg:
		return a.switchTo(msg.to)

	case sessionChangedMsg:
		a.me = msg.user
		return a, nil

	case addToCartMsg:
		var cmd tea.Cmd
		a.cart, cmd = a.cart.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if !a.isEditing() {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "1":
				return a.switchTo(viewHome)
			case "2":
				return a.switchTo(viewProducts)
			case "3":
				return a.switchTo(viewSearch)
			case "4":
				return a.switchTo(viewRecommend)
			case "5":
				return a.switchTo(viewCart)
			case "6":
				return a.switchTo(viewTryOn)
			case "7":
				return a.switchTo(viewLogin)
			case "8":
				return a.switchTo(viewRegister)
			case "9":
				return a.switchTo(viewProfile)
			}
		} else if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewHome:
		a.home, cmd = a.home.Update(msg)
	case viewProducts:
		a.products, cmd = a.products.Update(msg)
	case viewSearch:
		a.search, cmd = a.search.Update(msg)
	case viewRecommend:
		a.recommend, cmd = a.recommend.Update(msg)
	case viewCart:
		a.cart, cmd = a.cart.Update(msg)
	case viewTryOn:
		a.tryon, cmd = a.tryon.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewRegister:
		a.register, cmd = a.register.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

// switchTo re-mounts the target view so it reloads from scratch.
func (a App) switchTo(to view) (tea.Model, tea.Cmd) {
	a.view = to
	switch to {
	case viewHome:
		a.home = newHomeModel(a.client, a.loc)
		a.home.width, a.home.height = a.width, a.height-chromeLines
		return a, a.home.Init()
	case viewProducts:
		a.products = newProductsModel(a.client, a.loc)
		a.products.width, a.products.height = a.width, a.height-chromeLines
		return a, a.products.Init()
	case viewSearch:
		a.search = newSearchModel(a.client, a.loc)
		a.search.width, a.search.height = a.width, a.height-chromeLines
		return a, a.search.Init()
	case viewRecommend:
		a.recommend = newRecommendModel(a.client, a.loc, a.store)
		a.recommend.width, a.recommend.height = a.width, a.height-chromeLines
		return a, a.recommend.Init()
	case viewCart:
		a.cart.width, a.cart.height = a.width, a.height-chromeLines
		return a, a.cart.Init()
	case viewTryOn:
		a.tryon = newTryOnModel(a.client, a.loc)
		a.tryon.width, a.tryon.height = a.width, a.height-chromeLines
		return a, a.tryon.Init()
	case viewLogin:
		a.login = newLoginModel(a.client, a.loc, a.store)
		a.login.width, a.login.height = a.width, a.height-chromeLines
		return a, a.login.Init()
	case viewRegister:
		a.register = newRegisterModel(a.client, a.loc, a.store)
		a.register.width, a.register.height = a.width, a.height-chromeLines
		return a, a.register.Init()
	case viewProfile:
		a.profile = newProfileModel(a.client, a.loc, a.store)
		a.profile.width, a.profile.height = a.width, a.height-chromeLines
		return a, a.profile.Init()
	}
	return a, nil
}

func (a App) isEditing() bool {
	switch a.view {
	case viewLogin, viewRegister:
		return true
	case viewProfile:
		return a.profile.editing()
	case viewSearch:
		return a.search.inputFocused
	}
	return false
}

func (a App) View() string {
	rtl := a.loc.RTL()

	// Header: app title on one side, session identity on the other.
	title := titleStyle.Render(a.loc.T("app.title"))
	if a.version != "" {
		title += " " + metaStyle.Render(a.version)
	}
	identity := dimStyle.Render(a.loc.T("profile.notLoggedIn"))
	if a.me != nil {
		identity = accentStyle.Render(a.me.Email)
	}
	header := spreadLine(title, identity, a.width, rtl)

	// Nav bar derived from the routing table.
	type navEntry struct {
		key string
		id  string
		v   view
	}
	entries := []navEntry{
		{"1", "nav.home", viewHome},
		{"2", "nav.products", viewProducts},
		{"3", "nav.search", viewSearch},
		{"4", "nav.recommendations", viewRecommend},
		{"5", "nav.cart", viewCart},
		{"6", "nav.tryon", viewTryOn},
		{"7", "nav.login", viewLogin},
		{"8", "nav.register", viewRegister},
		{"9", "nav.profile", viewProfile},
	}
	if rtl {
		for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
			entries[i], entries[j] = entries[j], entries[i]
		}
	}
	var nav strings.Builder
	for i, e := range entries {
		if i > 0 {
			nav.WriteString("  ")
		}
		label := a.loc.T(e.id)
		if e.v == a.view {
			nav.WriteString(accentStyle.Render(e.key) + " " + selectedStyle.Underline(true).Render(label))
		} else {
			nav.WriteString(metaStyle.Render(e.key) + " " + dimStyle.Render(label))
		}
	}
	navBar := alignLine(nav.String(), a.width, rtl)

	var body, help string
	switch a.view {
	case viewHome:
		body = a.home.View()
		help = a.navHelp() + "  " + helpEntry("q", "quit")
	case viewProducts:
		body = a.products.View()
		help = a.navHelp() + "  " + a.products.helpKeys()
	case viewSearch:
		body = a.search.View()
		help = a.navHelp() + "  " + a.search.helpKeys()
	case viewRecommend:
		body = a.recommend.View()
		help = a.navHelp()
	case viewCart:
		body = a.cart.View()
		help = a.navHelp() + "  " + a.cart.helpKeys()
	case viewTryOn:
		body = a.tryon.View()
		help = a.navHelp() + "  " + a.tryon.helpKeys()
	case viewLogin:
		body = a.login.View()
		help = a.login.helpKeys()
	case viewRegister:
		body = a.register.View()
		help = a.register.helpKeys()
	case viewProfile:
		body = a.profile.View()
		help = a.profile.helpKeys()
	}

	body = strings.TrimRight(truncateToHeight(body, a.height-chromeLines), "\n")
	help = " " + help

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, navBar, body, help)
}

// navHelp is the common footer fragment for list views.
func (a App) navHelp() string {
	return helpEntry("1-9", "nav")
}

// spreadLine places left and right at opposite edges of the line, swapping
// the edges for right-to-left layouts.
func spreadLine(left, right string, width int, rtl bool) string {
	if rtl {
		left, right = right, left
	}
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}
