package navigation

// Route identifies a screen
type Route string

const (
	RouteHome              Route = "/"
	RouteLogin             Route = "/login"
	RouteSignup            Route = "/signup"
	RouteExpenseTracker    Route = "/expenseTracker"
	RouteFinancialAnalysis Route = "/financialAnalysis"
	RouteCurrencyConverter Route = "/currencyConverter"
	RouteFinancialTips     Route = "/financialTips"
	RouteAbout             Route = "/about"
	RouteLogout            Route = "/logout"
)

// Public reports whether the route is reachable without a session
func (r Route) Public() bool {
	return r == RouteLogin || r == RouteSignup
}

// MenuEntry is one line of the navigation menu
type MenuEntry struct {
	Label string
	Route Route
}

var defaultMenu = []MenuEntry{
	{Label: "Expense Tracker", Route: RouteExpenseTracker},
	{Label: "Financial Analysis", Route: RouteFinancialAnalysis},
	{Label: "Currency Converter", Route: RouteCurrencyConverter},
	{Label: "Financial Tips", Route: RouteFinancialTips},
	{Label: "About", Route: RouteAbout},
	{Label: "Logout", Route: RouteLogout},
}

// DefaultMenu returns a copy of the application menu
func DefaultMenu() []MenuEntry {
	out := make([]MenuEntry, len(defaultMenu))
	copy(out, defaultMenu)
	return out
}

// Navigator performs a route change requested by the menu
type Navigator interface {
	Navigate(route Route)
}

// NavigatorFunc adapts a function to Navigator
type NavigatorFunc func(route Route)

func (f NavigatorFunc) Navigate(route Route) { f(route) }

// State is the observable menu state
type State struct {
	IsOpen        bool
	SelectedIndex int
}
