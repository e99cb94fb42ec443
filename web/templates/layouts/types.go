package layouts

// AppLayoutData is passed to AppLayout to configure the page shell.
type AppLayoutData struct {
	Title     string
	LabName   string
	AsOf      string // reference date of the loaded snapshot, pre-formatted
	ActiveNav string // e.g. "business", "research", "equipment", "contracts", "experiments"
	FlashMsg  string
	FlashKind string // "success", "error", "warning", "info"

	// SidebarCollapsed is the shell's only UI flag. It is threaded explicitly
	// from the request rather than held as shared state.
	SidebarCollapsed bool
	// RefreshAfter, when positive, asks the browser to reload the page after
	// that many seconds. Used by the loading view.
	RefreshAfter int
}

// NavItem is one entry of the shell's sidebar.
type NavItem struct {
	ID    string
	Label string
	Href  string
}

// Nav lists the sidebar entries in display order.
var Nav = []NavItem{
	{ID: "business", Label: "Business", Href: "/business"},
	{ID: "research", Label: "Research", Href: "/research"},
	{ID: "equipment", Label: "Equipment", Href: "/equipment"},
	{ID: "contracts", Label: "Contracts", Href: "/contracts"},
	{ID: "experiments", Label: "Experiments", Href: "/experiments"},
}
