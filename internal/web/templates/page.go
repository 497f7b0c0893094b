package templates

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	AppName     string
}

// ShellOptions captures the composition inputs for the app shell.
type ShellOptions struct {
	Title string
	Page  PageContext
	// LoadingBarEnabled gates the loading indicator; it is read once from
	// process configuration per render.
	LoadingBarEnabled bool
}
