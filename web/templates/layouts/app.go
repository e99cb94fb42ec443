package layouts

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AppLayout renders the full HTML document around body.
func AppLayout(d AppLayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := templ.EscapeString
		var head strings.Builder
		head.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if d.RefreshAfter > 0 {
			fmt.Fprintf(&head, `<meta http-equiv="refresh" content="%d">`, d.RefreshAfter)
		}
		fmt.Fprintf(&head, `<title>%s · %s</title>`, esc(d.Title), esc(d.LabName))
		head.WriteString(`<link rel="stylesheet" href="/static/app.css"></head>`)

		shell := "shell"
		toggle, toggleLabel := "closed", "Collapse"
		if d.SidebarCollapsed {
			shell += " shell-collapsed"
			toggle, toggleLabel = "open", "Expand"
		}
		fmt.Fprintf(&head, `<body><div class="%s"><nav class="sidebar"><div class="brand">%s</div><ul>`, shell, esc(d.LabName))
		for _, item := range Nav {
			class := ""
			if item.ID == d.ActiveNav {
				class = ` class="active"`
			}
			fmt.Fprintf(&head, `<li%s><a href="%s?sidebar=%s">%s</a></li>`,
				class, esc(item.Href), sidebarParam(d.SidebarCollapsed), esc(item.Label))
		}
		fmt.Fprintf(&head, `</ul><a class="sidebar-toggle" href="?sidebar=%s">%s</a>`, toggle, toggleLabel)
		if d.AsOf != "" {
			fmt.Fprintf(&head, `<p class="as-of">Data as of %s</p>`, esc(d.AsOf))
		}
		head.WriteString(`</nav><main class="content">`)
		if d.FlashMsg != "" {
			fmt.Fprintf(&head, `<div class="flash flash-%s">%s</div>`, esc(d.FlashKind), esc(d.FlashMsg))
		}
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main></div></body></html>`)
		return err
	})
}

func sidebarParam(collapsed bool) string {
	if collapsed {
		return "closed"
	}
	return "open"
}
