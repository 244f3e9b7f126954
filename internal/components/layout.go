package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	siteName    = "Personalized AI Solutions"
	siteTagline = "for Small & Micro Businesses"
)

type PageConfig struct {
	Title       string
	Description string
	// Scripts are appended to the end of body.
	Scripts []g.Node
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = siteName + " - AI-Powered Text-Back & Booking"
	}

	if config.Description == "" {
		config.Description = "Automate SMS confirmations and streamline bookings so you never miss a sale."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Href(LogoPath)),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("font-sans text-gray-800 bg-white"),
				g.Group(content),
				g.Group(config.Scripts),
			),
		),
	})
}
