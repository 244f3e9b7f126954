package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sefazor/textback-landing/internal/models"
)

type Feature struct {
	Title       string
	Description string
}

var features = []Feature{
	{"Instant SMS Confirmation", "Send automated booking texts and confirmations instantly."},
	{"Calendar Sync", "Seamlessly integrate with Google Calendar and Outlook."},
	{"Multi-Agent Support", "Manage multiple teams or locations effortlessly."},
	{"Analytics Dashboard", "Track key metrics like no-shows and confirmations."},
}

type Testimonial struct {
	Name  string
	Quote string
}

var testimonials = []Testimonial{
	{"Smog Shop", "Our bookings jumped 40% with instant text confirmations!"},
	{"Tire Shop", "Customers love the fast SMS follow-up, no more missed leads."},
	{"HVAC Services", "Simple setup, polished results. Our workflow has never been smoother!"},
	{"Local Plumber", "Saved us hours weekly and boosted sales. Highly recommend!"},
}

func Navbar(data PageData) g.Node {
	return Header(
		Class("container mx-auto flex items-center justify-between py-6 px-4 md:px-0"),
		Div(
			Class("flex items-center space-x-3"),
			Img(Src(LogoPath), Alt("Company Logo"), Class("h-10 w-auto")),
			Div(
				Span(Class("text-2xl font-bold text-blue-600"), g.Text(siteName)),
				P(Class("text-sm text-gray-500"), g.Text(siteTagline)),
			),
		),
		Nav(
			Class("space-x-6 text-gray-600"),
			A(Href("#features"), Class("hover:text-teal-500 transition"), g.Text("Features")),
			A(Href("#pricing"), Class("hover:text-teal-500 transition"), g.Text("Pricing")),
			g.If(data.ShowContact, A(Href("#contact"), Class("hover:text-teal-500 transition"), g.Text("Contact"))),
			planButton(data, models.PlanSingleAgent, models.PlanActionCheckout,
				"px-4 py-2 bg-teal-400 text-white rounded hover:bg-teal-500 transition", "Get Started"),
		),
	)
}

func Hero(data PageData) g.Node {
	return Section(
		Class("bg-gradient-to-r from-teal-50 via-blue-50 to-indigo-50 py-20"),
		Div(
			Class("container mx-auto text-center px-4"),
			H1(Class("text-4xl md:text-5xl font-extrabold text-gray-900 mb-4"), g.Text("AI-Powered Text-Back & Booking")),
			P(
				Class("text-lg text-gray-700 mb-6 max-w-2xl mx-auto"),
				g.Text("Ensure "),
				Span(Class("font-semibold text-teal-500"), g.Text("you never miss a sale")),
				g.Text(". Automate SMS confirmations and streamline bookings."),
			),
			planButton(data, models.PlanSingleAgent, models.PlanActionCheckout,
				"mt-4 px-8 py-3 bg-gradient-to-r from-teal-400 to-blue-400 text-white rounded-full hover:opacity-90 transition-opacity",
				"Start at $99/mo"),
		),
	)
}

func FeatureList() g.Node {
	return Section(
		ID("features"),
		Class("py-16 container mx-auto px-4 md:px-0"),
		H2(Class("text-3xl font-bold text-center text-teal-500 mb-8"), g.Text("Key Features")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-2 gap-8"),
			g.Group(g.Map(features, func(f Feature) g.Node {
				return Div(
					Class("flex items-start space-x-4"),
					Div(
						Class("flex-shrink-0"),
						Div(Class("h-10 w-10 bg-teal-100 text-teal-500 flex items-center justify-center rounded-lg"), checkIcon()),
					),
					Div(
						H3(Class("text-xl font-semibold text-gray-900 mb-1"), g.Text(f.Title)),
						P(Class("text-gray-600"), g.Text(f.Description)),
					),
				)
			})),
		),
	)
}

func Pricing(data PageData) g.Node {
	return Section(
		ID("pricing"),
		Class("bg-gradient-to-r from-indigo-50 via-purple-50 to-pink-50 py-16"),
		Div(
			Class("container mx-auto text-center px-4 md:px-0"),
			H2(Class("text-3xl font-bold text-teal-500 mb-4"), g.Text("Pricing Plans")),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-4xl mx-auto"),
				g.Group(g.Map(data.Plans, func(p models.Plan) g.Node {
					return planCard(data, p)
				})),
			),
		),
	)
}

func planCard(data PageData, p models.Plan) g.Node {
	label := "Choose Plan"
	if p.Action == models.PlanActionContact {
		label = "Contact Sales"
	}

	return Div(
		Class("bg-white rounded-lg shadow p-8"),
		Data("plan-card", p.Slug),
		H3(Class(fmt.Sprintf("text-2xl font-semibold mb-4 text-%s-500", p.Accent)), g.Text(p.Name)),
		P(Class("text-4xl font-bold mb-4 text-gray-900"), g.Text(p.PriceLabel)),
		g.If(p.Summary != "", P(Class("text-gray-600 mb-6"), g.Text(p.Summary))),
		g.If(len(p.Features) > 0, Ul(
			Class("text-gray-600 mb-6 space-y-2 text-left"),
			g.Group(g.Map(p.Features, func(f string) g.Node { return Li(g.Text(f)) })),
		)),
		planButton(data, p.Slug, p.Action,
			fmt.Sprintf("w-full py-3 bg-%s-500 text-white rounded hover:opacity-90 transition-opacity", p.Accent), label),
	)
}

func Testimonials() g.Node {
	return Section(
		ID("testimonials"),
		Class("py-16 container mx-auto px-4 md:px-0"),
		H2(Class("text-3xl font-bold text-center text-purple-500 mb-8"), g.Text("What Our Clients Say")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-8 max-w-4xl mx-auto"),
			g.Group(g.Map(testimonials, func(t Testimonial) g.Node {
				return Div(
					Class("bg-white rounded-lg shadow p-6"),
					P(Class("italic text-gray-700 mb-4"), g.Text("“"+t.Quote+"”")),
					Div(
						Class("flex items-center justify-center"),
						Img(Src(LogoPath), Alt(t.Name), Class("h-8 w-8 rounded-full mr-2")),
						Span(Class("font-semibold text-gray-900"), g.Text(t.Name)),
					),
				)
			})),
		),
	)
}

func ContactForm(data PageData) g.Node {
	input := func(typ, name, placeholder string) g.Node {
		return Input(Type(typ), Name(name), Placeholder(placeholder), Required(),
			Class("w-full p-3 border border-gray-300 rounded-lg"))
	}

	return Section(
		ID("contact"),
		Class("bg-gray-50 py-16"),
		Div(
			Class("container mx-auto text-center px-4 md:px-0"),
			H2(Class("text-3xl font-bold text-purple-500 mb-4"), g.Text("Ready to Get Started?")),
			leadNotice(data.LeadStatus),
			Form(
				Action("/api/leads"),
				Method("post"),
				Class("max-w-md mx-auto grid grid-cols-1 gap-4"),
				input("text", "name", "Name"),
				input("text", "business", "Business Name"),
				input("text", "industry", "Industry (e.g., Tire Shop)"),
				input("email", "email", "Email"),
				input("tel", "phone", "Phone"),
				Input(Type("hidden"), Name("plan"), Value(data.SelectedPlan)),
				g.If(data.TurnstileSiteKey != "", Div(Class("cf-turnstile mx-auto"), Data("sitekey", data.TurnstileSiteKey))),
				Button(Type("submit"), Class("py-3 bg-purple-500 text-white rounded hover:bg-purple-600 transition"), g.Text("Submit")),
			),
		),
	)
}

func leadNotice(status string) g.Node {
	switch status {
	case LeadReceived:
		return P(Class("mb-4 text-teal-600"), Role("status"), g.Text("Thanks! We will be in touch shortly."))
	case LeadInvalid:
		return P(Class("mb-4 text-red-600"), Role("alert"), g.Text("Please fill in every field with valid details."))
	case LeadFailed:
		return P(Class("mb-4 text-red-600"), Role("alert"), g.Text("Something went wrong. Please try again in a minute."))
	}
	return nil
}

func PageFooter(year int) g.Node {
	return Footer(
		Class("py-6 bg-white text-center text-gray-500"),
		g.Raw("&copy; "),
		g.Text(strconv.Itoa(year)+" "+siteName),
	)
}

func checkIcon() g.Node {
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Class("h-6 w-6"),
		g.Attr("fill", "none"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("stroke", "currentColor"),
		g.El("path",
			g.Attr("stroke-linecap", "round"),
			g.Attr("stroke-linejoin", "round"),
			g.Attr("stroke-width", "2"),
			g.Attr("d", "M5 13l4 4L19 7"),
		),
	)
}
