package components

import (
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sefazor/textback-landing/internal/models"
)

// LogoPath is where the page expects the logo to be served.
const LogoPath = "/assets/logo.png"

// Lead form outcomes shown above the contact form.
const (
	LeadReceived = "received"
	LeadInvalid  = "invalid"
	LeadFailed   = "failed"
)

// Page variants.
const (
	VariantCheckout = "checkout"
	VariantContact  = "contact"
)

type PageData struct {
	Variant string
	Plans   []models.Plan
	// SelectedPlan pre-fills the hidden plan field of the contact form.
	SelectedPlan     string
	ShowContact      bool
	LeadStatus       string
	TurnstileSiteKey string
	Year             int
}

func LandingPage(data PageData) g.Node {
	scripts := []g.Node{}
	if data.Variant == VariantContact {
		scripts = append(scripts, selectPlanScript())
	}
	if data.ShowContact && data.TurnstileSiteKey != "" {
		scripts = append(scripts, Script(Src("https://challenges.cloudflare.com/turnstile/v0/api.js"), Async(), Defer()))
	}

	return Layout(
		PageConfig{Scripts: scripts},
		Navbar(data),
		Hero(data),
		FeatureList(),
		Pricing(data),
		Testimonials(),
		g.If(data.ShowContact, ContactForm(data)),
		PageFooter(data.Year),
	)
}

// planButton renders the call to action of a plan according to the page
// variant. Checkout buttons post to /checkout/{plan}; contact buttons select
// the plan and move to the contact form.
func planButton(data PageData, slug string, action models.PlanAction, class, label string) g.Node {
	if data.Variant == VariantContact || action == models.PlanActionContact {
		if !data.ShowContact {
			return Button(Type("button"), Class(class), Data("plan", slug), g.Text(label))
		}
		return A(
			Href("/?plan="+url.QueryEscape(slug)+"#contact"),
			Class(class),
			Data("plan", slug),
			g.Text(label),
		)
	}

	return Form(
		Method("post"),
		Action("/checkout/"+url.PathEscape(slug)),
		Class("inline"),
		Button(Type("submit"), Class(class), g.Text(label)),
	)
}

// selectPlanScript keeps the plan selection client-side: it records the plan
// in the hidden field and scrolls to the form. Without a contact section it
// does nothing.
func selectPlanScript() g.Node {
	return Script(g.Raw(`
document.querySelectorAll('[data-plan]').forEach(function (el) {
  el.addEventListener('click', function (e) {
    e.preventDefault();
    var contact = document.getElementById('contact');
    if (!contact) { return; }
    var field = contact.querySelector('input[name="plan"]');
    if (field) { field.value = el.getAttribute('data-plan'); }
    contact.scrollIntoView({ behavior: 'smooth' });
  });
});
`))
}
