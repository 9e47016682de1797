package content

// Brand is everything on the page that is not fetched.
type Brand struct {
	Handle        string
	FirstName     string
	LastName      string
	Role          string
	Tagline       string
	Status        string
	Account       string
	Profile       string
	Fallback      string
	Marquees      []Marquee
	Socials       []Link
	Stats         []Stat
	Skills        []Skill
	ServicesIntro string
	Services      []Service
	Contact       []Link
	CV            Document
	Copyright     string
	Origin        string
}

type Marquee struct {
	Text      string
	Direction int
	Speed     float64
}

type Link struct {
	Label string
	Icon  string
	URL   string
	Style string
}

type Stat struct {
	Label string
	Value string
	Icon  string
}

type Skill struct {
	Name  string
	Icon  string
	Level int
}

type Service struct {
	Title       string
	Description string
	Icon        string
}

// Document is a file served from the site's own origin.
type Document struct {
	Path  string
	File  string
	Label string
}

const (
	WhatsAppLink  = "https://wa.me/2348023169274?text=Hello%20Mifimn,%20I%20have%20a%20project%20idea%20I'd%20like%20to%20discuss."
	EmailLink     = "mailto:shittumifimn0807@gmail.com"
	LinkedInLink  = "https://www.linkedin.com/in/mifimn-shittu"
	GitHubLink    = "https://github.com/Mifimn"
	InstagramLink = "https://instagram.com/mifimn_01"
)

// Mifimn is the brand rendered by the site.
var Mifimn = Brand{
	Handle:    "MIFIMN",
	FirstName: "MUSA",
	LastName:  "AYOOLA",
	Role:      "// FULLSTACK DEVELOPER & UI ARCHITECT",
	Tagline:   "Transforming concepts into complex digital realities.",
	Status:    "OPEN FOR WORK",
	Account:   "Mifimn",
	Profile:   GitHubLink,
	Fallback:  "High-performance web application engineered by Mifimn.",
	Marquees: []Marquee{
		{Text: "DESIGN CODE BUILD", Direction: 1, Speed: 2},
		{Text: "MIFIMN CREATIVE", Direction: -1, Speed: 2},
	},
	Socials: []Link{
		{Label: "GitHub", Icon: "github", URL: GitHubLink, Style: "social-github"},
		{Label: "LinkedIn", Icon: "linkedin", URL: LinkedInLink, Style: "social-linkedin"},
		{Label: "Instagram", Icon: "instagram", URL: InstagramLink, Style: "social-instagram"},
	},
	Stats: []Stat{
		{Label: "Experience", Value: "3+ Years", Icon: "briefcase"},
		{Label: "Projects", Value: "20+ Done", Icon: "code"},
		{Label: "Tech Stack", Value: "Fullstack", Icon: "layers"},
		{Label: "Location", Value: "Nigeria", Icon: "globe"},
	},
	Skills: []Skill{
		{Name: "React", Icon: "code", Level: 95},
		{Name: "Next.js", Icon: "monitor", Level: 90},
		{Name: "Tailwind", Icon: "palette", Level: 98},
		{Name: "Supabase", Icon: "database", Level: 85},
		{Name: "Node.js", Icon: "server", Level: 80},
		{Name: "TypeScript", Icon: "terminal", Level: 85},
		{Name: "Framer", Icon: "zap", Level: 90},
		{Name: "Backend", Icon: "cpu", Level: 75},
		{Name: "Mobile", Icon: "smartphone", Level: 70},
		{Name: "UI/UX", Icon: "box", Level: 85},
	},
	ServicesIntro: `Providing end-to-end digital solutions. From pixel-perfect frontend
	to robust, scalable backend architecture.`,
	Services: []Service{
		{Title: "Frontend", Description: "React, Vue, Animations", Icon: "monitor"},
		{Title: "Backend", Description: "Database, API, Auth", Icon: "server"},
		{Title: "Design", Description: "UI Systems, Prototyping", Icon: "palette"},
	},
	Contact: []Link{
		{Label: "WHATSAPP", Icon: "smartphone", URL: WhatsAppLink, Style: "contact-primary"},
		{Label: "SEND EMAIL", Icon: "mail", URL: EmailLink, Style: "contact-secondary"},
		{Label: "LinkedIn", Icon: "linkedin", URL: LinkedInLink, Style: "contact-linkedin"},
	},
	CV: Document{
		Path:  "/Mifimn_CV.pdf",
		File:  "Mifimn_CV.pdf",
		Label: "CV_V1.0",
	},
	Copyright: "© 2025 Mifimn Brand",
	Origin:    "Made in Nigeria",
}
