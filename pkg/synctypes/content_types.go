package synctypes

// Content bundles every static table rendered by the marketing site and the dashboard.
type Content struct {
	Team     []TeamMember    `yaml:"team"`
	Tasks    []Task          `yaml:"tasks"`
	Board    []BoardColumn   `yaml:"board"`
	Stats    []Stat          `yaml:"stats"`
	Clusters []Cluster       `yaml:"clusters"`
	Activity []ActivityEvent `yaml:"activity"`
	Traffic  []int           `yaml:"traffic"`
	Regions  []RegionLoad    `yaml:"regions"`
	Plans    []PricingPlan   `yaml:"plans"`
	Docs     []DocSection    `yaml:"docs"`
	About    AboutPage       `yaml:"about"`
	Landing  LandingPage     `yaml:"landing"`
}

// TeamMember is one row of the team directory.
type TeamMember struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Status string `yaml:"status"` // Active, Away or Offline
	Email  string `yaml:"email"`
}

// Task is one entry of the worklist.
type Task struct {
	Title    string `yaml:"title"`
	Priority string `yaml:"priority"`
	Status   string `yaml:"status"`
	Due      string `yaml:"due"`
}

// BoardColumn is one column of the projects board.
type BoardColumn struct {
	Name  string   `yaml:"name"`
	Count int      `yaml:"count"`
	Tasks []string `yaml:"tasks"`
}

// Stat is a headline metric on the overview screen.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Cluster is a node cluster health row on the overview screen.
type Cluster struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Status string `yaml:"status"` // Operational or Degraded
	Load   string `yaml:"load"`
}

// ActivityEvent is one line of the overview activity feed.
type ActivityEvent struct {
	Event string `yaml:"event"`
	Time  string `yaml:"time"`
	Type  string `yaml:"type"`
}

// RegionLoad is one regional load bar on the insights screen.
type RegionLoad struct {
	Region string `yaml:"region"`
	Load   int    `yaml:"load"`
}

// PricingPlan is one card on the pricing page.
type PricingPlan struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Features []string `yaml:"features"`
	Popular  bool     `yaml:"popular"`
}

// DocSection is one tab of the documentation page. Body is markdown.
type DocSection struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Body  string `yaml:"body"`
}

// AboutPage holds the about page copy.
type AboutPage struct {
	Headline string   `yaml:"headline"`
	Mission  string   `yaml:"mission"`
	Pillars  []string `yaml:"pillars"`
}

// LandingPage holds the landing page copy.
type LandingPage struct {
	Eyebrow  string `yaml:"eyebrow"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
}
