package models

// Stat is a headline number on a dashboard card
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Color  string `json:"color"`
}

// TrendPoint is one month of the admin complaint trend chart
type TrendPoint struct {
	Month      string `json:"month"`
	Complaints int    `json:"complaints"`
	Resolved   int    `json:"resolved"`
}

// CategoryShare is one slice of the admin category chart
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Notification is an entry in the admin notification tray
type Notification struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

// AdminOverview is everything rendered on the admin overview tab
type AdminOverview struct {
	Stats         []Stat
	Trends        []TrendPoint
	Categories    []CategoryShare
	Notifications []Notification
}

// LandingOption is a card on the landing page
type LandingOption struct {
	Title       string
	Description string
	Badge       string
	Path        string
}
