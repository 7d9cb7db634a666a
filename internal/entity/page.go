package entity

type HomePage struct {
	FeaturedNews   []NewsItem
	UpcomingEvents []Event
	Colleges       []College
	Offers         []Offer
	Stats          SiteStats
}

type AboutPage struct {
	Site         SiteInfo
	CollegeCount int
	FAQs         []FAQ
}

type CollegePage struct {
	College  College
	Faculty  []FacultyMember
	Projects []Project
}

type SearchResults struct {
	Query    string
	News     []NewsItem
	Blog     []BlogPost
	Events   []Event
	Faculty  []FacultyMember
	Programs []Program
}

func (r SearchResults) Total() int {
	return len(r.News) + len(r.Blog) + len(r.Events) + len(r.Faculty) + len(r.Programs)
}
