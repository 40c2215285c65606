package entity

import "time"

// About is the nested biography section of a profile.
type About struct {
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Philosophy  string   `json:"philosophy"`
}

// Profile is the single biographical record served at /api/profile.
type Profile struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Tagline      string    `json:"tagline"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	HeroImage    string    `json:"heroImage"`
	ProfileImage string    `json:"profileImage"`
	About        About     `json:"about"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Experience is one entry of the work history. Order ascending means more recent.
type Experience struct {
	ID           string    `json:"id,omitempty"`
	Period       string    `json:"period"`
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Technologies []string  `json:"technologies"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Skills groups technical skills by category alongside leadership items and
// certifications. A single document is expected to exist.
type Skills struct {
	ID             string              `json:"id,omitempty"`
	Technical      map[string][]string `json:"technical"`
	Leadership     []string            `json:"leadership"`
	Certifications []string            `json:"certifications"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// Achievement is a single award or recognition. Year is free text and may be a
// range like "2008-2009".
type Achievement struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Year        string    `json:"year"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Education is the single education record.
type Education struct {
	ID         string    `json:"id,omitempty"`
	Degree     string    `json:"degree"`
	University string    `json:"university"`
	Year       string    `json:"year"`
	Grade      string    `json:"grade"`
	Highlights []string  `json:"highlights"`
	Subjects   []string  `json:"subjects"`
	CreatedAt  time.Time `json:"createdAt"`
}
