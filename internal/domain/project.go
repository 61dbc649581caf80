package domain

import "time"

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
}

type Project struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Slug           string     `json:"slug"`
	CompanySlug    string     `json:"company_slug"`
	Address        string     `json:"address,omitempty"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	IsFeatured     bool       `json:"is_featured"`
	ImageURLs      []string   `json:"image_urls"`
}

func (p Project) Cover() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

const PlaceholderImage = "https://via.placeholder.com/450x350.png?text=No+Image"

// GalleryCard is how a project appears in the public gallery.
type GalleryCard struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	ClientName     string   `json:"client_name"`
	Location       string   `json:"location"`
	CompletionYear string   `json:"completion_year"`
	CoverImage     string   `json:"cover_image"`
	GalleryImages  []string `json:"gallery_images"`
	IsFeatured     bool     `json:"is_featured"`
}
