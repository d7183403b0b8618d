// AngelaMos | 2026
// dto.go

package siteconfig

type SocialLinks struct {
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	Vimeo     string `json:"vimeo"`
}

type SocialLinksPatch struct {
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,max=500"`
	YouTube   *string `json:"youtube,omitempty"   validate:"omitempty,max=500"`
	Vimeo     *string `json:"vimeo,omitempty"     validate:"omitempty,max=500"`
}

type UpdateRequest struct {
	ContactEmail string            `json:"contactEmail"          validate:"required,looseemail,max=255"`
	SocialLinks  *SocialLinksPatch `json:"socialLinks,omitempty"`
}

type Response struct {
	ContactEmail string      `json:"contactEmail"`
	SocialLinks  SocialLinks `json:"socialLinks"`
}

func ToResponse(c *SiteConfig) Response {
	return Response{
		ContactEmail: c.ContactEmail,
		SocialLinks: SocialLinks{
			Instagram: c.Instagram,
			YouTube:   c.YouTube,
			Vimeo:     c.Vimeo,
		},
	}
}
